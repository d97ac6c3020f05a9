package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/modu-ai/gph/internal/core/project"
	"github.com/modu-ai/gph/internal/engine"
	"github.com/modu-ai/gph/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:   "build [path]",
	Short: "Build the project with its engine",
	Long: `Build the project configured in .gph/config.toml with the engine's
command-line tool.

Without a path gph uses the nearest directory at or above the current one
that contains .gph/. When several projects are detected the first is
built unless --project names another.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().String("project", "", "Name of the detected project to build (default: first found)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	dir, err := resolveProjectDir(d, args)
	if err != nil {
		return err
	}

	spin := d.startSpinner(cmd.ErrOrStderr(), "Detecting projects in "+dir)
	mgr := d.NewProjectManager(cmd.ErrOrStderr(), project.WithProgress(spin.SetTitle))
	result, err := mgr.Build(cmd.Context(), project.BuildOptions{
		Path:    dir,
		Project: getStringFlag(cmd, "project"),
	})
	spin.Stop()
	if err != nil {
		d.printToolOutput(cmd.ErrOrStderr(), err)
		return err
	}

	if result.NoProject {
		_, _ = fmt.Fprintf(out, "%s No project found\n", d.Theme.SymWarning())
		return nil
	}
	_, _ = fmt.Fprintf(out, "%s Built %s (%s)\n", d.Theme.SymSuccess(), result.Project.Name, result.Engine)
	return nil
}

// resolveProjectDir returns the explicit path argument, or the enclosing
// gph project of the working directory.
func resolveProjectDir(d *Dependencies, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return project.FindProjectRootOrCurrent(d.Fs, ".")
}

// quietSpinner is used while verbose tool output is streaming.
type quietSpinner struct{}

func (quietSpinner) SetTitle(string) {}
func (quietSpinner) Stop()           {}

// startSpinner shows a spinner on w unless verbose output is streaming
// there.
func (d *Dependencies) startSpinner(w io.Writer, title string) ui.Spinner {
	if d.Verbose {
		return quietSpinner{}
	}
	return ui.NewSpinner(d.Theme, d.Headless, w, title)
}

// printToolOutput shows the captured tail of a failed engine tool when it
// was not already streamed.
func (d *Dependencies) printToolOutput(w io.Writer, err error) {
	if d.Verbose {
		return
	}
	var output string
	var be *engine.BuildError
	var pe *engine.PackageError
	switch {
	case errors.As(err, &be):
		output = be.Output
	case errors.As(err, &pe):
		output = pe.Output
	}
	if output == "" {
		return
	}
	_, _ = fmt.Fprintf(w, "%s %s\n%s\n", d.Theme.SymError(), d.Theme.Muted.Render("last tool output:"), output)
}
