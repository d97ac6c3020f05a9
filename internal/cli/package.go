package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/gph/internal/core/project"
)

var packageCmd = &cobra.Command{
	Use:   "package [path]",
	Short: "Build and package the project",
	Long: `Build the project, then package it into an output directory.

The output defaults to .gph/packages/<YYYYMMDD-HHMMSS> inside the project
and is created before the engine runs.

Examples:
  gph package
  gph package MyGame -o dist/linux`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPackage,
}

func init() {
	rootCmd.AddCommand(packageCmd)

	packageCmd.Flags().StringP("output", "o", "", "Output directory (default: .gph/packages/<timestamp>)")
	packageCmd.Flags().String("project", "", "Name of the detected project to package (default: first found)")
}

func runPackage(cmd *cobra.Command, args []string) error {
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
	result, err := mgr.Package(cmd.Context(), project.PackageOptions{
		Path:    dir,
		Output:  getStringFlag(cmd, "output"),
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
	_, _ = fmt.Fprintf(out, "%s Packaged %s (%s)\n", d.Theme.SymSuccess(), result.Project.Name, result.Engine)
	_, _ = fmt.Fprintf(out, "  Output: %s\n", result.OutputPath)
	return nil
}
