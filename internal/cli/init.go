package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/modu-ai/gph/internal/config"
	"github.com/modu-ai/gph/internal/core/project"
	"github.com/modu-ai/gph/internal/ui"
	"github.com/modu-ai/gph/pkg/models"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a gph project",
	Long: `Initialize a gph project by creating .gph/config.toml in the target
directory (default: current directory).

The engine type comes from --engine. Without it gph looks for Unreal,
Unity and Godot projects in the directory and records the engine when
exactly one matches; on a terminal it asks instead.

Examples:
  gph init                   Initialize the current directory
  gph init MyGame --engine unreal
  gph init . --force         Overwrite an existing .gph/config.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("engine", "", "Engine type: unreal, unity or godot (default: auto-detect)")
	initCmd.Flags().Bool("force", false, "Overwrite an existing project config (backs up the current one)")
}

func runInit(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	opts := project.InitOptions{Path: path, Force: getBoolFlag(cmd, "force")}
	if name := getStringFlag(cmd, "engine"); name != "" {
		t, err := models.ParseEngineType(name)
		if err != nil {
			return err
		}
		opts.Engine = t
	}

	mgr := d.NewProjectManager(cmd.ErrOrStderr())

	if opts.Engine == "" && !d.Headless.IsHeadless() {
		detected, err := mgr.DetectEngines(cmd.Context(), path)
		if err != nil {
			return err
		}
		picked, err := ui.PickEngine(d.Theme, d.Headless, detected)
		switch {
		case errors.Is(err, ui.ErrHeadless):
			// fall back to detection inside InitProject
		case err != nil:
			return err
		default:
			opts.Engine = picked
			opts.SkipDetect = true
		}
	}

	result, err := mgr.InitProject(cmd.Context(), opts)
	if err != nil {
		return err
	}

	printInitResult(out, d, result, mgr.GlobalConfig())
	return nil
}

// printInitResult summarizes what init created and what to do next.
func printInitResult(w io.Writer, d *Dependencies, r *project.InitResult, global config.GlobalConfig) {
	_, _ = fmt.Fprintf(w, "%s Initialized gph project in %s\n", d.Theme.SymSuccess(), r.ProjectDir)
	for _, f := range r.CreatedFiles {
		_, _ = fmt.Fprintf(w, "  %s %s\n", d.Theme.Muted.Render("created"), f)
	}
	if r.BackupPath != "" {
		_, _ = fmt.Fprintf(w, "  %s %s\n", d.Theme.Muted.Render("backup"), r.BackupPath)
	}

	switch {
	case r.EngineType == "" && len(r.Candidates) > 1:
		_, _ = fmt.Fprintf(w, "%s Several engines detected (%s); set engine_type in %s\n",
			d.Theme.SymWarning(), joinEngines(r.Candidates), r.ConfigPath)
	case r.EngineType == "":
		_, _ = fmt.Fprintf(w, "%s No engine recorded; set engine_type in %s\n", d.Theme.SymWarning(), r.ConfigPath)
	case r.AutoDetected:
		_, _ = fmt.Fprintf(w, "  Engine: %s %s\n", r.EngineType, d.Theme.Muted.Render("(detected)"))
	default:
		_, _ = fmt.Fprintf(w, "  Engine: %s\n", r.EngineType)
	}

	if r.EngineType != "" && global.EnginePath(r.EngineType) == "" {
		_, _ = fmt.Fprintf(w, "  Next: gph config engine add %s <path>\n", r.EngineType.Key())
	}
}

func joinEngines(types []models.EngineType) string {
	s := ""
	for i, t := range types {
		if i > 0 {
			s += ", "
		}
		s += t.String()
	}
	return s
}
