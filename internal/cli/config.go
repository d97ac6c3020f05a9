package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/modu-ai/gph/internal/config"
	"github.com/modu-ai/gph/internal/ui"
	"github.com/modu-ai/gph/pkg/models"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the global configuration",
	Long: `Show the global gph configuration and where it is stored.

The file lives in the user config directory (for example
~/.config/gph/config.toml) unless GPH_CONFIG_DIR points elsewhere.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configEngineCmd = &cobra.Command{
	Use:   "engine",
	Short: "List registered engine paths",
	Args:  cobra.NoArgs,
	RunE:  runConfigEngine,
}

var configEngineAddCmd = &cobra.Command{
	Use:   "add <unreal|unity|godot> <path>",
	Short: "Register the tool path of an engine",
	Long: `Register the executable or build tool gph invokes for an engine.

  Unreal  Engine/Build/BatchFiles directory or the RunUAT script
  Unity   Unity editor executable
  Godot   Godot editor executable

Examples:
  gph config engine add unreal /opt/UnrealEngine/Engine/Build/BatchFiles
  gph config engine add godot /usr/local/bin/godot`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigEngineAdd,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configEngineCmd)
	configEngineCmd.AddCommand(configEngineAddCmd)

	configCmd.Flags().String("format", config.FormatTOML, "Output format: "+strings.Join(config.Formats(), ", "))
}

func runConfig(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	format := strings.ToLower(getStringFlag(cmd, "format"))
	if !slices.Contains(config.Formats(), format) {
		return fmt.Errorf("%w: %q (want one of %s)", config.ErrUnknownFormat, format, strings.Join(config.Formats(), ", "))
	}

	cfg := d.LoadGlobalConfig()
	data, err := cfg.Marshal(format)
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}

	if format == config.FormatTOML && ui.IsTerminal(out) && !d.Theme.NoColor {
		md := fmt.Sprintf("# gph configuration\n\n`%s`\n\n```toml\n%s```\n", d.GlobalConfigPath, data)
		_, _ = fmt.Fprint(out, ui.RenderMarkdown(d.Theme, md))
		return nil
	}

	if format == config.FormatTOML {
		_, _ = fmt.Fprintf(out, "# %s\n", d.GlobalConfigPath)
	}
	_, _ = out.Write(data)
	return nil
}

func runConfigEngine(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	printEnginePaths(cmd.OutOrStdout(), d, d.LoadGlobalConfig())
	return nil
}

// printEnginePaths lists every engine with its registered path, flagging
// paths that no longer exist.
func printEnginePaths(w io.Writer, d *Dependencies, cfg *config.GlobalConfig) {
	for _, t := range models.EngineTypes() {
		path := cfg.EnginePath(t)
		switch {
		case path == "":
			_, _ = fmt.Fprintf(w, "  %-7s %s\n", t, d.Theme.Muted.Render("(not configured)"))
		case pathExists(d.Fs, path):
			_, _ = fmt.Fprintf(w, "%s %-7s %s\n", d.Theme.SymSuccess(), t, path)
		default:
			_, _ = fmt.Fprintf(w, "%s %-7s %s %s\n", d.Theme.SymWarning(), t, path, d.Theme.Warn.Render("(not found)"))
		}
	}
}

func runConfigEngineAdd(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	t, err := models.ParseEngineType(args[0])
	if err != nil {
		return err
	}
	if strings.TrimSpace(args[1]) == "" {
		return fmt.Errorf("engine path must not be empty")
	}
	// Tools run from the project directory, so relative paths are pinned
	// to the directory the command was run from.
	path, err := filepath.Abs(args[1])
	if err != nil {
		return fmt.Errorf("resolve engine path: %w", err)
	}

	cfg := d.LoadGlobalConfig()
	cfg.SetEnginePath(t, path)
	if err := cfg.Save(d.Fs, d.GlobalConfigPath); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "%s Registered %s at %s\n", d.Theme.SymSuccess(), t, cfg.EnginePath(t))
	if !pathExists(d.Fs, cfg.EnginePath(t)) {
		_, _ = fmt.Fprintf(out, "%s %s\n", d.Theme.SymWarning(), d.Theme.Warn.Render("The path does not exist yet; builds will fail until it does."))
	}
	_, _ = fmt.Fprintf(out, "  %s\n", d.Theme.Muted.Render("Saved to "+d.GlobalConfigPath))
	return nil
}

func pathExists(fsys afero.Fs, path string) bool {
	ok, err := afero.Exists(fsys, path)
	return err == nil && ok
}
