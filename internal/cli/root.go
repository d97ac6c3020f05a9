package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/modu-ai/gph/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "gph",
	Short: "Game Project Helper: build and package game engine projects",
	Long: `gph drives the command-line tooling of Unreal Engine, Unity and Godot
so that every project is built and packaged the same way.

Register each engine once with "gph config engine add", mark a project
directory with "gph init", then run "gph build" or "gph package".`,
	Version:           version.GetVersion(),
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: applyPersistentFlags,
}

// Execute initializes dependencies and runs the root command. SIGINT and
// SIGTERM cancel the command context, which stops any running engine tool.
func Execute() error {
	if err := InitDependencies(); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("gph %s\n", version.GetFullVersion()))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output and stream engine tool output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")
}

// applyPersistentFlags applies --verbose and --no-color to the dependencies.
func applyPersistentFlags(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}
	d.applyFlags(getBoolFlag(cmd, "verbose"), getBoolFlag(cmd, "no-color"), cmd.ErrOrStderr())
	return nil
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
