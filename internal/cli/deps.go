// Package cli provides the Cobra command tree and dependency wiring for
// the gph CLI. This file defines the Dependencies struct (Composition
// Root) that every command reads its services from.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/modu-ai/gph/internal/config"
	"github.com/modu-ai/gph/internal/core/project"
	"github.com/modu-ai/gph/internal/engine"
	"github.com/modu-ai/gph/internal/ui"
)

// Dependencies holds the services used by CLI commands. This is the only
// place where concrete implementations are chosen.
type Dependencies struct {
	Fs               afero.Fs
	Env              config.Env
	GlobalConfigPath string
	Runner           engine.Runner
	Logger           *slog.Logger
	Theme            *ui.Theme
	Headless         *ui.HeadlessManager
	Verbose          bool
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies wires the production dependencies from the process
// environment. It should be called once during application startup.
func InitDependencies() error {
	env, err := config.ParseEnv()
	if err != nil {
		return err
	}
	path, err := config.GlobalConfigPath(env)
	if err != nil {
		return err
	}

	hm := ui.NewHeadlessManager()
	if env.NonInteractive {
		hm.ForceHeadless(true)
	}

	deps = &Dependencies{
		Fs:               afero.NewOsFs(),
		Env:              env,
		GlobalConfigPath: path,
		Runner:           engine.ExecRunner{},
		Logger:           newLogger(os.Stderr, env.SlogLevel()),
		Theme:            ui.NewTheme(env.NoColor),
		Headless:         hm,
	}
	slog.SetDefault(deps.Logger)
	return nil
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// newLogger returns a text logger on w at level.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// applyFlags adjusts logging and styling for the persistent flags.
func (d *Dependencies) applyFlags(verbose, noColor bool, stderr io.Writer) {
	if verbose {
		d.Verbose = true
		d.Logger = newLogger(stderr, slog.LevelDebug)
		slog.SetDefault(d.Logger)
	}
	if noColor && !d.Theme.NoColor {
		d.Theme = ui.NewTheme(true)
	}
}

// LoadGlobalConfig reads the global config, falling back to defaults.
func (d *Dependencies) LoadGlobalConfig() *config.GlobalConfig {
	return config.LoadGlobal(d.Fs, d.GlobalConfigPath)
}

// NewProjectManager builds a project manager over a fresh snapshot of the
// global config. In verbose mode engine tool output is streamed to toolOut.
func (d *Dependencies) NewProjectManager(toolOut io.Writer, extra ...project.Option) *project.Manager {
	opts := []project.Option{
		project.WithFs(d.Fs),
		project.WithRunner(d.Runner),
		project.WithLogger(d.Logger),
	}
	if d.Verbose {
		opts = append(opts, project.WithToolOutput(toolOut))
	}
	opts = append(opts, extra...)
	return project.NewManager(*d.LoadGlobalConfig(), opts...)
}

// requireDeps fails commands run before InitDependencies.
func requireDeps() (*Dependencies, error) {
	if deps == nil {
		return nil, fmt.Errorf("dependencies not initialized")
	}
	return deps, nil
}
