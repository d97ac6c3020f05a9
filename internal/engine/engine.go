// Package engine defines the capability every game engine backend
// provides (detect projects, build, package) and implements it for
// Unreal, Unity and Godot by driving each engine's command-line tooling.
package engine

import (
	"context"
	"io"
	"log/slog"
	"runtime"

	"github.com/spf13/afero"

	"github.com/modu-ai/gph/internal/config"
	"github.com/modu-ai/gph/pkg/models"
)

// Engine is the capability implemented once per EngineType.
type Engine interface {
	// Type returns the engine this backend drives.
	Type() models.EngineType

	// DetectProjects scans root for projects this engine recognises, in
	// filesystem traversal order. An empty result is not an error.
	DetectProjects(ctx context.Context, root string) ([]models.ProjectInfo, error)

	// BuildProject invokes the engine's build tool for info.
	BuildProject(ctx context.Context, info models.ProjectInfo, cfg *config.ProjectConfig) error

	// PackageProject packages a previously built project into outputPath,
	// which must already exist.
	PackageProject(ctx context.Context, info models.ProjectInfo, cfg *config.ProjectConfig, outputPath string) error
}

// Options configures an engine backend.
type Options struct {
	ToolPath string       // Registered executable or build tool path; empty when unconfigured.
	Runner   Runner       // Defaults to ExecRunner.
	Fs       afero.Fs     // Defaults to the OS filesystem.
	Logger   *slog.Logger // Defaults to a discarding logger.
	Output   io.Writer    // Receives streamed tool output; nil keeps only the error tail.
	GOOS     string       // Host OS used to pick scripts and defaults; defaults to runtime.GOOS.
}

// withDefaults fills unset options.
func (o Options) withDefaults() Options {
	if o.Runner == nil {
		o.Runner = ExecRunner{}
	}
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.GOOS == "" {
		o.GOOS = runtime.GOOS
	}
	return o
}

// Factory constructs an engine backend from options.
type Factory func(opts Options) Engine

// DefaultFactories returns the backends compiled into gph, keyed by type.
func DefaultFactories() map[models.EngineType]Factory {
	return map[models.EngineType]Factory{
		models.EngineUnreal: NewUnreal,
		models.EngineUnity:  NewUnity,
		models.EngineGodot:  NewGodot,
	}
}

// backend holds what every engine implementation shares.
type backend struct {
	typ  models.EngineType
	opts Options
}

func newBackend(t models.EngineType, opts Options) backend {
	return backend{typ: t, opts: opts.withDefaults()}
}

// Type implements Engine.
func (b *backend) Type() models.EngineType {
	return b.typ
}

// requireTool fails with NotConfiguredError when no tool path is registered.
// It must be called before anything is spawned.
func (b *backend) requireTool() error {
	if b.opts.ToolPath == "" {
		return &NotConfiguredError{Type: b.typ}
	}
	return nil
}

// defaults returns the engine's default options for the host OS.
func (b *backend) defaults() config.BuildOptions {
	return config.NewDefaultProjectConfigFor(b.typ, b.opts.GOOS).Build
}

// run invokes the tool and returns the tail of its output with any error.
func (b *backend) run(ctx context.Context, dir, name string, args []string) (string, error) {
	tail := &tailBuffer{}
	var out io.Writer = tail
	if b.opts.Output != nil {
		out = io.MultiWriter(tail, b.opts.Output)
	}

	cmd := Command{Name: name, Args: args, Dir: dir, Output: out}
	b.opts.Logger.Info("running engine tool", "engine", b.typ, "command", cmd.String(), "dir", dir)

	err := b.opts.Runner.Run(ctx, cmd)
	if err != nil {
		b.opts.Logger.Debug("engine tool failed", "engine", b.typ, "error", err)
	}
	return tail.String(), err
}

// buildError wraps a tool failure as a BuildError.
func (b *backend) buildError(info models.ProjectInfo, output string, err error) error {
	return &BuildError{Engine: b.typ, Project: info.Name, ExitCode: exitCode(err), Output: output, Err: err}
}

// packageError wraps a packaging failure as a PackageError.
func (b *backend) packageError(info models.ProjectInfo, output string, err error) error {
	return &PackageError{Engine: b.typ, Project: info.Name, ExitCode: exitCode(err), Output: output, Err: err}
}

// requireOutputDir checks the caller-provided package destination exists.
func (b *backend) requireOutputDir(info models.ProjectInfo, outputPath string) error {
	st, err := b.opts.Fs.Stat(outputPath)
	if err != nil {
		return b.packageError(info, "", err)
	}
	if !st.IsDir() {
		return b.packageError(info, "", &pathError{path: outputPath, err: ErrNotDirectory})
	}
	return nil
}

// artifactName returns the packaged file name for info.
func artifactName(info models.ProjectInfo, cfg *config.ProjectConfig) string {
	if cfg.Package.Artifact != "" {
		return cfg.Package.Artifact
	}
	return info.Name
}

// pathError attaches a path to a sentinel error.
type pathError struct {
	path string
	err  error
}

func (e *pathError) Error() string { return e.path + ": " + e.err.Error() }
func (e *pathError) Unwrap() error { return e.err }
