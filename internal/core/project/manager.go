package project

import (
	"io"
	"log/slog"
	"time"

	"github.com/spf13/afero"

	"github.com/modu-ai/gph/internal/config"
	"github.com/modu-ai/gph/internal/engine"
	"github.com/modu-ai/gph/pkg/models"
)

// Manager owns a snapshot of the global configuration and the engine
// registry. It is the only component that maps an EngineType to a backend.
type Manager struct {
	global    config.GlobalConfig
	factories map[models.EngineType]engine.Factory
	fs        afero.Fs
	runner    engine.Runner
	logger    *slog.Logger
	output    io.Writer
	progress  func(step string)
	now       func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithFs sets the filesystem used for configs, scaffolding and detection.
func WithFs(fsys afero.Fs) Option {
	return func(m *Manager) { m.fs = fsys }
}

// WithRunner sets the process runner handed to every engine backend.
func WithRunner(r engine.Runner) Option {
	return func(m *Manager) { m.runner = r }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithToolOutput streams engine tool output to w.
func WithToolOutput(w io.Writer) Option {
	return func(m *Manager) { m.output = w }
}

// WithProgress reports each engine step ("Building Shooter") to fn before
// the tool runs.
func WithProgress(fn func(step string)) Option {
	return func(m *Manager) { m.progress = fn }
}

// WithFactories replaces the engine registry.
func WithFactories(f map[models.EngineType]engine.Factory) Option {
	return func(m *Manager) { m.factories = f }
}

// WithClock sets the time source for default package output names.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager creates a Manager that takes ownership of global. The
// configuration is not validated; missing engine paths surface when an
// engine is used.
func NewManager(global config.GlobalConfig, opts ...Option) *Manager {
	m := &Manager{
		global:    global,
		factories: engine.DefaultFactories(),
		fs:        afero.NewOsFs(),
		runner:    engine.ExecRunner{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if m.progress == nil {
		m.progress = func(string) {}
	}
	return m
}

// GlobalConfig returns a copy of the configuration snapshot.
func (m *Manager) GlobalConfig() config.GlobalConfig {
	return m.global
}

// GetEngine returns the backend for t configured with its registered tool
// path. ok is false only when no backend exists for t; an engine whose
// path is unset is still returned and fails with engine.NotConfiguredError
// when used. GetEngine has no side effects.
func (m *Manager) GetEngine(t models.EngineType) (engine.Engine, bool) {
	factory, ok := m.factories[t]
	if !ok {
		return nil, false
	}
	return factory(engine.Options{
		ToolPath: m.global.EnginePath(t),
		Runner:   m.runner,
		Fs:       m.fs,
		Logger:   m.logger,
		Output:   m.output,
	}), true
}

// ResolveEngine picks the backend for a project. It fails, in order, when
// the engine type is unset, unsupported, or has no registered tool path.
// Nothing is scanned or spawned.
func (m *Manager) ResolveEngine(pc *config.ProjectConfig) (engine.Engine, error) {
	if pc == nil || pc.EngineType == "" {
		return nil, ErrEngineTypeNotSpecified
	}
	eng, ok := m.GetEngine(pc.EngineType)
	if !ok {
		return nil, &UnsupportedEngineError{Type: pc.EngineType}
	}
	if m.global.EnginePath(pc.EngineType) == "" {
		return nil, &engine.NotConfiguredError{Type: pc.EngineType}
	}
	return eng, nil
}
