// Package project implements the gph project manager: it owns the global
// configuration snapshot, maps engine types to backends, scaffolds new
// projects for "gph init" and orchestrates "gph build" and "gph package".
package project

import (
	"errors"
	"fmt"

	"github.com/modu-ai/gph/pkg/models"
)

// Sentinel errors for the project package.
var (
	// ErrProjectExists indicates the directory already contains a .gph/config.toml.
	ErrProjectExists = errors.New("project already initialized (use --force to overwrite)")

	// ErrEngineTypeNotSpecified indicates the project config has no engine_type.
	ErrEngineTypeNotSpecified = errors.New("engine type not specified in project config")

	// ErrUnsupportedEngine indicates no backend is registered for an engine type.
	ErrUnsupportedEngine = errors.New("unsupported engine")

	// ErrProjectNotFound indicates --project named no detected project.
	ErrProjectNotFound = errors.New("project not found")

	// ErrInvalidRoot indicates the given project path is not a usable directory.
	ErrInvalidRoot = errors.New("invalid project root path")
)

// UnsupportedEngineError reports the engine type that has no backend.
type UnsupportedEngineError struct {
	Type models.EngineType
}

func (e *UnsupportedEngineError) Error() string {
	return fmt.Sprintf("unsupported engine %q (supported: Unreal, Unity, Godot)", string(e.Type))
}

// Is reports whether target is ErrUnsupportedEngine.
func (e *UnsupportedEngineError) Is(target error) bool {
	return target == ErrUnsupportedEngine
}
