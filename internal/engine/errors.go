package engine

import (
	"errors"
	"fmt"

	"github.com/modu-ai/gph/pkg/models"
)

// Sentinel errors for engine operations.
var (
	// ErrEngineNotConfigured indicates no tool path is registered for the engine.
	ErrEngineNotConfigured = errors.New("engine not configured")

	// ErrBuildFailed indicates the engine's build tool failed.
	ErrBuildFailed = errors.New("build failed")

	// ErrPackageFailed indicates the engine's packaging step failed.
	ErrPackageFailed = errors.New("package failed")

	// ErrNotDirectory indicates the detection root is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// NotConfiguredError is returned before any process is spawned when the
// global config has no tool path for the engine.
type NotConfiguredError struct {
	Type models.EngineType
}

// Error implements the error interface.
func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("no path configured for the %s engine (run \"gph config engine add %s <path>\")", e.Type, e.Type.Key())
}

// Is supports errors.Is(err, ErrEngineNotConfigured).
func (e *NotConfiguredError) Is(target error) bool {
	return target == ErrEngineNotConfigured
}

// BuildError reports a failed build of a detected project.
type BuildError struct {
	Engine   models.EngineType
	Project  string
	ExitCode int    // -1 when the tool did not run to completion.
	Output   string // Tail of the tool's combined output.
	Err      error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return toolErrorMessage("build", e.Engine, e.Project, e.ExitCode, e.Err)
}

// Unwrap returns the underlying error.
func (e *BuildError) Unwrap() error { return e.Err }

// Is supports errors.Is(err, ErrBuildFailed).
func (e *BuildError) Is(target error) bool { return target == ErrBuildFailed }

// PackageError reports a failed packaging step. It is distinct from
// BuildError so callers can tell which phase broke.
type PackageError struct {
	Engine   models.EngineType
	Project  string
	ExitCode int
	Output   string
	Err      error
}

// Error implements the error interface.
func (e *PackageError) Error() string {
	return toolErrorMessage("package", e.Engine, e.Project, e.ExitCode, e.Err)
}

// Unwrap returns the underlying error.
func (e *PackageError) Unwrap() error { return e.Err }

// Is supports errors.Is(err, ErrPackageFailed).
func (e *PackageError) Is(target error) bool { return target == ErrPackageFailed }

func toolErrorMessage(phase string, t models.EngineType, project string, code int, err error) string {
	if code >= 0 {
		return fmt.Sprintf("%s of %s project %q failed with exit status %d", phase, t, project, code)
	}
	return fmt.Sprintf("%s of %s project %q failed: %v", phase, t, project, err)
}
