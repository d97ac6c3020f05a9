// Package config provides the two-tier configuration model for gph: the
// user-scoped global config (engine tool paths) and the per-project config
// (engine type plus build and package options). Both are TOML files
// written atomically.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration operations.
var (
	// ErrConfigPersist indicates the global configuration could not be written.
	ErrConfigPersist = errors.New("config: failed to persist configuration")

	// ErrProjectConfigMissing indicates the project has no .gph/config.toml.
	ErrProjectConfigMissing = errors.New("config: project configuration not found")

	// ErrProjectConfigInvalid indicates the project configuration could not be decoded or validated.
	ErrProjectConfigInvalid = errors.New("config: invalid project configuration")

	// ErrUnknownFormat indicates an unsupported --format value.
	ErrUnknownFormat = errors.New("config: unknown output format")
)

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("field %q: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Is reports every validation failure as ErrProjectConfigInvalid.
func (e *ValidationErrors) Is(target error) bool {
	return target == ErrProjectConfigInvalid
}
