package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/modu-ai/gph/pkg/models"
)

// validConfigurations lists the accepted build.configuration values per
// engine. Unity has no configuration concept and accepts anything.
var validConfigurations = map[models.EngineType][]string{
	models.EngineUnreal: {"Debug", "DebugGame", "Development", "Shipping", "Test"},
	models.EngineGodot:  {"debug", "release"},
}

// Validate checks the project configuration for correctness. An unset or
// unknown engine type is not a validation failure: the project manager
// reports those with dedicated errors.
func Validate(cfg *ProjectConfig) error {
	var errs []ValidationError

	errs = append(errs, validateConfiguration(cfg)...)
	errs = append(errs, validateArgs("build.extra_args", cfg.Build.ExtraArgs)...)
	errs = append(errs, validateArgs("package.extra_args", cfg.Package.ExtraArgs)...)

	if strings.ContainsAny(cfg.Package.Artifact, `/\`) {
		errs = append(errs, ValidationError{
			Field:   "package.artifact",
			Message: "must be a file name, not a path",
			Value:   cfg.Package.Artifact,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateConfiguration checks build.configuration against the engine's accepted values.
func validateConfiguration(cfg *ProjectConfig) []ValidationError {
	allowed, ok := validConfigurations[cfg.EngineType]
	if !ok || cfg.Build.Configuration == "" {
		return nil
	}
	if slices.Contains(allowed, cfg.Build.Configuration) {
		return nil
	}
	return []ValidationError{{
		Field:   "build.configuration",
		Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		Value:   cfg.Build.Configuration,
	}}
}

// validateArgs rejects empty entries, which would be passed to the tool as "" arguments.
func validateArgs(field string, args []string) []ValidationError {
	var errs []ValidationError
	for i, a := range args {
		if strings.TrimSpace(a) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Message: "must not be empty",
			})
		}
	}
	return errs
}
