package config

import (
	"path/filepath"

	"golang.org/x/text/unicode/norm"

	"github.com/modu-ai/gph/pkg/models"
)

// GlobalConfig holds user-scoped settings shared by every project.
type GlobalConfig struct {
	EnginePaths EnginePaths `toml:"engine_paths" yaml:"engine_paths" json:"engine_paths"`
}

// EnginePaths records the executable or build tool path per engine.
// An empty string means no path is registered.
type EnginePaths struct {
	Unreal string `toml:"unreal,omitempty" yaml:"unreal,omitempty" json:"unreal,omitempty"`
	Unity  string `toml:"unity,omitempty" yaml:"unity,omitempty" json:"unity,omitempty"`
	Godot  string `toml:"godot,omitempty" yaml:"godot,omitempty" json:"godot,omitempty"`
}

// EnginePath returns the registered path for t, or "" when none is set.
func (c *GlobalConfig) EnginePath(t models.EngineType) string {
	switch t {
	case models.EngineUnreal:
		return c.EnginePaths.Unreal
	case models.EngineUnity:
		return c.EnginePaths.Unity
	case models.EngineGodot:
		return c.EnginePaths.Godot
	}
	return ""
}

// SetEnginePath records path for t, replacing any previous value.
// Paths are cleaned and NFC-normalised so the same directory typed on
// macOS and Linux compares equal.
func (c *GlobalConfig) SetEnginePath(t models.EngineType, path string) {
	path = norm.NFC.String(filepath.Clean(path))
	switch t {
	case models.EngineUnreal:
		c.EnginePaths.Unreal = path
	case models.EngineUnity:
		c.EnginePaths.Unity = path
	case models.EngineGodot:
		c.EnginePaths.Godot = path
	}
}

// ProjectConfig holds the settings of a single project directory.
type ProjectConfig struct {
	EngineType models.EngineType `toml:"engine_type,omitempty"`
	Build      BuildOptions      `toml:"build"`
	Package    PackageOptions    `toml:"package"`
}

// BuildOptions are passed to the engine's build tool. Their meaning is
// engine-specific.
type BuildOptions struct {
	Configuration string   `toml:"configuration,omitempty"` // Unreal: Development, Shipping, ...; Godot: debug or release.
	Platform      string   `toml:"platform,omitempty"`      // Unreal platform or Unity build target.
	ExtraArgs     []string `toml:"extra_args,omitempty"`
}

// PackageOptions are passed to the engine's packaging step.
type PackageOptions struct {
	Preset        string   `toml:"preset,omitempty"`         // Godot export preset name.
	ExecuteMethod string   `toml:"execute_method,omitempty"` // Unity static build method.
	Artifact      string   `toml:"artifact,omitempty"`       // Output file name; defaults to the project name.
	ExtraArgs     []string `toml:"extra_args,omitempty"`
}
