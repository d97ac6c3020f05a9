package config

import (
	"runtime"

	"github.com/modu-ai/gph/pkg/models"
)

// Default value constants to avoid magic strings.
const (
	DefaultUnrealConfiguration = "Development"
	DefaultGodotConfiguration  = "release"

	DefaultLogLevel = "warn"
)

// NewDefaultGlobalConfig returns a GlobalConfig with no engine paths registered.
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{}
}

// NewDefaultProjectConfig returns the project configuration written by
// "gph init" for the given engine. An empty engine type yields a config
// without engine-specific defaults.
func NewDefaultProjectConfig(t models.EngineType) *ProjectConfig {
	return NewDefaultProjectConfigFor(t, runtime.GOOS)
}

// NewDefaultProjectConfigFor is NewDefaultProjectConfig for an explicit
// host OS, so defaults can be tested on any platform.
func NewDefaultProjectConfigFor(t models.EngineType, goos string) *ProjectConfig {
	cfg := &ProjectConfig{EngineType: t}
	switch t {
	case models.EngineUnreal:
		cfg.Build.Configuration = DefaultUnrealConfiguration
		cfg.Build.Platform = unrealPlatform(goos)
	case models.EngineUnity:
		cfg.Build.Platform = unityBuildTarget(goos)
	case models.EngineGodot:
		cfg.Build.Configuration = DefaultGodotConfiguration
	}
	return cfg
}

// unrealPlatform maps a Go OS name to an Unreal target platform.
func unrealPlatform(goos string) string {
	switch goos {
	case "windows":
		return "Win64"
	case "darwin":
		return "Mac"
	default:
		return "Linux"
	}
}

// unityBuildTarget maps a Go OS name to a Unity -buildTarget value.
func unityBuildTarget(goos string) string {
	switch goos {
	case "windows":
		return "StandaloneWindows64"
	case "darwin":
		return "StandaloneOSX"
	default:
		return "StandaloneLinux64"
	}
}
