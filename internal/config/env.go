package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from the process environment. Environment
// variables take priority over persisted files.
type Env struct {
	ConfigDir      string `env:"GPH_CONFIG_DIR"`
	LogLevel       string `env:"GPH_LOG_LEVEL" envDefault:"warn"`
	NoColor        bool   `env:"GPH_NO_COLOR"`
	NonInteractive bool   `env:"GPH_NON_INTERACTIVE"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// SlogLevel converts LogLevel to a slog.Level. Unknown values fall back to warn.
func (e Env) SlogLevel() slog.Level {
	switch strings.ToLower(e.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
