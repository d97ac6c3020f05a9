package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"github.com/modu-ai/gph/internal/defs"
)

// LoadGlobal reads the global configuration at path. It never fails: a
// missing file or a file that cannot be parsed yields the default
// configuration, so a first run needs no setup.
func LoadGlobal(fsys afero.Fs, path string) *GlobalConfig {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read global config, using defaults", "path", path, "error", err)
		}
		return NewDefaultGlobalConfig()
	}

	cfg := NewDefaultGlobalConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		slog.Warn("failed to parse global config, using defaults", "path", path, "error", err)
		return NewDefaultGlobalConfig()
	}
	return cfg
}

// Save writes the configuration to path atomically, creating parent
// directories. Errors wrap ErrConfigPersist.
func (c *GlobalConfig) Save(fsys afero.Fs, path string) error {
	data, err := encodeTOML(c)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrConfigPersist, err)
	}
	if err := atomicWrite(fsys, path, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConfigPersist, path, err)
	}
	return nil
}

// GlobalConfigPath returns the location of the global config file:
// $GPH_CONFIG_DIR/config.toml when set, otherwise
// <user config dir>/gph/config.toml.
func GlobalConfigPath(env Env) (string, error) {
	if env.ConfigDir != "" {
		return filepath.Join(filepath.Clean(env.ConfigDir), defs.ConfigTOML), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config directory: %w", err)
	}
	return filepath.Join(dir, defs.GlobalConfigSubdir, defs.ConfigTOML), nil
}
