package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"github.com/modu-ai/gph/internal/defs"
)

// ProjectConfigPath returns the config file location for a project directory.
func ProjectConfigPath(projectDir string) string {
	return filepath.Join(filepath.Clean(projectDir), defs.GphDir, defs.ConfigTOML)
}

// LoadProject reads and validates the configuration of the project at
// projectDir. Unlike LoadGlobal it does not fall back to defaults: a
// missing file wraps ErrProjectConfigMissing and an undecodable or
// invalid one wraps ErrProjectConfigInvalid.
func LoadProject(fsys afero.Fs, projectDir string) (*ProjectConfig, error) {
	path := ProjectConfigPath(projectDir)
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (run \"gph init\" first)", ErrProjectConfigMissing, path)
		}
		return nil, fmt.Errorf("%w: read %s: %w", ErrProjectConfigInvalid, path, err)
	}

	cfg := &ProjectConfig{}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrProjectConfigInvalid, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slog.Warn("ignoring unknown project config keys", "path", path, "keys", strings.Join(keys, ", "))
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// projectConfigHeader documents the file for users editing it by hand.
const projectConfigHeader = `# gph project configuration.
# engine_type selects the backend: "Unreal", "Unity" or "Godot".

`

// Save writes the project configuration under projectDir/.gph atomically.
func (c *ProjectConfig) Save(fsys afero.Fs, projectDir string) error {
	data, err := encodeTOML(c)
	if err != nil {
		return fmt.Errorf("encode project config: %w", err)
	}
	return atomicWrite(fsys, ProjectConfigPath(projectDir), append([]byte(projectConfigHeader), data...))
}
