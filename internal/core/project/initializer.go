package project

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/modu-ai/gph/internal/config"
	"github.com/modu-ai/gph/internal/defs"
	"github.com/modu-ai/gph/pkg/models"
)

// InitOptions configures project initialization.
type InitOptions struct {
	Path       string            // Project directory; created when missing.
	Engine     models.EngineType // Explicit engine type; empty means auto-detect.
	Force      bool              // Overwrite an existing project config.
	SkipDetect bool              // Leave an empty Engine unset instead of detecting.
}

// InitResult summarizes the outcome of project initialization.
type InitResult struct {
	ProjectDir   string            // Cleaned project directory.
	ConfigPath   string            // Written .gph/config.toml.
	EngineType   models.EngineType // Recorded engine type, possibly empty.
	AutoDetected bool              // EngineType came from detection.
	Candidates   []models.EngineType
	CreatedDirs  []string // Directories created, relative to ProjectDir.
	CreatedFiles []string // Files written, relative to ProjectDir.
	BackupPath   string   // Non-empty if --force replaced an existing config.
}

// gitignoreContent keeps package outputs out of version control.
const gitignoreContent = defs.PackagesSubdir + "/\n"

// InitProject scaffolds a gph project at opts.Path: the directory itself,
// .gph/, .gph/packages/, .gph/config.toml and .gph/.gitignore. An
// existing project is left untouched unless opts.Force is set.
func (m *Manager) InitProject(ctx context.Context, opts InitOptions) (*InitResult, error) {
	if opts.Path == "" {
		opts.Path = "."
	}
	dir := filepath.Clean(opts.Path)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Engine != "" && !opts.Engine.IsValid() {
		return nil, &UnsupportedEngineError{Type: opts.Engine}
	}

	if exists, err := afero.Exists(m.fs, dir); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidRoot, dir, err)
	} else if exists {
		if isDir, _ := afero.IsDir(m.fs, dir); !isDir {
			return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, dir)
		}
	}

	result := &InitResult{
		ProjectDir: dir,
		ConfigPath: config.ProjectConfigPath(dir),
		EngineType: opts.Engine,
	}

	configExists, err := afero.Exists(m.fs, result.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", result.ConfigPath, err)
	}
	if configExists && !opts.Force {
		return nil, fmt.Errorf("%w: %s", ErrProjectExists, result.ConfigPath)
	}

	m.logger.Info("initializing gph project", "dir", dir, "engine", opts.Engine, "force", opts.Force)

	if result.EngineType == "" && !opts.SkipDetect {
		candidates, err := m.DetectEngines(ctx, dir)
		if err != nil {
			return nil, err
		}
		result.Candidates = candidates
		if len(candidates) == 1 {
			result.EngineType = candidates[0]
			result.AutoDetected = true
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := m.createDirs(dir, result); err != nil {
		return nil, fmt.Errorf("create %s structure: %w", defs.GphDir, err)
	}

	if configExists {
		backup, err := m.backupConfig(result.ConfigPath)
		if err != nil {
			return nil, err
		}
		result.BackupPath = backup
	}

	var cfg *config.ProjectConfig
	if result.EngineType != "" {
		cfg = config.NewDefaultProjectConfig(result.EngineType)
	} else {
		cfg = &config.ProjectConfig{}
	}
	if err := cfg.Save(m.fs, dir); err != nil {
		return nil, fmt.Errorf("write project config: %w", err)
	}
	result.CreatedFiles = append(result.CreatedFiles, filepath.Join(defs.GphDir, defs.ConfigTOML))

	ignorePath := filepath.Join(dir, defs.GphDir, defs.GitignoreFile)
	if ok, _ := afero.Exists(m.fs, ignorePath); !ok {
		if err := afero.WriteFile(m.fs, ignorePath, []byte(gitignoreContent), defs.FilePerm); err != nil {
			return nil, fmt.Errorf("write %s: %w", ignorePath, err)
		}
		result.CreatedFiles = append(result.CreatedFiles, filepath.Join(defs.GphDir, defs.GitignoreFile))
	}

	m.logger.Info("project initialized",
		"dir", dir,
		"engine", result.EngineType,
		"autoDetected", result.AutoDetected,
		"files", len(result.CreatedFiles),
	)
	return result, nil
}

// createDirs creates the project directory and the .gph/ structure,
// recording the ones that did not exist yet.
func (m *Manager) createDirs(root string, result *InitResult) error {
	for _, rel := range []string{".", defs.GphDir, filepath.Join(defs.GphDir, defs.PackagesSubdir)} {
		path := filepath.Join(root, rel)
		if ok, _ := afero.DirExists(m.fs, path); ok {
			continue
		}
		if err := m.fs.MkdirAll(path, defs.DirPerm); err != nil {
			return fmt.Errorf("mkdir %s: %w", path, err)
		}
		result.CreatedDirs = append(result.CreatedDirs, rel)
	}
	return nil
}

// backupConfig copies an existing config next to itself before --force
// overwrites it.
func (m *Manager) backupConfig(path string) (string, error) {
	data, err := afero.ReadFile(m.fs, path)
	if err != nil {
		return "", fmt.Errorf("read existing config: %w", err)
	}
	backup := path + ".bak"
	if err := afero.WriteFile(m.fs, backup, data, defs.FilePerm); err != nil {
		return "", fmt.Errorf("backup existing config: %w", err)
	}
	m.logger.Info("backed up existing project config", "path", backup)
	return backup, nil
}

// DetectEngines reports, in registry order, every engine type that
// recognises at least one project under dir. A missing dir yields none.
func (m *Manager) DetectEngines(ctx context.Context, dir string) ([]models.EngineType, error) {
	if ok, _ := afero.DirExists(m.fs, dir); !ok {
		return nil, nil
	}

	var found []models.EngineType
	for _, t := range models.EngineTypes() {
		eng, ok := m.GetEngine(t)
		if !ok {
			continue
		}
		projects, err := eng.DetectProjects(ctx, dir)
		if err != nil {
			return nil, fmt.Errorf("detect %s projects: %w", t, err)
		}
		if len(projects) > 0 {
			m.logger.Debug("engine recognised directory", "engine", t, "projects", len(projects))
			found = append(found, t)
		}
	}
	return found, nil
}
