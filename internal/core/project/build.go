package project

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/modu-ai/gph/internal/config"
	"github.com/modu-ai/gph/internal/defs"
	"github.com/modu-ai/gph/internal/engine"
	"github.com/modu-ai/gph/pkg/models"
)

// BuildOptions configures a build.
type BuildOptions struct {
	Path    string // Project directory holding .gph/config.toml.
	Project string // Selects a detected project by name; empty picks the first.
}

// BuildResult summarizes a build.
type BuildResult struct {
	Engine    models.EngineType
	Project   *models.ProjectInfo  // The project that was built; nil when NoProject.
	Detected  []models.ProjectInfo // Everything detection found, in traversal order.
	NoProject bool                 // Detection found nothing; no tool was run.
}

// PackageOptions configures packaging.
type PackageOptions struct {
	Path    string // Project directory holding .gph/config.toml.
	Output  string // Output directory; defaults to .gph/packages/<timestamp>.
	Project string // Selects a detected project by name; empty picks the first.
}

// PackageResult summarizes packaging.
type PackageResult struct {
	Engine     models.EngineType
	Project    *models.ProjectInfo
	Detected   []models.ProjectInfo
	OutputPath string // Directory the package was written to.
	NoProject  bool
}

// Build loads the project config at opts.Path, resolves its engine,
// detects projects and builds the selected one.
func (m *Manager) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	dir := cleanPath(opts.Path)
	pc, eng, err := m.load(dir)
	if err != nil {
		return nil, err
	}

	result := &BuildResult{Engine: eng.Type()}
	info, detected, err := m.selectProject(ctx, eng, dir, opts.Project)
	if err != nil {
		return nil, err
	}
	result.Detected = detected
	if info == nil {
		m.logger.Warn("no project found", "engine", eng.Type(), "dir", dir)
		result.NoProject = true
		return result, nil
	}
	result.Project = info

	m.progress("Building " + info.Name)
	if err := eng.BuildProject(ctx, *info, pc); err != nil {
		return nil, err
	}
	m.logger.Info("build finished", "engine", eng.Type(), "project", info.Name)
	return result, nil
}

// Package loads and resolves like Build, creates the output directory,
// then builds the selected project once and packages it once.
func (m *Manager) Package(ctx context.Context, opts PackageOptions) (*PackageResult, error) {
	dir := cleanPath(opts.Path)
	pc, eng, err := m.load(dir)
	if err != nil {
		return nil, err
	}

	output := opts.Output
	if output == "" {
		output = filepath.Join(dir, defs.GphDir, defs.PackagesSubdir, m.now().Format(defs.PackageTimestampLayout))
	}
	output = filepath.Clean(output)
	if err := m.fs.MkdirAll(output, defs.DirPerm); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", output, err)
	}

	result := &PackageResult{Engine: eng.Type(), OutputPath: output}
	info, detected, err := m.selectProject(ctx, eng, dir, opts.Project)
	if err != nil {
		return nil, err
	}
	result.Detected = detected
	if info == nil {
		m.logger.Warn("no project found", "engine", eng.Type(), "dir", dir)
		result.NoProject = true
		return result, nil
	}
	result.Project = info

	m.progress("Building " + info.Name)
	if err := eng.BuildProject(ctx, *info, pc); err != nil {
		return nil, err
	}
	m.progress("Packaging " + info.Name)
	if err := eng.PackageProject(ctx, *info, pc, output); err != nil {
		return nil, err
	}
	m.logger.Info("package finished", "engine", eng.Type(), "project", info.Name, "output", output)
	return result, nil
}

// load reads the project config and resolves its engine.
func (m *Manager) load(dir string) (*config.ProjectConfig, engine.Engine, error) {
	pc, err := config.LoadProject(m.fs, dir)
	if err != nil {
		return nil, nil, err
	}
	eng, err := m.ResolveEngine(pc)
	if err != nil {
		return nil, nil, err
	}
	return pc, eng, nil
}

// selectProject detects projects under dir and picks one. It returns a
// nil project with no error when detection is empty.
func (m *Manager) selectProject(ctx context.Context, eng engine.Engine, dir, name string) (*models.ProjectInfo, []models.ProjectInfo, error) {
	detected, err := eng.DetectProjects(ctx, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("detect %s projects: %w", eng.Type(), err)
	}
	if len(detected) == 0 {
		return nil, nil, nil
	}

	if name == "" {
		if len(detected) > 1 {
			m.logger.Warn("multiple projects detected, using the first",
				"selected", detected[0].Name,
				"others", strings.Join(projectNames(detected[1:]), ", "),
			)
		}
		info := detected[0]
		return &info, detected, nil
	}

	for i := range detected {
		if strings.EqualFold(detected[i].Name, name) {
			info := detected[i]
			return &info, detected, nil
		}
	}
	return nil, detected, fmt.Errorf("%w: %q (detected: %s)", ErrProjectNotFound, name, strings.Join(projectNames(detected), ", "))
}

func projectNames(infos []models.ProjectInfo) []string {
	names := make([]string, len(infos))
	for i, p := range infos {
		names[i] = p.Name
	}
	return names
}

func cleanPath(p string) string {
	if p == "" {
		return "."
	}
	return filepath.Clean(p)
}
