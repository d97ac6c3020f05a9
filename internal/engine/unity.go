package engine

import (
	"cmp"
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/modu-ai/gph/internal/config"
	"github.com/modu-ai/gph/pkg/models"
)

// unityPlayerFlags maps a Unity build target to its built-in player build
// flag and the executable suffix the player expects.
var unityPlayerFlags = map[string]struct{ flag, suffix string }{
	"StandaloneWindows64": {"-buildWindows64Player", ".exe"},
	"StandaloneWindows":   {"-buildWindowsPlayer", ".exe"},
	"StandaloneLinux64":   {"-buildLinux64Player", ""},
	"StandaloneOSX":       {"-buildOSXUniversalPlayer", ".app"},
}

// unityEngine drives the Unity Editor in batch mode. The registered tool
// path is the editor executable.
type unityEngine struct {
	backend
}

// NewUnity creates the Unity backend.
func NewUnity(opts Options) Engine {
	return &unityEngine{backend: newBackend(models.EngineUnity, opts)}
}

// projectVersion mirrors ProjectSettings/ProjectVersion.txt.
type projectVersion struct {
	EditorVersion string `yaml:"m_EditorVersion"`
}

// DetectProjects finds directories holding ProjectSettings/ProjectVersion.txt
// next to an Assets directory.
func (e *unityEngine) DetectProjects(ctx context.Context, root string) ([]models.ProjectInfo, error) {
	paths, err := e.findMarkers(ctx, root, "**/ProjectSettings/ProjectVersion.txt")
	if err != nil {
		return nil, err
	}

	projects := make([]models.ProjectInfo, 0, len(paths))
	for _, p := range paths {
		dir := filepath.Dir(filepath.Dir(p))
		if ok, _ := afero.DirExists(e.opts.Fs, filepath.Join(dir, "Assets")); !ok {
			e.opts.Logger.Debug("skipping ProjectVersion.txt without Assets", "path", p)
			continue
		}

		info := models.ProjectInfo{
			Name:       filepath.Base(dir),
			Dir:        dir,
			Descriptor: p,
			Engine:     models.EngineUnity,
		}
		if data, readErr := afero.ReadFile(e.opts.Fs, p); readErr == nil {
			var pv projectVersion
			if yaml.Unmarshal(data, &pv) == nil {
				info.EngineVersion = pv.EditorVersion
			}
		}
		projects = append(projects, info)
	}
	return projects, nil
}

// BuildProject opens the project in batch mode, which imports assets and
// compiles scripts, then quits.
func (e *unityEngine) BuildProject(ctx context.Context, info models.ProjectInfo, cfg *config.ProjectConfig) error {
	if err := e.requireTool(); err != nil {
		return err
	}

	args := append(e.batchArgs(info, cfg), cfg.Build.ExtraArgs...)
	if out, err := e.run(ctx, info.Dir, e.opts.ToolPath, args); err != nil {
		return e.buildError(info, out, err)
	}
	return nil
}

// PackageProject builds a player into outputPath, either through the
// project's own execute_method (which receives -gphOutput <dir>) or the
// editor's built-in standalone player flags.
func (e *unityEngine) PackageProject(ctx context.Context, info models.ProjectInfo, cfg *config.ProjectConfig, outputPath string) error {
	if err := e.requireTool(); err != nil {
		return err
	}
	if err := e.requireOutputDir(info, outputPath); err != nil {
		return err
	}

	args := e.batchArgs(info, cfg)
	if cfg.Package.ExecuteMethod != "" {
		args = append(args, "-executeMethod", cfg.Package.ExecuteMethod, "-gphOutput", outputPath)
	} else {
		target := e.buildTarget(cfg)
		player, ok := unityPlayerFlags[target]
		if !ok {
			return e.packageError(info, "", fmt.Errorf("build target %s requires package.execute_method", target))
		}
		args = append(args, player.flag, filepath.Join(outputPath, artifactName(info, cfg)+player.suffix))
	}
	args = append(args, cfg.Package.ExtraArgs...)

	if out, err := e.run(ctx, info.Dir, e.opts.ToolPath, args); err != nil {
		return e.packageError(info, out, err)
	}
	return nil
}

// batchArgs returns the arguments shared by every batch-mode invocation.
func (e *unityEngine) batchArgs(info models.ProjectInfo, cfg *config.ProjectConfig) []string {
	return []string{
		"-batchmode", "-quit", "-nographics",
		"-projectPath", info.Dir,
		"-buildTarget", e.buildTarget(cfg),
		"-logFile", "-",
	}
}

func (e *unityEngine) buildTarget(cfg *config.ProjectConfig) string {
	return cmp.Or(cfg.Build.Platform, e.defaults().Platform)
}
