package engine

import (
	"cmp"
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"

	"github.com/modu-ai/gph/internal/config"
	"github.com/modu-ai/gph/pkg/models"
)

// unrealEngine drives Unreal Engine through the RunUAT automation tool.
// The registered tool path is either Engine/Build/BatchFiles or the
// RunUAT script itself.
type unrealEngine struct {
	backend
}

// NewUnreal creates the Unreal Engine backend.
func NewUnreal(opts Options) Engine {
	return &unrealEngine{backend: newBackend(models.EngineUnreal, opts)}
}

// DetectProjects finds *.uproject descriptors under root.
func (e *unrealEngine) DetectProjects(ctx context.Context, root string) ([]models.ProjectInfo, error) {
	paths, err := e.findMarkers(ctx, root, "**/*.uproject")
	if err != nil {
		return nil, err
	}

	projects := make([]models.ProjectInfo, 0, len(paths))
	for _, p := range paths {
		info := models.ProjectInfo{
			Name:       strings.TrimSuffix(filepath.Base(p), filepath.Ext(p)),
			Dir:        filepath.Dir(p),
			Descriptor: p,
			Engine:     models.EngineUnreal,
		}
		e.readDescriptor(&info)
		projects = append(projects, info)
	}
	return projects, nil
}

// readDescriptor copies the engine association and primary module from
// the .uproject JSON. Unreadable descriptors are still reported.
func (e *unrealEngine) readDescriptor(info *models.ProjectInfo) {
	data, err := afero.ReadFile(e.opts.Fs, info.Descriptor)
	if err != nil || !gjson.ValidBytes(data) {
		e.opts.Logger.Debug("unreadable uproject descriptor", "path", info.Descriptor, "error", err)
		return
	}
	info.EngineVersion = gjson.GetBytes(data, "EngineAssociation").String()
	if module := gjson.GetBytes(data, "Modules.0.Name").String(); module != "" {
		info.Metadata = map[string]string{"module": module}
	}
}

// BuildProject compiles the project for the configured platform.
func (e *unrealEngine) BuildProject(ctx context.Context, info models.ProjectInfo, cfg *config.ProjectConfig) error {
	if err := e.requireTool(); err != nil {
		return err
	}

	args := append(e.commonArgs(info, cfg), "-build", "-skipcook")
	args = append(args, cfg.Build.ExtraArgs...)

	if out, err := e.run(ctx, info.Dir, e.uatPath(), args); err != nil {
		return e.buildError(info, out, err)
	}
	return nil
}

// PackageProject cooks, stages and archives a built project into outputPath.
func (e *unrealEngine) PackageProject(ctx context.Context, info models.ProjectInfo, cfg *config.ProjectConfig, outputPath string) error {
	if err := e.requireTool(); err != nil {
		return err
	}
	if err := e.requireOutputDir(info, outputPath); err != nil {
		return err
	}

	args := append(e.commonArgs(info, cfg),
		"-skipbuild", "-cook", "-stage", "-pak", "-package",
		"-archive", "-archivedirectory="+outputPath,
	)
	args = append(args, cfg.Package.ExtraArgs...)

	if out, err := e.run(ctx, info.Dir, e.uatPath(), args); err != nil {
		return e.packageError(info, out, err)
	}
	return nil
}

// commonArgs returns the BuildCookRun arguments shared by build and package.
func (e *unrealEngine) commonArgs(info models.ProjectInfo, cfg *config.ProjectConfig) []string {
	defaults := e.defaults()
	platform := cmp.Or(cfg.Build.Platform, defaults.Platform)
	configuration := cmp.Or(cfg.Build.Configuration, defaults.Configuration)

	return []string{
		"BuildCookRun",
		"-project=" + info.Descriptor,
		"-noP4",
		"-utf8output",
		"-platform=" + platform,
		"-clientconfig=" + configuration,
	}
}

// uatPath resolves the RunUAT script from the registered tool path.
func (e *unrealEngine) uatPath() string {
	p := e.opts.ToolPath
	if st, err := e.opts.Fs.Stat(p); err == nil && st.IsDir() {
		script := "RunUAT.sh"
		if e.opts.GOOS == "windows" {
			script = "RunUAT.bat"
		}
		return filepath.Join(p, script)
	}
	return p
}
