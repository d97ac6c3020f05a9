package engine

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/modu-ai/gph/internal/config"
	"github.com/modu-ai/gph/pkg/models"
)

// ErrNoExportPreset indicates a Godot package request without package.preset.
var ErrNoExportPreset = errors.New("package.preset must name a Godot export preset")

// godotEngine drives the Godot editor binary in headless mode.
type godotEngine struct {
	backend
}

// NewGodot creates the Godot backend.
func NewGodot(opts Options) Engine {
	return &godotEngine{backend: newBackend(models.EngineGodot, opts)}
}

// DetectProjects finds project.godot files under root.
func (e *godotEngine) DetectProjects(ctx context.Context, root string) ([]models.ProjectInfo, error) {
	paths, err := e.findMarkers(ctx, root, "**/project.godot")
	if err != nil {
		return nil, err
	}

	projects := make([]models.ProjectInfo, 0, len(paths))
	for _, p := range paths {
		dir := filepath.Dir(p)
		info := models.ProjectInfo{
			Name:       filepath.Base(dir),
			Dir:        dir,
			Descriptor: p,
			Engine:     models.EngineGodot,
		}
		if data, readErr := afero.ReadFile(e.opts.Fs, p); readErr == nil {
			values, parseErr := parseGodotProject(data)
			if parseErr != nil {
				e.opts.Logger.Debug("partially read project.godot", "path", p, "error", parseErr)
			}
			applyGodotProject(&info, values)
		}
		projects = append(projects, info)
	}
	return projects, nil
}

// BuildProject imports resources and exits, which validates the project
// and refreshes the import cache the exporter needs.
func (e *godotEngine) BuildProject(ctx context.Context, info models.ProjectInfo, cfg *config.ProjectConfig) error {
	if err := e.requireTool(); err != nil {
		return err
	}

	args := append([]string{"--headless", "--path", info.Dir, "--import"}, cfg.Build.ExtraArgs...)
	if out, err := e.run(ctx, info.Dir, e.opts.ToolPath, args); err != nil {
		return e.buildError(info, out, err)
	}
	return nil
}

// PackageProject exports the configured preset into outputPath.
func (e *godotEngine) PackageProject(ctx context.Context, info models.ProjectInfo, cfg *config.ProjectConfig, outputPath string) error {
	if err := e.requireTool(); err != nil {
		return err
	}
	if cfg.Package.Preset == "" {
		return e.packageError(info, "", ErrNoExportPreset)
	}
	if err := e.requireOutputDir(info, outputPath); err != nil {
		return err
	}

	mode := "--export-release"
	if cfg.Build.Configuration == "debug" {
		mode = "--export-debug"
	}
	args := []string{
		"--headless", "--path", info.Dir,
		mode, cfg.Package.Preset,
		filepath.Join(outputPath, artifactName(info, cfg)),
	}
	args = append(args, cfg.Package.ExtraArgs...)

	if out, err := e.run(ctx, info.Dir, e.opts.ToolPath, args); err != nil {
		return e.packageError(info, out, err)
	}
	return nil
}

// maxGodotLine bounds a single project.godot line; embedded resources
// such as icons can exceed bufio's default.
const maxGodotLine = 1 << 20

// parseGodotProject reads the section/key pairs of a project.godot file
// into "section/key" entries ("application/config/name"). Keys before the
// first section have no prefix. On a scan error the values read so far
// are returned with the error.
func parseGodotProject(data []byte) (map[string]string, error) {
	values := make(map[string]string)
	section := ""

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), maxGodotLine)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.Trim(line, "[]")
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if section != "" {
			key = section + "/" + key
		}
		values[key] = strings.TrimSpace(value)
	}
	return values, sc.Err()
}

// applyGodotProject copies the project name, engine version and config
// version from parsed project.godot values.
func applyGodotProject(info *models.ProjectInfo, values map[string]string) {
	if name, err := strconv.Unquote(values["application/config/name"]); err == nil && name != "" {
		info.Name = name
	}
	// config/features=PackedStringArray("4.2", "Forward Plus")
	if features := values["application/config/features"]; features != "" {
		if _, rest, ok := strings.Cut(features, `"`); ok {
			if version, _, ok := strings.Cut(rest, `"`); ok {
				info.EngineVersion = version
			}
		}
	}
	if v := values["config_version"]; v != "" {
		info.Metadata = map[string]string{"config_version": v}
	}
}
