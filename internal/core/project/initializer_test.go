package project

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/modu-ai/gph/internal/config"
	"github.com/modu-ai/gph/internal/defs"
	"github.com/modu-ai/gph/pkg/models"
)

func TestInitProject_CreatesStructure(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	m := NewManager(config.GlobalConfig{}, WithFs(fsys))

	result, err := m.InitProject(context.Background(), InitOptions{Path: "/work/game", Engine: models.EngineGodot})
	if err != nil {
		t.Fatalf("InitProject() error = %v", err)
	}

	for _, dir := range []string{"/work/game", "/work/game/.gph", "/work/game/.gph/packages"} {
		if ok, _ := afero.DirExists(fsys, dir); !ok {
			t.Errorf("directory %s not created", dir)
		}
	}

	wantDirs := []string{".", defs.GphDir, filepath.Join(defs.GphDir, defs.PackagesSubdir)}
	if diff := cmp.Diff(wantDirs, result.CreatedDirs); diff != "" {
		t.Errorf("CreatedDirs mismatch (-want +got):\n%s", diff)
	}

	ignore, err := afero.ReadFile(fsys, "/work/game/.gph/.gitignore")
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	if string(ignore) != "packages/\n" {
		t.Errorf(".gitignore = %q", ignore)
	}

	pc, err := config.LoadProject(fsys, "/work/game")
	if err != nil {
		t.Fatalf("LoadProject after init: %v", err)
	}
	if diff := cmp.Diff(config.NewDefaultProjectConfig(models.EngineGodot), pc); diff != "" {
		t.Errorf("project config mismatch (-want +got):\n%s", diff)
	}
	if result.AutoDetected {
		t.Error("explicit engine reported as auto-detected")
	}
}

func TestInitProject_ExistingProject(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	m := NewManager(config.GlobalConfig{}, WithFs(fsys))
	ctx := context.Background()

	if _, err := m.InitProject(ctx, InitOptions{Path: "/game", Engine: models.EngineUnreal}); err != nil {
		t.Fatalf("first InitProject() error = %v", err)
	}

	_, err := m.InitProject(ctx, InitOptions{Path: "/game", Engine: models.EngineGodot})
	if !errors.Is(err, ErrProjectExists) {
		t.Fatalf("second InitProject() error = %v, want ErrProjectExists", err)
	}
	pc, err := config.LoadProject(fsys, "/game")
	if err != nil {
		t.Fatal(err)
	}
	if pc.EngineType != models.EngineUnreal {
		t.Errorf("existing config modified: engine = %s", pc.EngineType)
	}

	result, err := m.InitProject(ctx, InitOptions{Path: "/game", Engine: models.EngineGodot, Force: true})
	if err != nil {
		t.Fatalf("forced InitProject() error = %v", err)
	}
	if result.BackupPath == "" {
		t.Error("forced init did not back up the previous config")
	} else if data, err := afero.ReadFile(fsys, result.BackupPath); err != nil || len(data) == 0 {
		t.Errorf("backup unreadable: %v", err)
	}
	pc, err = config.LoadProject(fsys, "/game")
	if err != nil {
		t.Fatal(err)
	}
	if pc.EngineType != models.EngineGodot {
		t.Errorf("forced init engine = %s, want Godot", pc.EngineType)
	}
}

func TestInitProject_AutoDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		files    map[string]string
		want     models.EngineType
		detected bool
	}{
		{
			name:     "empty directory",
			files:    nil,
			want:     "",
			detected: false,
		},
		{
			name:     "single godot project",
			files:    map[string]string{"/game/project.godot": "config_version=5\n"},
			want:     models.EngineGodot,
			detected: true,
		},
		{
			name: "unreal and godot",
			files: map[string]string{
				"/game/A/A.uproject":    "{}",
				"/game/B/project.godot": "config_version=5\n",
			},
			want:     "",
			detected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fsys := afero.NewMemMapFs()
			if err := fsys.MkdirAll("/game", 0o755); err != nil {
				t.Fatal(err)
			}
			for path, content := range tt.files {
				mkfile(t, fsys, path, content)
			}

			m := NewManager(config.GlobalConfig{}, WithFs(fsys))
			result, err := m.InitProject(context.Background(), InitOptions{Path: "/game"})
			if err != nil {
				t.Fatalf("InitProject() error = %v", err)
			}
			if result.EngineType != tt.want || result.AutoDetected != tt.detected {
				t.Errorf("engine = %q (auto %v), want %q (auto %v)", result.EngineType, result.AutoDetected, tt.want, tt.detected)
			}
		})
	}
}

func TestInitProject_UnsetEngineThenBuild(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	m := NewManager(unrealGlobal(), WithFs(fsys))
	ctx := context.Background()

	if _, err := m.InitProject(ctx, InitOptions{Path: "/empty"}); err != nil {
		t.Fatalf("InitProject() error = %v", err)
	}
	_, err := m.Build(ctx, BuildOptions{Path: "/empty"})
	if !errors.Is(err, ErrEngineTypeNotSpecified) {
		t.Errorf("Build after bare init = %v, want ErrEngineTypeNotSpecified", err)
	}
}

func TestInitProject_Errors(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	mkfile(t, fsys, "/file", "not a directory")
	m := NewManager(config.GlobalConfig{}, WithFs(fsys))

	if _, err := m.InitProject(context.Background(), InitOptions{Path: "/file"}); !errors.Is(err, ErrInvalidRoot) {
		t.Errorf("init on a file error = %v, want ErrInvalidRoot", err)
	}
	if _, err := m.InitProject(context.Background(), InitOptions{Path: "/x", Engine: "Frostbite"}); !errors.Is(err, ErrUnsupportedEngine) {
		t.Errorf("init with unknown engine error = %v, want ErrUnsupportedEngine", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.InitProject(ctx, InitOptions{Path: "/y"}); !errors.Is(err, context.Canceled) {
		t.Errorf("init with cancelled context error = %v", err)
	}
	if ok, _ := afero.Exists(fsys, "/y"); ok {
		t.Error("cancelled init created the directory")
	}
}

func TestInitProject_OsFs(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "game")
	m := NewManager(config.GlobalConfig{})

	if _, err := m.InitProject(context.Background(), InitOptions{Path: root, Engine: models.EngineUnity}); err != nil {
		t.Fatalf("InitProject() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, ".gph", "config.toml")); err != nil {
		t.Errorf("config not written: %v", err)
	}
}

func TestFindProjectRoot(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll("/work/game/.gph", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := fsys.MkdirAll("/work/game/Content/Maps", 0o755); err != nil {
		t.Fatal(err)
	}

	root, err := FindProjectRoot(fsys, "/work/game/Content/Maps")
	if err != nil {
		t.Fatalf("FindProjectRoot() error = %v", err)
	}
	if root != filepath.Clean("/work/game") {
		t.Errorf("FindProjectRoot() = %q", root)
	}

	if _, err := FindProjectRoot(fsys, "/work"); err == nil {
		t.Error("FindProjectRoot outside a project succeeded")
	}

	dir, err := FindProjectRootOrCurrent(fsys, "/work")
	if err != nil || dir != filepath.Clean("/work") {
		t.Errorf("FindProjectRootOrCurrent() = %q, %v", dir, err)
	}
}
