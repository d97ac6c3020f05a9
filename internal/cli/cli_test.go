package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/modu-ai/gph/internal/config"
	"github.com/modu-ai/gph/internal/engine"
	"github.com/modu-ai/gph/internal/ui"
)

const testConfigPath = "/home/dev/.config/gph/config.toml"

// fakeRunner records engine tool invocations without spawning anything.
type fakeRunner struct {
	mu    sync.Mutex
	calls []engine.Command
	err   error
}

func (f *fakeRunner) Run(_ context.Context, cmd engine.Command) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, cmd)
	if cmd.Output != nil {
		_, _ = io.WriteString(cmd.Output, "LogInit: engine tool output\n")
	}
	return f.err
}

func (f *fakeRunner) Calls() []engine.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]engine.Command(nil), f.calls...)
}

// setupTestDeps installs in-memory dependencies for one test and restores
// the previous ones afterwards.
func setupTestDeps(t *testing.T) (*Dependencies, *fakeRunner) {
	t.Helper()

	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(true)
	runner := &fakeRunner{}
	d := &Dependencies{
		Fs:               afero.NewMemMapFs(),
		GlobalConfigPath: testConfigPath,
		Runner:           runner,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		Theme:            ui.NewTheme(true),
		Headless:         hm,
	}

	prev := GetDeps()
	SetDeps(d)
	t.Cleanup(func() { SetDeps(prev) })
	return d, runner
}

// executeCommand runs the root command with args and returns stdout and
// stderr. Flag values are reset afterwards since the command tree is global.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		resetFlags(rootCmd)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag in the tree to its default value.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// loadSavedGlobal reads the global config the commands wrote.
func loadSavedGlobal(t *testing.T, d *Dependencies) *config.GlobalConfig {
	t.Helper()
	return config.LoadGlobal(d.Fs, d.GlobalConfigPath)
}

func mkfile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
