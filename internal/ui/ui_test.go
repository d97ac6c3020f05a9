package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/modu-ai/gph/pkg/models"
)

func TestHeadlessManager_Force(t *testing.T) {
	t.Parallel()

	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("ForceHeadless(true) not honoured")
	}
	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("ForceHeadless(false) not honoured")
	}
	hm.ClearForce()
	if hm.forced != nil {
		t.Error("ClearForce left an override")
	}
}

func TestIsTerminal_NonFileWriter(t *testing.T) {
	t.Parallel()

	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer reported as a terminal")
	}
}

func TestNewTheme_NoColorRendersPlain(t *testing.T) {
	t.Parallel()

	theme := NewTheme(true)
	for _, s := range []string{theme.SymSuccess(), theme.Primary.Render("gph")} {
		if strings.Contains(s, "\x1b[") {
			t.Errorf("no-colour theme emitted escape codes: %q", s)
		}
	}
	if theme.SymSuccess() != "✓" {
		t.Errorf("SymSuccess() = %q", theme.SymSuccess())
	}
	if theme.huhTheme() == nil || NewTheme(false).huhTheme() == nil {
		t.Error("huhTheme() returned nil")
	}
}

func TestEngineOptions_DetectedFirst(t *testing.T) {
	t.Parallel()

	opts := EngineOptions([]models.EngineType{models.EngineGodot})
	if len(opts) != len(models.EngineTypes())+1 {
		t.Fatalf("got %d options, want %d", len(opts), len(models.EngineTypes())+1)
	}
	if opts[0].Value != models.EngineGodot || !strings.Contains(opts[0].Key, "(detected)") {
		t.Errorf("first option = %+v, want detected Godot", opts[0])
	}
	if last := opts[len(opts)-1]; last.Value != "" {
		t.Errorf("last option = %+v, want the unset choice", last)
	}

	seen := map[models.EngineType]int{}
	for _, o := range opts {
		seen[o.Value]++
	}
	for _, typ := range models.EngineTypes() {
		if seen[typ] != 1 {
			t.Errorf("%s listed %d times", typ, seen[typ])
		}
	}
}

func TestPickEngine_Headless(t *testing.T) {
	t.Parallel()

	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	if _, err := PickEngine(NewTheme(true), hm, nil); !errors.Is(err, ErrHeadless) {
		t.Errorf("PickEngine() error = %v, want ErrHeadless", err)
	}
}

func TestRenderMarkdown_NoColor(t *testing.T) {
	t.Parallel()

	md := "# Engines\n\n| Engine | Path |\n|---|---|\n| Unreal | /opt/UE |\n"
	if got := RenderMarkdown(NewTheme(true), md); got != md {
		t.Errorf("RenderMarkdown without colour changed the input:\n%s", got)
	}
	if got := RenderMarkdown(NewTheme(false), md); !strings.Contains(got, "/opt/UE") {
		t.Errorf("rendered markdown lost content:\n%s", got)
	}
}
