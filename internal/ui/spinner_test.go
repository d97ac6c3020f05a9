package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// newTestProgram creates a tea.Program configured for test environments without a TTY.
func newTestProgram(m tea.Model) *tea.Program {
	return tea.NewProgram(m,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)
}

// startTestProgram starts a tea.Program in a goroutine and returns a done channel.
func startTestProgram(p *tea.Program) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.Run()
	}()
	// Allow the program goroutine to initialize before sending messages.
	time.Sleep(10 * time.Millisecond)
	return done
}

// waitForProgram waits for the program to exit, failing the test if it exceeds timeout.
func waitForProgram(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Error("tea.Program did not exit within 2 second timeout")
	}
}

func TestInteractiveSpinner_SetTitleThenStop(t *testing.T) {
	p := newTestProgram(newSpinnerModel(NewTheme(false), "Detecting projects"))
	s := &interactiveSpinner{program: p}
	done := startTestProgram(p)

	s.SetTitle("Building Shooter")
	s.SetTitle("Packaging Shooter")
	s.Stop()

	waitForProgram(t, done)
}

func TestInteractiveSpinner_Stop_Idempotent(t *testing.T) {
	p := newTestProgram(newSpinnerModel(NewTheme(false), "Building"))
	s := &interactiveSpinner{program: p}
	done := startTestProgram(p)

	s.Stop()
	s.Stop()

	waitForProgram(t, done)
}

func TestSpinnerModel_Update(t *testing.T) {
	t.Parallel()

	m := newSpinnerModel(NewTheme(false), "Building")

	updated, _ := m.Update(spinnerTitleMsg("Packaging"))
	got := updated.(spinnerModel)
	if got.title != "Packaging" {
		t.Errorf("title = %q, want Packaging", got.title)
	}
	if !strings.Contains(got.View(), "Packaging") {
		t.Errorf("View() = %q, want title", got.View())
	}

	updated, cmd := got.Update(spinnerStopMsg{})
	got = updated.(spinnerModel)
	if !got.done || cmd == nil {
		t.Errorf("stop message: done=%v cmd=%v", got.done, cmd)
	}
	if got.View() != "" {
		t.Errorf("View() after stop = %q, want empty", got.View())
	}
}

func TestSpinnerModel_Update_TickMsg(t *testing.T) {
	t.Parallel()

	m := newSpinnerModel(NewTheme(true), "Ticking")
	tickCmd := m.Init()
	if tickCmd == nil {
		t.Fatal("Init should return a non-nil tick command")
	}
	msg := tickCmd()
	if _, ok := msg.(spinner.TickMsg); !ok {
		t.Skip("unexpected message type from tick command")
	}
	updated, _ := m.Update(msg)
	if updated.(spinnerModel).done {
		t.Error("tick should not stop the spinner")
	}
}

func TestNewSpinner_HeadlessWritesLines(t *testing.T) {
	t.Parallel()

	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	var buf bytes.Buffer

	s := NewSpinner(NewTheme(false), hm, &buf, "Building Shooter")
	if _, ok := s.(*headlessSpinner); !ok {
		t.Fatalf("NewSpinner returned %T in headless mode", s)
	}
	s.SetTitle("Packaging Shooter")
	s.Stop()
	s.SetTitle("ignored after stop")

	want := "Building Shooter\nPackaging Shooter\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestNewSpinner_NonTerminalWriterIsHeadless(t *testing.T) {
	t.Parallel()

	hm := NewHeadlessManager()
	hm.ForceHeadless(false)
	var buf bytes.Buffer

	s := NewSpinner(NewTheme(false), hm, &buf, "Building")
	defer s.Stop()
	if _, ok := s.(*headlessSpinner); !ok {
		t.Errorf("NewSpinner on a buffer returned %T", s)
	}
}
