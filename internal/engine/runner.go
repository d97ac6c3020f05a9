package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
)

// maxTailBytes bounds the tool output kept for error reports.
const maxTailBytes = 4096

// Command describes one external engine tool invocation.
type Command struct {
	Name   string    // Executable path.
	Args   []string  // Arguments, not including Name.
	Dir    string    // Working directory.
	Output io.Writer // Receives combined stdout and stderr; may be nil.
}

// String renders the command line for logs.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// ExitError reports a tool that ran and exited with a non-zero status.
type ExitError struct {
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Runner invokes external tools. The only contract is invoke, wait and
// observe the exit status; no timeout is applied.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner runs commands with os/exec. Cancelling ctx kills the child.
type ExecRunner struct{}

// Run executes cmd and blocks until it exits.
func (ExecRunner) Run(ctx context.Context, cmd Command) error {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	if cmd.Output != nil {
		c.Stdout = cmd.Output
		c.Stderr = cmd.Output
	}

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			return &ExitError{Code: exitErr.ExitCode()}
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", cmd.Name, ctxErr)
		}
		return fmt.Errorf("run %s: %w", cmd.Name, err)
	}
	return nil
}

// exitCode extracts the tool exit status from err, or -1.
func exitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return -1
}

// tailBuffer keeps the last maxTailBytes written to it.
type tailBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write implements io.Writer.
func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(p)
	if n >= maxTailBytes {
		t.buf.Reset()
		t.buf.Write(p[n-maxTailBytes:])
		return n, nil
	}
	if over := t.buf.Len() + n - maxTailBytes; over > 0 {
		t.buf.Next(over)
	}
	t.buf.Write(p)
	return n, nil
}

// String returns the retained output with surrounding whitespace trimmed.
func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.TrimSpace(t.buf.String())
}
