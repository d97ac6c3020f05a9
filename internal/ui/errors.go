package ui

import "errors"

var (
	// ErrCancelled is returned when the user aborts a prompt.
	ErrCancelled = errors.New("ui: cancelled by user")

	// ErrHeadless is returned when a prompt needs a terminal and none is attached.
	ErrHeadless = errors.New("ui: no terminal for interactive prompt")
)
