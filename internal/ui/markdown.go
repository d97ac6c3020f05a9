package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders md for the terminal. With colour disabled, or
// if the renderer fails, md is returned unchanged.
func RenderMarkdown(theme *Theme, md string) string {
	if theme.NoColor {
		return md
	}
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimLeft(out, "\n")
}
