// Package ui holds gph's terminal presentation: colour styles, TTY
// detection, a build spinner, the interactive engine picker and markdown
// rendering of configuration summaries.
package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Brand colours (dark variants).
const (
	ColorPrimary = "#DA7756"
	ColorSuccess = "#10B981"
	ColorWarning = "#F59E0B"
	ColorError   = "#EF4444"
	ColorMuted   = "#6B7280"
	ColorText    = "#E5E7EB"
	ColorBorder  = "#4B5563"
)

// Theme carries the output styles for one invocation.
type Theme struct {
	NoColor bool

	Primary lipgloss.Style
	Success lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// NewTheme returns the gph theme. With noColor every style renders text
// unchanged.
func NewTheme(noColor bool) *Theme {
	if noColor {
		plain := lipgloss.NewStyle()
		return &Theme{NoColor: true, Primary: plain, Success: plain, Warn: plain, Error: plain, Muted: plain}
	}
	return &Theme{
		Primary: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: ColorPrimary}).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess}),
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: ColorWarning}),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted}),
	}
}

// SymSuccess returns the check mark used for completed steps.
func (t *Theme) SymSuccess() string { return t.Success.Render("✓") }

// SymError returns the cross used for failed steps.
func (t *Theme) SymError() string { return t.Error.Render("✗") }

// SymWarning returns the marker used for warnings.
func (t *Theme) SymWarning() string { return t.Warn.Render("!") }

// huhTheme maps the brand colours onto a huh form theme.
func (t *Theme) huhTheme() *huh.Theme {
	if t.NoColor {
		return huh.ThemeBase()
	}
	h := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: ColorPrimary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}

	h.Focused.Base = h.Focused.Base.BorderForeground(border)
	h.Focused.Title = h.Focused.Title.Foreground(primary).Bold(true)
	h.Focused.Description = h.Focused.Description.Foreground(muted)
	h.Focused.SelectSelector = h.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	h.Focused.Option = h.Focused.Option.Foreground(text)
	h.Focused.SelectedOption = h.Focused.SelectedOption.Foreground(green)

	h.Blurred = h.Focused
	h.Blurred.Base = h.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return h
}
