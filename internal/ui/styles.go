package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/marginnotes/margin/internal/notes"
)

// Color palette
// - Default (white/black): primary text
// - Accent (soft purple #A78BFA, configurable): names, tags, paths
// - Muted (gray): secondary info, counts, hints
// - Highlight colors map to their reader equivalents for swatches

var (
	// Accent style for document names, tags, and paths.
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))

	// Muted style for secondary info and hints.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis.
	Bold = lipgloss.NewStyle().Bold(true)
)

var highlightStyles = map[notes.Color]lipgloss.Style{
	notes.ColorYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B")),
	notes.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("#98C379")),
	notes.ColorBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("#61AFEF")),
	notes.ColorPink:   lipgloss.NewStyle().Foreground(lipgloss.Color("#E06C75")),
	notes.ColorOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("#D19A66")),
}

var accentColor string

// ConfigureTheme applies the configured accent color to the shared styles.
// An empty value keeps the defaults.
func ConfigureTheme(accent string) {
	if accent == "" {
		return
	}
	accentColor = accent
	Accent = Accent.Foreground(lipgloss.Color(accent))
}

// AccentColor returns the configured accent color, if any.
func AccentColor() (string, bool) {
	return accentColor, accentColor != ""
}

// HighlightStyle returns the terminal style for a highlight color.
func HighlightStyle(c notes.Color) lipgloss.Style {
	if s, ok := highlightStyles[c]; ok {
		return s
	}
	return highlightStyles[notes.ColorYellow]
}
