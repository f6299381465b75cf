package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// DefaultTermWidth is used when the terminal width cannot be detected.
const DefaultTermWidth = 80

var codeTheme string

// ConfigureMarkdownCodeTheme sets the Glamour/Chroma theme used for code
// blocks in rendered markdown.
func ConfigureMarkdownCodeTheme(theme string) {
	codeTheme = theme
}

// RenderMarkdown renders markdown content for terminal display.
func RenderMarkdown(content string, width int) (string, error) {
	if width <= 0 {
		width = DefaultTermWidth
	}

	opts := []glamour.TermRendererOption{
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	}
	if codeTheme != "" {
		opts = append(opts, glamour.WithStylePath(codeTheme))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	rendered, err := r.Render(content)
	if err != nil {
		return "", err
	}

	// glamour adds trailing newlines; normalize to a single one.
	return strings.TrimRight(rendered, "\n") + "\n", nil
}
