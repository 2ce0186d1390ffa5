package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/kmj8843/mdrowser/pkg/api"
)

// WritePrettyPage renders the page's markdown with glamour.
func WritePrettyPage(w io.Writer, p api.Page, style string, wrap int) error {
	if style == "" {
		style = "dracula"
	}
	if wrap <= 0 {
		wrap = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.Render(strings.Join(p.Lines, "\n"))
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}

// RenderLines is the string-returning variant used by the TUI viewport.
func RenderLines(lines []string, style string, wrap int) (string, error) {
	if style == "" {
		style = "dracula"
	}
	if wrap <= 0 {
		wrap = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	return r.Render(strings.Join(lines, "\n"))
}
