package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/agentdeck/pkg/runner"
)

// NewRenderer returns a markdown renderer that wraps at width columns.
// An empty style picks dark or light from the terminal background.
func NewRenderer(width int, style string) (runner.ContentRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}
