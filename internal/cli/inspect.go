package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/aretw0/agentdeck/internal/content"
	"github.com/aretw0/agentdeck/internal/validator"
	"github.com/aretw0/agentdeck/pkg/adapters/loam"
	"github.com/aretw0/agentdeck/pkg/ports"
)

// ListSlides prints the deck as a table.
func ListSlides(ctx context.Context, w io.Writer, opts Options) error {
	cfg, err := resolveConfig(opts, os.LookupEnv)
	if err != nil {
		return err
	}

	engine, err := createEngine(ctx, cfg, createLogger(os.Stderr, opts.Debug), false)
	if err != nil {
		return err
	}
	defer engine.Close()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "ID", "KIND", "TITLE")
	for i, s := range engine.Slides() {
		t.Row(strconv.Itoa(i+1), s.ID, string(s.Kind), s.Title)
	}
	fmt.Fprintln(w, t.Render())
	return nil
}

// Validate lints the deck and prints every finding. It fails on errors only.
func Validate(ctx context.Context, w io.Writer, opts Options) error {
	cfg, err := resolveConfig(opts, os.LookupEnv)
	if err != nil {
		return err
	}

	var loader ports.SlideLoader = content.Loader{}
	if cfg.DeckDir != "" {
		l, err := loam.Open(cfg.DeckDir)
		if err != nil {
			return err
		}
		loader = l
	}

	report, err := validator.ValidateDeck(ctx, loader)
	if err != nil {
		return err
	}
	for _, issue := range report.Issues {
		fmt.Fprintln(w, issue.String())
	}
	if err := report.Err(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Deck is valid! %d slides ✅\n", report.Slides)
	return nil
}
