package runner

import (
	"io"
	"log/slog"
	"time"
)

// ContentRenderer turns slide markdown into terminal output.
type ContentRenderer func(string) (string, error)

// Option configures a Runner.
type Option func(*Runner)

// WithInput sets the command source.
func WithInput(r io.Reader) Option {
	return func(rn *Runner) {
		rn.Input = r
	}
}

// WithOutput sets where slides and transcript entries are written.
func WithOutput(w io.Writer) Option {
	return func(rn *Runner) {
		rn.Output = w
	}
}

// WithRenderer sets the markdown renderer used for slide bodies.
func WithRenderer(r ContentRenderer) Option {
	return func(rn *Runner) {
		rn.Renderer = r
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(rn *Runner) {
		rn.Logger = logger
	}
}

// WithHeadless drops prompts and hints so the output stays machine friendly.
func WithHeadless(headless bool) Option {
	return func(rn *Runner) {
		rn.Headless = headless
	}
}

// WithSettleTimeout bounds how long navigation waits for a transition to commit.
func WithSettleTimeout(d time.Duration) Option {
	return func(rn *Runner) {
		rn.SettleTimeout = d
	}
}
