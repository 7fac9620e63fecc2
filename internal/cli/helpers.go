package cli

import (
	"io"
	"log/slog"

	"github.com/aretw0/agentdeck/internal/logging"
)

// logLevel keeps warnings visible without --debug.
func logLevel(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// createLogger configures the application logger on w.
// Callers pass Stderr so logs stay out of the Stdout presentation flow.
func createLogger(w io.Writer, debug bool) *slog.Logger {
	return logging.NewText(w, logLevel(debug))
}
