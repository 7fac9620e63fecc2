package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/agentdeck/internal/logging"
	"github.com/aretw0/agentdeck/internal/presentation/tui"
	"github.com/aretw0/agentdeck/pkg/runner"
)

// debugLogFile receives logs while the full screen UI owns the terminal.
const debugLogFile = "agentdeck-debug.log"

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Options
	Headless bool
	Input    io.Reader
	Output   io.Writer
	// ErrOutput receives the logs of the line runner. Defaults to Stderr.
	ErrOutput io.Writer
}

// Run presents the deck: full screen on a terminal, line by line otherwise.
func Run(ctx context.Context, opts RunOptions) error {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}

	cfg, err := resolveConfig(opts.Options, os.LookupEnv)
	if err != nil {
		return err
	}

	interactive := !opts.Headless && isTerminal(opts.Input) && isTerminal(opts.Output)

	logger := createLogger(opts.ErrOutput, opts.Debug)
	if interactive {
		// The full screen UI owns the terminal, so logs go to a file.
		f, err := os.OpenFile(debugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		logger = logging.NewJSON(f, logLevel(opts.Debug))
	}

	engine, err := createEngine(ctx, cfg, logger, opts.Debug)
	if err != nil {
		return err
	}
	defer engine.Close()
	engine.Start(ctx)

	if interactive {
		return tui.Run(ctx, engine, tui.WithLogger(logger))
	}

	runnerOpts := []runner.Option{
		runner.WithInput(opts.Input),
		runner.WithOutput(opts.Output),
		runner.WithLogger(logger),
		runner.WithHeadless(opts.Headless),
	}
	if !opts.Headless {
		tui.PrintBanner(opts.Output)
		renderer, err := tui.NewRenderer(terminalWidth(opts.Output), "notty")
		if err != nil {
			logger.Warn("plain markdown output", "error", err)
		} else {
			runnerOpts = append(runnerOpts, runner.WithRenderer(renderer))
		}
	}

	return runner.New(runnerOpts...).Run(ctx, engine)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(v any) int {
	if f, ok := v.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 80
}
