package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aretw0/agentdeck/pkg/domain"
	"github.com/aretw0/agentdeck/pkg/ports"
)

// DefaultSettleTimeout bounds the wait for a slide transition to commit.
const DefaultSettleTimeout = 5 * time.Second

// Runner reads commands line by line and prints each slide once on entry.
type Runner struct {
	Input         io.Reader
	Output        io.Writer
	Renderer      ContentRenderer
	Logger        *slog.Logger
	Headless      bool
	SettleTimeout time.Duration
}

// New creates a runner bound to stdin and stdout unless overridden.
func New(opts ...Option) *Runner {
	r := &Runner{
		Input:         os.Stdin,
		Output:        os.Stdout,
		SettleTimeout: DefaultSettleTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Command is a parsed line of input.
type Command int

const (
	CommandSay Command = iota
	CommandNext
	CommandPrev
	CommandQuit
	CommandHelp
)

// ParseCommand classifies a line. Anything that is not a navigation keyword is
// returned as CommandSay with the trimmed text.
func ParseCommand(line string) (Command, string) {
	text := strings.TrimSpace(line)
	switch strings.ToLower(text) {
	case "", "n", "next":
		return CommandNext, ""
	case "p", "prev", "previous":
		return CommandPrev, ""
	case "q", "quit", "exit":
		return CommandQuit, ""
	case "?", "help":
		return CommandHelp, ""
	}
	return CommandSay, text
}

const helpText = `Commands:
  n, next, <enter>   next slide
  p, prev            previous slide
  q, quit, exit      leave
  <text>             ask the agent (live demo slide only)`

type inputLine struct {
	text string
	err  error
}

// Run presents engine until the input ends, the user quits or ctx is done.
func (r *Runner) Run(ctx context.Context, engine ports.Presenter) error {
	done := make(chan struct{})
	defer close(done)
	lines := r.pump(done)

	printed := r.showView(engine.Render())

	for {
		r.prompt()

		var in inputLine
		select {
		case <-ctx.Done():
			r.Logger.Debug("runner stopped", "reason", ctx.Err())
			return nil
		case l, ok := <-lines:
			if !ok {
				return nil
			}
			in = l
		}
		if in.err != nil {
			return fmt.Errorf("read input: %w", in.err)
		}

		clean, err := SanitizeInput(in.text)
		if err != nil {
			r.Logger.Warn("input rejected", "error", err, "size", len(in.text))
			r.hint(fmt.Sprintf("Input rejected: %v", err))
			continue
		}

		cmd, text := ParseCommand(clean)
		switch cmd {
		case CommandQuit:
			r.hint("Bye!")
			return nil

		case CommandHelp:
			fmt.Fprintln(r.Output, helpText)

		case CommandNext, CommandPrev:
			step := engine.Advance
			if cmd == CommandPrev {
				step = engine.Retreat
			}
			settleCtx, cancel := context.WithTimeout(ctx, r.SettleTimeout)
			next, accepted, err := Settle(settleCtx, engine, step)
			cancel()
			if err != nil {
				return nil
			}
			if !accepted {
				r.Logger.Debug("navigation ignored", "command", cmd, "index", next.Index)
				continue
			}
			printed = r.showView(next)

		case CommandSay:
			if !engine.Render().Slide.IsDemo() {
				r.hint("Unknown command. Type help for the list.")
				continue
			}
			r.hint("Agent is reasoning...")
			if !engine.Submit(ctx, text) {
				r.hint("The agent is busy.")
				continue
			}
			printed = r.printEntries(engine.Render(), printed)
		}
	}
}

// pump reads lines in the background until EOF or until done is closed.
// A read blocked on a terminal is only released by the next line.
func (r *Runner) pump(done <-chan struct{}) <-chan inputLine {
	ch := make(chan inputLine)
	send := func(l inputLine) bool {
		select {
		case ch <- l:
			return true
		case <-done:
			return false
		}
	}
	go func() {
		defer close(ch)
		reader := bufio.NewReader(r.Input)
		for {
			text, err := reader.ReadString('\n')
			if text != "" || err == nil {
				if !send(inputLine{text: strings.TrimRight(text, "\r\n")}) {
					return
				}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				send(inputLine{err: err})
				return
			}
		}
	}()
	return ch
}

// showView prints the slide and, on the demo slide, the whole transcript.
// It returns the number of entries printed.
func (r *Runner) showView(v domain.View) int {
	fmt.Fprintf(r.Output, "\n[%s]\n", FormatPosition(v))
	fmt.Fprint(r.Output, r.render(SlideMarkdown(v.Slide)))
	return r.printEntries(v, 0)
}

func (r *Runner) printEntries(v domain.View, from int) int {
	if v.Demo == nil {
		return from
	}
	for _, e := range v.Demo.Entries[min(from, len(v.Demo.Entries)):] {
		fmt.Fprintln(r.Output, FormatEntry(e))
	}
	return len(v.Demo.Entries)
}

func (r *Runner) render(md string) string {
	if r.Renderer == nil {
		return md
	}
	out, err := r.Renderer(md)
	if err != nil {
		r.Logger.Warn("render failed, falling back to markdown", "error", err)
		return md
	}
	return out
}

func (r *Runner) prompt() {
	if !r.Headless {
		fmt.Fprint(r.Output, "> ")
	}
}

func (r *Runner) hint(msg string) {
	if !r.Headless {
		fmt.Fprintln(r.Output, msg)
	}
}
