package agentdeck

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/agentdeck/internal/content"
	"github.com/aretw0/agentdeck/internal/runtime"
	loamAdapter "github.com/aretw0/agentdeck/pkg/adapters/loam"
	"github.com/aretw0/agentdeck/pkg/agent"
	"github.com/aretw0/agentdeck/pkg/domain"
	"github.com/aretw0/agentdeck/pkg/ports"
)

// Engine is the high-level entry point for the agentdeck library.
// It wraps the internal presentation shell and provides a simplified API for consumers.
type Engine struct {
	shell     *runtime.Shell
	loader    ports.SlideLoader
	generator ports.Generator
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	debounce  time.Duration
	scheduler ports.Scheduler
	greeting  *string
	Name      string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLoader injects a custom SlideLoader, bypassing the default Loam initialization.
func WithLoader(l ports.SlideLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithGenerator sets the backend of the agent demo slide.
func WithGenerator(g ports.Generator) Option {
	return func(e *Engine) {
		e.generator = g
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithDebounce sets the slide transition delay (default 300ms).
func WithDebounce(d time.Duration) Option {
	return func(e *Engine) {
		e.debounce = d
	}
}

// WithScheduler replaces the timer that commits slide transitions.
func WithScheduler(s ports.Scheduler) Option {
	return func(e *Engine) {
		e.scheduler = s
	}
}

// WithGreeting overrides the first system entry of the demo transcript.
func WithGreeting(text string) Option {
	return func(e *Engine) {
		e.greeting = &text
	}
}

// New loads a deck and initializes the engine.
// With an empty deckPath and no WithLoader option, the built-in deck is used.
// Otherwise deckPath is a directory of markdown slides read through Loam.
func New(deckPath string, opts ...Option) (*Engine, error) {
	eng := &Engine{}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		if deckPath == "" {
			eng.Name = "default"
			eng.loader = content.Loader{}
		} else {
			absPath, err := filepath.Abs(deckPath)
			if err != nil {
				return nil, fmt.Errorf("invalid path: %w", err)
			}
			eng.Name = filepath.Base(absPath)

			loader, err := loamAdapter.Open(absPath)
			if err != nil {
				return nil, err
			}
			eng.loader = loader
		}
	} else if deckPath != "" {
		eng.Name = filepath.Base(deckPath)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("deck", eng.Name)
	}

	slides, err := eng.loader.LoadSlides(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load slides: %w", err)
	}
	deck, err := domain.NewDeck(slides)
	if err != nil {
		return nil, fmt.Errorf("invalid deck: %w", err)
	}

	var demoOpts []agent.Option
	if eng.greeting != nil {
		demoOpts = append(demoOpts, agent.WithGreeting(*eng.greeting))
	}

	eng.shell = runtime.NewShell(deck, eng.generator,
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithDebounce(eng.debounce),
		runtime.WithScheduler(eng.scheduler),
		runtime.WithDemoOptions(demoOpts...),
	)
	return eng, nil
}

// Start triggers the lifecycle hooks for the first slide.
func (e *Engine) Start(ctx context.Context) {
	e.shell.Start(ctx)
}

// Render returns the view for the current tick.
func (e *Engine) Render() domain.View {
	return e.shell.Render()
}

// Advance requests the next slide. Rejected requests are silent no-ops.
func (e *Engine) Advance() bool {
	return e.shell.Advance()
}

// Retreat requests the previous slide. Rejected requests are silent no-ops.
func (e *Engine) Retreat() bool {
	return e.shell.Retreat()
}

// Submit sends one turn to the agent demo and blocks until it resolves.
func (e *Engine) Submit(ctx context.Context, text string) bool {
	return e.shell.Submit(ctx, text)
}

// Slides returns the full deck.
func (e *Engine) Slides() []domain.Slide {
	return e.shell.Slides()
}

// Watch returns a channel that receives the latest view after every change.
func (e *Engine) Watch(ctx context.Context) <-chan domain.View {
	return e.shell.Watch(ctx)
}

// Close cancels a pending transition and closes every watcher.
func (e *Engine) Close() {
	e.shell.Close()
}

// Loader returns the SlideLoader used by the engine.
func (e *Engine) Loader() ports.SlideLoader {
	return e.loader
}

var _ ports.Presenter = (*Engine)(nil)
