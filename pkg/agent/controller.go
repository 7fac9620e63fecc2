package agent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/agentdeck/pkg/domain"
	"github.com/aretw0/agentdeck/pkg/ports"
	"github.com/google/uuid"
)

// ErrGeneration is the umbrella error for any failed call to the Generator
// (network, auth, quota or malformed response).
var ErrGeneration = errors.New("generation failed")

// Controller orchestrates the agent demo: one user turn at a time.
//
// It has two states, Idle and AwaitingResponse, tracked by a busy flag.
// Submit while AwaitingResponse is ignored.
type Controller struct {
	generator  ports.Generator
	transcript *Transcript
	logger     *slog.Logger
	hooks      domain.LifecycleHooks
	onChange   func()

	mu   sync.Mutex
	busy bool
}

// Option defines a functional option for configuring the Controller.
type Option func(*controllerConfig)

type controllerConfig struct {
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	greeting *string
	onChange func()
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *controllerConfig) {
		c.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks for exchanges.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *controllerConfig) {
		c.hooks = hooks
	}
}

// WithGreeting overrides the initial system entry. An empty greeting starts
// the transcript empty.
func WithGreeting(text string) Option {
	return func(c *controllerConfig) {
		c.greeting = &text
	}
}

// WithOnChange registers a callback invoked after every observable change
// (entries appended or busy flag flipped). It runs outside the controller lock.
func WithOnChange(fn func()) Option {
	return func(c *controllerConfig) {
		c.onChange = fn
	}
}

// NewController creates a demo controller bound to a Generator.
func NewController(gen ports.Generator, opts ...Option) *Controller {
	cfg := &controllerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	greeting := DefaultGreeting
	if cfg.greeting != nil {
		greeting = *cfg.greeting
	}
	var seed []domain.Entry
	if greeting != "" {
		seed = append(seed, domain.SystemEntry(greeting))
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Controller{
		generator:  gen,
		transcript: NewTranscript(seed...),
		logger:     logger,
		hooks:      cfg.hooks,
		onChange:   cfg.onChange,
	}
}

// Submit runs one exchange and blocks until it resolves.
//
// It returns false, with no side effects, when text is blank or another exchange is
// in flight. Otherwise the user entry is appended before the Generator is called,
// and exactly one outcome is appended afterwards: the formatted reply, or a single
// system notice on failure. The busy flag is always cleared on return.
func (c *Controller) Submit(ctx context.Context, text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return false
	}
	c.busy = true
	c.transcript.Append(domain.UserEntry(text))
	history := c.transcript.Context()
	c.mu.Unlock()
	c.notify()

	defer func() {
		c.mu.Lock()
		c.busy = false
		c.mu.Unlock()
		c.notify()
	}()

	exchangeID := uuid.NewString()
	start := time.Now()
	log := c.logger.With("exchange_id", exchangeID)
	log.Debug("exchange started", "prompt_size", len(text), "history_size", len(history))
	c.emitStart(ctx, exchangeID, text)

	reply, err := c.generate(ctx, text, history)
	if err != nil {
		log.Error("agent exchange failed", "err", err, "duration", time.Since(start))
		c.transcript.Append(domain.SystemEntry(ErrorNotice))
		c.emitEnd(ctx, exchangeID, 0, time.Since(start), err)
		return true
	}

	entries := Format(reply)
	c.transcript.Append(entries...)
	log.Debug("exchange completed", "entries", len(entries), "duration", time.Since(start))
	c.emitEnd(ctx, exchangeID, len(entries), time.Since(start), nil)
	return true
}

func (c *Controller) generate(ctx context.Context, prompt, history string) (string, error) {
	if c.generator == nil {
		return "", fmt.Errorf("%w: no generator configured", ErrGeneration)
	}
	reply, err := c.generator.Generate(ctx, prompt, history)
	if err != nil {
		if !errors.Is(err, ErrGeneration) {
			err = fmt.Errorf("%w: %w", ErrGeneration, err)
		}
		return "", err
	}
	return reply, nil
}

// Busy reports whether an exchange is in flight.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Transcript returns a copy of the full history.
func (c *Controller) Transcript() []domain.Entry {
	return c.transcript.All()
}

// Snapshot returns the read-only state rendered by surfaces.
func (c *Controller) Snapshot() domain.DemoSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.DemoSnapshot{
		Entries: c.transcript.All(),
		Busy:    c.busy,
	}
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}

func (c *Controller) emitStart(ctx context.Context, id, prompt string) {
	if c.hooks.OnExchangeStart == nil {
		return
	}
	c.hooks.OnExchangeStart(ctx, &domain.ExchangeEvent{
		EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.EventExchangeStart},
		ExchangeID: id,
		Prompt:     prompt,
	})
}

func (c *Controller) emitEnd(ctx context.Context, id string, entries int, d time.Duration, err error) {
	if c.hooks.OnExchangeEnd == nil {
		return
	}
	c.hooks.OnExchangeEnd(ctx, &domain.ExchangeEvent{
		EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.EventExchangeEnd},
		ExchangeID: id,
		Entries:    entries,
		Duration:   d,
		IsError:    err != nil,
		Err:        err,
	})
}
