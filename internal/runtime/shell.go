package runtime

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aretw0/agentdeck/pkg/agent"
	"github.com/aretw0/agentdeck/pkg/domain"
	"github.com/aretw0/agentdeck/pkg/ports"
)

// Shell is the presentation shell: it composes the deck, the navigator and the
// agent demo controller, and turns their state into a single View per tick.
type Shell struct {
	deck   *domain.Deck
	nav    *Navigator
	demo   *agent.Controller
	logger *slog.Logger
	hooks  domain.LifecycleHooks

	startOnce sync.Once
	visits    atomic.Uint64

	// order serializes broadcasts so a view rendered earlier never replaces
	// a newer one in a watcher channel.
	order sync.Mutex

	mu       sync.Mutex
	watchers map[chan domain.View]struct{}
	closed   bool
}

// Option defines a functional option for configuring the Shell.
type Option func(*shellConfig)

type shellConfig struct {
	debounce  time.Duration
	scheduler ports.Scheduler
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
	demoOpts  []agent.Option
}

// WithDebounce sets the slide transition delay.
func WithDebounce(d time.Duration) Option {
	return func(c *shellConfig) {
		c.debounce = d
	}
}

// WithScheduler replaces the timer that commits transitions.
func WithScheduler(s ports.Scheduler) Option {
	return func(c *shellConfig) {
		c.scheduler = s
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *shellConfig) {
		c.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks for slides and exchanges.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *shellConfig) {
		c.hooks = hooks
	}
}

// WithDemoOptions forwards options to the agent demo controller.
func WithDemoOptions(opts ...agent.Option) Option {
	return func(c *shellConfig) {
		c.demoOpts = append(c.demoOpts, opts...)
	}
}

// NewShell creates a shell over deck. gen backs the demo slide and may be nil,
// in which case every exchange ends with the error notice.
func NewShell(deck *domain.Deck, gen ports.Generator, opts ...Option) *Shell {
	cfg := &shellConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Shell{
		deck:     deck,
		logger:   logger,
		hooks:    cfg.hooks,
		watchers: make(map[chan domain.View]struct{}),
	}

	s.nav = NewNavigator(deck.Len(), NavigatorConfig{
		Debounce:  cfg.debounce,
		Scheduler: cfg.scheduler,
		OnChange:  s.onNavigate,
	})

	demoOpts := []agent.Option{
		agent.WithLogger(logger),
		agent.WithLifecycleHooks(cfg.hooks),
	}
	demoOpts = append(demoOpts, cfg.demoOpts...)
	demoOpts = append(demoOpts, agent.WithOnChange(s.broadcast))
	s.demo = agent.NewController(gen, demoOpts...)

	return s
}

// Start announces the first slide to the lifecycle hooks. Calling it more than
// once has no further effect.
func (s *Shell) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		slide, _ := s.deck.At(0)
		s.logger.Debug("presentation started", "slides", s.deck.Len())
		s.emitSlide(ctx, s.hooks.OnSlideEnter, domain.EventSlideEnter, 0, slide)
	})
}

// Render returns the view for the current tick.
func (s *Shell) Render() domain.View {
	state := s.nav.State()
	slide, _ := s.deck.At(state.Index)
	total := s.deck.Len()

	v := domain.View{
		Index:         state.Index,
		Total:         total,
		Progress:      float64(state.Index+1) / float64(total),
		Transitioning: state.Transitioning,
		Slide:         slide,
		Visit:         s.visits.Load(),
	}
	if slide.IsDemo() {
		snap := s.demo.Snapshot()
		v.Demo = &snap
	}
	return v
}

// Advance requests the next slide.
func (s *Shell) Advance() bool {
	return s.nav.Advance()
}

// Retreat requests the previous slide.
func (s *Shell) Retreat() bool {
	return s.nav.Retreat()
}

// Submit runs one demo exchange and blocks until it resolves.
// It is ignored unless the current slide is a demo slide.
func (s *Shell) Submit(ctx context.Context, text string) bool {
	slide, _ := s.deck.At(s.nav.State().Index)
	if !slide.IsDemo() {
		s.logger.Debug("submit ignored outside demo slide", "slide", slide.ID)
		return false
	}
	return s.demo.Submit(ctx, text)
}

// Slides returns the full deck.
func (s *Shell) Slides() []domain.Slide {
	return s.deck.Slides()
}

// Navigation returns the current navigator state.
func (s *Shell) Navigation() domain.NavigationState {
	return s.nav.State()
}

// Demo exposes the demo controller.
func (s *Shell) Demo() *agent.Controller {
	return s.demo
}

// Watch returns a channel that receives the latest view after every change.
// Slow readers only see the most recent view. The channel is closed when ctx
// is done or the shell is closed.
func (s *Shell) Watch(ctx context.Context) <-chan domain.View {
	ch := make(chan domain.View, 1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch
	}
	s.watchers[ch] = struct{}{}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.watchers[ch]; ok {
			delete(s.watchers, ch)
			close(ch)
		}
	}()
	return ch
}

// Close cancels a pending transition and closes every watcher.
// Watch goroutines still exit only when their context is done.
func (s *Shell) Close() {
	s.nav.Close()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for ch := range s.watchers {
		delete(s.watchers, ch)
		close(ch)
	}
}

func (s *Shell) onNavigate(c Change) {
	if c.ScrollReset {
		s.visits.Add(1)
	}
	if c.Committed {
		ctx := context.Background()
		from, _ := s.deck.At(c.From)
		to, _ := s.deck.At(c.State.Index)
		s.logger.Debug("slide changed", "from", c.From, "to", c.State.Index, "slide", to.ID)
		s.emitSlide(ctx, s.hooks.OnSlideLeave, domain.EventSlideLeave, c.From, from)
		s.emitSlide(ctx, s.hooks.OnSlideEnter, domain.EventSlideEnter, c.State.Index, to)
	}
	s.broadcast()
}

func (s *Shell) broadcast() {
	s.order.Lock()
	defer s.order.Unlock()

	v := s.Render()

	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.watchers {
		select {
		case ch <- v:
		default:
			// Replace the stale view.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	}
}

func (s *Shell) emitSlide(ctx context.Context, hook func(context.Context, *domain.SlideEvent), typ domain.EventType, index int, slide domain.Slide) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.SlideEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: typ},
		Index:     index,
		Kind:      slide.Kind,
		Title:     slide.Title,
	})
}

var _ ports.Presenter = (*Shell)(nil)
