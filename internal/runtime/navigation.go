package runtime

import (
	"sync"
	"time"

	"github.com/aretw0/agentdeck/pkg/domain"
	"github.com/aretw0/agentdeck/pkg/ports"
)

// DefaultDebounce is the length of the exit animation window.
const DefaultDebounce = 300 * time.Millisecond

// Change describes one observable step of a transition.
type Change struct {
	State domain.NavigationState

	// From is the index before the change.
	From int

	// Committed is false for the begin phase and true once the index moved.
	Committed bool

	// ScrollReset asks surfaces to present the new slide from its top.
	ScrollReset bool
}

// Navigator owns the current slide index and the transition flag.
//
// A transition is two-phase: begin sets Transitioning and schedules a commit
// after the debounce delay; commit moves the index and clears the flag. While a
// transition is pending, further requests are ignored, so at most one commit is
// ever outstanding. Safe for concurrent use.
type Navigator struct {
	total     int
	debounce  time.Duration
	scheduler ports.Scheduler
	onChange  func(Change)

	mu      sync.Mutex
	state   domain.NavigationState
	pending ports.StopFunc
}

// NavigatorConfig holds the optional collaborators of a Navigator.
type NavigatorConfig struct {
	// Debounce is the transition delay. Zero means DefaultDebounce.
	Debounce time.Duration

	// Scheduler runs the commit phase. Nil means TimerScheduler.
	// It must not run the task on the calling goroutine.
	Scheduler ports.Scheduler

	// OnChange is called for both transition phases, outside the navigator lock.
	OnChange func(Change)
}

// NewNavigator creates a navigator over total slides, starting at (0, false).
func NewNavigator(total int, cfg NavigatorConfig) *Navigator {
	n := &Navigator{
		total:     total,
		debounce:  cfg.Debounce,
		scheduler: cfg.Scheduler,
		onChange:  cfg.OnChange,
	}
	if n.debounce <= 0 {
		n.debounce = DefaultDebounce
	}
	if n.scheduler == nil {
		n.scheduler = TimerScheduler{}
	}
	return n
}

// Advance moves to the next slide after the debounce delay.
// It is a no-op on the last slide or while a transition is pending.
func (n *Navigator) Advance() bool {
	return n.begin(1)
}

// Retreat moves to the previous slide after the debounce delay.
// It is a no-op on the first slide or while a transition is pending.
func (n *Navigator) Retreat() bool {
	return n.begin(-1)
}

// State returns the current navigation state.
func (n *Navigator) State() domain.NavigationState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Close cancels a pending commit. The navigator stays usable.
func (n *Navigator) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.pending != nil && n.pending() {
		n.state.Transitioning = false
	}
	n.pending = nil
}

func (n *Navigator) begin(step int) bool {
	n.mu.Lock()
	target := n.state.Index + step
	if n.state.Transitioning || target < 0 || target >= n.total {
		n.mu.Unlock()
		return false
	}
	n.state.Transitioning = true
	snapshot := n.state
	n.pending = n.scheduler.After(n.debounce, func() { n.commit(step) })
	n.mu.Unlock()

	n.emit(Change{State: snapshot, From: snapshot.Index})
	return true
}

func (n *Navigator) commit(step int) {
	n.mu.Lock()
	if !n.state.Transitioning {
		// Cancelled by Close.
		n.mu.Unlock()
		return
	}
	from := n.state.Index
	n.state.Index += step
	n.state.Transitioning = false
	n.pending = nil
	snapshot := n.state
	n.mu.Unlock()

	n.emit(Change{State: snapshot, From: from, Committed: true, ScrollReset: true})
}

func (n *Navigator) emit(c Change) {
	if n.onChange != nil {
		n.onChange(c)
	}
}
