package ports

import "time"

// StopFunc cancels a scheduled task. It reports whether the task was still pending.
type StopFunc func() bool

// Scheduler runs a task once after a delay.
// The navigator uses it for the commit phase of a transition, which keeps the
// debounce testable with a manual clock.
type Scheduler interface {
	After(delay time.Duration, task func()) StopFunc
}
