package testutils

import (
	"sync"
	"time"

	"github.com/aretw0/agentdeck/pkg/ports"
)

// ManualScheduler is a ports.Scheduler driven by the test.
// Tasks run only when Fire is called.
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

type manualTask struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

// After records the task without running it.
func (m *ManualScheduler) After(delay time.Duration, task func()) ports.StopFunc {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTask{delay: delay, fn: task}
	m.tasks = append(m.tasks, t)
	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		if t.stopped || t.fired {
			return false
		}
		t.stopped = true
		return true
	}
}

// Pending returns the number of tasks that have neither fired nor been stopped.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// LastDelay returns the delay of the most recently scheduled task.
func (m *ManualScheduler) LastDelay() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.tasks) == 0 {
		return 0
	}
	return m.tasks[len(m.tasks)-1].delay
}

// Fire runs every pending task on the calling goroutine and returns how many ran.
func (m *ManualScheduler) Fire() int {
	m.mu.Lock()
	var due []*manualTask
	for _, t := range m.tasks {
		if !t.stopped && !t.fired {
			t.fired = true
			due = append(due, t)
		}
	}
	m.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
	return len(due)
}
