package runtime

import (
	"time"

	"github.com/aretw0/agentdeck/pkg/ports"
)

// TimerScheduler implements ports.Scheduler on top of time.AfterFunc.
// Tasks always run on their own goroutine.
type TimerScheduler struct{}

// After runs task once after delay.
func (TimerScheduler) After(delay time.Duration, task func()) ports.StopFunc {
	t := time.AfterFunc(delay, task)
	return t.Stop
}
