package runner

import (
	"context"
	"errors"

	"github.com/aretw0/agentdeck/pkg/domain"
	"github.com/aretw0/agentdeck/pkg/ports"
)

// Settle runs step and waits until the transition it started has committed.
// It reports whether step was accepted. When ctx expires first the current view
// is returned; only a cancelled ctx yields an error.
func Settle(ctx context.Context, engine ports.Presenter, step func() bool) (domain.View, bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	views := engine.Watch(ctx)
	if !step() {
		return engine.Render(), false, nil
	}

	for v := range views {
		if !v.Transitioning {
			return v, true, nil
		}
	}
	if err := ctx.Err(); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return domain.View{}, true, err
	}
	return engine.Render(), true, nil
}
