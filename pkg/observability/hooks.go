package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/agentdeck/pkg/domain"
)

// LogHooks returns lifecycle hooks that write one structured record per event.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSlideEnter: func(ctx context.Context, e *domain.SlideEvent) {
			logger.InfoContext(ctx, "slide_enter", "index", e.Index, "kind", e.Kind, "title", e.Title)
		},
		OnSlideLeave: func(ctx context.Context, e *domain.SlideEvent) {
			logger.DebugContext(ctx, "slide_leave", "index", e.Index)
		},
		OnExchangeStart: func(ctx context.Context, e *domain.ExchangeEvent) {
			logger.InfoContext(ctx, "exchange_start", "exchange_id", e.ExchangeID)
		},
		OnExchangeEnd: func(ctx context.Context, e *domain.ExchangeEvent) {
			logger.InfoContext(ctx, "exchange_end",
				"exchange_id", e.ExchangeID,
				"entries", e.Entries,
				"duration", e.Duration,
				"is_error", e.IsError,
			)
		},
	}
}

// Combine fans every event out to each hook set, in order.
func Combine(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var out domain.LifecycleHooks
	for _, s := range sets {
		out.OnSlideEnter = chain(out.OnSlideEnter, s.OnSlideEnter)
		out.OnSlideLeave = chain(out.OnSlideLeave, s.OnSlideLeave)
		out.OnExchangeStart = chain(out.OnExchangeStart, s.OnExchangeStart)
		out.OnExchangeEnd = chain(out.OnExchangeEnd, s.OnExchangeEnd)
	}
	return out
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
