package ports

import (
	"context"

	"github.com/aretw0/agentdeck/pkg/domain"
)

// Presenter defines the engine surface used by driving adapters (HTTP, MCP, terminal).
type Presenter interface {
	// Render returns the view for the current tick.
	Render() domain.View

	// Advance and Retreat request a slide transition.
	// They report whether the request was accepted; rejected requests are silent no-ops.
	Advance() bool
	Retreat() bool

	// Submit runs one agent demo exchange. It returns false without side effects
	// when the text is blank, an exchange is already in flight, or the current
	// slide is not a demo slide.
	Submit(ctx context.Context, text string) bool

	// Slides returns the full deck.
	Slides() []domain.Slide

	// Watch returns a channel that receives the new view after every observable change.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) <-chan domain.View
}
