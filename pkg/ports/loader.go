package ports

import (
	"context"

	"github.com/aretw0/agentdeck/pkg/domain"
)

// SlideLoader defines how the engine retrieves the deck.
// This allows the content layer (Loam, embedded YAML, Memory) to be decoupled.
type SlideLoader interface {
	// LoadSlides returns every slide in presentation order.
	// It is called exactly once, at engine construction.
	LoadSlides(ctx context.Context) ([]domain.Slide, error)
}

// SlideLoaderFunc adapts a plain function to SlideLoader.
type SlideLoaderFunc func(ctx context.Context) ([]domain.Slide, error)

// LoadSlides calls f.
func (f SlideLoaderFunc) LoadSlides(ctx context.Context) ([]domain.Slide, error) {
	return f(ctx)
}
