package memory

import (
	"context"

	"github.com/aretw0/agentdeck/pkg/domain"
)

// Loader implements ports.SlideLoader over a fixed slice of slides.
type Loader struct {
	slides []domain.Slide
}

// NewLoader creates a loader that returns slides in the given order.
func NewLoader(slides ...domain.Slide) *Loader {
	return &Loader{slides: append([]domain.Slide(nil), slides...)}
}

// LoadSlides returns a copy of the configured slides.
func (l *Loader) LoadSlides(ctx context.Context) ([]domain.Slide, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.Slide(nil), l.slides...), nil
}
