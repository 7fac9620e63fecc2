package domain

import "fmt"

// Deck is the immutable, ordered sequence of slides.
// It is loaded once at startup and is safe to share between goroutines.
type Deck struct {
	slides []Slide
}

// NewDeck validates the slides and freezes them into a Deck.
func NewDeck(slides []Slide) (*Deck, error) {
	if len(slides) == 0 {
		return nil, ErrEmptyDeck
	}
	frozen := make([]Slide, len(slides))
	for i, s := range slides {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("slide %d: %w", i, err)
		}
		frozen[i] = s.clone()
	}
	return &Deck{slides: frozen}, nil
}

// Len returns the number of slides. It is always at least 1.
func (d *Deck) Len() int {
	return len(d.slides)
}

// At returns a copy of the slide at index i.
func (d *Deck) At(i int) (Slide, bool) {
	if i < 0 || i >= len(d.slides) {
		return Slide{}, false
	}
	return d.slides[i].clone(), true
}

// Slides returns a copy of every slide in order.
func (d *Deck) Slides() []Slide {
	out := make([]Slide, len(d.slides))
	for i, s := range d.slides {
		out[i] = s.clone()
	}
	return out
}
