// Package content ships the built-in presentation used when no deck directory
// is given.
package content

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/agentdeck/pkg/domain"
)

//go:embed default_deck.yaml
var defaultDeck []byte

type deckFile struct {
	Slides []domain.Slide `yaml:"slides"`
}

// Parse decodes a YAML deck document. Unknown keys are rejected.
func Parse(data []byte) ([]domain.Slide, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f deckFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse deck: %w", err)
	}
	return f.Slides, nil
}

// Loader implements ports.SlideLoader over the embedded deck.
type Loader struct{}

// LoadSlides returns the built-in slides.
func (Loader) LoadSlides(ctx context.Context) ([]domain.Slide, error) {
	return Parse(defaultDeck)
}
