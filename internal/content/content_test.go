package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/agentdeck/pkg/domain"
)

func TestDefaultDeck(t *testing.T) {
	slides, err := Loader{}.LoadSlides(context.Background())
	require.NoError(t, err)

	deck, err := domain.NewDeck(slides)
	require.NoError(t, err)
	assert.Equal(t, 12, deck.Len())

	first, _ := deck.At(0)
	assert.Equal(t, domain.KindTitle, first.Kind)
	assert.Equal(t, "Agentic Coding", first.Title)

	var demos []domain.Slide
	for _, s := range slides {
		if s.IsDemo() {
			demos = append(demos, s)
		}
	}
	require.Len(t, demos, 1)
	assert.Len(t, demos[0].Suggestions, 2)

	loop := slides[6]
	require.NotNil(t, loop.Code)
	assert.Equal(t, "typescript", loop.Code.Language)
	assert.Contains(t, loop.Code.Code, "task.status !== 'COMPLETE'")
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("slides:\n  - title: x\n    kind: title\n    colour: red\n"))
	assert.Error(t, err)
}
