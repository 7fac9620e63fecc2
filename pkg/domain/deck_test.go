package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck_Empty(t *testing.T) {
	_, err := NewDeck(nil)
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestNewDeck_Validation(t *testing.T) {
	tests := []struct {
		name  string
		slide Slide
	}{
		{"Unknown Kind", Slide{Kind: "video", Title: "Nope"}},
		{"Missing Title", Slide{Kind: KindStandard, Title: "  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDeck([]Slide{{Kind: KindTitle, Title: "Ok"}, tt.slide})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSlide))
			assert.Contains(t, err.Error(), "slide 1")
		})
	}
}

func TestDeck_IsImmutable(t *testing.T) {
	src := []Slide{
		{Kind: KindCards, Title: "Cards", Bullets: []string{"a", "b"}},
		{Kind: KindCode, Title: "Code", Code: &CodeSnippet{Language: "go", Code: "x := 1"}},
	}
	deck, err := NewDeck(src)
	require.NoError(t, err)

	// Mutating the source does not leak into the deck.
	src[0].Bullets[0] = "mutated"
	src[1].Code.Code = "mutated"

	first, ok := deck.At(0)
	require.True(t, ok)
	assert.Equal(t, "a", first.Bullets[0])

	// Mutating a returned copy does not leak either.
	first.Bullets[1] = "mutated"
	again, _ := deck.At(0)
	assert.Equal(t, "b", again.Bullets[1])

	second, _ := deck.At(1)
	assert.Equal(t, "x := 1", second.Code.Code)
}

func TestDeck_At_Bounds(t *testing.T) {
	deck, err := NewDeck([]Slide{{Kind: KindTitle, Title: "Only"}})
	require.NoError(t, err)

	assert.Equal(t, 1, deck.Len())
	_, ok := deck.At(-1)
	assert.False(t, ok)
	_, ok = deck.At(1)
	assert.False(t, ok)
	assert.Len(t, deck.Slides(), 1)
}
