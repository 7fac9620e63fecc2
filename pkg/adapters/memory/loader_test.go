package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/agentdeck/pkg/adapters/memory"
	"github.com/aretw0/agentdeck/pkg/domain"
)

func TestLoader(t *testing.T) {
	in := []domain.Slide{
		{ID: "a", Kind: domain.KindTitle, Title: "A"},
		{ID: "b", Kind: domain.KindDemo, Title: "B"},
	}
	loader := memory.NewLoader(in...)

	got, err := loader.LoadSlides(context.Background())
	require.NoError(t, err)
	assert.Equal(t, in, got)

	got[0].Title = "changed"
	again, _ := loader.LoadSlides(context.Background())
	assert.Equal(t, "A", again[0].Title)
}

func TestLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := memory.NewLoader().LoadSlides(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
