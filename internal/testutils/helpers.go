package testutils

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/agentdeck/pkg/domain"
)

// SetupTestRepo creates a temporary directory and initializes a Loam repository in it.
// It returns the absolute path to the temp dir and the initialized repository.
// It fails the test immediately on error.
func SetupTestRepo(t *testing.T, opts ...loam.Option) (string, core.Repository) {
	t.Helper()

	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	repo, err := loam.Init(absPath, opts...)
	require.NoError(t, err, "Failed to init loam repo")

	return absPath, repo
}

// Deck builds a valid deck of n standard slides, with a demo slide at each
// index listed in demo.
func Deck(t *testing.T, n int, demo ...int) *domain.Deck {
	t.Helper()

	slides := make([]domain.Slide, n)
	for i := range slides {
		slides[i] = domain.Slide{
			ID:    fmt.Sprintf("s%d", i),
			Kind:  domain.KindStandard,
			Title: fmt.Sprintf("Slide %d", i),
		}
	}
	for _, i := range demo {
		slides[i].Kind = domain.KindDemo
	}

	deck, err := domain.NewDeck(slides)
	require.NoError(t, err)
	return deck
}
