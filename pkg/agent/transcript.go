package agent

import (
	"strings"
	"sync"

	"github.com/aretw0/agentdeck/pkg/domain"
)

// Transcript is the append-only history of the demo session.
// Entries are never removed, reordered or mutated once appended.
// Safe for concurrent use.
type Transcript struct {
	mu      sync.RWMutex
	entries []domain.Entry
}

// NewTranscript creates a transcript seeded with the given entries.
func NewTranscript(seed ...domain.Entry) *Transcript {
	return &Transcript{entries: append([]domain.Entry(nil), seed...)}
}

// Append adds entries to the end of the transcript.
func (t *Transcript) Append(entries ...domain.Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, entries...)
}

// All returns a copy of every entry in order.
func (t *Transcript) All() []domain.Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]domain.Entry(nil), t.entries...)
}

// Len returns the number of entries.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Context renders the transcript as the auxiliary context string sent to the
// Generator: one "speaker: text" line per entry, in original order.
func (t *Transcript) Context() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	lines := make([]string, len(t.entries))
	for i, e := range t.entries {
		lines[i] = string(e.Speaker) + ": " + e.Text
	}
	return strings.Join(lines, "\n")
}
