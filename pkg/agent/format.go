package agent

import (
	"strings"

	"github.com/aretw0/agentdeck/pkg/domain"
)

// Marker literals of the response protocol.
const (
	MarkerPlan   = "[PLAN]"
	MarkerAction = "[ACTION]"
)

// Format splits a raw model reply into agent transcript entries.
//
// When both markers are present the reply is split at the first [ACTION]: the head,
// without its first [PLAN] and trimmed, becomes a thought entry and the trimmed
// tail becomes an action entry. Any other reply becomes a single plain entry with
// the text untouched.
func Format(raw string) []domain.Entry {
	if !strings.Contains(raw, MarkerPlan) || !strings.Contains(raw, MarkerAction) {
		return []domain.Entry{domain.AgentEntry(domain.EntryPlain, raw)}
	}

	head, tail, _ := strings.Cut(raw, MarkerAction)
	plan := strings.TrimSpace(strings.Replace(head, MarkerPlan, "", 1))
	action := strings.TrimSpace(tail)

	return []domain.Entry{
		domain.AgentEntry(domain.EntryThought, plan),
		domain.AgentEntry(domain.EntryAction, action),
	}
}
