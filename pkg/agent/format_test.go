package agent

import (
	"testing"

	"github.com/aretw0/agentdeck/pkg/domain"
	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []domain.Entry
	}{
		{
			name: "Plan And Action",
			raw:  "[PLAN] Do X [ACTION] run Y",
			want: []domain.Entry{
				domain.AgentEntry(domain.EntryThought, "Do X"),
				domain.AgentEntry(domain.EntryAction, "run Y"),
			},
		},
		{
			name: "No Markers",
			raw:  "plain text with no markers",
			want: []domain.Entry{domain.AgentEntry(domain.EntryPlain, "plain text with no markers")},
		},
		{
			name: "Plan Only Keeps Text Untouched",
			raw:  "[PLAN] only, no action marker",
			want: []domain.Entry{domain.AgentEntry(domain.EntryPlain, "[PLAN] only, no action marker")},
		},
		{
			name: "Action Only Keeps Text Untouched",
			raw:  "  just [ACTION] ls -la  ",
			want: []domain.Entry{domain.AgentEntry(domain.EntryPlain, "  just [ACTION] ls -la  ")},
		},
		{
			name: "Split At First Action Only",
			raw:  "[PLAN] think\n[ACTION] step one [ACTION] step two",
			want: []domain.Entry{
				domain.AgentEntry(domain.EntryThought, "think"),
				domain.AgentEntry(domain.EntryAction, "step one [ACTION] step two"),
			},
		},
		{
			name: "Markers Out Of Order",
			raw:  "[ACTION] first [PLAN] second",
			want: []domain.Entry{
				domain.AgentEntry(domain.EntryThought, ""),
				domain.AgentEntry(domain.EntryAction, "first [PLAN] second"),
			},
		},
		{
			name: "Multiline Reply",
			raw:  "[PLAN]:\nTouch main.go\n\n[ACTION]:\n```go\nfmt.Println()\n```\n",
			want: []domain.Entry{
				domain.AgentEntry(domain.EntryThought, ":\nTouch main.go"),
				domain.AgentEntry(domain.EntryAction, ":\n```go\nfmt.Println()\n```"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Format(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestFormat_IsPure(t *testing.T) {
	raw := "[PLAN] a [ACTION] b"
	first := Format(raw)
	second := Format(raw)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Format is not deterministic:\n%s", diff)
	}
}
