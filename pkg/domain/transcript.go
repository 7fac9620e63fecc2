package domain

// Speaker identifies who produced a transcript entry.
type Speaker string

const (
	SpeakerUser   Speaker = "user"
	SpeakerAgent  Speaker = "agent"
	SpeakerSystem Speaker = "system"
)

// EntryKind refines agent entries. It is only meaningful when Speaker is SpeakerAgent.
type EntryKind string

const (
	EntryPlain   EntryKind = "plain"
	EntryThought EntryKind = "thought"
	EntryAction  EntryKind = "action"
)

// Entry is one immutable turn of the demo transcript.
type Entry struct {
	Speaker Speaker   `json:"speaker"`
	Text    string    `json:"text"`
	Kind    EntryKind `json:"kind,omitempty"`
}

// UserEntry builds a user turn.
func UserEntry(text string) Entry {
	return Entry{Speaker: SpeakerUser, Text: text}
}

// SystemEntry builds a system notice.
func SystemEntry(text string) Entry {
	return Entry{Speaker: SpeakerSystem, Text: text}
}

// AgentEntry builds an agent turn of the given kind.
func AgentEntry(kind EntryKind, text string) Entry {
	return Entry{Speaker: SpeakerAgent, Text: text, Kind: kind}
}

// Label is the caption surfaces show above the entry text.
func (e Entry) Label() string {
	if e.Speaker == SpeakerAgent {
		switch e.Kind {
		case EntryThought:
			return "Thinking Process"
		case EntryAction:
			return "Action / Output"
		}
	}
	return string(e.Speaker)
}
