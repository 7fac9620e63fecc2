package domain

// NavigationState is the observable state of the slide navigator.
type NavigationState struct {
	// Index is the current slide, always within [0, Deck.Len()).
	Index int `json:"index"`

	// Transitioning is true only while the exit animation window is open.
	Transitioning bool `json:"transitioning"`
}

// Action is a navigation intent decoded from user input.
type Action int

const (
	ActionNone Action = iota
	ActionAdvance
	ActionRetreat
)

// KeyAction maps a key name to a navigation intent.
// Only "right"/"space" (advance) and "left" (retreat) are recognized; every other
// key is ignored by the navigator.
func KeyAction(key string) Action {
	switch key {
	case "right", "space", " ":
		return ActionAdvance
	case "left":
		return ActionRetreat
	}
	return ActionNone
}
