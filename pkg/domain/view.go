package domain

// DemoSnapshot is the read-only state of the agent demo exposed to surfaces.
type DemoSnapshot struct {
	Entries []Entry `json:"entries"`
	Busy    bool    `json:"busy"`
}

// View is everything a surface needs to draw the current tick.
type View struct {
	Index         int     `json:"index"`
	Total         int     `json:"total"`
	Progress      float64 `json:"progress"`
	Transitioning bool    `json:"transitioning"`
	Slide         Slide   `json:"slide"`

	// Visit changes every time a transition lands on a slide. Surfaces scroll
	// back to the top when it does.
	Visit uint64 `json:"visit"`

	// Demo is set only when Slide is a demo slide; surfaces render the live
	// transcript instead of the generic layout.
	Demo *DemoSnapshot `json:"demo,omitempty"`
}

// Position formats the slide counter as shown in the footer ("3 / 11").
func (v View) Position() (current, total int) {
	return v.Index + 1, v.Total
}
