package domain

// ViewDiff represents the changes between two views.
// It is designed to be serialized to JSON for partial updates on the client.
type ViewDiff struct {
	Index         *int  `json:"index,omitempty"`
	Transitioning *bool `json:"transitioning,omitempty"`
	Busy          *bool `json:"busy,omitempty"`

	// Appended holds transcript entries added since the old view.
	// The transcript is append-only, so a suffix is always enough.
	Appended []Entry `json:"appended,omitempty"`
}

// Diff calculates the difference between oldView and newView.
// If oldView is nil, it returns a diff representing the entire newView (initial load).
// It returns nil when nothing observable changed.
func Diff(oldView, newView *View) *ViewDiff {
	if newView == nil {
		return nil
	}

	diff := &ViewDiff{}

	if oldView == nil || oldView.Index != newView.Index {
		diff.Index = &newView.Index
	}
	if oldView == nil || oldView.Transitioning != newView.Transitioning {
		diff.Transitioning = &newView.Transitioning
	}

	oldBusy, newBusy := false, false
	var oldEntries, newEntries []Entry
	if oldView != nil && oldView.Demo != nil {
		oldBusy = oldView.Demo.Busy
		oldEntries = oldView.Demo.Entries
	}
	if newView.Demo != nil {
		newBusy = newView.Demo.Busy
		newEntries = newView.Demo.Entries
	}
	if oldView == nil || oldBusy != newBusy {
		diff.Busy = &newBusy
	}
	if len(newEntries) > len(oldEntries) {
		diff.Appended = newEntries[len(oldEntries):]
	}

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *ViewDiff) IsEmpty() bool {
	return d.Index == nil &&
		d.Transitioning == nil &&
		d.Busy == nil &&
		len(d.Appended) == 0
}
