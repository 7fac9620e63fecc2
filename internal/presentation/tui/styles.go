package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.AdaptiveColor{Light: "#4f46e5", Dark: "#818cf8"}
	muted   = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	thought = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#c084fc"}
	action  = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34d399"}
	danger  = lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#fb7185"}
)

// Styles groups the lipgloss styles of the presentation.
type Styles struct {
	Header     lipgloss.Style
	Kind       lipgloss.Style
	Footer     lipgloss.Style
	Faded      lipgloss.Style
	Code       lipgloss.Style
	CodeBadge  lipgloss.Style
	Title      lipgloss.Style
	User       lipgloss.Style
	System     lipgloss.Style
	Thought    lipgloss.Style
	Action     lipgloss.Style
	Label      lipgloss.Style
	Status     lipgloss.Style
	Suggestion lipgloss.Style
}

// DefaultStyles returns the stock theme.
func DefaultStyles() Styles {
	return Styles{
		Header:     lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1),
		Kind:       lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		Footer:     lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		Faded:      lipgloss.NewStyle().Faint(true),
		Code:       lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1),
		CodeBadge:  lipgloss.NewStyle().Bold(true).Foreground(muted),
		Title:      lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		User:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		System:     lipgloss.NewStyle().Foreground(muted),
		Thought:    lipgloss.NewStyle().Italic(true).Foreground(thought).BorderStyle(lipgloss.NormalBorder()).BorderLeft(true).BorderForeground(thought).PaddingLeft(1),
		Action:     lipgloss.NewStyle().Foreground(action).BorderStyle(lipgloss.NormalBorder()).BorderLeft(true).BorderForeground(action).PaddingLeft(1),
		Label:      lipgloss.NewStyle().Bold(true).Foreground(muted),
		Status:     lipgloss.NewStyle().Foreground(danger),
		Suggestion: lipgloss.NewStyle().Foreground(muted).Italic(true),
	}
}
