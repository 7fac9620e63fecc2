package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aretw0/agentdeck/pkg/domain"
)

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Scroll  key.Binding
	Submit  key.Binding
	Suggest key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("right", " "), key.WithHelp("→/space", "next")),
		Prev:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev")),
		Scroll:  key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown"), key.WithHelp("↑/↓", "scroll")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ask")),
		Suggest: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "suggestion")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Scroll, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Submit, k.Suggest}}
}

// demoHelp is shown while the live demo slide has the input.
func (k keyMap) demoHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Suggest, k.Prev, k.Next, k.Scroll}
}

// navigation decodes a key press into a navigation intent.
func navigation(msg tea.KeyMsg) domain.Action {
	if msg.Type == tea.KeySpace {
		return domain.KeyAction("space")
	}
	return domain.KeyAction(msg.String())
}
