package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/choose/internal/prompt"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// translate converts a bubbletea key press into the names produced by the
// raw terminal decoder, so both frontends share one prompt.Keymap.
func (k keyMap) translate(msg tea.KeyPressMsg) *prompt.Key {
	switch {
	case key.Matches(msg, k.Up):
		return &prompt.Key{Name: "up"}
	case key.Matches(msg, k.Down):
		return &prompt.Key{Name: "down"}
	case key.Matches(msg, k.Confirm):
		return &prompt.Key{Name: "return"}
	}

	s := msg.String()
	if s == "esc" {
		return &prompt.Key{Name: "escape"}
	}
	if name, ok := strings.CutPrefix(s, "ctrl+"); ok {
		return &prompt.Key{Name: name, Ctrl: true}
	}
	return &prompt.Key{Name: s}
}
