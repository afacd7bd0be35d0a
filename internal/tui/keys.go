package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding the timer screen understands.
type keyMap struct {
	Toggle  key.Binding
	Reset   key.Binding
	Next    key.Binding
	Prev    key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "start/pause")),
		Reset:   key.NewBinding(key.WithKeys("ctrl+r", "r"), key.WithHelp("r", "reset")),
		Next:    key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev")),
		Confirm: key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("enter", "confirm")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc", "q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle, k.Reset}, {k.Next, k.Prev, k.Quit}}
}
