package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the showroom key bindings.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Honk   key.Binding
	Engine key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Honk: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "honk"),
	),
	Engine: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start engine"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
