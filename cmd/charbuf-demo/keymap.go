package main

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the demo key bindings. Printable keys not bound here are
// appended to the buffer.
type keyMap struct {
	Quit      key.Binding
	Backspace key.Binding
	Clear     key.Binding
	Wipe      key.Binding
	Fill      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("ctrl+c", "quit")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "truncate")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
		Wipe:      key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "wipe")),
		Fill:      key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "fill")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Backspace, k.Clear, k.Wipe, k.Fill, k.Quit}
}
