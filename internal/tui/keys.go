package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings understood while a batch runs.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "stop after current archive"),
		),
	}
}

// HelpText returns a formatted help string for the progress view.
func (k KeyMap) HelpText() string {
	h := k.Quit.Help()
	return h.Key + " " + h.Desc
}
