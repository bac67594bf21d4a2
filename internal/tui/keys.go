package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the slider screen
type KeyMap struct {
	Reset        key.Binding
	Copy         key.Binding
	ToggleLabels key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// ShortHelp returns keybindings to show in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Copy, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reset, k.Copy, k.ToggleLabels},
		{k.Help, k.Quit},
	}
}

// Keys contains all the keybindings for the application
var Keys = KeyMap{
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset range"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c", "y"),
		key.WithHelp("c", "copy range"),
	),
	ToggleLabels: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "toggle labels"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
