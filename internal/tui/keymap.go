package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Review options
	ToggleMethod   key.Binding
	ToggleNegative key.Binding
	SwitchColor    key.Binding

	// Application
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		ToggleMethod: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "old/new method"),
		),
		ToggleNegative: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "negative losses"),
		),
		SwitchColor: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "black/white moves"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/Esc", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleMethod, k.ToggleNegative, k.SwitchColor, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.ToggleMethod, k.ToggleNegative, k.SwitchColor},
		{k.Help, k.Quit},
	}
}
