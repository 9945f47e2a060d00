package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the terminal host.
// It lives in pkg/types so the model and its tests share one definition.
type KeyMap struct {
	// General
	Help key.Binding
	Quit key.Binding

	// Paging
	Prev    key.Binding // Swipe to the previous page
	Next    key.Binding // Swipe to the next page
	First   key.Binding
	Last    key.Binding
	Jump    key.Binding // 1-9 select a page directly
	TapNext key.Binding // Tap the next title in the strip

	// Pane scrolling
	Up   key.Binding
	Down key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Prev: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "previous page"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next page"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first page"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last page"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to page"),
		),
		TapNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "tap next title"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "scroll down"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.TapNext, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.Jump, k.TapNext},
		{k.Up, k.Down},
		{k.Help, k.Quit},
	}
}
