package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard bindings.
type keyMap struct {
	Pause    key.Binding
	Repeat   key.Binding
	Skip     key.Binding
	News     key.Binding
	SongList key.Binding
	Quit     key.Binding

	// Song list modal
	Up       key.Binding
	Down     key.Binding
	Confirm  key.Binding
	Download key.Binding
	Close    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Repeat: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "repeat"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip"),
		),
		News: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "news"),
		),
		SongList: key.NewBinding(
			key.WithKeys("/", "l"),
			key.WithHelp("/", "song list"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "schedule"),
		),
		Download: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "download link"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}
