package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/walk-the-dog/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Run        key.Binding
	Jump       key.Binding
	Slide      key.Binding
	Restart    key.Binding
	FrameRate  key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Jump, k.Slide, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Jump, k.Slide, k.Restart},
		{k.FrameRate, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Run: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "run"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑", "jump"),
		),
		Slide: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "slide"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter/r", "new game"),
		),
		FrameRate: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "frame rate"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Code translates a key message to the logical key the game reads.
// Only the game keys map; everything else returns false.
func (k KeyMap) Code(msg tea.KeyMsg) (string, bool) {
	switch {
	case key.Matches(msg, k.Run):
		return core.KeyArrowRight, true
	case key.Matches(msg, k.Jump):
		return core.KeySpace, true
	case key.Matches(msg, k.Slide):
		return core.KeyArrowDown, true
	}
	return "", false
}
