package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-timber/internal/core"
)

// KeyMap holds the fixed timber key bindings. Any key not bound here counts
// as a generic dismiss, which starts a run from the menu.
type KeyMap struct {
	ChopLeft    key.Binding
	ChopRight   key.Binding
	Reset       key.Binding
	ToggleDebug key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the timber key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ChopLeft: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "chop left"),
		),
		ChopRight: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "chop right"),
		),
		Reset: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "replay"),
		),
		ToggleDebug: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "debug"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ChopLeft, k.ChopRight, k.Reset, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ChopLeft, k.ChopRight},
		{k.Reset, k.ToggleDebug, k.Quit},
	}
}

// MapKey translates a key message to an action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.ChopLeft):
		return core.ActionChopLeft
	case key.Matches(msg, k.ChopRight):
		return core.ActionChopRight
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.ToggleDebug):
		return core.ActionToggleDebug
	default:
		return core.ActionDismiss
	}
}
