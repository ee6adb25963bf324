package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-simon/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Red    key.Binding
	Green  key.Binding
	Blue   key.Binding
	Yellow key.Binding
	Start  key.Binding
	Stop   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// Pads returns the pad bindings in board order.
func (k KeyMap) Pads() []key.Binding {
	return []key.Binding{k.Red, k.Green, k.Blue, k.Yellow}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Pads(),
		{k.Start, k.Stop},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Red: key.NewBinding(
			key.WithKeys("1", "r"),
			key.WithHelp("1/r", "red"),
		),
		Green: key.NewBinding(
			key.WithKeys("2", "g"),
			key.WithHelp("2/g", "green"),
		),
		Blue: key.NewBinding(
			key.WithKeys("3", "b"),
			key.WithHelp("3/b", "blue"),
		),
		Yellow: key.NewBinding(
			key.WithKeys("4", "y"),
			key.WithHelp("4/y", "yellow"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Stop: key.NewBinding(
			key.WithKeys("s", "esc"),
			key.WithHelp("s/esc", "stop"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for rendering help.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.keys.Quit) {
		return core.ActionQuit, true
	}
	for i, b := range km.keys.Pads() {
		if key.Matches(msg, b) {
			return core.PadAction(i), false
		}
	}

	switch {
	case key.Matches(msg, km.keys.Start):
		return core.ActionStart, false
	case key.Matches(msg, km.keys.Stop):
		return core.ActionStop, false
	case key.Matches(msg, km.keys.Help):
		return core.ActionHelp, false
	}

	return core.ActionNone, false
}
