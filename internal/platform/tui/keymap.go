package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-explorer/internal/core"
)

// KeyMap defines the key bindings of the play screen.
type KeyMap struct {
	North     key.Binding
	South     key.Binding
	East      key.Binding
	West      key.Binding
	Bomb      key.Binding
	Interact  key.Binding
	RangeUp   key.Binding
	RangeDown key.Binding
	Save      key.Binding
	Load      key.Binding
	Reset     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Bomb, k.Interact, k.Save, k.Load, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.North, k.South, k.West, k.East},
		{k.Bomb, k.Interact, k.RangeDown, k.RangeUp},
		{k.Save, k.Load, k.Reset},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		North: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "north"),
		),
		South: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "south"),
		),
		East: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "east"),
		),
		West: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "west"),
		),
		Bomb: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "arm bomb"),
		),
		Interact: key.NewBinding(
			key.WithKeys("e", " "),
			key.WithHelp("e/space", "interact"),
		),
		RangeUp: key.NewBinding(
			key.WithKeys("]", "="),
			key.WithHelp("]", "range +"),
		),
		RangeDown: key.NewBinding(
			key.WithKeys("[", "-"),
			key.WithHelp("[", "range -"),
		),
		Save: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "save"),
		),
		Load: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "load"),
		),
		Reset: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "new world"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
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

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.North):
		return core.ActionNorth, false
	case key.Matches(msg, k.South):
		return core.ActionSouth, false
	case key.Matches(msg, k.East):
		return core.ActionEast, false
	case key.Matches(msg, k.West):
		return core.ActionWest, false
	case key.Matches(msg, k.Bomb):
		return core.ActionBomb, false
	case key.Matches(msg, k.Interact):
		return core.ActionInteract, false
	case key.Matches(msg, k.RangeUp):
		return core.ActionRangeUp, false
	case key.Matches(msg, k.RangeDown):
		return core.ActionRangeDown, false
	case key.Matches(msg, k.Save):
		return core.ActionSave, false
	case key.Matches(msg, k.Load):
		return core.ActionLoad, false
	case key.Matches(msg, k.Reset):
		return core.ActionReset, false
	case key.Matches(msg, k.Help):
		return core.ActionHelp, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a start menu action. Printable keys
// are left to the focused text field.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "esc":
		return MenuActionQuit
	case "up", "shift+tab":
		return MenuActionUp
	case "down", "tab":
		return MenuActionDown
	case "enter":
		return MenuActionSelect
	}

	return MenuActionNone
}
