package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-explorer/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNorth, false},
		{"w", runes("w"), core.ActionNorth, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSouth, false},
		{"s", runes("s"), core.ActionSouth, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionEast, false},
		{"d", runes("d"), core.ActionEast, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionWest, false},
		{"a", runes("a"), core.ActionWest, false},
		{"q arms bomb", runes("q"), core.ActionBomb, false},
		{"e", runes("e"), core.ActionInteract, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionInteract, false},
		{"]", runes("]"), core.ActionRangeUp, false},
		{"=", runes("="), core.ActionRangeUp, false},
		{"[", runes("["), core.ActionRangeDown, false},
		{"-", runes("-"), core.ActionRangeDown, false},
		{"o", runes("o"), core.ActionSave, false},
		{"i", runes("i"), core.ActionLoad, false},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionReset, false},
		{"?", runes("?"), core.ActionHelp, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runes("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.wantQuit {
				t.Errorf("MapKey() = %v, %v; want %v, %v", got, quit, tt.want, tt.wantQuit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionQuit},
		// Letters belong to the text fields.
		{runes("q"), MenuActionNone},
		{runes("w"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
