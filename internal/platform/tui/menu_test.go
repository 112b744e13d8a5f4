package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-explorer/internal/core"
)

func pressMenu(t *testing.T, m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(MenuModel)
		if !ok {
			t.Fatalf("Update() returned %T", next)
		}
	}
	return m
}

func TestMenuDefaults(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), 8)

	if got := len(m.inputs[fieldSeed].Value()); got != 8 {
		t.Errorf("random seed length = %d, want 8", got)
	}
	if m.inputs[fieldRange].Value() != "1" {
		t.Errorf("range = %q, want 1", m.inputs[fieldRange].Value())
	}
	if m.inputs[fieldViewport].Value() != "10" {
		t.Errorf("viewport = %q, want 10", m.inputs[fieldViewport].Value())
	}
}

func TestMenuPlay(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = "abc"
	m := NewMenuModel(cfg, 8)

	m = pressMenu(t, m, runes("d"), enter, enter, enter)
	if m.focus != fieldPlay {
		t.Fatalf("focus = %d, want Play", m.focus)
	}
	m = pressMenu(t, m, enter)
	if !m.Selected() {
		t.Fatalf("Play was not selected, err = %q", m.err)
	}
	if got := m.Config(); got.Seed != "abcd" || got.GenerationRange != 1 || got.Viewport != 10 {
		t.Errorf("Config() = %+v", got)
	}
}

func TestMenuRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		field int
		value string
	}{
		{"empty seed", fieldSeed, ""},
		{"pipe in seed", fieldSeed, "a|b"},
		{"zero range", fieldRange, "0"},
		{"text viewport", fieldViewport, "wide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := core.DefaultConfig()
			cfg.Seed = "abc"
			m := NewMenuModel(cfg, 8)
			m.inputs[tt.field].SetValue(tt.value)

			m = pressMenu(t, m.setFocus(fieldPlay), enter)
			if m.Selected() {
				t.Error("invalid input should not start a game")
			}
			if m.err == "" {
				t.Error("expected an error message")
			}
		})
	}
}

func TestMenuFocusWraps(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), 8)

	m = pressMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.focus != fieldPlay {
		t.Errorf("focus = %d, want wrap to Play", m.focus)
	}
	m = pressMenu(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != fieldSeed {
		t.Errorf("focus = %d, want wrap to seed", m.focus)
	}
	m = pressMenu(t, m, esc)
	if !m.IsQuitting() {
		t.Error("esc should quit the menu")
	}
}
