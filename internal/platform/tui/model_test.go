package tui

import (
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-explorer/internal/core"
	"github.com/vovakirdan/tui-explorer/internal/game"
	"github.com/vovakirdan/tui-explorer/internal/storage"
	"github.com/vovakirdan/tui-explorer/internal/world"
)

// testWorld has a wall east of the origin and a shrine to the north.
func testWorld(x, y int, _ string) world.TileType {
	switch world.C(x, y) {
	case world.C(0, 1):
		return world.TileWall
	case world.C(-1, 0):
		return world.TileShrine
	default:
		return world.TileEmpty
	}
}

func newTestModel(t *testing.T) (Model, storage.SlotStore) {
	t.Helper()
	g, err := game.New(
		game.Settings{Seed: "abc", GenerationRange: 1, Viewport: 3, Rewards: game.ClassicRewards()},
		game.WithOracle(testWorld),
		game.WithRand(rand.New(rand.NewPCG(1, 2))),
	)
	if err != nil {
		t.Fatalf("game.New() failed: %v", err)
	}
	slots, err := storage.OpenJSONFile(filepath.Join(t.TempDir(), "saves.json"), nil)
	if err != nil {
		t.Fatalf("OpenJSONFile() failed: %v", err)
	}
	return NewModel(g, slots, core.DefaultConfig()), slots
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update() returned %T", next)
		}
	}
	return m
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestModelBlockedThenBombed(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, runes("d"))
	if m.Game().Position() != world.Origin {
		t.Fatalf("walked into a wall: %s", m.Game().Position())
	}
	if !m.statusErr || !strings.Contains(m.status, "blocked") {
		t.Errorf("status = %q, want a blocked error", m.status)
	}

	m = press(t, m, runes("q"))
	if !m.Game().Bombing() {
		t.Fatal("q should arm the bomb")
	}
	m = press(t, m, runes("d"))
	if got := m.Game().Position(); got != world.C(0, 1) {
		t.Errorf("Position() = %s, want (0,1)", got)
	}
	if m.Game().Bombs() != 2 {
		t.Errorf("Bombs() = %d, want 2", m.Game().Bombs())
	}
}

func TestModelInteract(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, runes("e"))
	if m.status != "Nothing to interact with here" {
		t.Errorf("status = %q", m.status)
	}

	m = press(t, m, runes("w"), runes("e"))
	if m.Game().Bombs() != 4 {
		t.Errorf("Bombs() = %d, want 4", m.Game().Bombs())
	}
	if !strings.Contains(m.status, "+1 bombs") {
		t.Errorf("status = %q, want the reward", m.status)
	}
}

func TestModelRangeAndReset(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, runes("]"))
	if m.Game().GenerationRange() != 2 {
		t.Errorf("GenerationRange() = %d, want 2", m.Game().GenerationRange())
	}
	m = press(t, m, runes("["), runes("["))
	if m.Game().GenerationRange() != 1 {
		t.Errorf("GenerationRange() = %d, want 1", m.Game().GenerationRange())
	}

	m = press(t, m, runes("s"), tea.KeyMsg{Type: tea.KeyBackspace})
	if m.Game().Position() != world.Origin {
		t.Errorf("reset should return to the origin")
	}
	if len(m.Game().Seed()) != core.SeedLength || m.Game().Seed() == "abc" {
		t.Errorf("Seed() = %q, want a fresh random seed", m.Game().Seed())
	}
}

func TestModelSaveOverwriteAndLoad(t *testing.T) {
	m, slots := newTestModel(t)

	m = press(t, m, runes("o"), runes("run"), enter)
	if m.mode != modePlaying {
		t.Fatalf("mode = %d after saving", m.mode)
	}
	if ok, _ := storage.Exists(slots, "run"); !ok {
		t.Fatal("save run was not written")
	}

	// Move away, then save under the same name and decline the overwrite.
	m = press(t, m, runes("s"))
	if m.Game().Saved() {
		t.Fatal("moving should leave the game unsaved")
	}
	m = press(t, m, runes("o"), runes("run"), enter)
	if m.mode != modeConfirmOverwrite {
		t.Fatalf("mode = %d, want overwrite confirmation", m.mode)
	}
	m = press(t, m, runes("n"))
	if !m.Game().Saved() {
		t.Error("declining the overwrite should still save")
	}

	names, err := slots.Names()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(names, ",") != "run,run_1" {
		t.Errorf("Names() = %v, want [run run_1]", names)
	}

	m = press(t, m, runes("i"), runes("run"), enter)
	if m.mode != modePlaying {
		t.Fatalf("mode = %d after loading", m.mode)
	}
	if m.Game().Position() != world.Origin {
		t.Errorf("Position() = %s, want the saved origin", m.Game().Position())
	}
}

func TestModelOverwriteAccepted(t *testing.T) {
	m, slots := newTestModel(t)

	m = press(t, m, runes("o"), runes("run"), enter, runes("s"))
	m = press(t, m, runes("o"), runes("run"), enter, runes("y"))

	names, _ := slots.Names()
	if len(names) != 1 {
		t.Errorf("Names() = %v, want a single overwritten save", names)
	}
	record, _ := slots.Get("run")
	if !strings.Contains(record, "[1,0,") || !strings.Contains(record, "occupied") {
		t.Errorf("record %q does not hold the moved player", record)
	}
}

func TestModelLoadUnsavedAsksFirst(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, runes("s"), runes("i"))
	if m.mode != modeConfirmDiscard {
		t.Fatalf("mode = %d, want discard confirmation", m.mode)
	}
	m = press(t, m, runes("n"))
	if m.mode != modePlaying {
		t.Errorf("declining should return to play, mode = %d", m.mode)
	}

	m = press(t, m, runes("i"), runes("y"))
	if m.mode != modeLoadName {
		t.Errorf("mode = %d, want load prompt", m.mode)
	}
	m = press(t, m, esc)
	if m.mode != modePlaying {
		t.Errorf("esc should close the prompt, mode = %d", m.mode)
	}
}

func TestModelLoadFailures(t *testing.T) {
	m, slots := newTestModel(t)
	if err := slots.Put("lava", "abc|[0,0,1,lava,False,occupied]"); err != nil {
		t.Fatal(err)
	}
	if err := slots.Put("junk", "no separator"); err != nil {
		t.Fatal(err)
	}

	m = press(t, m, runes("i"), runes("missing"), enter)
	if m.mode != modeLoadName || !m.statusErr {
		t.Errorf("missing save: mode = %d, status = %q", m.mode, m.status)
	}
	m = press(t, m, esc)

	for _, name := range []string{"lava", "junk"} {
		m = press(t, m, runes("i"), runes(name), enter)
		if m.mode != modeLoadFailed {
			t.Fatalf("%s: mode = %d, want retry-or-abort", name, m.mode)
		}
		m = press(t, m, runes("r"))
		if m.mode != modeLoadName {
			t.Fatalf("%s: retry should reopen the prompt, mode = %d", name, m.mode)
		}
		m = press(t, m, runes(name), enter, runes("a"))
		if m.mode != modePlaying {
			t.Fatalf("%s: abort should return to play, mode = %d", name, m.mode)
		}
	}

	if m.Game().Seed() != "abc" || m.Game().TileCount() != 5 {
		t.Error("failed loads changed the game")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	for _, want := range []string{
		"X: 0 | Y: 0 | Tile_ID: 1 | Tile_Type: empty",
		"Bombs: 3/5",
		"Seed: abc",
		"saved",
		"🞚",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}

	m = press(t, m, runes("o"))
	if !strings.Contains(m.View(), "Save name:") {
		t.Error("View() should show the save prompt")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(esc)
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if next.(Model).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
