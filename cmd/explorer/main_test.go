package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-explorer/internal/storage"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("explorer %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestPeekIsDeterministic(t *testing.T) {
	args := []string{"peek", "--seed", "hello", "--range", "3", "--viewport", "4", "--plain"}

	first := execute(t, args...)
	second := execute(t, args...)
	if first != second {
		t.Errorf("peek output differs between runs:\n%s\n---\n%s", first, second)
	}
	if !strings.HasPrefix(first, "Seed: hello | Range: 3 | Tiles: 25") {
		t.Errorf("unexpected header: %q", strings.SplitN(first, "\n", 2)[0])
	}
	if !strings.Contains(first, "🞚") {
		t.Error("peek should show the player on the origin")
	}
}

func TestSavesListAndRemove(t *testing.T) {
	dir := t.TempDir()
	savesPath := filepath.Join(dir, "saves.json")
	logPath := filepath.Join(dir, "explorer.log")

	store, err := storage.OpenJSONFile(savesPath, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Put("good", "abc|[0,0,1,empty,False,occupied]"); err != nil {
		t.Fatal(err)
	}
	if err := store.Put("bad", "abc|[0,0,1,lava,False,occupied]"); err != nil {
		t.Fatal(err)
	}

	common := []string{"--store", "json", "--saves", savesPath, "--log", logPath}

	out := execute(t, append([]string{"saves"}, common...)...)
	if !strings.Contains(out, "good") || !strings.Contains(out, "unreadable") {
		t.Errorf("saves output:\n%s", out)
	}

	out = execute(t, append([]string{"saves", "rm", "bad"}, common...)...)
	if !strings.Contains(out, `Deleted "bad"`) {
		t.Errorf("rm output: %q", out)
	}

	names, err := store.Names()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "good" {
		t.Errorf("Names() = %v, want [good]", names)
	}
}
