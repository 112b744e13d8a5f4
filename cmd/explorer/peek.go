package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-explorer/internal/core"
	"github.com/vovakirdan/tui-explorer/internal/game"
	"github.com/vovakirdan/tui-explorer/internal/platform/tui"
	"github.com/vovakirdan/tui-explorer/internal/world"
)

var flagPlain bool

var peekCmd = &cobra.Command{
	Use:   "peek",
	Short: "Print the world around the origin for a seed",
	Long: `Generate a fresh world and print the window around the origin without
starting the game. The same seed always prints the same picture.

Examples:
  explorer peek --seed hello
  explorer peek --seed hello --range 5 --viewport 6
  explorer peek --seed hello --plain > world.txt`,
	Args: cobra.NoArgs,
	RunE: runPeek,
}

func init() {
	peekCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print without colors")
}

func runPeek(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == "" {
		seed = core.RandomSeed(cfg.World.SeedLength)
	}

	g, err := game.New(settings(cfg, seed))
	if err != nil {
		return err
	}

	w, h := tui.WindowSize(g.Viewport())
	screen := core.NewScreen(max(w, legendWidth), h+2+len(legend))
	tui.DrawWindow(screen, g.Window(), 0, 0)
	drawLegend(screen, h+1)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seed: %s | Range: %d | Tiles: %d\n\n", g.Seed(), g.GenerationRange(), g.TileCount())
	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(out, screen.String())
	} else {
		fmt.Fprintln(out, tui.RenderScreen(screen))
	}
	return nil
}

var legend = []struct {
	tile *world.Tile
	text string
}{
	{&world.Tile{Type: world.TileEmpty, Occupied: true}, "you"},
	{&world.Tile{Type: world.TileEmpty}, "empty"},
	{&world.Tile{Type: world.TileWall, HasCollision: true}, "wall"},
	{&world.Tile{Type: world.TileShrine, CanInteract: true}, "shrine"},
	{nil, "undiscovered"},
}

const legendWidth = 16

// drawLegend draws a separator at row y followed by one line per glyph.
func drawLegend(s *core.Screen, y int) {
	s.DrawHLine(0, y, s.Width(), '─', core.ColorGray)
	for i, entry := range legend {
		r, c := tui.Glyph(entry.tile)
		s.Set(0, y+1+i, r, c)
		s.DrawText(2, y+1+i, entry.text, core.ColorDefault)
	}
}
