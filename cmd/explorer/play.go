package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-explorer/internal/core"
	"github.com/vovakirdan/tui-explorer/internal/game"
	"github.com/vovakirdan/tui-explorer/internal/platform/tui"
)

var flagNoMenu bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start menu, then play",
	Long: `Open the start menu (seed, generation range, viewport) and play.

Controls:
  Arrows/WASD  - Move
  Q            - Arm/disarm a bomb for the next move
  E/Space      - Interact with the current tile
  [ / ]        - Decrease/increase generation range
  O            - Save
  I            - Load
  Backspace    - New world with a random seed
  ?            - Toggle help
  Esc/Ctrl+C   - Quit

Examples:
  explorer play
  explorer play --seed hello --no-menu
  explorer play --preset generous`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoMenu, "no-menu", false, "Skip the start menu")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, logFile := openLogger(cfg.Log)
	defer logFile.Close()

	// Get terminal size early for the menu
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:         width,
		ScreenH:         height,
		Seed:            flagSeed,
		GenerationRange: cfg.World.GenerationRange,
		Viewport:        cfg.World.Viewport,
	}

	if !flagNoMenu {
		result, err := tui.RunMenu(rc, cfg.World.SeedLength)
		if err != nil {
			return fmt.Errorf("start menu: %w", err)
		}
		if result.Quit {
			return nil
		}
		rc = result.Config
	}
	if rc.Seed == "" {
		rc.Seed = core.RandomSeed(cfg.World.SeedLength)
	}

	cfg.World.GenerationRange = rc.GenerationRange
	cfg.World.Viewport = rc.Viewport
	g, err := game.New(settings(cfg, rc.Seed), game.WithLogger(logger))
	if err != nil {
		return err
	}

	store, err := openStore(cfg.Saves, logger)
	if err != nil {
		return fmt.Errorf("could not open saves: %w", err)
	}
	defer store.Close()

	logger.Info("session started", "seed", rc.Seed, "range", rc.GenerationRange,
		"viewport", rc.Viewport, "preset", cfg.Bombs.Preset)

	runErr := tui.Run(g, store, rc,
		tui.WithModelLogger(logger),
		tui.WithSeedLength(cfg.World.SeedLength),
	)
	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}

	logger.Info("session ended", "seed", g.Seed(), "tiles", g.TileCount(), "saved", g.Saved())
	return nil
}
