// explorer is a terminal game about walking a procedurally generated,
// effectively infinite tile world.
//
// Usage:
//
//	explorer                 - Start menu, then play (same as "explorer play")
//	explorer play            - Start menu, then play
//	explorer peek            - Print the world around the origin for a seed
//	explorer saves           - List save slots
//	explorer saves rm <name> - Delete a save slot
//
// Global flags:
//
//	--config <path>   - Custom config YAML
//	--seed <value>    - World seed (default: random)
//	--range <n>       - Generation range (default: 1)
//	--viewport <n>    - Render radius (default: 10)
//	--preset <name>   - Bomb reward preset: classic, generous
//	--store <backend> - Save backend: json, sqlite
//	--saves <path>    - Save file path
//	--log <path>      - Log file (default: ~/.explorer/explorer.log)
//	--verbose         - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-explorer/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     string
	flagRange    int
	flagViewport int
	flagPreset   string
	flagStore    string
	flagSaves    string
	flagLog      string
	flagVerbose  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "explorer",
	Short: "Explorer - Walk an endless generated world in your terminal",
	Long: `Explorer is a terminal game set on an effectively infinite grid of
tiles. Every tile is derived from the world seed, so the same seed always
produces the same world. Walls block the way unless you blast through them
with a bomb; shrines grant more bombs.

Available commands:
  play     - Start menu, then play (default)
  peek     - Print the world around the origin for a seed
  saves    - List or delete save slots

Examples:
  explorer
  explorer --seed hello --range 2
  explorer --preset generous --store sqlite
  explorer peek --seed hello
  explorer saves rm old-run`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "World seed (empty = random)")
	rootCmd.PersistentFlags().IntVar(&flagRange, "range", 0, "Generation range (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagViewport, "viewport", 0, "Render radius in tiles (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Bomb reward preset: "+config.PresetNames())
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Save backend: json, sqlite")
	rootCmd.PersistentFlags().StringVar(&flagSaves, "saves", "", "Path to the save file or database")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Path to the log file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(peekCmd)
	rootCmd.AddCommand(savesCmd)
}
