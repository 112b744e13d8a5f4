package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-explorer/internal/storage"
	"github.com/vovakirdan/tui-explorer/internal/world"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List save slots",
	Long: `List the save slots of the configured backend with their seed and
number of discovered tiles.

Examples:
  explorer saves
  explorer saves --store sqlite
  explorer saves rm old-run`,
	Args: cobra.NoArgs,
	RunE: runSaves,
}

var savesRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a save slot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavesRm,
}

func init() {
	savesCmd.AddCommand(savesRmCmd)
}

func runSaves(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, logFile := openLogger(cfg.Log)
	defer logFile.Close()

	store, err := openStore(cfg.Saves, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	names, err := store.Names()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(out, "No saves yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Press O while playing to save.")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-20s  %-12s  %s\n", "Name", "Seed", "Tiles")
	fmt.Fprintf(out, "  %-20s  %-12s  %s\n", "----", "----", "-----")

	for _, name := range names {
		record, err := store.Get(name)
		if err != nil {
			return err
		}
		grid, err := world.Decode(record)
		if err != nil {
			logger.Warn("unreadable save", "name", name, "error", err)
			fmt.Fprintf(out, "  %-20s  %-12s  %s\n", name, "?", "unreadable")
			continue
		}
		fmt.Fprintf(out, "  %-20s  %-12s  %d\n", name, grid.Seed(), grid.Len())
	}
	return nil
}

func runSavesRm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, logFile := openLogger(cfg.Log)
	defer logFile.Close()

	store, err := openStore(cfg.Saves, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	name := args[0]
	if err := store.Delete(name); err != nil {
		var notFound *storage.SaveNotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("no save called %q; run 'explorer saves' to list them", name)
		}
		return err
	}

	logger.Info("save deleted", "name", name)
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", name)
	return nil
}
