package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-explorer/internal/config"
	"github.com/vovakirdan/tui-explorer/internal/game"
	"github.com/vovakirdan/tui-explorer/internal/storage"
)

// loadConfig loads the config file and applies command line overrides.
func loadConfig() (config.ExplorerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagPreset != "" {
		preset, err := config.ParsePreset(flagPreset)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagRange > 0 {
		cfg.World.GenerationRange = flagRange
	}
	if flagViewport > 0 {
		cfg.World.Viewport = flagViewport
	}
	if flagStore != "" {
		cfg.Saves.Backend = flagStore
	}
	if flagSaves != "" {
		if cfg.Saves.Backend == storage.BackendSQLite {
			cfg.Saves.SQLitePath = flagSaves
		} else {
			cfg.Saves.Path = flagSaves
		}
	}
	if flagLog != "" {
		cfg.Log.Path = flagLog
	}
	if flagVerbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// settings returns the game settings described by cfg for seed.
func settings(cfg config.ExplorerConfig, seed string) game.Settings {
	return game.Settings{
		Seed:            seed,
		GenerationRange: cfg.World.GenerationRange,
		Viewport:        cfg.World.Viewport,
		Rewards:         cfg.Bombs.Rewards(),
	}
}

// openLogger opens the log file. The terminal belongs to the TUI, so logs
// never go to stderr. On failure logging is disabled.
func openLogger(cfg config.LogConfig) (*log.Logger, io.Closer) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "explorer",
	}

	path, err := expandHome(cfg.Path)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	var f *os.File
	if err == nil {
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return log.NewWithOptions(io.Discard, opts), io.NopCloser(nil)
	}

	logger := log.NewWithOptions(f, opts)
	if level, err := log.ParseLevel(cfg.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger, f
}

// openStore opens the configured save backend.
func openStore(cfg config.SavesConfig, logger *log.Logger) (storage.SlotStore, error) {
	store, err := storage.Open(cfg.Backend, cfg.StorePath(), logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("save store opened", "backend", cfg.Backend, "path", cfg.StorePath())
	return store, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
