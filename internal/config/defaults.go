package config

import (
	_ "embed"
)

//go:embed defaults/explorer.yaml
var defaultExplorerYAML []byte

// DefaultExplorerConfig returns the hardcoded configuration.
func DefaultExplorerConfig() ExplorerConfig {
	return ExplorerConfig{
		World: WorldConfig{
			GenerationRange: 1,
			Viewport:        10,
			SeedLength:      8,
		},
		Bombs: BombsConfig{
			Preset:    string(PresetClassic),
			Start:     3,
			RewardMin: 1,
			RewardMax: 1,
			Cap:       5,
		},
		Saves: SavesConfig{
			Backend:    "json",
			Path:       "~/.explorer/saves.json",
			SQLitePath: "~/.explorer/saves.db",
		},
		Log: LogConfig{
			Path:  "~/.explorer/explorer.log",
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultExplorerYAML
}
