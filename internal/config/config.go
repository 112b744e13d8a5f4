// Package config provides YAML-based configuration loading and bomb reward
// presets for the explorer.
package config

import "github.com/vovakirdan/tui-explorer/internal/game"

// ExplorerConfig contains all configuration for the explorer.
type ExplorerConfig struct {
	World WorldConfig `yaml:"world"`
	Bombs BombsConfig `yaml:"bombs"`
	Saves SavesConfig `yaml:"saves"`
	Log   LogConfig   `yaml:"log"`
}

// WorldConfig defines the world parameters offered by the start menu.
type WorldConfig struct {
	GenerationRange int `yaml:"generation_range"`
	Viewport        int `yaml:"viewport"`
	SeedLength      int `yaml:"seed_length"`
}

// BombsConfig defines the bomb supply.
type BombsConfig struct {
	Preset    string `yaml:"preset"`
	Start     int    `yaml:"start"`
	RewardMin int    `yaml:"reward_min"`
	RewardMax int    `yaml:"reward_max"`
	Cap       int    `yaml:"cap"` // 0 = uncapped
}

// SavesConfig defines where save slots live.
type SavesConfig struct {
	Backend    string `yaml:"backend"` // "json" or "sqlite"
	Path       string `yaml:"path"`
	SQLitePath string `yaml:"sqlite_path"`
}

// LogConfig defines the log file.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// Rewards returns the reward policy described by the bombs section.
func (c BombsConfig) Rewards() game.RewardPolicy {
	return game.RewardPolicy{
		Start: c.Start,
		Min:   c.RewardMin,
		Max:   c.RewardMax,
		Cap:   c.Cap,
	}
}

// StorePath returns the path of the configured save backend.
func (c SavesConfig) StorePath() string {
	if c.Backend == "sqlite" {
		return c.SQLitePath
	}
	return c.Path
}
