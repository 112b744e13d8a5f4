package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the explorer configuration.
// Search order: customPath -> ~/.explorer/config.yaml -> ./configs/explorer.yaml -> embedded default
func Load(customPath string) (ExplorerConfig, error) {
	// Missing keys keep their default values.
	cfg := DefaultExplorerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return sanitize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := unmarshal(data, &cfg); err == nil {
				return sanitize(cfg), nil
			}
			cfg = DefaultExplorerConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/explorer.yaml"); err == nil {
		if err := unmarshal(data, &cfg); err == nil {
			return sanitize(cfg), nil
		}
		cfg = DefaultExplorerConfig()
	}

	// Use embedded default YAML
	if err := unmarshal(defaultExplorerYAML, &cfg); err != nil {
		return DefaultExplorerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return sanitize(cfg), nil
}

// bombsKeys records which bomb keys a document sets.
type bombsKeys struct {
	Bombs struct {
		Preset    string `yaml:"preset"`
		Start     *int   `yaml:"start"`
		RewardMin *int   `yaml:"reward_min"`
		RewardMax *int   `yaml:"reward_max"`
		Cap       *int   `yaml:"cap"`
	} `yaml:"bombs"`
}

// unmarshal decodes data over cfg. A bombs.preset key supplies the bomb
// values; bomb keys set next to it override the preset.
func unmarshal(data []byte, cfg *ExplorerConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	var keys bombsKeys
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return err
	}
	b := keys.Bombs
	if b.Preset == "" {
		return nil
	}

	preset, err := ParsePreset(b.Preset)
	if err != nil {
		return err
	}
	ApplyPreset(cfg, preset)
	if b.Start != nil {
		cfg.Bombs.Start = *b.Start
	}
	if b.RewardMin != nil {
		cfg.Bombs.RewardMin = *b.RewardMin
	}
	if b.RewardMax != nil {
		cfg.Bombs.RewardMax = *b.RewardMax
	}
	if b.Cap != nil {
		cfg.Bombs.Cap = *b.Cap
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".explorer", filename)
}

// sanitize clamps values the game cannot use.
func sanitize(cfg ExplorerConfig) ExplorerConfig {
	def := DefaultExplorerConfig()
	if cfg.World.GenerationRange < 1 {
		cfg.World.GenerationRange = def.World.GenerationRange
	}
	if cfg.World.Viewport < 1 {
		cfg.World.Viewport = def.World.Viewport
	}
	if cfg.World.SeedLength < 1 {
		cfg.World.SeedLength = def.World.SeedLength
	}
	if cfg.Saves.Backend == "" {
		cfg.Saves.Backend = def.Saves.Backend
	}
	if cfg.Saves.Path == "" {
		cfg.Saves.Path = def.Saves.Path
	}
	if cfg.Saves.SQLitePath == "" {
		cfg.Saves.SQLitePath = def.Saves.SQLitePath
	}
	return cfg
}
