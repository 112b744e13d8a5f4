package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-explorer/internal/game"
)

// RewardPreset names a predefined bomb supply.
type RewardPreset string

const (
	PresetClassic  RewardPreset = "classic"  // one bomb per shrine, cap 5
	PresetGenerous RewardPreset = "generous" // one to three bombs per shrine, no cap
)

// AllPresets returns all reward presets in display order.
func AllPresets() []RewardPreset {
	return []RewardPreset{PresetClassic, PresetGenerous}
}

// PresetNames lists the preset names for help and error text.
func PresetNames() string {
	names := make([]string, 0, len(AllPresets()))
	for _, p := range AllPresets() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

// ParsePreset converts a string to a RewardPreset.
func ParsePreset(s string) (RewardPreset, error) {
	want := RewardPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, p := range AllPresets() {
		if p == want {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown reward preset %q (want one of %s)", s, PresetNames())
}

// Policy returns the reward policy of the preset.
func (p RewardPreset) Policy() game.RewardPolicy {
	if p == PresetGenerous {
		return game.GenerousRewards()
	}
	return game.ClassicRewards()
}

// ApplyPreset overwrites the bombs section with the values of a preset.
func ApplyPreset(cfg *ExplorerConfig, preset RewardPreset) {
	policy := preset.Policy()
	cfg.Bombs = BombsConfig{
		Preset:    string(preset),
		Start:     policy.Start,
		RewardMin: policy.Min,
		RewardMax: policy.Max,
		Cap:       policy.Cap,
	}
}
