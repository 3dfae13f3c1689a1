package config

import (
	_ "embed"
)

//go:embed defaults/streamline.yaml
var defaultStreamlineYAML []byte

// DefaultSavePath is where the save action writes when nothing else is
// configured.
const DefaultSavePath = "saved_streamline_game"

// DefaultConfig returns the hardcoded configuration.
func DefaultConfig() StreamlineConfig {
	return StreamlineConfig{
		Board: BoardConfig{
			Height:    6,
			Width:     5,
			Obstacles: 3,
		},
		Save: SaveConfig{
			Path: DefaultSavePath,
		},
		UI: UIConfig{
			TickRate:   30,
			ClearTicks: 45,
		},
		Difficulty: DifficultyConfig{
			Preset:       DifficultyNormal,
			ObstacleStep: 1,
			MaxDensity:   0.35,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultStreamlineYAML
}
