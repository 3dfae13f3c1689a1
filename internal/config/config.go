// Package config provides YAML-based configuration loading and difficulty
// management for Streamline.
package config

import "fmt"

// StreamlineConfig contains all configuration for the game.
type StreamlineConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Levels     LevelsConfig     `yaml:"levels"`
	Save       SaveConfig       `yaml:"save"`
	UI         UIConfig         `yaml:"ui"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the generated board used when no level is given.
type BoardConfig struct {
	Height    int `yaml:"height"`
	Width     int `yaml:"width"`
	Obstacles int `yaml:"obstacles"`
}

// LevelsConfig points at a level file or directory.
type LevelsConfig struct {
	Path string `yaml:"path"` // empty means a random board
}

// SaveConfig defines where the save action writes the current board.
type SaveConfig struct {
	Path string `yaml:"path"`
}

// UIConfig defines terminal UI timing.
type UIConfig struct {
	TickRate   int `yaml:"tick_rate"`   // Ticks per second
	ClearTicks int `yaml:"clear_ticks"` // How long the cleared banner stays up
}

// DifficultyConfig defines obstacle progression across random boards.
type DifficultyConfig struct {
	Preset       DifficultyPreset `yaml:"preset"`
	ObstacleStep int              `yaml:"obstacle_step"` // Extra obstacles per cleared board
	MaxDensity   float64          `yaml:"max_density"`   // Upper bound on obstacles / cells
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ObstacleOffset returns how many obstacles a preset adds to the base count.
func ObstacleOffset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return -1
	case DifficultyHard:
		return 2
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset sets the preset, validating its name.
func ApplyPreset(cfg *StreamlineConfig, preset string) error {
	p, err := ParsePreset(preset)
	if err != nil {
		return err
	}
	cfg.Difficulty.Preset = p
	return nil
}
