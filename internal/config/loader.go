package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the YAML configuration.
const (
	EnvLevels    = "STREAMLINE_LEVELS"
	EnvSave      = "STREAMLINE_SAVE"
	EnvObstacles = "STREAMLINE_OBSTACLES"
)

const configFile = "streamline.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.streamline/configs/streamline.yaml ->
// ./configs/streamline.yaml -> embedded default -> hardcoded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (StreamlineConfig, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil && fileCfg.Validate() == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	embedded := DefaultConfig()
	if err := yaml.Unmarshal(defaultStreamlineYAML, &embedded); err != nil {
		return cfg, nil
	}
	return embedded, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".streamline", "configs", filename)
}

// LoadDotEnv loads variables from a .env file into the process environment.
// A missing file is not an error. Variables already set win.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with the STREAMLINE_* variables returned by getenv.
func ApplyEnv(cfg *StreamlineConfig, getenv func(string) string) error {
	if v := getenv(EnvLevels); v != "" {
		cfg.Levels.Path = v
	}
	if v := getenv(EnvSave); v != "" {
		cfg.Save.Path = v
	}
	if v := getenv(EnvObstacles); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvObstacles, err)
		}
		cfg.Board.Obstacles = n
	}
	return cfg.Validate()
}

// Validate checks that the configuration describes a playable setup.
func (c StreamlineConfig) Validate() error {
	if c.Board.Height <= 0 || c.Board.Width <= 0 {
		return fmt.Errorf("config: board size %dx%d must be positive", c.Board.Height, c.Board.Width)
	}
	if c.Board.Obstacles < 0 {
		return fmt.Errorf("config: obstacles %d must not be negative", c.Board.Obstacles)
	}
	if c.UI.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate %d must be positive", c.UI.TickRate)
	}
	if c.Difficulty.MaxDensity < 0 || c.Difficulty.MaxDensity > 1 {
		return fmt.Errorf("config: max_density %.2f must be within [0, 1]", c.Difficulty.MaxDensity)
	}
	if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
		return err
	}
	return nil
}
