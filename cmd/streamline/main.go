// streamline is a sliding puzzle for the terminal: the piece slides until
// something stops it, and every level is won by landing on the goal.
//
// Usage:
//
//	streamline play [path]     - Play levels from a file or directory in the TUI
//	streamline console [path]  - Play with the line-oriented w/a/s/d prompt
//	streamline levels [path]   - List the levels found at a path
//	streamline generate        - Write a random board in the save format
//	streamline scores [level]  - Show cleared-level records
//
// Global flags:
//
//	--seed <value>      - RNG seed for reproducible boards
//	--db <path>         - Completion database (default: ~/.streamline/streamline.db)
//	--config <path>     - Config YAML
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/streamline/internal/config"
	"github.com/vovakirdan/streamline/internal/games/streamline/levels"
	"github.com/vovakirdan/streamline/internal/storage"
)

var (
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagEnvFile  string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "streamline",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "streamline",
	Short: "Streamline - a sliding puzzle for your terminal",
	Long: `Streamline is a sliding puzzle. Your piece (O) slides in the chosen
direction until it hits the edge, an obstacle (X) or its own trail (.).
Reach the goal (@) to pass the level.

Available commands:
  play      - Play in the terminal UI
  console   - Play with a simple w/a/s/d prompt
  levels    - List levels in a file or directory
  generate  - Write a random board in the save format
  scores    - View cleared-level records

Examples:
  streamline play
  streamline play ./levels
  streamline console saved_streamline_game
  streamline generate --height 8 --width 8 --obstacles 10 --out board.txt`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to completion database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Dotenv file with STREAMLINE_* overrides")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scoresCmd)
}

func setupLogger(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)
	return nil
}

// loadConfig resolves the configuration: YAML search order, then .env and
// STREAMLINE_* overrides.
func loadConfig() (config.StreamlineConfig, error) {
	if err := config.LoadDotEnv(flagEnvFile); err != nil {
		return config.StreamlineConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, os.Getenv); err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "board", fmt.Sprintf("%dx%d", cfg.Board.Height, cfg.Board.Width),
		"obstacles", cfg.Board.Obstacles, "levels", cfg.Levels.Path)
	return cfg, nil
}

func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func newLoader(rng *rand.Rand) *levels.Loader {
	loader := levels.NewLoader("")
	loader.Logger = logger
	loader.Rand = rng
	return loader
}

// openStore opens the completion database. Failure is logged and play
// continues without records.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open completion database", "error", err)
		return nil
	}
	return store
}
