package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/streamline/internal/config"
	"github.com/vovakirdan/streamline/internal/core"
	_ "github.com/vovakirdan/streamline/internal/games/streamline"
	"github.com/vovakirdan/streamline/internal/games/streamline/levels"
	"github.com/vovakirdan/streamline/internal/platform/tui"
	"github.com/vovakirdan/streamline/internal/registry"
)

var (
	flagRandom     bool
	flagDifficulty string
	flagFPS        int
)

var playCmd = &cobra.Command{
	Use:   "play [path]",
	Short: "Play in the terminal UI",
	Long: `Play the levels in a file or directory. Without a path the configured
levels path is used; with none configured, random boards are dealt.

Controls:
  Arrows/WASD  - Slide
  U            - Undo
  O            - Save the board
  N            - Skip the level
  R            - Restart the level
  ?            - More keys
  Q/Ctrl+C     - Quit

Difficulty options (random boards):
  easy   - One obstacle fewer, growing each cleared board
  normal - Configured obstacles, growing each cleared board
  hard   - Two obstacles more, growing each cleared board
  fixed  - Configured obstacles, no progression

Examples:
  streamline play
  streamline play ./levels
  streamline play --random --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRandom, "random", false, "Play random boards even if levels are configured")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config value)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		if err := config.ApplyPreset(&cfg, flagDifficulty); err != nil {
			return err
		}
	}

	s := seed()
	rng := rand.New(rand.NewSource(s))

	path := cfg.Levels.Path
	if len(args) == 1 {
		path = args[0]
	}

	var lvls []levels.Level
	if !flagRandom && path != "" {
		loader := newLoader(rng)
		loader.Root = path
		lvls, err = loader.LoadAll()
		if err != nil {
			return err
		}
	}

	setup := registry.Setup{Config: cfg, Levels: lvls}
	mode, err := registry.Select(setup, flagRandom)
	if err != nil {
		return err
	}
	game, err := registry.Create(mode.ID, setup)
	if err != nil {
		return err
	}
	logger.Info("starting", "mode", mode.ID, "levels", len(lvls), "path", path)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	tickRate := cfg.UI.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	final, err := tui.Run(game, store, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     s,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("run finished", "mode", mode.ID, "cleared", final.Cleared(), "run", final.RunID())
	return nil
}
