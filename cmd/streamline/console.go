package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/streamline/internal/config"
	"github.com/vovakirdan/streamline/internal/games/streamline/core"
	"github.com/vovakirdan/streamline/internal/games/streamline/levels"
	"github.com/vovakirdan/streamline/internal/storage"
)

var consoleCmd = &cobra.Command{
	Use:   "console [path]",
	Short: "Play with a line-oriented w/a/s/d prompt",
	Long: `Print the board and read one command per word from standard input:

  w/a/s/d  - Slide up/left/down/right
  u        - Undo
  o        - Save the board to the configured save path
  n        - Skip the level
  q        - Quit

Without a path a random board is dealt.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConsoleCmd,
}

func runConsoleCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed()))

	path := cfg.Levels.Path
	if len(args) == 1 {
		path = args[0]
	}

	var p *levels.Playlist
	if path == "" {
		p = levels.NewRandomPlaylist(core.SessionOptions{
			Height:    cfg.Board.Height,
			Width:     cfg.Board.Width,
			Obstacles: cfg.Board.Obstacles,
		}, rng)
	} else {
		p, err = levels.Open(path, newLoader(rng))
		if err != nil {
			return err
		}
	}

	c := &console{
		in:       cmd.InOrStdin(),
		out:      cmd.OutOrStdout(),
		savePath: cfg.Save.Path,
		runID:    storage.NewRunID(),
	}
	if store := openStore(); store != nil {
		defer store.Close()
		c.store = store
	}
	return c.run(p)
}

// console is the prompt loop: print the board, read a word, apply it.
type console struct {
	in       io.Reader
	out      io.Writer
	savePath string
	store    *storage.Store
	runID    string
}

func (c *console) run(p *levels.Playlist) error {
	words := bufio.NewScanner(c.in)
	words.Split(bufio.ScanWords)

	for !p.Done() {
		s := p.Current()
		if s.Current().Completed() {
			fmt.Fprintln(c.out, s.Current())
			fmt.Fprintln(c.out, "Level Passed!")
			c.record(p, s)
			p.Advance()
			continue
		}

		fmt.Fprintln(c.out, s.Current())
		fmt.Fprint(c.out, "> ")
		if !words.Scan() {
			fmt.Fprintln(c.out)
			return words.Err()
		}

		switch w := words.Text(); w {
		case "u":
			s.Undo()
		case "o":
			c.save(s)
		case "n":
			p.Abandon()
		case "q":
			return nil
		default:
			if d := core.ParseDirection(w); d != core.DirNone {
				s.RecordAndMove(d)
			}
		}
	}

	if p.Len() > 1 {
		fmt.Fprintln(c.out, "All levels done.")
	}
	return nil
}

func (c *console) save(s *core.Session) {
	path := c.savePath
	if path == "" {
		path = config.DefaultSavePath
	}
	if err := s.SaveFile(path); err != nil {
		logger.Error("save failed", "path", path, "error", err)
		return
	}
	fmt.Fprintf(c.out, "Saved current state to: %s\n", path)
}

func (c *console) record(p *levels.Playlist, s *core.Session) {
	if c.store == nil {
		return
	}
	lvl, _ := p.Level()
	if _, err := c.store.SaveCompletion(storage.Completion{
		RunID:   c.runID,
		LevelID: lvl.ID,
		Moves:   s.Moves(),
		Undos:   s.Undos(),
	}); err != nil {
		logger.Warn("could not record completion", "level", lvl.ID, "error", err)
	}
}
