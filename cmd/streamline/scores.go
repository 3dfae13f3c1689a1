package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/streamline/internal/platform/tui"
	"github.com/vovakirdan/streamline/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "View cleared-level records",
	Long: `Without a level, list every level with its clear count and best move
count. With a level, list its best clears (fewest moves first).

Examples:
  streamline scores
  streamline scores lvl01
  streamline scores --tui
  streamline scores lvl01 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse records in the terminal UI")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the records of the given level")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Records to show for a level")
}

func runScores(cmd *cobra.Command, args []string) error {
	var level string
	if len(args) == 1 {
		level = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if level == "" {
			return fmt.Errorf("--clear needs a level")
		}
		n, err := store.ClearLevel(level)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d record(s) for %s\n", n, level)
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, level, width, height)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if level == "" {
		stats, err := store.LevelStats()
		if err != nil {
			return err
		}
		if len(stats) == 0 {
			fmt.Fprintln(out, "No levels cleared yet.")
			return nil
		}
		fmt.Fprintln(w, "LEVEL\tCLEARS\tBEST\tLAST PLAYED")
		for _, st := range stats {
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\n",
				st.LevelID, st.Clears, st.BestMoves, st.LastPlayed.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	}

	records, err := store.BestCompletions(level, flagScoresLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintf(out, "No clears recorded for %s.\n", level)
		return nil
	}
	fmt.Fprintln(w, "RANK\tMOVES\tUNDOS\tDATE")
	for i, c := range records {
		fmt.Fprintf(w, "#%d\t%d\t%d\t%s\n", i+1, c.Moves, c.Undos, c.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
