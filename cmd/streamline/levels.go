package main

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [path]",
	Short: "List levels in a file or directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := cfg.Levels.Path
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no levels path: pass one or set levels.path in the config")
	}

	loader := newLoader(rand.New(rand.NewSource(seed())))
	loader.Root = path
	lvls, err := loader.LoadAll()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSIZE\tFILE")
	for _, l := range lvls {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%s\n",
			l.ID, l.Title(), l.Board.Height(), l.Board.Width(), filepath.Base(l.FilePath))
	}
	return w.Flush()
}
