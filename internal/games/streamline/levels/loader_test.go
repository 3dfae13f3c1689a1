package levels_test

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/vovakirdan/streamline/internal/games/streamline/core"
	"github.com/vovakirdan/streamline/internal/games/streamline/levels"
)

// getTestdataPath returns path to testdata/levels.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	return filepath.Join(dir, "..", "testdata", "levels")
}

func newLoader(root string) *levels.Loader {
	l := levels.NewLoader(root)
	l.Rand = rand.New(rand.NewSource(7))
	return l
}

func TestLoaderLoadAllSkipsBrokenFiles(t *testing.T) {
	lvls, err := newLoader(getTestdataPath()).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	want := []string{"lvl01", "02_corner", "lvl03"}
	if len(lvls) != len(want) {
		t.Fatalf("expected %d levels, got %d", len(want), len(lvls))
	}
	for i, id := range want {
		if lvls[i].ID != id {
			t.Errorf("level %d: expected ID %q, got %q", i, id, lvls[i].ID)
		}
	}
}

func TestLoaderYAMLRows(t *testing.T) {
	lvl, err := newLoader(getTestdataPath()).LoadByID("lvl01")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if lvl.Name != "First Steps" {
		t.Errorf("expected Name 'First Steps', got %q", lvl.Name)
	}
	b := lvl.Board
	if b.Height() != 5 || b.Width() != 5 {
		t.Fatalf("expected 5x5, got %dx%d", b.Height(), b.Width())
	}
	if b.Player() != core.P(4, 0) || b.Goal() != core.P(0, 4) {
		t.Errorf("player %v goal %v", b.Player(), b.Goal())
	}
	if b.At(core.P(2, 2)) != core.CellObstacle {
		t.Error("expected obstacle at (2,2)")
	}
	if b.At(core.P(4, 0)) != core.CellEmpty || b.At(core.P(0, 4)) != core.CellEmpty {
		t.Error("marker cells should load as empty")
	}
	if lvl.Metadata["hint"] != "up, then right" {
		t.Errorf("unexpected metadata %v", lvl.Metadata)
	}
}

func TestLoaderTextFileUsesFileName(t *testing.T) {
	path := filepath.Join(getTestdataPath(), "02_corner.txt")
	lvl, err := newLoader(path).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if lvl.ID != "02_corner" {
		t.Errorf("expected ID from file name, got %q", lvl.ID)
	}
	if lvl.Title() != "02_corner" {
		t.Errorf("Title should fall back to ID, got %q", lvl.Title())
	}
	if lvl.FilePath != path {
		t.Errorf("FilePath = %q", lvl.FilePath)
	}
	if got := lvl.Board.Count(core.CellObstacle); got != 1 {
		t.Errorf("expected 1 obstacle, got %d", got)
	}
}

func TestLoaderRandomObstacles(t *testing.T) {
	lvl, err := newLoader(getTestdataPath()).LoadByID("lvl03")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if got := lvl.Board.Count(core.CellObstacle); got != 2 {
		t.Errorf("expected 2 scattered obstacles, got %d", got)
	}
	if lvl.Board.At(lvl.Board.Player()) == core.CellObstacle || lvl.Board.At(lvl.Board.Goal()) == core.CellObstacle {
		t.Error("obstacle placed on player or goal")
	}
}

func TestLoaderSingleFileRoot(t *testing.T) {
	path := filepath.Join(getTestdataPath(), "01_first.yaml")
	lvls, err := newLoader(path).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 1 || lvls[0].ID != "lvl01" {
		t.Errorf("unexpected levels %+v", lvls)
	}
}

func TestLoaderBrokenSingleFile(t *testing.T) {
	path := filepath.Join(getTestdataPath(), "04_broken.txt")
	_, err := newLoader(path).LoadAll()
	if err == nil {
		t.Fatal("expected error for broken file")
	}
	var le *core.LoadError
	if !errors.As(err, &le) {
		t.Errorf("expected *core.LoadError in chain, got %v", err)
	}
}

func TestLoaderEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.txt"), []byte("1 x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := newLoader(dir).LoadAll()
	if !errors.Is(err, levels.ErrNoLevels) {
		t.Errorf("expected ErrNoLevels, got %v", err)
	}
}

func TestLoaderSkipsOversizedBoards(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a_ok.txt":       "1 2\n0 0\n0 1\n  \n",
		"b_overflow.txt": "3037000500 3037000500\n0 0\n0 1\n",
		"c_huge.txt":     "100000 100000\n0 0\n0 1\n",
		"d_huge.yaml":    "size: {h: 100000, w: 100000}\n",
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	lvls, err := newLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 1 || lvls[0].ID != "a_ok" {
		t.Errorf("expected only a_ok, got %+v", lvls)
	}
}

func TestLoaderMissingPath(t *testing.T) {
	_, err := newLoader(filepath.Join(t.TempDir(), "nope")).LoadAll()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoaderListIDs(t *testing.T) {
	ids, err := newLoader(getTestdataPath()).ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 3 || ids[0] != "lvl01" {
		t.Errorf("unexpected ids %v", ids)
	}
}

func TestLoaderLoadByIDNotFound(t *testing.T) {
	if _, err := newLoader(getTestdataPath()).LoadByID("missing"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestLevelNewSessionIsFresh(t *testing.T) {
	lvl, err := newLoader(getTestdataPath()).LoadByID("lvl01")
	if err != nil {
		t.Fatal(err)
	}

	s := lvl.NewSession()
	s.RecordAndMove(core.DirUp)
	if s.Current().Equal(lvl.Board) {
		t.Fatal("move should change the session board")
	}
	if lvl.Board.At(core.P(4, 0)) != core.CellEmpty {
		t.Error("playing a session must not touch the level template")
	}
}
