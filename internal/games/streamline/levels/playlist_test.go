package levels_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/streamline/internal/games/streamline/core"
	"github.com/vovakirdan/streamline/internal/games/streamline/levels"
)

func loadPlaylist(t *testing.T) *levels.Playlist {
	t.Helper()
	p, err := levels.Open(getTestdataPath(), newLoader(""))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return p
}

func TestPlaylistAdvanceRequiresCompletion(t *testing.T) {
	p := loadPlaylist(t)
	if p.Len() != 3 || p.Index() != 0 {
		t.Fatalf("Len=%d Index=%d", p.Len(), p.Index())
	}

	if p.Advance() {
		t.Fatal("Advance should refuse an unfinished level")
	}

	s := p.Current()
	s.RecordAndMove(core.DirUp)
	s.RecordAndMove(core.DirRight)
	if !s.Current().Completed() {
		t.Fatalf("expected lvl01 solved by up, right:\n%s", s.Current())
	}

	if !p.Advance() {
		t.Fatal("Advance should accept a completed level")
	}
	if p.Index() != 1 {
		t.Errorf("expected index 1, got %d", p.Index())
	}
	lvl, ok := p.Level()
	if !ok || lvl.ID != "02_corner" {
		t.Errorf("expected 02_corner, got %q", lvl.ID)
	}
	if p.Current().Depth() != 0 {
		t.Error("next level should start with empty history")
	}
}

func TestPlaylistAbandonToEnd(t *testing.T) {
	p := loadPlaylist(t)
	for range p.Len() {
		if !p.Abandon() {
			t.Fatal("Abandon should skip while levels remain")
		}
	}

	if !p.Done() {
		t.Fatal("expected playlist done")
	}
	if p.Current() != nil {
		t.Error("Current should be nil when done")
	}
	if _, ok := p.Level(); ok {
		t.Error("Level should report false when done")
	}
	if p.Abandon() || p.Advance() {
		t.Error("no transitions after done")
	}
}

func TestPlaylistRestart(t *testing.T) {
	p := loadPlaylist(t)
	p.Current().RecordAndMove(core.DirUp)
	p.Restart()

	lvl, _ := p.Level()
	if !p.Current().Current().Equal(lvl.Board) {
		t.Error("Restart should return to the level's starting board")
	}
	if p.Current().Depth() != 0 {
		t.Error("Restart should clear history")
	}
}

func TestOpenEmptyPathIsRandom(t *testing.T) {
	loader := levels.NewLoader("")
	loader.Rand = rand.New(rand.NewSource(1))

	p, err := levels.Open("", loader)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if p.Len() != 1 {
		t.Fatalf("expected a single random level, got %d", p.Len())
	}

	b := p.Current().Current()
	if b.Height() != core.DefaultHeight || b.Width() != core.DefaultWidth {
		t.Errorf("expected default size, got %dx%d", b.Height(), b.Width())
	}
	if got := b.Count(core.CellObstacle); got != core.DefaultObstacles {
		t.Errorf("expected %d obstacles, got %d", core.DefaultObstacles, got)
	}
}

func TestOpenNilLoader(t *testing.T) {
	p, err := levels.Open("", nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if p.Len() != 1 || p.Current() == nil {
		t.Fatalf("expected one live random level, got %d", p.Len())
	}

	p, err = levels.Open(getTestdataPath(), nil)
	if err != nil {
		t.Fatalf("Open with path failed: %v", err)
	}
	if p.Len() != 3 {
		t.Errorf("expected 3 levels, got %d", p.Len())
	}
}
