package levels

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/streamline/internal/games/streamline/core"
)

// Playlist is an ordered sequence of levels with one live session for the
// current level.
type Playlist struct {
	levels  []Level
	index   int
	session *core.Session
}

// NewPlaylist starts a playlist at the first level.
func NewPlaylist(levels []Level) *Playlist {
	p := &Playlist{levels: levels}
	p.start()
	return p
}

// NewRandomPlaylist builds a single-level playlist around a generated board.
func NewRandomPlaylist(opts core.SessionOptions, rng *rand.Rand) *Playlist {
	s := core.NewSession(opts, rng)
	b := s.Current()
	lvl := Level{
		ID:    fmt.Sprintf("random-%dx%d", b.Height(), b.Width()),
		Name:  "Random",
		Board: b.Clone(),
	}
	return &Playlist{levels: []Level{lvl}, session: s}
}

// Open loads every level reachable from path. An empty path yields a
// single default random level. A nil loader is replaced by NewLoader(path).
func Open(path string, loader *Loader) (*Playlist, error) {
	if loader == nil {
		loader = NewLoader(path)
	}
	if path == "" {
		return NewRandomPlaylist(core.DefaultSessionOptions(), loader.Rand), nil
	}
	loader.Root = path
	lvls, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	return NewPlaylist(lvls), nil
}

func (p *Playlist) start() {
	p.session = nil
	if p.index < len(p.levels) {
		p.session = p.levels[p.index].NewSession()
	}
}

// Len returns the number of levels.
func (p *Playlist) Len() int { return len(p.levels) }

// Index returns the zero-based position of the current level.
func (p *Playlist) Index() int { return p.index }

// Done reports whether every level has been passed or skipped.
func (p *Playlist) Done() bool { return p.index >= len(p.levels) }

// Current returns the live session, or nil when the playlist is done.
func (p *Playlist) Current() *core.Session { return p.session }

// Level returns the current level definition.
func (p *Playlist) Level() (Level, bool) {
	if p.Done() {
		return Level{}, false
	}
	return p.levels[p.index], true
}

// Levels returns the loaded levels in play order.
func (p *Playlist) Levels() []Level { return p.levels }

// Advance moves to the next level if the current one is completed.
func (p *Playlist) Advance() bool {
	if p.session == nil || !p.session.Current().Completed() {
		return false
	}
	p.index++
	p.start()
	return true
}

// Abandon skips the current level whatever its state.
func (p *Playlist) Abandon() bool {
	if p.Done() {
		return false
	}
	p.index++
	p.start()
	return true
}

// Restart replaces the current session with a fresh one.
func (p *Playlist) Restart() {
	if !p.Done() {
		p.start()
	}
}
