package core

import (
	"io"
	"math/rand"
	"os"
)

// Default board used when no level data is supplied.
const (
	DefaultHeight    = 6
	DefaultWidth     = 5
	DefaultObstacles = 3
)

// SessionOptions configures a randomly generated session.
type SessionOptions struct {
	Height    int
	Width     int
	Obstacles int
}

// DefaultSessionOptions returns the classic 6×5 board with 3 obstacles.
func DefaultSessionOptions() SessionOptions {
	return SessionOptions{
		Height:    DefaultHeight,
		Width:     DefaultWidth,
		Obstacles: DefaultObstacles,
	}
}

// Session is a live board plus the snapshots needed to undo moves.
type Session struct {
	current *Board
	history []*Board // oldest first
	moves   int
	undos   int
}

// NewSession builds a board with the player in the bottom-left corner and the
// goal in the top-right corner, then scatters opts.Obstacles obstacles.
// Non-positive dimensions fall back to the defaults.
func NewSession(opts SessionOptions, rng *rand.Rand) *Session {
	if opts.Height <= 0 || opts.Width <= 0 {
		opts.Height, opts.Width = DefaultHeight, DefaultWidth
	}
	b := NewBoard(opts.Height, opts.Width, P(opts.Height-1, 0), P(0, opts.Width-1))
	b.ScatterObstacles(opts.Obstacles, rng)
	return &Session{current: b}
}

// NewDefaultSession is NewSession with DefaultSessionOptions.
func NewDefaultSession(rng *rand.Rand) *Session {
	return NewSession(DefaultSessionOptions(), rng)
}

// NewSessionFromBoard starts a session on a board built from external data.
// The session takes ownership of b.
func NewSessionFromBoard(b *Board) *Session {
	return &Session{current: b}
}

// Current returns the live board. It stays owned by the session; callers
// must not keep it across RecordAndMove or Undo.
func (s *Session) Current() *Board { return s.current }

// Depth returns the number of snapshots available to Undo.
func (s *Session) Depth() int { return len(s.history) }

// Moves returns how many recorded moves were made, net of undos.
func (s *Session) Moves() int { return s.moves }

// Undos returns how many undos were applied.
func (s *Session) Undos() int { return s.undos }

// RecordAndMove snapshots the current board, moves it in direction d and
// pushes the snapshot. Once the history is non-empty, a move that leaves the
// board unchanged is not recorded. On a fresh session even a blocked move is
// recorded, so the first Undo always has something to restore.
func (s *Session) RecordAndMove(d Direction) {
	if _, ok := d.rotations(); !ok {
		return
	}
	before := s.current.Clone()
	s.current.Move(d)
	if len(s.history) > 0 && s.current.Equal(before) {
		return
	}
	s.history = append(s.history, before)
	s.moves++
}

// Undo restores the most recent snapshot. Does nothing if there is none.
func (s *Session) Undo() {
	n := len(s.history)
	if n == 0 {
		return
	}
	s.current = s.history[n-1]
	s.history[n-1] = nil
	s.history = s.history[:n-1]
	s.moves--
	s.undos++
}

// Save writes the current board in the text save format. The session is not
// modified.
func (s *Session) Save(w io.Writer) error {
	return Encode(w, s.current)
}

// SaveFile writes the current board to path, replacing any existing file.
func (s *Session) SaveFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &SaveError{Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &SaveError{Err: cerr}
		}
	}()
	return s.Save(f)
}
