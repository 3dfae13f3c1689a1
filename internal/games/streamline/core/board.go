package core

import (
	"math/rand"
	"strings"
	"time"
)

// Render characters used by Board.String.
const (
	PlayerChar     = 'O'
	GoalChar       = '@'
	topBorderChar  = '-'
	sideBorderChar = '|'
)

// Board is the state of one level at one point in time: the grid, the player
// and goal positions, and whether the level has been passed.
//
// A Board exclusively owns its grid. Clone before handing a copy to anyone
// who may mutate it.
type Board struct {
	grid      *Grid
	player    Pos
	goal      Pos
	completed bool
}

// NewBoard creates a height×width board of empty cells. Coordinates are not
// validated; callers must pass positions inside the grid.
func NewBoard(height, width int, player, goal Pos) *Board {
	return &Board{
		grid:      NewGrid(height, width),
		player:    player,
		goal:      goal,
		completed: player == goal,
	}
}

// Height returns the number of rows.
func (b *Board) Height() int { return b.grid.H }

// Width returns the number of columns.
func (b *Board) Width() int { return b.grid.W }

// Player returns the player position.
func (b *Board) Player() Pos { return b.player }

// Goal returns the goal position.
func (b *Board) Goal() Pos { return b.goal }

// Completed reports whether the player stands on the goal.
func (b *Board) Completed() bool { return b.completed }

// At returns the cell at p. Positions outside the board read as obstacles.
func (b *Board) At(p Pos) Cell { return b.grid.Get(p) }

// Count returns how many cells hold c.
func (b *Board) Count(c Cell) int { return b.grid.Count(c) }

// Set stores a cell while a level is being built from external data.
func (b *Board) Set(p Pos, c Cell) { b.grid.Set(p, c) }

// Rows returns the raw cell characters of every row, top to bottom.
func (b *Board) Rows() []string {
	rows := make([]string, b.grid.H)
	for r := range rows {
		rows[r] = b.grid.Row(r)
	}
	return rows
}

// Clone returns an independent deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		grid:      b.grid.Clone(),
		player:    b.player,
		goal:      b.goal,
		completed: b.completed,
	}
}

// ScatterObstacles places count obstacles on random empty cells other than
// the player and goal cells. It does nothing when count is negative or
// larger than the number of empty cells minus two.
//
// A nil rng falls back to a time-seeded source.
func (b *Board) ScatterObstacles(count int, rng *rand.Rand) {
	empty := b.grid.Count(CellEmpty)
	if count <= 0 || count > empty-2 {
		return
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	candidates := make([]Pos, 0, empty)
	for r := 0; r < b.grid.H; r++ {
		for c := 0; c < b.grid.W; c++ {
			p := P(r, c)
			if p == b.player || p == b.goal || b.grid.Get(p) != CellEmpty {
				continue
			}
			candidates = append(candidates, p)
		}
	}

	for i, idx := range rng.Perm(len(candidates)) {
		if i == count {
			break
		}
		b.grid.Set(candidates[idx], CellObstacle)
	}
}

// RotateClockwise turns the board 90° clockwise, moving the player and goal
// with the grid. Completion is unchanged. Four rotations are the identity.
func (b *Board) RotateClockwise() {
	h := b.grid.H
	b.grid = b.grid.RotatedClockwise()
	b.player = b.player.rotated(h)
	b.goal = b.goal.rotated(h)
}

// SlideRight moves the player right until the next cell is off the board,
// an obstacle, or a trail. Every vacated cell becomes a trail. Stepping onto
// the goal passes the level and ends the slide, whatever the goal cell holds.
func (b *Board) SlideRight() {
	for {
		next := b.player.Right()
		if next.Col >= b.grid.W {
			return
		}
		if next == b.goal {
			b.grid.Set(b.player, CellTrail)
			b.setPlayer(next)
			return
		}
		if b.grid.Get(next).Blocks() {
			return
		}
		b.grid.Set(b.player, CellTrail)
		b.setPlayer(next)
	}
}

// Move slides the player in direction d. The board is rotated so d points
// right, slid, then rotated back. DirNone and unknown values do nothing.
func (b *Board) Move(d Direction) {
	n, ok := d.rotations()
	if !ok {
		return
	}
	for range n {
		b.RotateClockwise()
	}
	b.SlideRight()
	for range (4 - n) % 4 {
		b.RotateClockwise()
	}
}

func (b *Board) setPlayer(p Pos) {
	b.player = p
	b.completed = b.player == b.goal
}

// Equal reports whether both boards have the same positions, completion flag
// and grid. Nil boards or grids compare unequal to non-nil ones.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.player != other.player || b.goal != other.goal || b.completed != other.completed {
		return false
	}
	return b.grid.Equal(other.grid)
}

// String renders the board inside a border, two columns per cell, with the
// goal and then the player drawn over whatever cell they occupy.
func (b *Board) String() string {
	w, h := b.grid.W, b.grid.H
	border := strings.Repeat(string(topBorderChar), 2*w+3) + "\n"

	var sb strings.Builder
	sb.Grow((2*w + 4) * (h + 2))
	sb.WriteString(border)
	for r := range h {
		sb.WriteByte(sideBorderChar)
		for c := range w {
			sb.WriteByte(' ')
			sb.WriteByte(b.glyph(P(r, c)))
		}
		sb.WriteByte(' ')
		sb.WriteByte(sideBorderChar)
		sb.WriteByte('\n')
	}
	sb.WriteString(border)
	return sb.String()
}

// glyph returns the character shown at p, with player over goal over cell.
func (b *Board) glyph(p Pos) byte {
	switch p {
	case b.player:
		return PlayerChar
	case b.goal:
		return GoalChar
	default:
		return byte(b.grid.Get(p))
	}
}
