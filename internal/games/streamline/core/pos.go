// Package core implements the Streamline board model: a piece slides until it
// hits an obstacle, its own trail, or the edge, and the level is passed when it
// reaches the goal. Movement in every direction is a clockwise rotation of the
// whole board followed by a single rightward slide.
//
// The package has no I/O beyond io.Reader/io.Writer codecs and never logs.
package core

import "fmt"

// Pos is a (row, col) position on a board. Row 0 is the top row.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Right returns the position one column to the right.
func (p Pos) Right() Pos {
	return Pos{Row: p.Row, Col: p.Col + 1}
}

// rotated maps p through a clockwise rotation of a board with the given height.
func (p Pos) rotated(height int) Pos {
	return Pos{Row: p.Col, Col: height - 1 - p.Row}
}
