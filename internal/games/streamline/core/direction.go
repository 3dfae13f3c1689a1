package core

import "strings"

// Direction is one of the four slide directions. The zero value DirNone
// means "no direction" and is ignored by every move operation.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four valid directions.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// rotations returns how many clockwise turns bring d onto the rightward axis.
func (d Direction) rotations() (int, bool) {
	switch d {
	case DirRight:
		return 0, true
	case DirUp:
		return 1, true
	case DirLeft:
		return 2, true
	case DirDown:
		return 3, true
	default:
		return 0, false
	}
}

// ParseDirection accepts w/a/s/d and the direction names, case-insensitive.
// Returns DirNone for anything else.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "up":
		return DirUp
	case "s", "down":
		return DirDown
	case "a", "left":
		return DirLeft
	case "d", "right":
		return DirRight
	default:
		return DirNone
	}
}
