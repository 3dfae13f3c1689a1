package core

// Cell is the content of a single grid cell. The player and the goal are
// tracked as positions and never stored in the grid.
type Cell byte

const (
	CellEmpty    Cell = ' '
	CellObstacle Cell = 'X'
	CellTrail    Cell = '.'
)

// Valid reports whether c is one of the known cell values.
func (c Cell) Valid() bool {
	switch c {
	case CellEmpty, CellObstacle, CellTrail:
		return true
	}
	return false
}

// Blocks reports whether a sliding piece stops in front of c.
func (c Cell) Blocks() bool {
	return c == CellObstacle || c == CellTrail
}

// Grid is a rectangular grid of cells stored in row-major order:
// index = row*W + col.
type Grid struct {
	W     int
	H     int
	Cells []Cell
}

// MaxCells bounds the area of any board read from external data.
const MaxCells = 1 << 16

// ValidSize reports whether an h×w board is non-empty and within MaxCells.
func ValidSize(h, w int) bool {
	return h > 0 && w > 0 && h <= MaxCells/w
}

// NewGrid creates a grid with every cell empty.
func NewGrid(h, w int) *Grid {
	g := &Grid{
		W:     w,
		H:     h,
		Cells: make([]Cell, w*h),
	}
	for i := range g.Cells {
		g.Cells[i] = CellEmpty
	}
	return g
}

func (g *Grid) index(p Pos) int {
	return p.Row*g.W + p.Col
}

// InBounds returns true if the position is inside the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.H && p.Col >= 0 && p.Col < g.W
}

// Get returns the cell at p. Out-of-bounds positions read as obstacles so
// callers can treat the edge like any other wall.
func (g *Grid) Get(p Pos) Cell {
	if !g.InBounds(p) {
		return CellObstacle
	}
	return g.Cells[g.index(p)]
}

// Set stores c at p. Out-of-bounds writes are ignored.
func (g *Grid) Set(p Pos, c Cell) {
	if g.InBounds(p) {
		g.Cells[g.index(p)] = c
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Cells: cells,
	}
}

// Count returns the number of cells holding c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.Cells {
		if cell == c {
			n++
		}
	}
	return n
}

// RotatedClockwise returns a new W×H grid holding g turned 90° clockwise:
// new(i, j) = old(H-1-j, i).
func (g *Grid) RotatedClockwise() *Grid {
	r := &Grid{
		W:     g.H,
		H:     g.W,
		Cells: make([]Cell, len(g.Cells)),
	}
	for i := 0; i < r.H; i++ {
		for j := 0; j < r.W; j++ {
			r.Cells[i*r.W+j] = g.Cells[(g.H-1-j)*g.W+i]
		}
	}
	return r
}

// Row returns row r as a string of raw cell characters.
func (g *Grid) Row(r int) string {
	if r < 0 || r >= g.H {
		return ""
	}
	b := make([]byte, g.W)
	for c := range g.W {
		b[c] = byte(g.Cells[r*g.W+c])
	}
	return string(b)
}

// Equal returns true if both grids have the same dimensions and contents.
// A nil grid only equals another nil grid.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.W != other.W || g.H != other.H || len(g.Cells) != len(other.Cells) {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}
