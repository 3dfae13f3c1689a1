package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/streamline/internal/games/streamline/core"
)

// YAMLLevel represents the YAML structure for a level file.
//
// The grid comes from rows when present, otherwise from size. Rows use the
// save-format cell characters and may also carry the render markers 'O'
// (player) and '@' (goal) in place of the player and goal fields. Without
// either, the player starts bottom-left and the goal sits top-right.
type YAMLLevel struct {
	ID              string            `yaml:"id"`
	Name            string            `yaml:"name"`
	Size            *YAMLSize         `yaml:"size,omitempty"`
	Player          *YAMLPos          `yaml:"player,omitempty"`
	Goal            *YAMLPos          `yaml:"goal,omitempty"`
	Rows            []string          `yaml:"rows,omitempty"`
	RandomObstacles int               `yaml:"random_obstacles,omitempty"`
	Metadata        map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	H int `yaml:"h"`
	W int `yaml:"w"`
}

// YAMLPos represents a grid position.
type YAMLPos struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	h, w := core.DefaultHeight, core.DefaultWidth
	switch {
	case len(yl.Rows) > 0:
		h, w = len(yl.Rows), len(yl.Rows[0])
	case yl.Size != nil:
		h, w = yl.Size.H, yl.Size.W
	}
	if !core.ValidSize(h, w) {
		return Level{}, fmt.Errorf("level %q: invalid size %dx%d (at most %d cells)", yl.ID, h, w, core.MaxCells)
	}

	var player, goal *core.Pos
	if yl.Player != nil {
		p := core.P(yl.Player.Row, yl.Player.Col)
		player = &p
	}
	if yl.Goal != nil {
		p := core.P(yl.Goal.Row, yl.Goal.Col)
		goal = &p
	}

	cells := make([][]core.Cell, h)
	for r := range h {
		cells[r] = make([]core.Cell, w)
		for c := range w {
			cells[r][c] = core.CellEmpty
		}
	}
	for r, row := range yl.Rows {
		if len(row) != w {
			return Level{}, fmt.Errorf("level %q: row %d has %d cells, want %d", yl.ID, r, len(row), w)
		}
		for c := range w {
			switch ch := row[c]; ch {
			case core.PlayerChar:
				p := core.P(r, c)
				player = &p
			case core.GoalChar:
				p := core.P(r, c)
				goal = &p
			default:
				cell := core.Cell(ch)
				if !cell.Valid() {
					return Level{}, fmt.Errorf("level %q: unknown cell %q at (%d,%d)", yl.ID, ch, r, c)
				}
				cells[r][c] = cell
			}
		}
	}

	// Same corners as a default session.
	if player == nil {
		p := core.P(h-1, 0)
		player = &p
	}
	if goal == nil {
		p := core.P(0, w-1)
		goal = &p
	}
	if !inBounds(*player, h, w) || !inBounds(*goal, h, w) {
		return Level{}, fmt.Errorf("level %q: player %v or goal %v outside %dx%d", yl.ID, *player, *goal, h, w)
	}
	if cells[player.Row][player.Col] == core.CellObstacle {
		return Level{}, fmt.Errorf("level %q: player starts on an obstacle", yl.ID)
	}

	board := core.NewBoard(h, w, *player, *goal)
	for r := range h {
		for c := range w {
			board.Set(core.P(r, c), cells[r][c])
		}
	}

	return Level{
		ID:              yl.ID,
		Name:            yl.Name,
		Board:           board,
		RandomObstacles: yl.RandomObstacles,
		Metadata:        yl.Metadata,
	}, nil
}

func inBounds(p core.Pos, h, w int) bool {
	return p.Row >= 0 && p.Row < h && p.Col >= 0 && p.Col < w
}
