package config

import "math"

// DifficultyManager computes the obstacle count for successive random boards.
type DifficultyManager struct {
	board BoardConfig
	cfg   DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(board BoardConfig, cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{board: board, cfg: cfg}
}

// IsEnabled returns whether obstacle counts grow between boards.
func (d *DifficultyManager) IsEnabled() bool {
	return !IsFixedPreset(d.cfg.Preset) && d.cfg.ObstacleStep > 0
}

// Obstacles returns the obstacle count for the n-th board of a run,
// starting at zero. The result never exceeds MaxDensity of the cells, nor
// the number of cells that can hold an obstacle.
func (d *DifficultyManager) Obstacles(n int) int {
	count := d.board.Obstacles + ObstacleOffset(d.cfg.Preset)
	if d.IsEnabled() && n > 0 {
		count += n * d.cfg.ObstacleStep
	}

	cells := d.board.Height * d.board.Width
	limit := cells - 2
	if d.cfg.MaxDensity > 0 {
		limit = min(limit, int(math.Floor(float64(cells)*d.cfg.MaxDensity)))
	}
	// The configured base count is always honoured.
	limit = max(limit, min(d.board.Obstacles, cells-2))

	return max(0, min(count, limit))
}
