package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Encode writes b in the text save format:
//
//	<height> <width>
//	<player_row> <player_col>
//	<goal_row> <goal_col>
//	<height rows of width raw cell characters>
//
// Player and goal markers are never written into the rows.
func Encode(w io.Writer, b *Board) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", b.Height(), b.Width())
	fmt.Fprintf(bw, "%d %d\n", b.player.Row, b.player.Col)
	fmt.Fprintf(bw, "%d %d\n", b.goal.Row, b.goal.Col)
	for r := range b.Height() {
		bw.WriteString(b.grid.Row(r))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return &SaveError{Err: err}
	}
	return nil
}

// Decode reads a board in the text save format. On any error no board is
// returned and the error is a *LoadError.
func Decode(r io.Reader) (*Board, error) {
	sc := bufio.NewScanner(r)
	line := 0

	var nums []int
	for len(nums) < 6 {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, &LoadError{Line: line, Err: err}
			}
			return nil, &LoadError{Line: line, Err: fmt.Errorf("%w: expected 6 integers, got %d", ErrBadHeader, len(nums))}
		}
		line++
		for _, tok := range strings.Fields(sc.Text()) {
			if len(nums) == 6 {
				return nil, &LoadError{Line: line, Err: fmt.Errorf("%w: unexpected token %q", ErrBadHeader, tok)}
			}
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &LoadError{Line: line, Err: fmt.Errorf("%w: %q is not an integer", ErrBadHeader, tok)}
			}
			nums = append(nums, n)
		}
	}

	height, width := nums[0], nums[1]
	player, goal := P(nums[2], nums[3]), P(nums[4], nums[5])
	if !ValidSize(height, width) {
		return nil, &LoadError{Line: line, Err: fmt.Errorf("%w: dimensions %dx%d (at most %d cells)", ErrBadHeader, height, width, MaxCells)}
	}

	b := NewBoard(height, width, player, goal)
	if !b.grid.InBounds(player) || !b.grid.InBounds(goal) {
		return nil, &LoadError{Line: line, Err: fmt.Errorf("%w: player %v or goal %v outside %dx%d", ErrBadHeader, player, goal, height, width)}
	}

	for row := range height {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, &LoadError{Line: line, Err: err}
			}
			return nil, &LoadError{Line: line, Err: fmt.Errorf("%w: got %d of %d rows", ErrTruncated, row, height)}
		}
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if len(text) < width {
			return nil, &LoadError{Line: line, Err: fmt.Errorf("%w: row %d has %d of %d cells", ErrTruncated, row, len(text), width)}
		}
		for col := range width {
			c := Cell(text[col])
			if !c.Valid() {
				return nil, &LoadError{Line: line, Err: fmt.Errorf("%w %q at %v", ErrBadCell, text[col], P(row, col))}
			}
			b.grid.Set(P(row, col), c)
		}
	}
	if b.At(player) == CellObstacle {
		return nil, &LoadError{Err: fmt.Errorf("%w at %v", ErrBlocked, player)}
	}
	return b, nil
}
