package core

import (
	"errors"
	"fmt"
)

// Sentinel causes wrapped by LoadError.
var (
	ErrBadHeader = errors.New("bad header")
	ErrTruncated = errors.New("truncated board")
	ErrBadCell   = errors.New("unknown cell character")
	ErrBlocked   = errors.New("player starts on an obstacle")
)

// LoadError reports a malformed or incomplete saved board.
type LoadError struct {
	Line int // 1-based input line, 0 when unknown
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load board: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("load board: %v", e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports a failure to write a board out.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save board: %v", e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
