package core

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition marks a caller bug: a coordinate outside the board,
	// an invalid shape id or a similar broken invariant.
	ErrPrecondition = errors.New("internal error: precondition violated")

	// ErrStackOut is returned by Board.Lock when a cell lies above row 0.
	ErrStackOut = errors.New("stack out: piece locked above the playfield")

	// ErrRunawayClear means a single clear pass removed more rows than the
	// board has, which only happens on a corrupted board.
	ErrRunawayClear = errors.New("internal error: runaway row clear")
)

// preconditionf wraps ErrPrecondition with call-site detail.
func preconditionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, fmt.Sprintf(format, args...))
}
