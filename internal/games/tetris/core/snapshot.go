package core

import "time"

// Snapshot is a read-only copy of the engine state. It shares no memory with
// the engine, so it can be handed to a renderer on another goroutine.
type Snapshot struct {
	Tick       uint64
	Board      [][]Shape // Board[y][x]
	Piece      []PieceCell
	Next       Shape
	Score      int
	Level      int
	Difficulty int
	Lines      int
	Pieces     uint64
	Cleared    int // rows cleared by the most recent lock
	SoftDrop   bool
	Interval   time.Duration
	State      State
	Reason     EndReason
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:       e.ticks,
		Board:      e.board.Rows(),
		Piece:      e.CurrentPieceCells(),
		Next:       e.NextShape(),
		Score:      e.score,
		Level:      e.level,
		Difficulty: e.difficulty,
		Lines:      e.lines,
		Pieces:     e.pieces,
		Cleared:    e.lastCleared,
		SoftDrop:   e.softDrop,
		Interval:   e.interval,
		State:      e.state,
		Reason:     e.reason,
	}
}

// GameOver reports whether the snapshot was taken after the game ended.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// At returns what occupies (x, y): the active piece first, then the board.
func (s Snapshot) At(x, y int) Shape {
	for _, c := range s.Piece {
		if c.X == x && c.Y == y {
			return c.Shape
		}
	}
	if y < 0 || y >= len(s.Board) || x < 0 || x >= len(s.Board[y]) {
		return ShapeNone
	}
	return s.Board[y][x]
}
