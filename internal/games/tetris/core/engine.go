package core

import (
	"errors"
	"fmt"
	"time"
)

// State is the phase of the active-piece state machine.
type State uint8

const (
	StateSpawning State = iota
	StateFalling
	StateLocking
	StateClearing
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateFalling:
		return "falling"
	case StateLocking:
		return "locking"
	case StateClearing:
		return "clearing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndReason explains why a game reached StateGameOver.
type EndReason uint8

const (
	EndNone EndReason = iota
	EndBlockedSpawn
	EndStackOut
	EndFault
)

// String returns the reason name.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndBlockedSpawn:
		return "blocked_spawn"
	case EndStackOut:
		return "stack_out"
	case EndFault:
		return "fault"
	default:
		return "unknown"
	}
}

// Options configures a new Engine.
type Options struct {
	Rules      Rules
	Difficulty int
	Level      int
	Seed       int64
}

// PieceCell is one cell of the active piece as seen by a renderer.
type PieceCell struct {
	X, Y  int
	Shape Shape
}

// Engine owns the board, the active piece, the generator and the score.
// It is not safe for concurrent use: Tick and the command methods must be
// serialized by the caller. Once the game is over every call is a no-op.
type Engine struct {
	rules Rules
	board *Board
	piece *Piece
	gen   *Generator

	state  State
	reason EndReason
	err    error

	score      int
	level      int
	difficulty int
	softDrop   bool

	interval   time.Duration
	onInterval func(time.Duration)

	ticks       uint64
	pieces      uint64
	lines       int
	lastCleared int
}

// NewEngine validates the options and returns an engine ready to spawn its
// first piece on the first Tick.
func NewEngine(opts Options) (*Engine, error) {
	if err := opts.Rules.Validate(); err != nil {
		return nil, err
	}
	if opts.Difficulty < MinDifficulty || opts.Difficulty > MaxDifficulty {
		return nil, fmt.Errorf("core: difficulty %d outside %d..%d", opts.Difficulty, MinDifficulty, MaxDifficulty)
	}
	if opts.Level < MinLevel {
		return nil, fmt.Errorf("core: level %d below %d", opts.Level, MinLevel)
	}

	e := &Engine{
		rules:      opts.Rules,
		board:      NewBoard(opts.Rules.Width, opts.Rules.Height),
		gen:        NewGenerator(opts.Seed),
		state:      StateSpawning,
		level:      opts.Level,
		difficulty: opts.Difficulty,
	}
	e.interval = e.computeInterval()
	return e, nil
}

// Tick advances the simulation by one gravity step.
func (e *Engine) Tick() {
	if e.state == StateGameOver {
		return
	}
	e.ticks++

	if e.state == StateSpawning {
		if !e.spawn() {
			return
		}
	}

	ok, err := e.fits(e.piece.Shifted(0, 1), false)
	if err != nil {
		e.fail(err)
		return
	}
	if ok {
		e.piece.Translate(0, 1)
		return
	}

	e.state = StateLocking
	e.lock()
}

// spawn draws the next shape and places it at the top center.
// Returns false if the game ended.
func (e *Engine) spawn() bool {
	shape := e.gen.Next()
	if e.pieces > 0 {
		e.level++
	}
	e.pieces++

	piece := NewPiece(shape, e.rules.Width/2, e.rules.SpawnRow)
	e.piece = piece

	empty, err := e.board.IsEmptyRegion(piece.cells)
	if err != nil {
		e.fail(err)
		return false
	}
	if !empty {
		e.end(EndBlockedSpawn)
		return false
	}

	e.state = StateFalling
	e.updateInterval()
	return true
}

// lock absorbs the active piece into the board, then clears and scores.
func (e *Engine) lock() {
	err := e.board.Lock(e.piece.cells, e.piece.shape)
	if errors.Is(err, ErrStackOut) {
		e.end(EndStackOut)
		return
	}
	if err != nil {
		e.fail(err)
		return
	}
	e.piece = nil
	e.state = StateClearing

	n, err := e.board.ClearFullRows()
	if err != nil {
		e.fail(err)
		return
	}
	e.lastCleared = n
	e.lines += n
	e.IncrementScore(e.rules.ScoreDelta(n, e.level))
	e.state = StateSpawning
}

// fits reports whether cells are inside the board horizontally, above the
// floor and not on a locked cell. With strictTop, cells above row 0 fail too.
func (e *Engine) fits(cells []Point, strictTop bool) (bool, error) {
	for _, c := range cells {
		if c.X < 0 || c.X >= e.rules.Width || c.Y >= e.rules.Height {
			return false, nil
		}
		if strictTop && c.Y < 0 {
			return false, nil
		}
	}
	return e.board.IsEmptyRegion(cells)
}

// end moves to the terminal state.
func (e *Engine) end(reason EndReason) {
	e.state = StateGameOver
	e.reason = reason
}

// fail halts the engine on an internal-consistency error.
func (e *Engine) fail(err error) {
	e.err = err
	e.end(EndFault)
}

// active reports whether commands may act on the current piece.
func (e *Engine) active() bool {
	return e.state == StateFalling && e.piece != nil
}

// MoveHorizontal shifts the piece one column if the target cells are free.
// Returns whether the piece moved.
func (e *Engine) MoveHorizontal(right bool) bool {
	if !e.active() {
		return false
	}
	dx := -1
	if right {
		dx = 1
	}
	ok, err := e.fits(e.piece.Shifted(dx, 0), false)
	if err != nil {
		e.fail(err)
		return false
	}
	if !ok {
		return false
	}
	e.piece.Translate(dx, 0)
	return true
}

// Rotate turns the piece 90 degrees about its origin if every rotated cell
// is on the visible board and free. Otherwise nothing changes.
func (e *Engine) Rotate(clockwise bool) bool {
	if !e.active() {
		return false
	}
	candidate := e.piece.Rotated(clockwise)
	ok, err := e.fits(candidate, true)
	if err != nil {
		e.fail(err)
		return false
	}
	if !ok {
		return false
	}
	e.piece.setCells(candidate)
	return true
}

// SoftDropStart shortens the gravity interval until SoftDropStop.
func (e *Engine) SoftDropStart() {
	e.setSoftDrop(true)
}

// SoftDropStop restores the normal gravity interval.
func (e *Engine) SoftDropStop() {
	e.setSoftDrop(false)
}

func (e *Engine) setSoftDrop(on bool) {
	if e.state == StateGameOver || e.softDrop == on {
		return
	}
	e.softDrop = on
	e.updateInterval()
}

// IncrementScore adds amount to the score, clamping the result at zero.
func (e *Engine) IncrementScore(amount int) {
	if e.state == StateGameOver {
		return
	}
	e.score += amount
	if e.score < 0 {
		e.score = 0
	}
}

// SetScore overrides the score. Negative values clamp to zero.
func (e *Engine) SetScore(score int) {
	if e.state == StateGameOver {
		return
	}
	e.score = max(score, 0)
}

// SetLevel overrides the level (clamped to at least 1).
func (e *Engine) SetLevel(level int) {
	if e.state == StateGameOver {
		return
	}
	e.level = max(level, MinLevel)
	e.updateInterval()
}

// SetDifficulty overrides the difficulty, clamped to 1..5.
func (e *Engine) SetDifficulty(difficulty int) {
	if e.state == StateGameOver {
		return
	}
	e.difficulty = max(MinDifficulty, min(difficulty, MaxDifficulty))
	e.updateInterval()
}

// OnIntervalChange registers fn to be called with the new gravity interval
// whenever level, difficulty or soft-drop state changes it.
func (e *Engine) OnIntervalChange(fn func(time.Duration)) {
	e.onInterval = fn
}

// Interval returns the current gravity interval.
func (e *Engine) Interval() time.Duration {
	return e.interval
}

func (e *Engine) computeInterval() time.Duration {
	return e.rules.Interval(e.level, e.difficulty, e.softDrop)
}

func (e *Engine) updateInterval() {
	next := e.computeInterval()
	if next == e.interval {
		return
	}
	e.interval = next
	if e.onInterval != nil {
		e.onInterval(next)
	}
}

// CellAt returns the locked shape at (x, y); ShapeNone if empty.
func (e *Engine) CellAt(x, y int) Shape {
	return e.board.ValueAt(x, y)
}

// CurrentPieceCells returns the active piece's cells, or nil if there is none.
func (e *Engine) CurrentPieceCells() []PieceCell {
	if e.piece == nil {
		return nil
	}
	out := make([]PieceCell, len(e.piece.cells))
	for i, c := range e.piece.cells {
		out[i] = PieceCell{X: c.X, Y: c.Y, Shape: e.piece.shape}
	}
	return out
}

// NextShape previews the shape the next spawn will use.
func (e *Engine) NextShape() Shape {
	return e.gen.Peek(1)[0]
}

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// Difficulty returns the difficulty multiplier.
func (e *Engine) Difficulty() int { return e.difficulty }

// SoftDropping reports whether soft drop is active.
func (e *Engine) SoftDropping() bool { return e.softDrop }

// State returns the state machine phase.
func (e *Engine) State() State { return e.state }

// IsGameOver reports whether the game has ended.
func (e *Engine) IsGameOver() bool { return e.state == StateGameOver }

// Reason returns why the game ended (EndNone while playing).
func (e *Engine) Reason() EndReason { return e.reason }

// Err returns the internal error that halted the engine, if any.
func (e *Engine) Err() error { return e.err }

// Lines returns the total number of rows cleared.
func (e *Engine) Lines() int { return e.lines }

// Pieces returns the number of pieces spawned.
func (e *Engine) Pieces() uint64 { return e.pieces }

// Rules returns the rule set in use.
func (e *Engine) Rules() Rules { return e.rules }
