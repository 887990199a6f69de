// Package tetris adapts the falling-block simulation to the terminal
// platform: it drives gravity from frames, maps input actions to engine
// commands and renders the board, HUD and overlays.
package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/config"
	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// ID is the game identifier used for storage and screenshots.
const ID = "tetris"

// Game implements platformcore.Game.
type Game struct {
	cfg          config.TetrisConfig
	difficulty   int
	initialLevel int

	engine    *core.Engine
	scheduler *Scheduler
	err       error

	frames       uint64
	softDropIdle int // frames since the last soft-drop input
	paused       bool
	tooSmall     bool

	screenW int
	screenH int
}

var _ platformcore.Game = (*Game)(nil)

// New creates a game from a validated configuration.
func New(cfg config.TetrisConfig) *Game {
	difficulty, err := cfg.Difficulty()
	if err != nil {
		difficulty = core.DefaultDifficulty
	}
	return &Game{
		cfg:          cfg,
		difficulty:   difficulty,
		initialLevel: max(cfg.Game.InitialLevel, core.MinLevel),
	}
}

// SetDifficulty sets the difficulty (1..5) used by the next Reset.
func (g *Game) SetDifficulty(n int) {
	g.difficulty = platformcore.Clamp(n, core.MinDifficulty, core.MaxDifficulty)
}

// SetInitialLevel sets the starting level (1..100) used by the next Reset.
func (g *Game) SetInitialLevel(n int) {
	g.initialLevel = platformcore.Clamp(n, core.MinLevel, core.MaxInitialLevel)
}

// Difficulty returns the difficulty the next game starts with.
func (g *Game) Difficulty() int { return g.difficulty }

// InitialLevel returns the level the next game starts at.
func (g *Game) InitialLevel() int { return g.initialLevel }

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Reset starts a new game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.frames = 0
	g.softDropIdle = 0
	g.paused = false
	g.err = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()

	engine, err := core.NewEngine(core.Options{
		Rules:      g.cfg.Rules(),
		Difficulty: g.difficulty,
		Level:      g.initialLevel,
		Seed:       cfg.Seed,
	})
	if err != nil {
		g.engine = nil
		g.err = err
		return
	}
	g.engine = engine
	g.scheduler = NewScheduler(cfg.TickRate, engine.Interval(), g.cfg.Timing.MaxTicksPerFrame)
	engine.OnIntervalChange(g.scheduler.SetInterval)
}

// Resize updates the screen dimensions without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	w, h := g.minSize()
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Step advances one platform frame.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.frames++

	if g.engine == nil || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && !g.engine.IsGameOver() {
		g.paused = !g.paused
	}
	if g.paused || g.engine.IsGameOver() {
		return platformcore.StepResult{State: g.State()}
	}

	g.applyInput(in)

	ticks := 0
	for due := g.scheduler.Advance(); ticks < due && !g.engine.IsGameOver(); ticks++ {
		g.engine.Tick()
	}

	return platformcore.StepResult{State: g.State(), Ticks: ticks}
}

// applyInput maps actions to engine commands. Terminals report no key
// release, so soft drop ends after a run of frames without the action.
func (g *Game) applyInput(in platformcore.InputFrame) {
	if in.Has(platformcore.ActionLeft) {
		g.engine.MoveHorizontal(false)
	}
	if in.Has(platformcore.ActionRight) {
		g.engine.MoveHorizontal(true)
	}
	if in.Has(platformcore.ActionRotateCW) {
		g.engine.Rotate(true)
	}
	if in.Has(platformcore.ActionRotateCCW) {
		g.engine.Rotate(false)
	}

	if in.Has(platformcore.ActionSoftDrop) {
		g.softDropIdle = 0
		g.engine.SoftDropStart()
		return
	}
	if g.engine.SoftDropping() {
		g.softDropIdle++
		if g.softDropIdle >= g.cfg.Timing.SoftDropReleaseFrames {
			g.engine.SoftDropStop()
		}
	}
}

// State returns the platform view of the game.
func (g *Game) State() platformcore.GameState {
	if g.engine == nil {
		return platformcore.GameState{GameOver: true}
	}
	return platformcore.GameState{
		Score:    g.engine.Score(),
		Level:    g.engine.Level(),
		Lines:    g.engine.Lines(),
		GameOver: g.engine.IsGameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Snapshot returns a copy of the engine state. ok is false before Reset or
// after a failed Reset.
func (g *Game) Snapshot() (snap core.Snapshot, ok bool) {
	if g.engine == nil {
		return core.Snapshot{}, false
	}
	return g.engine.Snapshot(), true
}

// EndReason names why the last game ended, for storage.
func (g *Game) EndReason() string {
	if g.engine == nil {
		return core.EndFault.String()
	}
	return g.engine.Reason().String()
}

// Err returns a configuration error from Reset or the internal error that
// halted the engine.
func (g *Game) Err() error {
	if g.err != nil {
		return g.err
	}
	if g.engine != nil {
		return g.engine.Err()
	}
	return nil
}
