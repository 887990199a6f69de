package tetris

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/config"
	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(config.DefaultTetrisConfig())
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	if err := g.Err(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	return g
}

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// stepUntilSpawn runs empty frames until the first piece is on the board.
func stepUntilSpawn(t *testing.T, g *Game) core.Snapshot {
	t.Helper()
	for range 120 {
		g.Step(frame())
		if snap, _ := g.Snapshot(); len(snap.Piece) > 0 {
			return snap
		}
	}
	t.Fatal("no piece spawned within 120 frames")
	return core.Snapshot{}
}

func minX(cells []core.PieceCell) int {
	m := cells[0].X
	for _, c := range cells[1:] {
		m = min(m, c.X)
	}
	return m
}

func TestGameIdentity(t *testing.T) {
	g := New(config.DefaultTetrisConfig())
	if g.ID() != "tetris" {
		t.Errorf("ID() = %q", g.ID())
	}
	if g.Title() != "Tetris" {
		t.Errorf("Title() = %q", g.Title())
	}
	if g.Difficulty() != core.DefaultDifficulty || g.InitialLevel() != 1 {
		t.Errorf("defaults = difficulty %d level %d", g.Difficulty(), g.InitialLevel())
	}
}

func TestGameFirstPieceSpawns(t *testing.T) {
	g := newTestGame(t)

	snap := stepUntilSpawn(t, g)
	if snap.Pieces != 1 {
		t.Errorf("Pieces = %d, expected 1", snap.Pieces)
	}
	if st := g.State(); st.GameOver || st.Paused {
		t.Errorf("State() = %+v", st)
	}
}

func TestGameMovesPieceHorizontally(t *testing.T) {
	g := newTestGame(t)
	before := minX(stepUntilSpawn(t, g).Piece)

	g.Step(frame(platformcore.ActionLeft))
	snap, _ := g.Snapshot()
	if got := minX(snap.Piece); got != before-1 {
		t.Errorf("after left min x = %d, expected %d", got, before-1)
	}

	g.Step(frame(platformcore.ActionRight))
	g.Step(frame(platformcore.ActionRight))
	snap, _ = g.Snapshot()
	if got := minX(snap.Piece); got != before+1 {
		t.Errorf("after two rights min x = %d, expected %d", got, before+1)
	}
}

func TestGameSoftDropReleasesAfterIdleFrames(t *testing.T) {
	g := newTestGame(t)
	stepUntilSpawn(t, g)
	normal := g.engine.Interval()

	g.Step(frame(platformcore.ActionSoftDrop))
	if !g.engine.SoftDropping() {
		t.Fatal("soft drop should start")
	}
	if g.scheduler.Interval() >= normal {
		t.Errorf("scheduler interval %v should be shorter than %v", g.scheduler.Interval(), normal)
	}

	release := g.cfg.Timing.SoftDropReleaseFrames
	for i := 1; i < release; i++ {
		g.Step(frame())
		if !g.engine.SoftDropping() {
			t.Fatalf("soft drop released after %d idle frames, expected %d", i, release)
		}
	}
	g.Step(frame())
	if g.engine.SoftDropping() {
		t.Error("soft drop should stop after the idle frames")
	}
}

func TestGamePauseStopsGravity(t *testing.T) {
	g := newTestGame(t)
	stepUntilSpawn(t, g)

	g.Step(frame(platformcore.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}
	before, _ := g.Snapshot()
	for range 300 {
		if res := g.Step(frame(platformcore.ActionLeft)); res.Ticks != 0 {
			t.Fatal("no ticks should run while paused")
		}
	}
	after, _ := g.Snapshot()
	if before.Tick != after.Tick || minX(before.Piece) != minX(after.Piece) {
		t.Error("paused game should not change")
	}

	g.Step(frame(platformcore.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestGameRunsToGameOver(t *testing.T) {
	g := newTestGame(t)

	for i := 0; i < 200000 && !g.State().GameOver; i++ {
		g.Step(frame(platformcore.ActionSoftDrop))
	}

	st := g.State()
	if !st.GameOver {
		t.Fatal("stacking pieces in the center should end the game")
	}
	if err := g.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
	if r := g.EndReason(); r != "blocked_spawn" && r != "stack_out" {
		t.Errorf("EndReason() = %q", r)
	}
	if st.Level <= 1 {
		t.Errorf("level should rise with each spawn, got %d", st.Level)
	}

	if res := g.Step(frame(platformcore.ActionLeft, platformcore.ActionPause)); res.Ticks != 0 || res.State.Paused {
		t.Errorf("finished game should ignore input, got %+v", res)
	}
}

func TestGameAppliesMenuSettings(t *testing.T) {
	g := New(config.DefaultTetrisConfig())
	g.SetDifficulty(9)
	g.SetInitialLevel(250)
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	if g.engine.Difficulty() != core.MaxDifficulty {
		t.Errorf("difficulty = %d, expected %d", g.engine.Difficulty(), core.MaxDifficulty)
	}
	if g.engine.Level() != core.MaxInitialLevel {
		t.Errorf("level = %d, expected %d", g.engine.Level(), core.MaxInitialLevel)
	}
}

func TestGameInvalidConfigReportsError(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Board.Width = 2
	g := New(cfg)
	g.Reset(platformcore.DefaultConfig())

	if g.Err() == nil {
		t.Fatal("expected a configuration error")
	}
	if !g.State().GameOver {
		t.Error("unstartable game should report game over")
	}
	if _, ok := g.Snapshot(); ok {
		t.Error("Snapshot() should not be available")
	}
}

func TestGameTooSmallScreen(t *testing.T) {
	g := New(config.DefaultTetrisConfig())
	g.Reset(platformcore.RuntimeConfig{ScreenW: 30, ScreenH: 10, TickRate: 60, Seed: 1})

	if !g.State().Paused {
		t.Error("too-small screen should pause the game")
	}
	if res := g.Step(frame()); res.Ticks != 0 {
		t.Error("no ticks should run on a too-small screen")
	}

	screen := platformcore.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected size warning, got:\n%s", screen)
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("resizing to a large screen should resume")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	snap := stepUntilSpawn(t, g)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score", "Level", "Lines", "Next", "normal"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	// The active piece is drawn in its shape color.
	colored := 0
	want := ShapeColor(snap.Piece[0].Shape)
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if c := screen.GetCell(x, y); c.Rune == blockRune && c.Color == want {
				colored++
			}
		}
	}
	// Four board cells two columns wide, plus the preview if it repeats the shape.
	if colored < 4*cellW {
		t.Errorf("found %d cells in the piece color, expected at least %d", colored, 4*cellW)
	}
}

func TestGameRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 200000 && !g.State().GameOver; i++ {
		g.Step(frame(platformcore.ActionSoftDrop))
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Errorf("expected game over overlay:\n%s", screen)
	}
}

func TestShapeColorsAreDistinct(t *testing.T) {
	seen := map[platformcore.Color]core.Shape{}
	for _, s := range core.AllShapes() {
		c := ShapeColor(s)
		if prev, dup := seen[c]; dup {
			t.Errorf("%s and %s share color %d", prev, s, c)
		}
		seen[c] = s
	}
}
