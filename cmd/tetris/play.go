package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/highscore"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game right away.

Controls:
  Left/Right, A/D   - Move
  Down, S           - Soft drop (hold)
  Q/Z               - Rotate left
  E/X/Up            - Rotate right
  P/Esc             - Pause
  R                 - Restart (after game over)
  B                 - Back (when paused or after game over)
  Ctrl+S            - Screenshot
  Ctrl+C            - Quit

Difficulty options:
  easy, normal, hard or a number from 1 to 5

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --level 20 --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, normal, hard or 1..5")
		cmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (1..100)")
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	game := tetris.New(cfg)
	rec := &runRecorder{}
	_, runErr := tui.Run(game, store, runtimeConfig(), rec.hook)
	rec.flush()
	reportFault(game)
	return runErr
}

// runRecorder buffers finished runs while the alt-screen is active and
// reports them, and updates the top-ten file, once the program exits.
// Runs that could not be stored still count for the top ten.
type runRecorder struct {
	runs []storage.Run
	errs []error
}

func (r *runRecorder) hook(run storage.Run, err error) {
	switch {
	case errors.Is(err, tui.ErrNoStore):
	case err != nil:
		r.errs = append(r.errs, err)
	}
	r.runs = append(r.runs, run)
}

func (r *runRecorder) flush() {
	defer func() { r.runs, r.errs = nil, nil }()

	for _, err := range r.errs {
		logger.Error("could not save run", "error", err)
	}
	if len(r.runs) == 0 {
		return
	}

	path := highScorePath()
	table, err := highscore.Load(path)
	if err != nil {
		logger.Warn("could not read high scores", "path", path, "error", err)
		return
	}
	changed := false
	for _, run := range r.runs {
		logger.Debug("run finished", "run", run.RunID, "score", run.Score, "level", run.Level, "reason", run.EndReason)
		if rank := table.Insert(run.Score); rank > 0 {
			logger.Info("new high score", "score", run.Score, "rank", rank)
			changed = true
		}
	}
	if !changed {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.Warn("could not create high score directory", "error", err)
		return
	}
	if err := highscore.Save(path, table); err != nil {
		logger.Warn("could not write high scores", "path", path, "error", err)
	}
}

// reportFault logs an internal error that halted the last game.
func reportFault(game *tetris.Game) {
	if err := game.Err(); err != nil {
		logger.Error("game stopped", "reason", game.EndReason(), "error", err)
	}
}
