package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the menu",
	Long: `Start in interactive menu mode.

Pick a difficulty (1-5) and a starting level (1-100), then start a game.
After a game ends, B or Esc returns to the menu.

Controls:
  Up/Down/j/k    - Navigate menu
  Left/Right     - Change difficulty or level
  PgUp/PgDown    - Change level by 10
  Enter/Space    - Select
  Tab            - High scores
  Q/Esc          - Quit

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --db ./tetris.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	defaults := tetris.New(gameCfg)
	difficulty, level := defaults.Difficulty(), defaults.InitialLevel()
	rec := &runRecorder{}

	for {
		menuResult, err := tui.RunMenu(store, cfg, difficulty, level)
		if err != nil {
			return err
		}
		cfg = menuResult.Config
		difficulty, level = menuResult.Difficulty, menuResult.Level

		switch {
		case menuResult.Quit:
			return nil

		case menuResult.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, storage.PlayerLocal, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case menuResult.Start:
			game := tetris.New(gameCfg)
			game.SetDifficulty(difficulty)
			game.SetInitialLevel(level)
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}

			result, err := tui.Run(game, store, cfg, rec.hook)
			rec.flush()
			reportFault(game)
			if err != nil {
				return err
			}
			cfg = result.Config
			if result.Quit {
				return nil
			}
		}
	}
}
