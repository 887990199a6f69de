package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/highscore"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagImport       string
	flagExport       string
	flagClear        bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs from the score database.

A flat highscores.txt (ten numbers, best first) can be imported into the
database or exported from it.

Examples:
  tetris scores
  tetris scores --limit 20 --player alice
  tetris scores --import ~/old/highscores.txt
  tetris scores --export highscores.txt
  tetris scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", highscore.Size, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show runs of this player")
	scoresCmd.Flags().StringVar(&flagImport, "import", "", "Import a highscores.txt file")
	scoresCmd.Flags().StringVar(&flagExport, "export", "", "Export the top ten to a highscores.txt file")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored runs")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(); err != nil {
			return err
		}
		logger.Info("scores cleared", "db", flagDBPath)
		return nil

	case flagImport != "":
		table, err := highscore.Load(flagImport)
		if err != nil {
			return err
		}
		n, err := store.ImportScores(table.Scores())
		if err != nil {
			return err
		}
		logger.Info("scores imported", "file", flagImport, "count", n)
		return nil

	case flagExport != "":
		runs, err := store.TopScores(highscore.Size)
		if err != nil {
			return err
		}
		scores := make([]int, len(runs))
		for i, r := range runs {
			scores[i] = r.Score
		}
		if err := highscore.Save(flagExport, highscore.FromScores(scores)); err != nil {
			return err
		}
		logger.Info("scores exported", "file", flagExport, "count", len(runs))
		return nil
	}

	var runs []storage.Run
	if flagScoresPlayer != "" {
		runs, err = store.PlayerTopScores(flagScoresPlayer, flagScoresLimit)
	} else {
		runs, err = store.TopScores(flagScoresLimit)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Tetris")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'tetris play' to set the first high score!")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  Rank\tScore\tLevel\tLines\tDifficulty\tPlayer\tDate")
	fmt.Fprintln(tw, "  ----\t-----\t-----\t-----\t----------\t------\t----")
	for i, r := range runs {
		fmt.Fprintf(tw, "  %d\t%d\t%d\t%d\t%s\t%s\t%s\n",
			i+1, r.Score, r.Level, r.Lines, config.DifficultyLabel(r.Difficulty), r.Player,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Games: %d  Average: %.0f  Lines: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines)
	if !stats.LastPlayed.IsZero() {
		fmt.Fprintf(out, "Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
