package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.tetris/test.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".tetris", "test.db")); err != nil {
		t.Errorf("expected database under home: %v", err)
	}
}

func TestSaveRunAssignsIDs(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveRun(Run{Score: 1200, Level: 9, Lines: 14, Difficulty: 3, EndReason: "blocked_spawn"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if saved.ID == 0 {
		t.Error("expected a row id")
	}
	if _, err := uuid.Parse(saved.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", saved.RunID, err)
	}
	if saved.Player != PlayerLocal {
		t.Errorf("Player = %q, expected %q", saved.Player, PlayerLocal)
	}

	got, err := store.RunByID(saved.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil")
	}
	if got.Score != 1200 || got.Level != 9 || got.Lines != 14 || got.EndReason != "blocked_spawn" {
		t.Errorf("RunByID() = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID(uuid.NewString())
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestTopScoresOrdering(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200, 100} {
		if _, err := store.SaveRun(Run{Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 100}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
	// Equal scores keep insertion order.
	if scores[1].ID > scores[2].ID {
		t.Error("ties should list the earlier run first")
	}
}

func TestPlayerTopScores(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Player: "alice", Score: 300},
		{Player: "bob", Score: 900},
		{Player: "alice", Score: 500},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	scores, err := store.PlayerTopScores("alice", 10)
	if err != nil {
		t.Fatalf("PlayerTopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 500 || scores[1].Score != 300 {
		t.Errorf("PlayerTopScores() = %+v", scores)
	}
}

func TestRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 20, 30} {
		if _, err := store.SaveRun(Run{Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 30 || recent[1].Score != 20 {
		t.Errorf("RecentRuns() = %+v", recent)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty store high score = %d, expected 0", high)
	}

	for _, score := range []int{100, 500, 200} {
		store.SaveRun(Run{Score: score}) //nolint:errcheck
	}

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 500 {
		t.Errorf("HighScore() = %d, expected 500", high)
	}
}

func TestImportScores(t *testing.T) {
	store := openTestStore(t)

	n, err := store.ImportScores([]int{900, 0, 400, 0, 0, 0, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("ImportScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("imported %d, expected 2", n)
	}

	scores, err := store.PlayerTopScores(PlayerLegacy, 10)
	if err != nil {
		t.Fatalf("PlayerTopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 900 {
		t.Errorf("legacy scores = %+v", scores)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Score: 100}) //nolint:errcheck
	store.SaveRun(Run{Score: 200}) //nolint:errcheck

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("expected no scores after clear, got %d", len(scores))
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{Score: 100, Lines: 3, Level: 4})  //nolint:errcheck
	store.SaveRun(Run{Score: 300, Lines: 7, Level: 12}) //nolint:errcheck

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalLines != 10 {
		t.Errorf("TotalLines = %d, expected 10", stats.TotalLines)
	}
	if stats.BestLevel != 12 {
		t.Errorf("BestLevel = %d, expected 12", stats.BestLevel)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
