package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndBestTimes(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{Difficulty: "medium", Player: "alice", DurationMillis: 42000, Outcome: OutcomeVictory},
		{Difficulty: "medium", Player: "bob", DurationMillis: 38000, Outcome: OutcomeVictory},
		{Difficulty: "medium", Player: "alice", DurationMillis: 55000, Outcome: OutcomeVictory},
		// Gameover runs must never appear on the board.
		{Difficulty: "medium", Player: "carol", DurationMillis: 1000, Outcome: OutcomeGameOver},
		// Other difficulties are separate boards.
		{Difficulty: "hard", Player: "alice", DurationMillis: 30000, Outcome: OutcomeVictory},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%+v) failed: %v", r, err)
		}
	}

	best, err := store.BestTimes("medium", 10)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}

	if len(best) != 3 {
		t.Fatalf("Expected 3 medium victories, got %d", len(best))
	}
	// Fastest first.
	if best[0].DurationMillis != 38000 || best[0].Player != "bob" {
		t.Errorf("best[0] = %+v, want bob at 38000", best[0])
	}
	if best[1].DurationMillis != 42000 || best[2].DurationMillis != 55000 {
		t.Errorf("ordering wrong: %d then %d", best[1].DurationMillis, best[2].DurationMillis)
	}

	hard, err := store.BestTimes("hard", 10)
	if err != nil {
		t.Fatalf("BestTimes(hard) failed: %v", err)
	}
	if len(hard) != 1 {
		t.Errorf("Expected 1 hard victory, got %d", len(hard))
	}
}

func TestStoreBestTimesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun(RunEntry{
			Difficulty:     "easy",
			DurationMillis: int64((i + 1) * 1000),
			Outcome:        OutcomeVictory,
		})
	}

	best, err := store.BestTimes("easy", 3)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}

	if len(best) != 3 {
		t.Fatalf("Expected 3 entries with limit, got %d", len(best))
	}
	if best[0].DurationMillis != 1000 || best[1].DurationMillis != 2000 || best[2].DurationMillis != 3000 {
		t.Errorf("Times not in expected order: %v", best)
	}
}

func TestStoreBestTime(t *testing.T) {
	store := openTestStore(t)

	// No runs yet.
	best, err := store.BestTime("hard")
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty board, got %d", best)
	}

	store.SaveRun(RunEntry{Difficulty: "hard", DurationMillis: 45000, Outcome: OutcomeVictory})
	store.SaveRun(RunEntry{Difficulty: "hard", DurationMillis: 31000, Outcome: OutcomeVictory})
	store.SaveRun(RunEntry{Difficulty: "hard", DurationMillis: 500, Outcome: OutcomeGameOver})

	best, err = store.BestTime("hard")
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if best != 31000 {
		t.Errorf("Expected best time 31000, got %d", best)
	}
}

func TestStoreSaveRunRejectsBadOutcome(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunEntry{Difficulty: "easy", Outcome: "draw"}); err == nil {
		t.Error("Expected error for invalid outcome")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Difficulty: "easy", DurationMillis: 1000, Outcome: OutcomeGameOver})
	store.SaveRun(RunEntry{Difficulty: "medium", DurationMillis: 2000, Outcome: OutcomeVictory})
	store.SaveRun(RunEntry{Difficulty: "hard", DurationMillis: 3000, Outcome: OutcomeGameOver})

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}

	if len(recent) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(recent))
	}
	// Newest first, both outcomes included.
	if recent[0].Difficulty != "hard" || recent[1].Difficulty != "medium" {
		t.Errorf("Unexpected order: %v", recent)
	}
}

func TestStorePlayerBestTimes(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Difficulty: "medium", Player: "alice", DurationMillis: 40000, Outcome: OutcomeVictory})
	store.SaveRun(RunEntry{Difficulty: "medium", Player: "bob", DurationMillis: 20000, Outcome: OutcomeVictory})
	store.SaveRun(RunEntry{Difficulty: "medium", Player: "alice", DurationMillis: 35000, Outcome: OutcomeVictory})

	best, err := store.PlayerBestTimes("alice", "medium", 10)
	if err != nil {
		t.Fatalf("PlayerBestTimes() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("Expected 2 alice runs, got %d", len(best))
	}
	if best[0].DurationMillis != 35000 {
		t.Errorf("best[0] = %d, want 35000", best[0].DurationMillis)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Difficulty: "easy", DurationMillis: 1000, Outcome: OutcomeVictory})
	store.SaveRun(RunEntry{Difficulty: "easy", DurationMillis: 2000, Outcome: OutcomeVictory})
	store.SaveRun(RunEntry{Difficulty: "hard", DurationMillis: 3000, Outcome: OutcomeVictory})

	if err := store.ClearRuns("easy"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	easy, _ := store.BestTimes("easy", 10)
	if len(easy) != 0 {
		t.Errorf("Expected 0 easy runs after clear, got %d", len(easy))
	}

	hard, _ := store.BestTimes("hard", 10)
	if len(hard) != 1 {
		t.Error("Hard runs should not be affected by clearing easy")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// Empty tier.
	stats, err := store.Stats("super-hard")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunCount != 0 || stats.Victories != 0 || stats.BestMillis != 0 {
		t.Errorf("Expected zero stats, got %+v", stats)
	}

	store.SaveRun(RunEntry{Difficulty: "super-hard", DurationMillis: 90000, Outcome: OutcomeVictory})
	store.SaveRun(RunEntry{Difficulty: "super-hard", DurationMillis: 70000, Outcome: OutcomeVictory})
	store.SaveRun(RunEntry{Difficulty: "super-hard", DurationMillis: 5000, Outcome: OutcomeGameOver})

	stats, err = store.Stats("super-hard")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunCount != 3 {
		t.Errorf("RunCount = %d, want 3", stats.RunCount)
	}
	if stats.Victories != 2 {
		t.Errorf("Victories = %d, want 2", stats.Victories)
	}
	if stats.BestMillis != 70000 {
		t.Errorf("BestMillis = %d, want 70000", stats.BestMillis)
	}
	if stats.AvgMillis != 80000 {
		t.Errorf("AvgMillis = %v, want 80000", stats.AvgMillis)
	}
}
