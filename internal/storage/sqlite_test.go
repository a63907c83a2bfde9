package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(RunRecord{Score: 42}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("Expected high score 42 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	created := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	want := RunRecord{Score: 120, Frames: 1203, Preset: "hard", Seed: 7, Player: "alice", CreatedAt: created}

	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	got := runs[0]
	if !got.CreatedAt.Equal(created) {
		t.Errorf("Expected CreatedAt %v, got %v", created, got.CreatedAt)
	}
	want.ID = id
	got.CreatedAt, want.CreatedAt = time.Time{}, time.Time{}
	if got != want {
		t.Errorf("Round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestStoreSaveDefaults(t *testing.T) {
	store := openTestStore(t)

	before := time.Now().UTC().Add(-time.Second).Truncate(time.Second)
	if _, err := store.SaveRun(RunRecord{Score: 3}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns(1)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if runs[0].Player != "local" {
		t.Errorf("Expected default player 'local', got %q", runs[0].Player)
	}
	if runs[0].CreatedAt.Before(before) {
		t.Errorf("Expected CreatedAt to default to now, got %v", runs[0].CreatedAt)
	}
}

func TestStoreRejectsInvalidRun(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name string
		run  RunRecord
	}{
		{"negative score", RunRecord{Score: -1}},
		{"negative frames", RunRecord{Score: 1, Frames: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.SaveRun(tt.run); err == nil {
				t.Error("Expected error for invalid run")
			}
		})
	}
}

func TestStoreTopRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 500, 300, 500, 200} {
		if _, err := store.SaveRun(RunRecord{Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 500 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
	if runs[0].ID > runs[1].ID {
		t.Errorf("Ties should go to the earlier run, got IDs %d, %d", runs[0].ID, runs[1].ID)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	for _, score := range []int{100, 300, 200} {
		store.SaveRun(RunRecord{Score: score})
	}

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreRunsByPlayer(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store.SaveRun(RunRecord{Score: 10, Player: "alice", CreatedAt: base})
	store.SaveRun(RunRecord{Score: 30, Player: "bob", CreatedAt: base.Add(time.Minute)})
	store.SaveRun(RunRecord{Score: 20, Player: "alice", CreatedAt: base.Add(2 * time.Minute)})

	runs, err := store.RunsByPlayer("alice", 10)
	if err != nil {
		t.Fatalf("RunsByPlayer() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs for alice, got %d", len(runs))
	}
	// Most recent first
	if runs[0].Score != 20 || runs[1].Score != 10 {
		t.Errorf("Unexpected order: %+v", runs)
	}

	none, err := store.RunsByPlayer("carol", 10)
	if err != nil {
		t.Fatalf("RunsByPlayer() failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no runs for carol, got %d", len(none))
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Score: 100})
	store.SaveRun(RunRecord{Score: 200})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	high, _ := store.HighScore()
	if high != 0 {
		t.Errorf("Expected high score 0 after clear, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	last := time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC)
	store.SaveRun(RunRecord{Score: 10, Frames: 100, CreatedAt: last.Add(-time.Hour)})
	store.SaveRun(RunRecord{Score: 30, Frames: 300, CreatedAt: last})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.Runs)
	}
	if stats.HighScore != 30 {
		t.Errorf("Expected high score 30, got %d", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("Expected average 20, got %f", stats.AvgScore)
	}
	if stats.TotalFrames != 400 {
		t.Errorf("Expected 400 frames, got %d", stats.TotalFrames)
	}
	if !stats.LastPlayed.Equal(last) {
		t.Errorf("Expected last played %v, got %v", last, stats.LastPlayed)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
