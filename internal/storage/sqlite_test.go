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

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.LoadBest()
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score 0 on empty database, got %d", best)
	}

	if err := store.SaveBest(1200); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	if err := store.SaveBest(800); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}

	// Last write wins, even when lower.
	best, err = store.LoadBest()
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if best != 800 {
		t.Errorf("Expected best score 800, got %d", best)
	}
}

func TestStoreBestScorePersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveBest(4096); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	best, err := reopened.LoadBest()
	if err != nil || best != 4096 {
		t.Errorf("LoadBest() after reopen = %d, %v; want 4096", best, err)
	}
}

func TestStoreRecordAndTopGames(t *testing.T) {
	store := openTestStore(t)

	games := []struct {
		session string
		score   int
		maxTile int
		moves   int
	}{
		{"a", 100, 16, 40},
		{"b", 500, 64, 120},
		{"c", 300, 32, 90},
	}
	for _, g := range games {
		if err := store.RecordGame(g.session, g.score, g.maxTile, g.moves); err != nil {
			t.Fatalf("RecordGame() failed: %v", err)
		}
	}

	top, err := store.TopGames(10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 games, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 300 || top[2].Score != 100 {
		t.Errorf("Games not sorted by score: %+v", top)
	}
	if top[0].SessionID != "b" || top[0].MaxTile != 64 || top[0].Moves != 120 {
		t.Errorf("Top game fields wrong: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopGamesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.RecordGame("s", (i+1)*100, 8, 10)
	}

	top, err := store.TopGames(3)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 games with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Games not in expected order: %+v", top)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.RecordGame("a", 100, 16, 10)
	store.RecordGame("b", 300, 128, 20)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.BestTile != 128 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
}

func TestStoreClearGames(t *testing.T) {
	store := openTestStore(t)

	store.RecordGame("a", 100, 16, 10)
	store.SaveBest(100)

	if err := store.ClearGames(); err != nil {
		t.Fatalf("ClearGames() failed: %v", err)
	}

	top, _ := store.TopGames(10)
	if len(top) != 0 {
		t.Errorf("Expected no games after clear, got %d", len(top))
	}
	if best, _ := store.LoadBest(); best != 0 {
		t.Errorf("Expected best score reset, got %d", best)
	}
}

func TestStoreNestedPath(t *testing.T) {
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
