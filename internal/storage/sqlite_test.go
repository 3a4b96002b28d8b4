package storage

import (
	"database/sql"
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saves := []struct {
		game    string
		player  string
		score   int
		elapsed time.Duration
	}{
		{"racer", "alice", 100, 42 * time.Second},
		{"racer", "bob", 50, 10 * time.Second},
		{"racer", "alice", 200, 95*time.Second + 600*time.Millisecond},
		{"racer_rush", "carol", 500, time.Minute},
	}
	for _, s := range saves {
		if _, err := store.SaveScore(s.game, s.player, s.score, s.elapsed); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("racer", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Expected scores 200, 100, 50, got %d, %d, %d",
			scores[0].Score, scores[1].Score, scores[2].Score)
	}

	top := scores[0]
	if top.Player != "alice" {
		t.Errorf("Expected player alice, got %q", top.Player)
	}
	if top.GameID != "racer" {
		t.Errorf("Expected game racer, got %q", top.GameID)
	}
	// Durations are stored in whole seconds
	if top.Duration != 95*time.Second {
		t.Errorf("Expected duration 1m35s, got %v", top.Duration)
	}
	if top.ID == 0 {
		t.Error("Expected a non-zero ID")
	}
}

func TestStoreAnonymousPlayer(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("racer", "", 30, 0); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("racer", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Player != AnonymousPlayer {
		t.Errorf("Expected one %s score, got %+v", AnonymousPlayer, scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		if _, err := store.SaveScore("racer", "p", i*10, 0); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("racer", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Expected top score 190, got %d", scores[0].Score)
	}

	// Zero limit falls back to 10
	scores, err = store.TopScores("racer", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected 10 scores, got %d", len(scores))
	}
}

func TestStoreTieBreakOnDuration(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("racer", "short", 80, 20*time.Second)
	store.SaveScore("racer", "long", 80, 90*time.Second)

	scores, err := store.TopScores("racer", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Player != "long" {
		t.Errorf("Expected the longer race first, got %q", scores[0].Player)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("racer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty game, got %d", high)
	}

	store.SaveScore("racer", "a", 100, 0)
	store.SaveScore("racer", "b", 300, 0)
	store.SaveScore("racer", "c", 200, 0)

	high, err = store.HighScore("racer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStorePlayerBest(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("racer", "alice", 120, 0)
	store.SaveScore("racer", "alice", 60, 0)
	store.SaveScore("racer", "bob", 900, 0)
	store.SaveScore("racer_rush", "alice", 400, 0)

	best, err := store.PlayerBest("racer", "alice")
	if err != nil {
		t.Fatalf("PlayerBest() failed: %v", err)
	}
	if best != 120 {
		t.Errorf("Expected alice's best 120, got %d", best)
	}

	best, err = store.PlayerBest("racer", "nobody")
	if err != nil {
		t.Fatalf("PlayerBest() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for unknown player, got %d", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("racer", "a", 100, 0)
	store.SaveScore("racer", "a", 200, 0)
	store.SaveScore("racer_rush", "a", 300, 0)

	if err := store.ClearScores("racer"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("racer", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	// Other variant should be unaffected
	scores, _ = store.TopScores("racer_rush", 10)
	if len(scores) != 1 {
		t.Errorf("Expected 1 rush score, got %d", len(scores))
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		store.SaveScore("racer", "p", i*10, 0)
	}

	scores, err := store.AllScores("racer")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 15 {
		t.Errorf("Expected 15 scores, got %d", len(scores))
	}
	if scores[0].Score != 140 {
		t.Errorf("Expected first score 140, got %d", scores[0].Score)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("racer")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RacesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("racer", "a", 100, 30*time.Second)
	store.SaveScore("racer", "b", 300, 90*time.Second)

	stats, err = store.GetGameStats("racer")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RacesCount != 2 {
		t.Errorf("Expected 2 races, got %d", stats.RacesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %f", stats.AvgScore)
	}
	if stats.LongestRace != 90*time.Second {
		t.Errorf("Expected longest race 1m30s, got %v", stats.LongestRace)
	}
	if stats.TotalRaceFor != 2*time.Minute {
		t.Errorf("Expected total 2m0s, got %v", stats.TotalRaceFor)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
	}
}

func TestStoreMigratesOldSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	_, err = db.Exec(`
		CREATE TABLE scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO scores (game_id, score) VALUES ('racer', 70);
	`)
	if err != nil {
		t.Fatalf("seeding old schema failed: %v", err)
	}
	db.Close()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on old schema failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("racer", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected the old score to survive, got %d", len(scores))
	}
	if scores[0].Player != AnonymousPlayer || scores[0].Duration != 0 {
		t.Errorf("Expected migrated defaults, got %+v", scores[0])
	}

	if _, err := store.SaveScore("racer", "dave", 10, time.Second); err != nil {
		t.Fatalf("SaveScore() after migration failed: %v", err)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
