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

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreValues(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.GetValue("alice", "high"); err != nil || ok {
		t.Fatalf("GetValue() on empty store = (ok=%v, err=%v)", ok, err)
	}

	if err := store.SetValue("alice", "high", "100"); err != nil {
		t.Fatalf("SetValue() failed: %v", err)
	}
	if err := store.SetValue("alice", "high", "250"); err != nil {
		t.Fatalf("SetValue() overwrite failed: %v", err)
	}
	if err := store.SetValue("bob", "high", "7"); err != nil {
		t.Fatalf("SetValue() failed: %v", err)
	}

	v, ok, err := store.GetValue("alice", "high")
	if err != nil || !ok || v != "250" {
		t.Errorf("GetValue(alice) = (%q, %v, %v), expected 250", v, ok, err)
	}
	v, _, _ = store.GetValue("bob", "high")
	if v != "7" {
		t.Errorf("profiles should be isolated, bob high = %q", v)
	}

	profiles, err := store.Profiles()
	if err != nil {
		t.Fatalf("Profiles() failed: %v", err)
	}
	if len(profiles) != 2 || profiles[0] != "alice" || profiles[1] != "bob" {
		t.Errorf("Profiles() = %v", profiles)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []ScoreEntry{
		{Profile: "local", Mode: "endless", Score: 100, Level: 2},
		{Profile: "local", Mode: "endless", Score: 50, Level: 1},
		{Profile: "local", Mode: "endless", Score: 200, Level: 3, MaxCombo: 12},
		{Profile: "local", Mode: "story", Score: 500, Level: 6},
		{Profile: "other", Mode: "endless", Score: 900, Level: 9},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("local", "endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].MaxCombo != 12 || scores[0].Level != 3 {
		t.Errorf("entry fields lost: %+v", scores[0])
	}

	story, _ := store.TopScores("local", "story", 10)
	if len(story) != 1 {
		t.Errorf("Expected 1 story score, got %d", len(story))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(ScoreEntry{Profile: "p", Mode: "endless", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("p", "endless", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreRecentScores(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 4; i++ {
		store.SaveScore(ScoreEntry{Profile: "p", Mode: "endless", Score: i})
	}

	recent, err := store.RecentScores("p", 2)
	if err != nil {
		t.Fatalf("RecentScores() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 4 || recent[1].Score != 3 {
		t.Errorf("RecentScores() = %v", recent)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("p", "endless")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	store.SaveScore(ScoreEntry{Profile: "p", Mode: "endless", Score: 100})
	store.SaveScore(ScoreEntry{Profile: "p", Mode: "endless", Score: 300})
	store.SaveScore(ScoreEntry{Profile: "p", Mode: "endless", Score: 200})

	high, err = store.HighScore("p", "endless")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearProfile(t *testing.T) {
	store := openTestStore(t)

	store.SetValue("a", "high", "1")
	store.SaveScore(ScoreEntry{Profile: "a", Mode: "endless", Score: 10})
	store.SetValue("b", "high", "2")
	store.SaveScore(ScoreEntry{Profile: "b", Mode: "endless", Score: 20})

	if err := store.ClearProfile("a"); err != nil {
		t.Fatalf("ClearProfile() failed: %v", err)
	}

	if _, ok, _ := store.GetValue("a", "high"); ok {
		t.Error("profile a values should be gone")
	}
	if scores, _ := store.TopScores("a", "endless", 10); len(scores) != 0 {
		t.Errorf("profile a scores should be gone, got %d", len(scores))
	}
	if _, ok, _ := store.GetValue("b", "high"); !ok {
		t.Error("profile b should not be affected")
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{Profile: "p", Mode: "endless", Score: 100, Level: 2})
	store.SaveScore(ScoreEntry{Profile: "p", Mode: "endless", Score: 300, Level: 5})
	store.SaveScore(ScoreEntry{Profile: "p", Mode: "story", Score: 50, Level: 1})

	stats, err := store.GetModeStats("p")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	endless := stats["endless"]
	if endless == nil {
		t.Fatal("missing endless stats")
	}
	if endless.GamesCount != 2 || endless.HighScore != 300 || endless.AvgScore != 200 || endless.BestLevel != 5 {
		t.Errorf("endless stats = %+v", endless)
	}
	if stats["story"] == nil || stats["story"].GamesCount != 1 {
		t.Errorf("story stats = %+v", stats["story"])
	}
}
