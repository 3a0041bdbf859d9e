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
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{Mode: "charge", Score: 100, Level: 1, Duration: 20 * time.Second, Seed: 1},
		{Mode: "charge", Score: 50, Level: 1, Duration: 10 * time.Second, Seed: 2},
		{Mode: "charge", Score: 200, Level: 2, Duration: 45 * time.Second, Seed: 3},
		{Mode: "other", Score: 500},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("charge", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopRuns() returned %d runs, expected 3", len(top))
	}

	expected := []int{200, 100, 50}
	for i, score := range expected {
		if top[i].Score != score {
			t.Errorf("TopRuns()[%d].Score = %d, expected %d", i, top[i].Score, score)
		}
	}
	if top[0].Level != 2 || top[0].Duration != 45*time.Second || top[0].Seed != 3 {
		t.Errorf("TopRuns()[0] = %+v, fields not round-tripped", top[0])
	}

	limited, err := store.TopRuns("charge", 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("TopRuns(limit 2) returned %d runs", len(limited))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore("charge")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("HighScore() on empty history = %d, expected 0", score)
	}

	for _, s := range []int{30, 90, 60} {
		if _, err := store.SaveRun(RunRecord{Mode: "charge", Score: s}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	score, err = store.HighScore("charge")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 90 {
		t.Errorf("HighScore() = %d, expected 90", score)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Mode: "charge", Score: 10})
	store.SaveRun(RunRecord{Mode: "other", Score: 20})

	if err := store.ClearRuns("charge"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, _ := store.TopRuns("charge", 10)
	if len(top) != 0 {
		t.Errorf("expected no charge runs after clear, got %d", len(top))
	}
	other, _ := store.TopRuns("other", 10)
	if len(other) != 1 {
		t.Errorf("clear touched another mode: %d runs left", len(other))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("charge")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty history = %+v", empty)
	}

	store.SaveRun(RunRecord{Mode: "charge", Score: 100, Level: 1, Duration: time.Minute})
	store.SaveRun(RunRecord{Mode: "charge", Score: 300, Level: 3, Duration: 2 * time.Minute})

	stats, err := store.Stats("charge")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	tests := []struct {
		name     string
		got      any
		expected any
	}{
		{"Runs", stats.Runs, 2},
		{"HighScore", stats.HighScore, 300},
		{"AvgScore", stats.AvgScore, 200.0},
		{"BestLevel", stats.BestLevel, 3},
		{"PlayTime", stats.PlayTime, 3 * time.Minute},
	}
	for _, tc := range tests {
		if tc.got != tc.expected {
			t.Errorf("Stats().%s = %v, expected %v", tc.name, tc.got, tc.expected)
		}
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Stats().LastPlayed not set")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"/tmp/x.db", "/tmp/x.db"},
		{"~/.charge/scores.db", filepath.Join(home, ".charge/scores.db")},
	}
	for _, tc := range tests {
		got, err := ExpandHome(tc.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q) failed: %v", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
