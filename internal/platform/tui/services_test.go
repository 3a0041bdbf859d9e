package tui

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/charge/internal/core"
	"github.com/vovakirdan/charge/internal/storage"
)

func newTestServices(t *testing.T) *Services {
	t.Helper()
	dir := t.TempDir()

	store, err := storage.Open(filepath.Join(dir, "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	highScores, err := storage.OpenHighScores(filepath.Join(dir, "highscores.txt"))
	if err != nil {
		t.Fatalf("storage.OpenHighScores() failed: %v", err)
	}

	return &Services{Store: store, HighScores: highScores}
}

func TestServicesRecordRun(t *testing.T) {
	svc := newTestServices(t)

	board, rank := svc.RecordRun("charge_tutorial", core.Event{Kind: core.EventGameOver, Score: 120, Level: 2}, 7, 90*time.Second)
	if rank != 0 {
		t.Errorf("rank = %d, expected 0", rank)
	}
	if len(board) != storage.NumScores || board[0] != 120 {
		t.Errorf("board = %v", board)
	}

	_, rank = svc.RecordRun("charge", core.Event{Kind: core.EventGameOver, Score: 80, Level: 1}, 8, time.Minute)
	if rank != 1 {
		t.Errorf("second rank = %d, expected 1", rank)
	}

	runs, err := svc.Store.TopRuns("charge", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("stored %d runs, expected 2 under one mode", len(runs))
	}
	if runs[0].Level != 2 || runs[0].Seed != 7 || runs[0].Duration != 90*time.Second {
		t.Errorf("best run = %+v", runs[0])
	}
}

func TestServicesWithoutPersistence(t *testing.T) {
	svc := &Services{}

	board, rank := svc.RecordRun("charge", core.Event{Score: 10}, 1, time.Second)
	if board != nil || rank != -1 {
		t.Errorf("RecordRun() = %v, %d, expected nil, -1", board, rank)
	}
	svc.ClearHighScores()
	svc.SaveSettings()
	svc.MarkTutorialSeen()
	if !svc.TutorialSeen() {
		t.Error("tutorial flag should hold for the session")
	}
	if _, ok := svc.Player().(core.NopSound); !ok {
		t.Error("Player() should fall back to a silent sink")
	}
}

func TestServicesAdjustVolume(t *testing.T) {
	svc := &Services{}

	tests := []struct {
		delta    float64
		expected float64
	}{
		{VolumeStep, 0.55},
		{-VolumeStep, 0.5},
		{-1, 0},
		{-VolumeStep, 0},
		{2, 1},
		{VolumeStep, 1},
	}
	for _, tc := range tests {
		got := svc.AdjustVolume(tc.delta)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("AdjustVolume(%v) = %v, expected %v", tc.delta, got, tc.expected)
		}
	}
}

func TestScoreMode(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{"charge", "charge"},
		{"charge_tutorial", "charge"},
	}
	for _, tc := range tests {
		if got := ScoreMode(tc.id); got != tc.expected {
			t.Errorf("ScoreMode(%q) = %q, expected %q", tc.id, got, tc.expected)
		}
	}
}
