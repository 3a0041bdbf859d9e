package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestHighScoresFirstLaunch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charge", "highscores.txt")

	h, err := OpenHighScores(path)
	if err != nil {
		t.Fatalf("OpenHighScores() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("file not written on first launch: %v", err)
	}
	if string(data) != "0 0 0 0 0 0 0 0 0 0" {
		t.Errorf("first launch file = %q", data)
	}
	if len(h.Scores()) != NumScores {
		t.Errorf("len(Scores()) = %d, expected %d", len(h.Scores()), NumScores)
	}
}

func TestHighScoresUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscores.txt")
	h, err := OpenHighScores(path)
	if err != nil {
		t.Fatalf("OpenHighScores() failed: %v", err)
	}

	tests := []struct {
		score int
		rank  int
	}{
		{50, 0},
		{80, 0},
		{60, 1},
		{60, 2},
		{0, -1},
	}
	for _, tc := range tests {
		rank, err := h.Update(tc.score)
		if err != nil {
			t.Fatalf("Update(%d) failed: %v", tc.score, err)
		}
		if rank != tc.rank {
			t.Errorf("Update(%d) = %d, expected %d", tc.score, rank, tc.rank)
		}
	}

	expected := []int{80, 60, 60, 50, 0, 0, 0, 0, 0, 0}
	if !reflect.DeepEqual(h.Scores(), expected) {
		t.Errorf("Scores() = %v, expected %v", h.Scores(), expected)
	}

	reopened, err := OpenHighScores(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if !reflect.DeepEqual(reopened.Scores(), expected) {
		t.Errorf("reopened Scores() = %v, expected %v", reopened.Scores(), expected)
	}
}

func TestHighScoresTableStaysFixedSize(t *testing.T) {
	h, err := OpenHighScores(filepath.Join(t.TempDir(), "highscores.txt"))
	if err != nil {
		t.Fatalf("OpenHighScores() failed: %v", err)
	}

	for i := 1; i <= 15; i++ {
		h.Update(i * 10)
	}
	scores := h.Scores()
	if len(scores) != NumScores {
		t.Fatalf("len(Scores()) = %d, expected %d", len(scores), NumScores)
	}
	if scores[0] != 150 || scores[NumScores-1] != 60 {
		t.Errorf("Scores() = %v", scores)
	}

	rank, _ := h.Update(55)
	if rank != -1 {
		t.Errorf("Update(55) = %d, expected -1 on a full table", rank)
	}
}

func TestHighScoresRank(t *testing.T) {
	h, err := OpenHighScores(filepath.Join(t.TempDir(), "highscores.txt"))
	if err != nil {
		t.Fatalf("OpenHighScores() failed: %v", err)
	}
	h.Update(42)

	tests := []struct {
		rank     int
		expected int
	}{
		{0, 42},
		{1, 0},
		{NumScores - 1, 0},
		{NumScores, 0},
		{-1, 0},
		{100, 0},
	}
	for _, tc := range tests {
		if got := h.Rank(tc.rank); got != tc.expected {
			t.Errorf("Rank(%d) = %d, expected %d", tc.rank, got, tc.expected)
		}
	}
}

func TestHighScoresClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscores.txt")
	h, _ := OpenHighScores(path)
	h.Update(900)

	if err := h.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if h.Rank(0) != 0 {
		t.Errorf("Rank(0) after clear = %d, expected 0", h.Rank(0))
	}

	data, _ := os.ReadFile(path)
	if string(data) != "0 0 0 0 0 0 0 0 0 0" {
		t.Errorf("file after clear = %q", data)
	}
}

func TestHighScoresParse(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []int
		wantErr  bool
	}{
		{"unsorted short", "5 30 10", []int{30, 10, 5, 0, 0, 0, 0, 0, 0, 0}, false},
		{"newlines", "9\n8\n7 6 5 4 3 2 1 0\n", []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, false},
		{"too long", "1 2 3 4 5 6 7 8 9 10 11", []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}, false},
		{"garbage", "10 abc 5", nil, true},
		{"empty", "   ", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscores.txt")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}

			h, err := OpenHighScores(path)
			if tc.wantErr {
				if !errors.Is(err, ErrMalformedScores) {
					t.Errorf("OpenHighScores() error = %v, expected ErrMalformedScores", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("OpenHighScores() failed: %v", err)
			}
			if !reflect.DeepEqual(h.Scores(), tc.expected) {
				t.Errorf("Scores() = %v, expected %v", h.Scores(), tc.expected)
			}
		})
	}
}
