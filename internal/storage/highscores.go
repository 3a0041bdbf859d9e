package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// NumScores is the length of the high-score table.
const NumScores = 10

// ErrMalformedScores is returned when the high-score file cannot be parsed.
var ErrMalformedScores = errors.New("storage: malformed high score file")

// HighScores is a fixed-size table of the best scores, kept in a plain
// text file of whitespace-separated integers sorted descending. The
// file is rewritten in full on every change.
type HighScores struct {
	mu     sync.Mutex
	path   string
	scores []int
}

// OpenHighScores loads the table at path. A missing file is a first
// launch: a zeroed table is written right away.
func OpenHighScores(path string) (*HighScores, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	h := &HighScores{path: path}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		h.scores = make([]int, NumScores)
		if err := h.write(); err != nil {
			return nil, err
		}
		return h, nil
	case err != nil:
		return nil, fmt.Errorf("storage: read high scores: %w", err)
	}

	scores, err := parseScores(string(data))
	if err != nil {
		return nil, err
	}
	h.scores = scores
	return h, nil
}

func parseScores(text string) ([]int, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrMalformedScores)
	}

	scores := make([]int, 0, NumScores)
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedScores, f)
		}
		scores = append(scores, v)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(scores)))
	if len(scores) > NumScores {
		scores = scores[:NumScores]
	}
	for len(scores) < NumScores {
		scores = append(scores, 0)
	}
	return scores, nil
}

// Update inserts a finished run's score and returns its 0-based rank,
// or -1 when it did not make the table.
func (h *HighScores) Update(score int) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rank := sort.Search(len(h.scores), func(i int) bool { return h.scores[i] < score })
	if rank >= NumScores {
		return -1, nil
	}

	h.scores = append(h.scores[:rank], append([]int{score}, h.scores[rank:]...)...)
	h.scores = h.scores[:NumScores]
	return rank, h.write()
}

// Rank returns the score at rank i (0 is best). Out-of-range ranks yield 0.
func (h *HighScores) Rank(i int) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	if i < 0 || i >= len(h.scores) {
		return 0
	}
	return h.scores[i]
}

// Scores returns a copy of the table.
func (h *HighScores) Scores() []int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]int(nil), h.scores...)
}

// Clear zeroes the table.
func (h *HighScores) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.scores = make([]int, NumScores)
	return h.write()
}

func (h *HighScores) write() error {
	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return fmt.Errorf("storage: create high score dir: %w", err)
	}

	parts := make([]string, len(h.scores))
	for i, s := range h.scores {
		parts[i] = strconv.Itoa(s)
	}
	if err := os.WriteFile(h.path, []byte(strings.Join(parts, " ")), 0o644); err != nil {
		return fmt.Errorf("storage: write high scores: %w", err)
	}
	return nil
}
