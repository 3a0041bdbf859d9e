package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/charge/internal/audio"
	"github.com/vovakirdan/charge/internal/core"
	"github.com/vovakirdan/charge/internal/storage"
)

// VolumeStep is how much one left/right press changes the volume.
const VolumeStep = 0.05

// Services bundles the persistence and audio collaborators shared by
// every screen. Any field may be nil; the matching feature is skipped.
// Persistence happens on screen transitions only, never per tick.
type Services struct {
	Store      *storage.Store
	HighScores *storage.HighScores
	Settings   *storage.SettingsStore
	Sound      *audio.Player
	Logger     *log.Logger

	prefs  storage.Settings
	loaded bool
}

func (s *Services) logger() *log.Logger {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	return s.Logger
}

// LoadSettings reads the saved preferences and applies the volume.
// Failures fall back to defaults.
func (s *Services) LoadSettings() storage.Settings {
	s.prefs = storage.DefaultSettings()
	if s.Settings != nil {
		prefs, err := s.Settings.Load()
		if err != nil {
			s.logger().Warn("could not load settings", "error", err)
		}
		s.prefs = prefs
	}
	s.loaded = true
	if s.Sound != nil {
		s.Sound.SetVolume(s.prefs.Volume)
	}
	return s.prefs
}

// Prefs returns the current preferences.
func (s *Services) Prefs() storage.Settings {
	if !s.loaded {
		return s.LoadSettings()
	}
	return s.prefs
}

// SaveSettings persists the current preferences.
func (s *Services) SaveSettings() {
	if s.Settings == nil {
		return
	}
	if err := s.Settings.Save(s.Prefs()); err != nil {
		s.logger().Warn("could not save settings", "error", err)
	}
}

// Player returns the sound sink for games, never nil.
func (s *Services) Player() core.SoundPlayer {
	if s == nil || s.Sound == nil {
		return core.NopSound{}
	}
	return s.Sound
}

// Volume returns the master volume.
func (s *Services) Volume() float64 {
	return s.Prefs().Volume
}

// AdjustVolume moves the master volume by delta, clamped to [0, 1].
func (s *Services) AdjustVolume(delta float64) float64 {
	prefs := s.Prefs()
	// Round to the step grid so repeated presses land on exact values.
	v := core.ClampF(prefs.Volume+delta, 0, 1)
	v = float64(int(v/VolumeStep+0.5)) * VolumeStep
	s.prefs.Volume = v
	if s.Sound != nil {
		s.Sound.SetVolume(v)
	}
	return v
}

// TutorialSeen reports whether the tutorial has been completed before.
func (s *Services) TutorialSeen() bool {
	return s.Prefs().TutorialSeen
}

// MarkTutorialSeen records a completed tutorial.
func (s *Services) MarkTutorialSeen() {
	s.Prefs()
	if s.prefs.TutorialSeen {
		return
	}
	s.prefs.TutorialSeen = true
	s.SaveSettings()
}

// RecordRun stores a finished run and returns the high-score table with
// the run's rank in it, or -1 when it did not place.
func (s *Services) RecordRun(mode string, ev core.Event, seed int64, played time.Duration) ([]int, int) {
	mode = ScoreMode(mode)

	if s.Store != nil {
		_, err := s.Store.SaveRun(storage.RunRecord{
			Mode:     mode,
			Score:    ev.Score,
			Level:    ev.Level,
			Duration: played,
			Seed:     seed,
		})
		if err != nil {
			s.logger().Warn("could not save run", "error", err)
		}
	}

	if s.HighScores == nil {
		return nil, -1
	}
	rank, err := s.HighScores.Update(ev.Score)
	if err != nil {
		s.logger().Warn("could not update high scores", "error", err)
	}
	return s.HighScores.Scores(), rank
}

// ClearHighScores zeroes the high-score table.
func (s *Services) ClearHighScores() {
	if s.HighScores == nil {
		return
	}
	if err := s.HighScores.Clear(); err != nil {
		s.logger().Warn("could not clear high scores", "error", err)
	}
}

// ScoreMode maps a mode to the name its runs are stored under. A
// tutorial ends in a normal run, so both share one history.
func ScoreMode(id string) string {
	return strings.TrimSuffix(id, "_tutorial")
}
