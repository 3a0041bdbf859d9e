package main

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/charge/internal/audio"
	"github.com/vovakirdan/charge/internal/core"
	"github.com/vovakirdan/charge/internal/platform/tui"
	"github.com/vovakirdan/charge/internal/storage"
)

const appName = "charge"

// newLogger builds the process logger. While Bubble Tea owns the terminal
// the log goes to ~/.charge/charge.log instead of stderr.
func newLogger(tuiOwnsTerminal bool) *log.Logger {
	out := os.Stderr
	if tuiOwnsTerminal {
		if f, err := openLogFile(); err == nil {
			out = f
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          appName,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

func openLogFile() (*os.File, error) {
	path, err := storage.ExpandHome("~/.charge/charge.log")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// openServices opens persistence and audio. Each piece is optional: a
// failure is logged and the game runs without it. The returned func
// releases everything.
func openServices(logger *log.Logger) (*tui.Services, func()) {
	svc := &tui.Services{Logger: logger}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
	} else {
		svc.Store = store
	}

	highScores, err := storage.OpenHighScores(flagScoresPath)
	if err != nil {
		logger.Warn("could not open high scores", "error", err)
	} else {
		svc.HighScores = highScores
	}

	settings, err := storage.OpenSettings(appName)
	if err != nil {
		logger.Warn("could not open settings", "error", err)
	} else {
		svc.Settings = settings
	}

	player := audio.New(logger, audio.DefaultVolume)
	player.SetMuted(flagMute)
	if !flagMute {
		// Init logs its own fallback; the player stays usable and silent.
		_ = player.Init()
	}
	svc.Sound = player
	svc.LoadSettings() // Applies the saved volume

	return svc, func() {
		player.Close()
		if svc.Store != nil {
			svc.Store.Close()
		}
	}
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
