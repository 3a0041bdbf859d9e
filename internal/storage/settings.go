package storage

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// Settings are the user preferences kept between sessions.
type Settings struct {
	Volume       float64 `json:"volume"`
	TutorialSeen bool    `json:"tutorialSeen"`
}

// DefaultSettings returns the settings of a fresh install.
func DefaultSettings() Settings {
	return Settings{Volume: 0.5}
}

// itemStore is the subset of gdata.Manager the settings need.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// SettingsStore reads and writes Settings as a JSON item.
type SettingsStore struct {
	items itemStore
}

// OpenSettings opens the per-user data directory for appName.
func OpenSettings(appName string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: open settings: %w", err)
	}
	return &SettingsStore{items: m}, nil
}

// Load returns the saved settings. Nothing saved yet is a first launch:
// defaults are written and returned.
func (s *SettingsStore) Load() (Settings, error) {
	data, err := s.items.LoadItem(settingsKey)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("storage: load settings: %w", err)
	}
	if data == nil {
		def := DefaultSettings()
		return def, s.Save(def)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("storage: parse settings: %w", err)
	}
	return settings, nil
}

// Save writes the settings.
func (s *SettingsStore) Save(settings Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("storage: encode settings: %w", err)
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("storage: save settings: %w", err)
	}
	return nil
}
