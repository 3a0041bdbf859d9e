package storage

import (
	"errors"
	"testing"
)

type memItems struct {
	data    map[string][]byte
	saves   int
	loadErr error
}

func newMemItems() *memItems {
	return &memItems{data: map[string][]byte{}}
}

func (m *memItems) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.data[key], nil
}

func (m *memItems) SaveItem(key string, data []byte) error {
	m.saves++
	m.data[key] = append([]byte(nil), data...)
	return nil
}

func TestSettingsFirstLaunchWritesDefaults(t *testing.T) {
	items := newMemItems()
	store := &SettingsStore{items: items}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != DefaultSettings() {
		t.Errorf("Load() = %+v, expected defaults", got)
	}
	if items.saves != 1 {
		t.Errorf("defaults saved %d times, expected 1", items.saves)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := &SettingsStore{items: newMemItems()}

	want := Settings{Volume: 0.35, TutorialSeen: true}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, expected %+v", got, want)
	}
}

func TestSettingsPartialItemKeepsDefaults(t *testing.T) {
	items := newMemItems()
	items.data[settingsKey] = []byte(`{"tutorialSeen":true}`)
	store := &SettingsStore{items: items}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got.Volume != 0.5 || !got.TutorialSeen {
		t.Errorf("Load() = %+v", got)
	}
}

func TestSettingsErrors(t *testing.T) {
	corrupt := newMemItems()
	corrupt.data[settingsKey] = []byte("{not json")

	failing := newMemItems()
	failing.loadErr = errors.New("disk gone")

	for name, items := range map[string]*memItems{"corrupt": corrupt, "failing": failing} {
		t.Run(name, func(t *testing.T) {
			got, err := (&SettingsStore{items: items}).Load()
			if err == nil {
				t.Error("expected an error")
			}
			if got != DefaultSettings() {
				t.Errorf("Load() = %+v, expected defaults alongside the error", got)
			}
		})
	}
}
