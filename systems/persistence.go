package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/laststand/components"
	cfg "github.com/automoto/laststand/config"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings is the settings data stored on disk
type SavedSettings struct {
	Debug bool `json:"debug"`
	Muted bool `json:"muted"`
}

// settingsStore is the part of gdata.Manager the settings need.
type settingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store settingsStore

// InitPersistence opens the per-user data directory. Without it settings
// still work but are not remembered.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "laststand",
	})
	if err != nil {
		log.Printf("[persistence] could not open settings storage: %v", err)
		return err
	}
	store = m
	return nil
}

// LoadSettings returns nil when nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		log.Printf("[persistence] could not load settings: %v", err)
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[persistence] could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := store.SaveItem(settingsKey, data); err != nil {
		log.Printf("[persistence] could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings stores the runtime toggles. Failures are logged only.
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		Debug: s.Debug,
		Muted: s.Muted,
	})
}

// ApplySavedSettingsGlobal seeds the startup config, before any scene
// creates its settings.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Debug.Overlay = saved.Debug
	cfg.Audio.Muted = saved.Muted
}
