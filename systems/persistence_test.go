package systems

import (
	"errors"
	"testing"

	"github.com/automoto/laststand/components"
	cfg "github.com/automoto/laststand/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type memStore struct {
	items   map[string][]byte
	loadErr error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	m.items[key] = data
	return nil
}

func useStore(t *testing.T, s settingsStore) {
	t.Helper()
	saved := store
	store = s
	t.Cleanup(func() { store = saved })
}

func TestToggleDebugSavesSettings(t *testing.T) {
	mem := &memStore{items: map[string][]byte{}}
	useStore(t, mem)

	e := ecs.NewECS(donburi.NewWorld())
	GetOrCreateSettings(e).Muted = true
	before := GetOrCreateSettings(e).Debug

	toggleDebug(e)

	got, err := LoadSettings()
	if err != nil || got == nil {
		t.Fatalf("LoadSettings = %v, %v", got, err)
	}
	if got.Debug == before || !got.Muted {
		t.Errorf("saved %+v, want debug=%v muted=true", *got, !before)
	}
}

func TestLoadSettings(t *testing.T) {
	tests := []struct {
		name    string
		store   settingsStore
		want    *SavedSettings
		wantErr bool
	}{
		{"no storage", nil, nil, false},
		{"nothing saved", &memStore{items: map[string][]byte{}}, nil, false},
		{"saved", &memStore{items: map[string][]byte{settingsKey: []byte(`{"debug":true,"muted":false}`)}}, &SavedSettings{Debug: true}, false},
		{"corrupt", &memStore{items: map[string][]byte{settingsKey: []byte(`{debug`)}}, nil, true},
		{"read failure", &memStore{loadErr: errors.New("disk gone")}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useStore(t, tt.store)
			got, err := LoadSettings()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
				t.Errorf("LoadSettings = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSaveWithoutStorageIsNoop(t *testing.T) {
	useStore(t, nil)
	if err := SaveSettings(&SavedSettings{Debug: true}); err != nil {
		t.Errorf("SaveSettings = %v", err)
	}
}

func TestSavedSettingsSeedNewScene(t *testing.T) {
	debug, muted := cfg.Debug.Overlay, cfg.Audio.Muted
	defer func() { cfg.Debug.Overlay, cfg.Audio.Muted = debug, muted }()

	ApplySavedSettingsGlobal(&SavedSettings{Debug: true, Muted: true})
	ApplySavedSettingsGlobal(nil)

	s := GetOrCreateSettings(ecs.NewECS(donburi.NewWorld()))
	if *s != (components.SettingsData{Debug: true, Muted: true}) {
		t.Errorf("settings = %+v, want debug and muted", *s)
	}
}
