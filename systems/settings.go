package systems

import (
	"github.com/automoto/laststand/components"
	cfg "github.com/automoto/laststand/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, creating it
// from the startup config if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.Overlay,
			Muted: cfg.Audio.Muted,
		})
	}
	return components.Settings.Get(entry)
}
