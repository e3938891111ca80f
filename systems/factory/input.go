package factory

import (
	"github.com/automoto/laststand/archetypes"
	"github.com/automoto/laststand/components"
	cfg "github.com/automoto/laststand/config"
	"github.com/automoto/laststand/input"
	"github.com/yohamta/donburi/ecs"
)

// CreateInput creates the singleton device source and relay. Devices stay
// silent until the player enables its actions.
func CreateInput(ecs *ecs.ECS) *components.InputData {
	entry := archetypes.Input.Spawn(ecs)

	source := input.NewEbitenSource(cfg.Input, cfg.C.Height)
	data := &components.InputData{
		Source: source,
		Relay:  input.NewRelay(source),
	}
	data.Track()
	components.Input.Set(entry, data)

	return data
}
