package systems

import (
	"log"

	"github.com/automoto/laststand/components"
	cfg "github.com/automoto/laststand/config"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the devices and lets the relay fan out this frame's
// events. Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	in := components.Input.Get(entry)
	in.Source.Poll()

	if inpututil.IsKeyJustPressed(cfg.Input.DebugKey) {
		toggleDebug(e)
	}
}

func toggleDebug(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	settings.Debug = !settings.Debug
	SaveCurrentSettings(settings)
	log.Printf("[input] debug overlay %v", settings.Debug)
}
