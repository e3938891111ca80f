package factory

import (
	"errors"
	"log"

	"github.com/automoto/laststand/archetypes"
	"github.com/automoto/laststand/components"
	cfg "github.com/automoto/laststand/config"
	"github.com/automoto/laststand/input"
	"github.com/automoto/laststand/player"
	"github.com/automoto/laststand/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var errNoCamera = errors.New("factory: player needs a camera to aim through")

// CreatePlayer spawns the player at (x, z) and wires its controller to the
// relay and the camera. The controller is built first so a rejected
// configuration leaves no entity behind.
func CreatePlayer(ecs *ecs.ECS, x, z float64, relay *input.Relay) (*donburi.Entry, error) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil, errNoCamera
	}
	view := components.Camera.Get(cameraEntry).View

	body := components.NewBody(mgl64.Vec3{x, 0, z})
	controller, err := player.NewController(cfg.Player, body, view, relay)
	if err != nil {
		return nil, err
	}

	entry := archetypes.Player.Spawn(ecs)
	components.Body.Set(entry, body)

	r := cfg.Player.Radius
	obj := newFootprint(x-r, z-r, 2*r, 2*r, tags.ResolvPlayer)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	data := &components.PlayerData{}
	data.Attach(controller)
	components.Player.Set(entry, data)

	controller.Enable()
	controller.Start()

	log.Printf("[player] spawned at (%.1f, %.1f), attacks enabled: %v", x, z, !cfg.Player.AttackDisabled)
	return entry, nil
}
