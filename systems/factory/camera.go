package factory

import (
	"github.com/automoto/laststand/archetypes"
	"github.com/automoto/laststand/camera"
	"github.com/automoto/laststand/components"
	cfg "github.com/automoto/laststand/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera creates the camera looking at (x, z).
func CreateCamera(ecs *ecs.ECS, x, z float64) *donburi.Entry {
	entry := archetypes.Camera.Spawn(ecs)

	view := camera.NewTopDown(float64(cfg.C.Width), float64(cfg.C.Height), cfg.Camera.PixelsPerUnit)
	view.Center = mgl64.Vec2{x, z}
	components.Camera.SetValue(entry, components.CameraData{
		Position: math.Vec2{X: x, Y: z},
		View:     view,
	})
	return entry
}
