package components

import (
	"github.com/automoto/laststand/camera"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData follows the player over the ground plane. Position is world
// (x, z); View is refreshed from it every frame.
type CameraData struct {
	Position  math.Vec2
	LookAhead math.Vec2 // smoothed offset along the player's velocity
	Shake     math.Vec2 // offset applied this frame only
	View      *camera.TopDown
}

var Camera = donburi.NewComponentType[CameraData]()
