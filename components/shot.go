package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ShotData is the tracer left by one attack.
type ShotData struct {
	Seq       int
	Origin    mgl64.Vec3
	Direction mgl64.Vec3

	Reach *gween.Tween // 0 to full length
	Fade  *gween.Tween // 1 to 0 alpha

	Length float64
	Alpha  float64
	Done   bool
}

var Shot = donburi.NewComponentType[ShotData]()
