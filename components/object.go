package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CollisionScale is resolv units per world unit. Resolv's cell lookup trims
// one unit off an object's far edge, so the floor is scaled up until that
// trim is negligible.
const CollisionScale = 16.0

// ObjectData is a collision footprint on the ground plane. Resolv is 2D, so
// the object's X and Y hold world x and z of its lower corner, scaled by
// CollisionScale.
type ObjectData struct {
	*resolv.Object
}

// WorldRect returns the footprint in world units.
func (o ObjectData) WorldRect() (x, z, w, d float64) {
	return o.X / CollisionScale, o.Y / CollisionScale, o.W / CollisionScale, o.H / CollisionScale
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
