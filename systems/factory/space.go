package factory

import (
	"math"

	"github.com/automoto/laststand/archetypes"
	"github.com/automoto/laststand/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space covering a width by depth floor,
// one cell per world unit.
func CreateSpace(ecs *ecs.ECS, width, depth float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	s := components.CollisionScale
	cell := int(s)
	spaceData := resolv.NewSpace(int(math.Ceil(width*s)), int(math.Ceil(depth*s)), cell, cell)
	components.Space.Set(space, spaceData)
	return space
}

// newFootprint builds a resolv object for a world-space rectangle.
func newFootprint(x, z, w, d float64, tags ...string) *resolv.Object {
	s := components.CollisionScale
	obj := resolv.NewObject(x*s, z*s, w*s, d*s, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w*s, d*s))
	return obj
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
