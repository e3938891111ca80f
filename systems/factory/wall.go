package factory

import (
	"github.com/automoto/laststand/archetypes"
	"github.com/automoto/laststand/components"
	cfg "github.com/automoto/laststand/config"
	"github.com/automoto/laststand/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds a solid block covering [x, x+w] by [z, z+d] on the floor.
func CreateWall(ecs *ecs.ECS, x, z, w, d float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := newFootprint(x, z, w, d, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return wall
}

// CreateArena builds the collision space and the four walls along the inside
// of the arena's edges.
func CreateArena(ecs *ecs.ECS, arena cfg.ArenaConfig) {
	CreateSpace(ecs, arena.Width, arena.Depth)

	t := arena.WallThickness
	CreateWall(ecs, 0, 0, arena.Width, t)                 // south
	CreateWall(ecs, 0, arena.Depth-t, arena.Width, t)     // north
	CreateWall(ecs, 0, t, t, arena.Depth-2*t)             // west
	CreateWall(ecs, arena.Width-t, t, t, arena.Depth-2*t) // east
}
