package systems

import (
	"github.com/automoto/laststand/components"
	"github.com/automoto/laststand/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer runs the controller's logic tick. The attack cooldown
// advances here, so attacks land between input and physics.
func UpdatePlayer(e *ecs.ECS) {
	dt := FrameDelta(e)
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		p := components.Player.Get(entry)
		p.Controller.Update(dt)
	})
}
