package systems

import (
	"github.com/automoto/laststand/components"
	"github.com/automoto/laststand/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics runs as many fixed physics steps as the frame has banked.
func UpdatePhysics(e *ecs.ECS) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	c := components.Clock.Get(entry)

	c.Steps = c.Physics.Advance(c.Delta)
	for i := 0; i < c.Steps; i++ {
		StepPhysics(e, c.Physics.Step())
	}
}

// StepPhysics is one physics tick: the controller steers its body, then the
// body moves and collides with the arena.
func StepPhysics(e *ecs.ECS, step float64) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		p := components.Player.Get(entry)
		p.Controller.FixedUpdate()

		body := components.Body.Get(entry)
		obj := components.Object.Get(entry)
		moveBody(body, obj, step)
	})
}
