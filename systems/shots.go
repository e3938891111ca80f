package systems

import (
	"github.com/automoto/laststand/components"
	cfg "github.com/automoto/laststand/config"
	"github.com/automoto/laststand/systems/factory"
	"github.com/automoto/laststand/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateShots turns the attacks raised this frame into tracers, then ages
// the live tracers and removes the faded ones.
func UpdateShots(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		p := components.Player.Get(entry)
		for _, attack := range p.PendingAttacks {
			factory.CreateShot(e, attack)
			QueueSFX(e, cfg.SoundPew)
			TriggerScreenShake(e, cfg.Shot.ShakeIntensity, cfg.Shot.ShakeFrames)
		}
		p.PendingAttacks = p.PendingAttacks[:0]
	})

	dt := float32(FrameDelta(e))
	var finished []donburi.Entity
	tags.Shot.Each(e.World, func(entry *donburi.Entry) {
		shot := components.Shot.Get(entry)
		advanceShot(shot, dt)
		if shot.Done {
			finished = append(finished, entry.Entity())
		}
	})
	for _, entity := range finished {
		e.World.Remove(entity)
	}
}

func advanceShot(shot *components.ShotData, dt float32) {
	length, _ := shot.Reach.Update(dt)
	alpha, faded := shot.Fade.Update(dt)
	shot.Length = float64(length)
	shot.Alpha = float64(alpha)
	shot.Done = faded
}
