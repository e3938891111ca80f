package factory

import (
	"github.com/automoto/laststand/archetypes"
	"github.com/automoto/laststand/components"
	cfg "github.com/automoto/laststand/config"
	"github.com/automoto/laststand/player"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateShot spawns the tracer for one attack. It shoots out to the attack
// length quickly and fades over the configured lifetime.
func CreateShot(ecs *ecs.ECS, attack player.Attack) *donburi.Entry {
	shot := archetypes.Shot.Spawn(ecs)

	life := cfg.Shot.Lifetime
	length := float32(cfg.Shot.Length)
	components.Shot.SetValue(shot, components.ShotData{
		Seq:       attack.Seq,
		Origin:    attack.Origin,
		Direction: player.Aim(attack.Facing),
		Reach:     gween.New(0, length, life/3, ease.OutCubic),
		Fade:      gween.New(1, 0, life, ease.InQuad),
		Alpha:     1,
	})

	return shot
}
