package systems

import (
	"math"
	"time"

	"github.com/automoto/laststand/components"
	cfg "github.com/automoto/laststand/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock measures this frame's logic tick. Must run first.
func UpdateClock(e *ecs.ECS) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	c := components.Clock.Get(entry)

	now := time.Now()
	dt := c.Override
	if dt <= 0 {
		if c.Last.IsZero() {
			dt = 1 / float64(ebiten.TPS())
		} else {
			dt = now.Sub(c.Last).Seconds()
		}
	}
	c.Last = now

	c.Delta = math.Min(dt, cfg.Physics.MaxFrameDelta)
	c.Elapsed += c.Delta
	c.Frames++
}

// FrameDelta returns the current logic tick length, or 0 without a clock.
func FrameDelta(e *ecs.ECS) float64 {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Delta
}
