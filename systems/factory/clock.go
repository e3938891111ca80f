package factory

import (
	"fmt"

	"github.com/automoto/laststand/archetypes"
	"github.com/automoto/laststand/clock"
	"github.com/automoto/laststand/components"
	cfg "github.com/automoto/laststand/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateClock(ecs *ecs.ECS) (*donburi.Entry, error) {
	acc, err := clock.NewAccumulator(cfg.Physics.FixedStep, cfg.Physics.MaxSubSteps)
	if err != nil {
		return nil, fmt.Errorf("factory: physics clock: %w", err)
	}

	entry := archetypes.Clock.Spawn(ecs)
	components.Clock.Set(entry, &components.ClockData{Physics: acc})
	return entry, nil
}
