package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/laststand/components"
	cfg "github.com/automoto/laststand/config"
	"github.com/automoto/laststand/systems"
	"github.com/automoto/laststand/systems/factory"
	"github.com/automoto/laststand/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is a single walled floor with the player in the middle.
type ArenaScene struct {
	ecs *ecs.ECS
}

// NewArenaScene builds the world. It fails when the player or physics
// configuration is rejected, before anything reaches play.
func NewArenaScene() (*ArenaScene, error) {
	e := ecs.NewECS(donburi.NewWorld())
	systems.PreloadAllSFX(e)

	// Order matters: the clock measures the tick, input feeds the relay, the
	// controller caches it and may attack, then physics consumes it.
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateShots))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.Default, systems.DrawShots)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.HUD, systems.DrawHUD)
	e.AddRenderer(cfg.HUD, systems.DrawPause)

	if _, err := factory.CreateClock(e); err != nil {
		return nil, err
	}
	factory.CreateArena(e, cfg.Arena)
	factory.CreateCamera(e, cfg.Arena.SpawnX, cfg.Arena.SpawnZ)
	in := factory.CreateInput(e)

	if _, err := factory.CreatePlayer(e, cfg.Arena.SpawnX, cfg.Arena.SpawnZ, in.Relay); err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}

	systems.GetOrCreateSettings(e)
	log.Printf("[arena] ready: %.0fx%.0f units, physics step %.3fs", cfg.Arena.Width, cfg.Arena.Depth, cfg.Physics.FixedStep)
	return &ArenaScene{ecs: e}, nil
}

func (as *ArenaScene) Update() {
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	as.ecs.Draw(screen)
}

// Close stops the attack loop and device listening.
func (as *ArenaScene) Close() {
	tags.Player.Each(as.ecs.World, func(entry *donburi.Entry) {
		p := components.Player.Get(entry)
		p.Controller.Disable()
		p.Detach()
	})
	if entry, ok := components.Input.First(as.ecs.World); ok {
		components.Input.Get(entry).Relay.DisablePlayerActions()
	}
	log.Printf("[arena] closed")
}
