package systems

import (
	"log"

	"github.com/automoto/laststand/components"
	cfg "github.com/automoto/laststand/config"
	"github.com/automoto/laststand/fonts"
	"github.com/automoto/laststand/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var pauseGamepadIDs []ebiten.GamepadID

// UpdatePause handles the pause toggle and focus loss.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)

	switch {
	case pausePressed():
		setPaused(e, pause, !pause.IsPaused, false)
	case !ebiten.IsFocused() && !pause.IsPaused:
		setPaused(e, pause, true, true)
	case ebiten.IsFocused() && pause.IsPaused && pause.ByFocus:
		setPaused(e, pause, false, false)
	}
}

func pausePressed() bool {
	for _, key := range cfg.Input.PauseKeys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	pauseGamepadIDs = ebiten.AppendGamepadIDs(pauseGamepadIDs[:0])
	for _, id := range pauseGamepadIDs {
		if inpututil.IsStandardGamepadButtonJustPressed(id, cfg.Input.PauseGamepadButton) {
			return true
		}
	}
	return false
}

// setPaused stops device listening while paused. Disabling the relay
// cancels a held fire button, which ends the attack loop.
func setPaused(e *ecs.ECS, pause *components.PauseData, paused, byFocus bool) {
	if pause.IsPaused == paused {
		return
	}
	pause.IsPaused = paused
	pause.ByFocus = paused && byFocus

	if entry, ok := components.Input.First(e.World); ok {
		relay := components.Input.Get(entry).Relay
		if paused {
			relay.DisablePlayerActions()
		} else {
			relay.EnablePlayerActions()
		}
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		cd := components.Player.Get(entry).Controller.Cooldown()
		if cd == nil {
			return
		}
		if paused {
			cd.Pause()
		} else {
			cd.Resume()
		}
	})

	// drop the time banked before the pause so physics does not catch up
	if entry, ok := components.Clock.First(e.World); ok && !paused {
		components.Clock.Get(entry).Physics.Reset()
	}
	log.Printf("[pause] paused=%v focus=%v", paused, byFocus)
}

// DrawPause renders the pause overlay.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	drawCentered(screen, "PAUSED", fonts.Title, width/2, height/2-20)
	drawCentered(screen, "Esc / Start: resume", fonts.Small, width/2, height/2+20)
}

func drawCentered(screen *ebiten.Image, s string, font fonts.FontName, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(cfg.White)
	text.Draw(screen, s, font.Get(), op)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
