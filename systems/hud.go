package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/laststand/components"
	cfg "github.com/automoto/laststand/config"
	"github.com/automoto/laststand/fonts"
	"github.com/automoto/laststand/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 8
	hudMargin    = 10
	hudLine      = 20
)

var hudBarBack = color.RGBA{40, 40, 40, 255}

// DrawHUD renders the attack counter, state and cooldown bar in the top-left
// corner, plus the input edges the controller does not consume.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	c := components.Player.Get(playerEntry).Controller

	y := float64(hudMargin)
	drawText(screen, fmt.Sprintf("Attacks: %d", c.AttackCount()), fonts.Regular, hudMargin, y, cfg.White)
	y += hudLine
	drawText(screen, "State: "+c.State().String(), fonts.Regular, hudMargin, y, stateColor(c.IsAttacking()))
	y += hudLine + 4

	if cd := c.Cooldown(); cd != nil {
		vector.FillRect(screen, hudMargin, float32(y), hudBarWidth, hudBarHeight, hudBarBack, false)
		fill := float32(1.0)
		if cd.IsRunning() {
			fill = float32(cd.Progress())
		}
		vector.FillRect(screen, hudMargin, float32(y), hudBarWidth*fill, hudBarHeight, cfg.LightGreen, false)
		y += hudBarHeight + 6
	}

	if inEntry, ok := components.Input.First(e.World); ok {
		in := components.Input.Get(inEntry)
		status := fmt.Sprintf("Jumps: %d", in.JumpCount)
		if in.Jumping {
			status += "  [jump]"
		}
		if in.MouseCamera {
			status += "  [camera]"
		}
		drawText(screen, status, fonts.Small, hudMargin, y, cfg.White)
	}

	hint := fmt.Sprintf("%s: debug", cfg.Input.DebugKey)
	drawText(screen, hint, fonts.Small, hudMargin, float64(cfg.C.Height-hudMargin-14), cfg.WallGray)
}

func stateColor(attacking bool) color.Color {
	if attacking {
		return cfg.Yellow
	}
	return cfg.White
}

func drawText(screen *ebiten.Image, s string, font fonts.FontName, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, font.Get(), op)
}
