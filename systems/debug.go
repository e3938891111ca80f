package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/laststand/components"
	cfg "github.com/automoto/laststand/config"
	"github.com/automoto/laststand/fonts"
	"github.com/automoto/laststand/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	view := currentView(e)
	if view == nil {
		return
	}

	// Draw all collision objects in the space
	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255}
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			}
			x, y, w, h := footprintToScreen(view, components.ObjectData{Object: obj})
			vector.StrokeRect(screen, x, y, w, h, 1, c, false)
		}
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	p := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)

	// Velocity, drawn as the distance covered in half a second
	bx, by := view.ToScreen(body.Pos)
	vx, vy := view.ToScreen(body.Pos.Add(body.Vel.Mul(0.5)))
	vector.StrokeLine(screen, float32(bx), float32(by), float32(vx), float32(vy), 2, cfg.LightGreen, true)

	// Deprojected pointer
	if p.Controller.Pointer().Len() > 0 {
		px, py := view.ToScreen(p.Controller.PointerWorld())
		vector.StrokeLine(screen, float32(px-6), float32(py), float32(px+6), float32(py), 1, cfg.Red, false)
		vector.StrokeLine(screen, float32(px), float32(py-6), float32(px), float32(py+6), 1, cfg.Red, false)
	}

	lines := []string{
		fmt.Sprintf("TPS %.1f  FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("pos   %.2f, %.2f", body.Pos.X(), body.Pos.Z()),
		fmt.Sprintf("vel   %.2f, %.2f", body.Vel.X(), body.Vel.Z()),
		fmt.Sprintf("yaw   %.1f", p.Controller.Facing()),
		fmt.Sprintf("input %.2f, %.2f", p.Controller.Movement().X(), p.Controller.Movement().Z()),
	}
	if cd := p.Controller.Cooldown(); cd != nil {
		lines = append(lines, fmt.Sprintf("cooldown %.2f / %.2f", cd.Remaining(), cd.Duration()))
	}
	if clockEntry, ok := components.Clock.First(e.World); ok {
		c := components.Clock.Get(clockEntry)
		lines = append(lines, fmt.Sprintf("steps %d  alpha %.2f  dropped %.2fs", c.Steps, c.Physics.Alpha(), c.Physics.Dropped()))
	}

	x := float64(cfg.C.Width - 260)
	y := float64(hudMargin)
	vector.FillRect(screen, float32(x-6), float32(y-4), 256, float32(len(lines)*16+8), cfg.BlackOverlay, false)
	for _, line := range lines {
		drawText(screen, line, fonts.Small, x, y, cfg.White)
		y += 16
	}
}
