package systems

import (
	"image/color"

	"github.com/automoto/laststand/camera"
	"github.com/automoto/laststand/components"
	cfg "github.com/automoto/laststand/config"
	"github.com/automoto/laststand/player"
	"github.com/automoto/laststand/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const gridSpacing = 2.0 // world units between floor grid lines

var gridColor = color.RGBA{R: 44, G: 47, B: 56, A: 255}

func currentView(e *ecs.ECS) *camera.TopDown {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry).View
}

// DrawArena renders the floor grid and the walls.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	view := currentView(e)
	if view == nil {
		return
	}

	x0, y0 := view.ToScreen(mgl64.Vec3{0, 0, cfg.Arena.Depth})
	vector.FillRect(screen, float32(x0), float32(y0),
		float32(view.Scale(cfg.Arena.Width)), float32(view.Scale(cfg.Arena.Depth)),
		cfg.Floor, false)

	for x := gridSpacing; x < cfg.Arena.Width; x += gridSpacing {
		ax, ay := view.ToScreen(mgl64.Vec3{x, 0, 0})
		bx, by := view.ToScreen(mgl64.Vec3{x, 0, cfg.Arena.Depth})
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 1, gridColor, false)
	}
	for z := gridSpacing; z < cfg.Arena.Depth; z += gridSpacing {
		ax, ay := view.ToScreen(mgl64.Vec3{0, 0, z})
		bx, by := view.ToScreen(mgl64.Vec3{cfg.Arena.Width, 0, z})
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 1, gridColor, false)
	}

	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		x, y, w, h := footprintToScreen(view, *components.Object.Get(entry))
		vector.FillRect(screen, x, y, w, h, cfg.WallGray, false)
	})
}

// DrawPlayer renders the body and a muzzle line along its facing.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	view := currentView(e)
	if view == nil {
		return
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		p := components.Player.Get(entry)
		body := components.Body.Get(entry)
		radius := p.Controller.Config().Radius

		bodyColor := cfg.LightBlue
		if p.Controller.IsAttacking() {
			bodyColor = cfg.Yellow
		}

		cx, cy := view.ToScreen(body.Pos)
		vector.FillCircle(screen, float32(cx), float32(cy), float32(view.Scale(radius)), bodyColor, true)

		tip := body.Pos.Add(body.Rot.Rotate(player.Muzzle).Mul(radius * 1.6))
		tx, ty := view.ToScreen(tip)
		vector.StrokeLine(screen, float32(cx), float32(cy), float32(tx), float32(ty), 3, cfg.White, true)
	})
}

// DrawShots renders every live tracer with its current reach and alpha.
func DrawShots(e *ecs.ECS, screen *ebiten.Image) {
	view := currentView(e)
	if view == nil {
		return
	}

	tags.Shot.Each(e.World, func(entry *donburi.Entry) {
		shot := components.Shot.Get(entry)
		if shot.Length <= 0 || !view.Visible(shot.Origin, view.Scale(shot.Length)) {
			return
		}
		end := shot.Origin.Add(shot.Direction.Mul(shot.Length))
		ax, ay := view.ToScreen(shot.Origin)
		bx, by := view.ToScreen(end)

		c := fade(cfg.Shot.Color, shot.Alpha)
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), cfg.Shot.Thickness, c, true)
	})
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := mgl64.Clamp(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// footprintToScreen returns the screen rectangle of a collision footprint.
// Its far z edge is the top on screen.
func footprintToScreen(view *camera.TopDown, obj components.ObjectData) (x, y, w, h float32) {
	wx, wz, ww, wd := obj.WorldRect()
	sx, sy := view.ToScreen(mgl64.Vec3{wx, 0, wz + wd})
	return float32(sx), float32(sy), float32(view.Scale(ww)), float32(view.Scale(wd))
}
