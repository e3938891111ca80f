// Package camera projects the ground plane onto the viewport for a camera
// looking straight down the world y axis.
package camera

import "github.com/go-gl/mathgl/mgl64"

// TopDown is an orthographic camera. Viewport space has its origin at the
// bottom-left corner with y growing upward; world x maps to viewport x and
// world z to viewport y.
type TopDown struct {
	Center        mgl64.Vec2 // world (x, z) at the middle of the viewport
	PixelsPerUnit float64
	Width         float64
	Height        float64
}

func NewTopDown(width, height, pixelsPerUnit float64) *TopDown {
	return &TopDown{
		PixelsPerUnit: pixelsPerUnit,
		Width:         width,
		Height:        height,
	}
}

// WorldToViewport returns the viewport position of p. The z component is the
// height of p above the ground.
func (c *TopDown) WorldToViewport(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		(p.X()-c.Center.X())*c.PixelsPerUnit + c.Width/2,
		(p.Z()-c.Center.Y())*c.PixelsPerUnit + c.Height/2,
		p.Y(),
	}
}

// ViewportToWorld is the inverse of WorldToViewport onto the ground plane.
// The z component of v is ignored.
func (c *TopDown) ViewportToWorld(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		(v.X()-c.Width/2)/c.PixelsPerUnit + c.Center.X(),
		0,
		(v.Y()-c.Height/2)/c.PixelsPerUnit + c.Center.Y(),
	}
}

// ToScreen converts a world position to ebiten's y-down pixel space.
func (c *TopDown) ToScreen(p mgl64.Vec3) (x, y float64) {
	v := c.WorldToViewport(p)
	return v.X(), c.Height - v.Y()
}

// Scale converts a world length to pixels.
func (c *TopDown) Scale(d float64) float64 {
	return d * c.PixelsPerUnit
}

// Visible reports whether p lands inside the viewport, with margin pixels of
// slack on every side.
func (c *TopDown) Visible(p mgl64.Vec3, margin float64) bool {
	v := c.WorldToViewport(p)
	return v.X() >= -margin && v.X() <= c.Width+margin &&
		v.Y() >= -margin && v.Y() <= c.Height+margin
}
