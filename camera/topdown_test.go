package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestWorldToViewport(t *testing.T) {
	c := NewTopDown(800, 600, 10)
	c.Center = mgl64.Vec2{5, 5}

	tests := []struct {
		name  string
		world mgl64.Vec3
		want  mgl64.Vec3
	}{
		{"center", mgl64.Vec3{5, 0, 5}, mgl64.Vec3{400, 300, 0}},
		{"east", mgl64.Vec3{6, 0, 5}, mgl64.Vec3{410, 300, 0}},
		{"north is up", mgl64.Vec3{5, 0, 7}, mgl64.Vec3{400, 320, 0}},
		{"height carried", mgl64.Vec3{5, 2, 5}, mgl64.Vec3{400, 300, 2}},
		{"bottom-left corner", mgl64.Vec3{-35, 0, -25}, mgl64.Vec3{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.WorldToViewport(tt.world); got != tt.want {
				t.Errorf("WorldToViewport(%v) = %v, want %v", tt.world, got, tt.want)
			}
		})
	}
}

func TestViewportToWorldInverts(t *testing.T) {
	c := NewTopDown(960, 540, 32)
	c.Center = mgl64.Vec2{12.5, -3}

	points := []mgl64.Vec3{
		{0, 0, 0},
		{12.5, 0, -3},
		{-4, 0, 8.25},
		{100, 0, 100},
	}
	for _, p := range points {
		got := c.ViewportToWorld(c.WorldToViewport(p))
		if got.Sub(p).Len() > 1e-9 {
			t.Errorf("round trip of %v = %v", p, got)
		}
	}
}

func TestViewportToWorldDropsHeight(t *testing.T) {
	c := NewTopDown(100, 100, 1)
	got := c.ViewportToWorld(mgl64.Vec3{60, 70, 9})
	if got != (mgl64.Vec3{10, 0, 20}) {
		t.Errorf("ViewportToWorld = %v, want (10, 0, 20)", got)
	}
}

func TestToScreenFlipsY(t *testing.T) {
	c := NewTopDown(800, 600, 10)

	x, y := c.ToScreen(mgl64.Vec3{0, 0, 10})
	if x != 400 || y != 200 {
		t.Errorf("ToScreen = (%v, %v), want (400, 200)", x, y)
	}
}

func TestVisible(t *testing.T) {
	c := NewTopDown(100, 100, 1)

	if !c.Visible(mgl64.Vec3{0, 0, 0}, 0) {
		t.Error("center should be visible")
	}
	if c.Visible(mgl64.Vec3{60, 0, 0}, 0) {
		t.Error("point past the right edge should not be visible")
	}
	if !c.Visible(mgl64.Vec3{60, 0, 0}, 20) {
		t.Error("margin should widen the visible area")
	}
}
