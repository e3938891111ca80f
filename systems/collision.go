package systems

import (
	"math"

	"github.com/automoto/laststand/components"
	"github.com/automoto/laststand/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// moveBody integrates velocity over one step, one axis at a time. An axis
// that runs into a wall stops at the contact point and loses its velocity.
func moveBody(body *components.BodyData, obj *components.ObjectData, step float64) {
	body.BlockedX, body.BlockedZ = false, false
	s := components.CollisionScale

	dx := body.Vel.X() * step * s
	if dx != 0 {
		if contact, hit := wallContact(obj.Object, dx, 0); hit {
			dx = contact
			body.Vel[0] = 0
			body.BlockedX = true
		}
		obj.X += dx
	}

	dz := body.Vel.Z() * step * s
	if dz != 0 {
		if contact, hit := wallContact(obj.Object, 0, dz); hit {
			dz = contact
			body.Vel[2] = 0
			body.BlockedZ = true
		}
		obj.Y += dz
	}

	obj.Update()
	body.Pos = footprintCenter(*obj, body.Pos.Y())
}

// wallContact reports how far the object can travel along the one non-zero
// axis before touching a wall. Walls that share a cell but lie beyond the
// move are not hits.
func wallContact(object *resolv.Object, dx, dz float64) (float64, bool) {
	check := object.Check(dx, dz, tags.ResolvSolid)
	if check == nil {
		return 0, false
	}

	want := math.Abs(dx + dz)
	best, hit := 0.0, false
	for _, wall := range check.ObjectsByTags(tags.ResolvSolid) {
		contact := check.ContactWithObject(wall)
		d := contact.X()
		if dx == 0 {
			d = contact.Y()
		}
		// contact points the same way as the move, or is zero when touching
		if d*(dx+dz) < 0 || math.Abs(d) >= want {
			continue
		}
		if !hit || math.Abs(d) < math.Abs(best) {
			best, hit = d, true
		}
	}
	return best, hit
}

func footprintCenter(obj components.ObjectData, height float64) mgl64.Vec3 {
	x, z, w, d := obj.WorldRect()
	return mgl64.Vec3{x + w/2, height, z + d/2}
}
