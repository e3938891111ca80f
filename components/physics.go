package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// BodyData is the rigid body steered by the player controller. Velocity is
// in world units per second; rotation only changes through SetRotation.
type BodyData struct {
	Pos            mgl64.Vec3
	Vel            mgl64.Vec3
	Rot            mgl64.Quat
	RotationFrozen bool

	// Set by the last physics step when a wall stopped motion on that axis.
	BlockedX bool
	BlockedZ bool
}

func NewBody(pos mgl64.Vec3) *BodyData {
	return &BodyData{Pos: pos, Rot: mgl64.QuatIdent()}
}

func (b *BodyData) Position() mgl64.Vec3 { return b.Pos }
func (b *BodyData) Velocity() mgl64.Vec3 { return b.Vel }
func (b *BodyData) SetVelocity(v mgl64.Vec3) { b.Vel = v }
func (b *BodyData) SetRotation(q mgl64.Quat) { b.Rot = q }
func (b *BodyData) SetFreezeRotation(frozen bool) { b.RotationFrozen = frozen }

var Body = donburi.NewComponentType[BodyData]()
