// Package player implements the character controller: it samples the input
// relay every logic tick, steers the physics body every physics tick and runs
// the hold-to-fire attack loop.
package player

import (
	"errors"
	"fmt"
	"log"
	"math"

	cfg "github.com/automoto/laststand/config"
	"github.com/automoto/laststand/signal"
	"github.com/automoto/laststand/timer"
	"github.com/go-gl/mathgl/mgl64"
)

// Body is the physics body the controller steers.
type Body interface {
	Position() mgl64.Vec3
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
	SetRotation(q mgl64.Quat)
	SetFreezeRotation(frozen bool)
}

// Projector converts between world space and viewport space.
type Projector interface {
	WorldToViewport(p mgl64.Vec3) mgl64.Vec3
	ViewportToWorld(p mgl64.Vec3) mgl64.Vec3
}

// Input is the part of the input relay the controller reads.
type Input interface {
	Direction() mgl64.Vec2
	PointerPosition() mgl64.Vec2
	HasPointerSample() bool
	Fire() *signal.Signal[bool]
	EnablePlayerActions()
}

// State is the attack loop state.
type State int

const (
	StateIdle State = iota
	StateAttacking
)

func (s State) String() string {
	if s == StateAttacking {
		return "Attacking"
	}
	return "Idle"
}

// Attack describes one executed attack.
type Attack struct {
	Seq      int        // 1-based count since the controller was created
	Origin   mgl64.Vec3 // body position at the time of the attack
	Facing   float64    // yaw in degrees
	Cadenced bool       // fired by the cooldown rather than the press edge
}

var up = mgl64.Vec3{0, 1, 0}

// Muzzle is the model-space direction attacks leave the body. The facing
// formula measures from the pointer to the body, so the muzzle sits on -Z.
var Muzzle = mgl64.Vec3{0, 0, -1}

// Controller turns cached input into body commands and attacks.
type Controller struct {
	cfg   cfg.PlayerConfig
	body  Body
	proj  Projector
	input Input

	movement mgl64.Vec3
	pointer  mgl64.Vec2

	// Written by FixedUpdate; pointerWorld is for overlays only.
	facing       float64
	pointerWorld mgl64.Vec3

	attacking   bool
	cooldown    *timer.Countdown
	cooldownSub signal.Subscription
	fireSub     signal.Subscription
	attackCount int
	attacks     *signal.Signal[Attack]
}

// NewController validates the configuration and prepares the body. A
// controller whose configuration is rejected is never returned.
func NewController(pc cfg.PlayerConfig, body Body, proj Projector, in Input) (*Controller, error) {
	if body == nil || proj == nil || in == nil {
		return nil, errors.New("player: body, projector and input are required")
	}
	if err := pc.Validate(); err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}

	c := &Controller{
		cfg:     pc,
		body:    body,
		proj:    proj,
		input:   in,
		attacks: signal.New[Attack](),
	}
	if !pc.AttackDisabled {
		cd, err := timer.NewCountdown(pc.AttackCooldown)
		if err != nil {
			return nil, fmt.Errorf("player: attack cooldown: %w", err)
		}
		c.cooldown = cd
	}

	body.SetFreezeRotation(true)
	return c, nil
}

// Enable subscribes to the fire action. Calling it twice keeps one
// subscription.
func (c *Controller) Enable() {
	if c.cooldown == nil || c.fireSub != 0 {
		return
	}
	c.fireSub = c.input.Fire().Subscribe(c.onFire)
}

// Disable unsubscribes from fire and ends any attack sequence, so an
// in-flight cooldown can no longer trigger an attack.
func (c *Controller) Disable() {
	if c.fireSub != 0 {
		c.input.Fire().Unsubscribe(c.fireSub)
		c.fireSub = 0
	}
	c.endAttack()
}

// Start turns on device listening.
func (c *Controller) Start() {
	c.input.EnablePlayerActions()
}

func (c *Controller) onFire(pressed bool) {
	if pressed {
		c.beginAttack()
		return
	}
	c.endAttack()
}

func (c *Controller) beginAttack() {
	if c.attacking {
		// already holding fire, keep the single cooldown subscription
		return
	}
	c.attacking = true
	c.handleAttack(false)
	c.cooldownSub = c.cooldown.OnStop().Subscribe(c.onAttackCooldownEnd)
}

func (c *Controller) endAttack() {
	c.attacking = false
	if c.cooldownSub != 0 {
		c.cooldown.OnStop().Unsubscribe(c.cooldownSub)
		c.cooldownSub = 0
	}
}

func (c *Controller) onAttackCooldownEnd(*timer.Countdown) {
	if !c.attacking {
		return
	}
	c.handleAttack(true)
	c.cooldown.Reset()
}

func (c *Controller) handleAttack(cadenced bool) {
	c.cooldown.Start()
	c.attackCount++

	a := Attack{
		Seq:      c.attackCount,
		Origin:   c.body.Position(),
		Facing:   c.facing,
		Cadenced: cadenced,
	}
	if cfg.Debug.LogPew {
		log.Printf("[player] pew #%d facing %.1f", a.Seq, a.Facing)
	}
	c.attacks.Emit(a)
}

// Update is the logic tick: cache this frame's input and advance the
// cooldown, which may attack synchronously.
func (c *Controller) Update(dt float64) {
	dir := c.input.Direction()
	c.movement = mgl64.Vec3{dir.X(), 0, dir.Y()}
	c.pointer = c.input.PointerPosition()
	if !c.input.HasPointerSample() {
		c.pointer = mgl64.Vec2{}
	}

	if c.cooldown != nil {
		c.cooldown.Tick(dt)
	}
}

// FixedUpdate is the physics tick.
func (c *Controller) FixedUpdate() {
	c.handleMovement()
	c.handleRotation()
}

func (c *Controller) handleMovement() {
	current := c.body.Velocity()
	if c.movement.Len() > 0 {
		target := c.movement.Normalize().Mul(c.cfg.MoveSpeed)
		c.body.SetVelocity(Lerp(current, current.Add(target), c.cfg.SmoothTime))
		return
	}
	c.body.SetVelocity(Lerp(current, mgl64.Vec3{}, c.cfg.Inertia))
}

// handleRotation faces the body by the angle between its projected position
// and the raw pointer. The deprojected pointer is kept for overlays but does
// not feed the angle.
func (c *Controller) handleRotation() {
	if c.pointer.Len() <= 0 {
		return
	}

	onScreen := c.proj.WorldToViewport(c.body.Position())
	c.pointerWorld = c.proj.ViewportToWorld(c.pointer.Vec3(0))

	c.facing = FacingAngle(onScreen, c.pointer)
	c.body.SetRotation(Yaw(c.facing))
}

// FacingAngle is the yaw in degrees from a viewport position and a pointer
// sample.
func FacingAngle(onScreen mgl64.Vec3, pointer mgl64.Vec2) float64 {
	return mgl64.RadToDeg(math.Atan2(onScreen.X()-pointer.X(), onScreen.Y()-pointer.Y()))
}

// Yaw is a rotation of deg degrees about the world up axis.
func Yaw(deg float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(deg), up)
}

// Aim is the world direction of the muzzle for a yaw in degrees.
func Aim(deg float64) mgl64.Vec3 {
	return Yaw(deg).Rotate(Muzzle)
}

// Lerp moves a toward b by t, with t clamped to [0, 1].
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = mgl64.Clamp(t, 0, 1)
	return a.Add(b.Sub(a).Mul(t))
}

func (c *Controller) State() State {
	if c.attacking {
		return StateAttacking
	}
	return StateIdle
}

func (c *Controller) IsAttacking() bool { return c.attacking }
func (c *Controller) Movement() mgl64.Vec3 { return c.movement }
func (c *Controller) Pointer() mgl64.Vec2 { return c.pointer }
func (c *Controller) Facing() float64 { return c.facing }
func (c *Controller) PointerWorld() mgl64.Vec3 { return c.pointerWorld }
func (c *Controller) AttackCount() int { return c.attackCount }
func (c *Controller) Config() cfg.PlayerConfig { return c.cfg }
func (c *Controller) Attacks() *signal.Signal[Attack] { return c.attacks }

// Cooldown is nil when the attack subsystem is disabled.
func (c *Controller) Cooldown() *timer.Countdown {
	return c.cooldown
}
