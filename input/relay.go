package input

import (
	"log"

	cfg "github.com/automoto/laststand/config"
	"github.com/automoto/laststand/signal"
	"github.com/go-gl/mathgl/mgl64"
)

// PointerSample is a pointer or look value together with whether it came
// from a mouse.
type PointerSample struct {
	Position        mgl64.Vec2
	IsPointerDevice bool
}

// Relay owns the binding to a Source and re-publishes its callbacks as
// typed events. One Relay is shared by every consumer of player input.
type Relay struct {
	source  Source
	enabled bool

	move               *signal.Signal[mgl64.Vec2]
	look               *signal.Signal[PointerSample]
	mouse              *signal.Signal[PointerSample]
	fire               *signal.Signal[bool]
	jump               *signal.Signal[bool]
	mouseControlCamera *signal.Signal[bool]

	direction  mgl64.Vec2
	pointer    mgl64.Vec2
	hasPointer bool
}

func NewRelay(src Source) *Relay {
	r := &Relay{
		source:             src,
		move:               signal.New[mgl64.Vec2](),
		look:               signal.New[PointerSample](),
		mouse:              signal.New[PointerSample](),
		fire:               signal.New[bool](),
		jump:               signal.New[bool](),
		mouseControlCamera: signal.New[bool](),
	}
	src.SetHandler(r)
	return r
}

// EnablePlayerActions starts device listening. Calling it again is a no-op.
func (r *Relay) EnablePlayerActions() {
	if r.enabled {
		return
	}
	r.enabled = true
	r.source.Enable()
	log.Println("[input] player actions enabled")
}

func (r *Relay) DisablePlayerActions() {
	if !r.enabled {
		return
	}
	r.enabled = false
	r.source.Disable()
	log.Println("[input] player actions disabled")
}

func (r *Relay) Enabled() bool {
	return r.enabled
}

// HandleAction classifies a device callback and forwards at most one event.
func (r *Relay) HandleAction(ctx Context) {
	switch ctx.Action {
	case cfg.ActionMove:
		r.direction = ctx.Value
		r.move.Emit(ctx.Value)
	case cfg.ActionLook:
		r.look.Emit(PointerSample{Position: ctx.Value, IsPointerDevice: isPointerDevice(ctx)})
	case cfg.ActionMousePosition:
		r.pointer = ctx.Value
		r.hasPointer = true
		r.mouse.Emit(PointerSample{Position: ctx.Value, IsPointerDevice: isPointerDevice(ctx)})
	case cfg.ActionFire:
		emitEdge(r.fire, ctx.Phase)
	case cfg.ActionJump:
		emitEdge(r.jump, ctx.Phase)
	case cfg.ActionMouseControlCamera:
		emitEdge(r.mouseControlCamera, ctx.Phase)
	case cfg.ActionRun:
		// bound but unused
	}
}

// emitEdge forwards only the press and release transitions of a button.
func emitEdge(s *signal.Signal[bool], phase Phase) {
	switch phase {
	case PhaseStarted:
		s.Emit(true)
	case PhaseCanceled:
		s.Emit(false)
	}
}

func isPointerDevice(ctx Context) bool {
	return ctx.Device.Kind == DeviceMouse
}

// Direction is the latest movement sample.
func (r *Relay) Direction() mgl64.Vec2 {
	return r.direction
}

// PointerPosition is the latest pointer sample in viewport space, zero until
// the first one arrives.
func (r *Relay) PointerPosition() mgl64.Vec2 {
	return r.pointer
}

// HasPointerSample tells a pointer at the viewport origin apart from no
// pointer at all.
func (r *Relay) HasPointerSample() bool {
	return r.hasPointer
}

func (r *Relay) Move() *signal.Signal[mgl64.Vec2] { return r.move }
func (r *Relay) Look() *signal.Signal[PointerSample] { return r.look }
func (r *Relay) Mouse() *signal.Signal[PointerSample] { return r.mouse }
func (r *Relay) Fire() *signal.Signal[bool] { return r.fire }
func (r *Relay) Jump() *signal.Signal[bool] { return r.jump }

// MouseControlCamera emits true when camera mouse control is enabled and
// false when it is released.
func (r *Relay) MouseControlCamera() *signal.Signal[bool] { return r.mouseControlCamera }
