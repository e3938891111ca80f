package input

import (
	"math"

	cfg "github.com/automoto/laststand/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Snapshot is the raw device state sampled once per frame.
type Snapshot struct {
	Buttons       [cfg.ActionCount]bool
	ButtonDevices [cfg.ActionCount]Device

	Move       mgl64.Vec2
	MoveDevice Device

	// Cursor is in viewport space: origin bottom-left, y up.
	Cursor       mgl64.Vec2
	CursorDevice Device

	Look       mgl64.Vec2
	LookDevice Device
}

// EbitenSource polls ebiten's keyboard, mouse, gamepad and touch state and
// reports changes as action callbacks.
type EbitenSource struct {
	bindings       cfg.InputConfig
	viewportHeight int

	handler Handler
	enabled bool
	prev    Snapshot

	lastCursor mgl64.Vec2
	hasCursor  bool

	// Reusable slices to avoid allocations
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
}

func NewEbitenSource(bindings cfg.InputConfig, viewportHeight int) *EbitenSource {
	return &EbitenSource{
		bindings:       bindings,
		viewportHeight: viewportHeight,
	}
}

func (s *EbitenSource) SetHandler(h Handler) {
	s.handler = h
}

func (s *EbitenSource) Enable() {
	s.enabled = true
}

// Disable cancels every action in progress, then stops callbacks. Held
// state and the cursor anchor are forgotten, so re-enabling reports held
// buttons as fresh presses and the first look delta as zero.
func (s *EbitenSource) Disable() {
	if s.enabled {
		s.Apply(Snapshot{})
	}
	s.enabled = false
	s.prev = Snapshot{}
	s.hasCursor = false
}

func (s *EbitenSource) Enabled() bool {
	return s.enabled
}

// Poll samples the devices and dispatches the resulting callbacks. Must run
// once per frame before the consumers read the relay.
func (s *EbitenSource) Poll() {
	if !s.enabled {
		return
	}
	s.Apply(s.read())
}

// Apply diffs cur against the previous snapshot and dispatches callbacks:
// Started and Performed on a press, Canceled on a release, and for value
// actions Started when leaving zero, Performed on every change and Canceled
// when returning to zero.
func (s *EbitenSource) Apply(cur Snapshot) {
	prev := s.prev
	s.prev = cur
	if !s.enabled || s.handler == nil {
		return
	}

	for a := cfg.ActionID(0); a < cfg.ActionCount; a++ {
		if !a.IsButton() || cur.Buttons[a] == prev.Buttons[a] {
			continue
		}
		if cur.Buttons[a] {
			s.dispatch(a, PhaseStarted, mgl64.Vec2{}, cur.ButtonDevices[a])
			s.dispatch(a, PhasePerformed, mgl64.Vec2{}, cur.ButtonDevices[a])
		} else {
			s.dispatch(a, PhaseCanceled, mgl64.Vec2{}, prev.ButtonDevices[a])
		}
	}

	s.applyValue(cfg.ActionMove, prev.Move, cur.Move, cur.MoveDevice)
	s.applyValue(cfg.ActionLook, prev.Look, cur.Look, cur.LookDevice)
	s.applyValue(cfg.ActionMousePosition, prev.Cursor, cur.Cursor, cur.CursorDevice)
}

func (s *EbitenSource) applyValue(a cfg.ActionID, prev, cur mgl64.Vec2, dev Device) {
	if prev == cur {
		return
	}
	switch {
	case prev == (mgl64.Vec2{}):
		s.dispatch(a, PhaseStarted, cur, dev)
		s.dispatch(a, PhasePerformed, cur, dev)
	case cur == (mgl64.Vec2{}):
		s.dispatch(a, PhaseCanceled, cur, dev)
	default:
		s.dispatch(a, PhasePerformed, cur, dev)
	}
}

func (s *EbitenSource) dispatch(a cfg.ActionID, phase Phase, v mgl64.Vec2, dev Device) {
	s.handler.HandleAction(Context{Action: a, Phase: phase, Value: v, Device: dev})
}

// read samples ebiten's device state into a Snapshot.
func (s *EbitenSource) read() Snapshot {
	var snap Snapshot
	s.gamepadIDs = ebiten.AppendGamepadIDs(s.gamepadIDs[:0])

	for actionID, binding := range s.bindings.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				snap.Buttons[actionID] = true
				snap.ButtonDevices[actionID] = Keyboard
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				snap.Buttons[actionID] = true
				snap.ButtonDevices[actionID] = Mouse
			}
		}
		for _, gpID := range s.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					snap.Buttons[actionID] = true
					snap.ButtonDevices[actionID] = gamepadDevice(gpID)
				}
			}
		}
	}

	snap.Move, snap.MoveDevice = s.readMove()
	snap.Cursor, snap.CursorDevice = s.readCursor()
	snap.Look, snap.LookDevice = s.readLook(snap.Cursor, snap.CursorDevice)
	return snap
}

func (s *EbitenSource) readMove() (mgl64.Vec2, Device) {
	keys := s.bindings.MoveKeys
	var v mgl64.Vec2
	if anyKeyPressed(keys.Right) {
		v[0]++
	}
	if anyKeyPressed(keys.Left) {
		v[0]--
	}
	if anyKeyPressed(keys.Up) {
		v[1]++
	}
	if anyKeyPressed(keys.Down) {
		v[1]--
	}
	if v != (mgl64.Vec2{}) {
		return ClampUnit(v), Keyboard
	}

	for _, gpID := range s.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		stick := mgl64.Vec2{
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal),
			// Stick up is negative
			-ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical),
		}
		if stick = ApplyDeadzone(stick, s.bindings.AnalogDeadzone); stick != (mgl64.Vec2{}) {
			return ClampUnit(stick), gamepadDevice(gpID)
		}
	}
	return mgl64.Vec2{}, Keyboard
}

func (s *EbitenSource) readCursor() (mgl64.Vec2, Device) {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(s.touchIDs[0])
		return s.toViewport(x, y), Touchscreen
	}
	x, y := ebiten.CursorPosition()
	return s.toViewport(x, y), Mouse
}

func (s *EbitenSource) readLook(cursor mgl64.Vec2, cursorDev Device) (mgl64.Vec2, Device) {
	for _, gpID := range s.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		stick := mgl64.Vec2{
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal),
			-ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical),
		}
		if stick = ApplyDeadzone(stick, s.bindings.AnalogDeadzone); stick != (mgl64.Vec2{}) {
			s.lastCursor, s.hasCursor = cursor, true
			return stick.Mul(s.bindings.LookStickScale), gamepadDevice(gpID)
		}
	}

	var delta mgl64.Vec2
	if s.hasCursor {
		delta = cursor.Sub(s.lastCursor)
	}
	s.lastCursor, s.hasCursor = cursor, true
	return delta, cursorDev
}

func (s *EbitenSource) toViewport(x, y int) mgl64.Vec2 {
	return mgl64.Vec2{float64(x), float64(s.viewportHeight - y)}
}

func gamepadDevice(id ebiten.GamepadID) Device {
	return Device{Name: ebiten.GamepadName(id), Kind: DeviceGamepad}
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// ApplyDeadzone zeroes a stick vector whose length is within the deadzone
// and rescales the rest so output starts at zero at the deadzone edge.
func ApplyDeadzone(v mgl64.Vec2, deadzone float64) mgl64.Vec2 {
	l := v.Len()
	if l <= deadzone || l == 0 || deadzone >= 1 {
		return mgl64.Vec2{}
	}
	scaled := (math.Min(l, 1) - deadzone) / (1 - deadzone)
	return v.Mul(scaled / l)
}

// ClampUnit limits v to unit length, keeping its direction.
func ClampUnit(v mgl64.Vec2) mgl64.Vec2 {
	if l := v.Len(); l > 1 {
		return v.Mul(1 / l)
	}
	return v
}
