// Package input turns device callbacks into the typed player events the
// character controller consumes.
package input

import (
	cfg "github.com/automoto/laststand/config"
	"github.com/go-gl/mathgl/mgl64"
)

// Phase is the lifecycle step an action callback reports.
type Phase int

const (
	PhaseDisabled Phase = iota
	PhaseWaiting
	PhaseStarted
	PhasePerformed
	PhaseCanceled
)

func (p Phase) String() string {
	switch p {
	case PhaseDisabled:
		return "Disabled"
	case PhaseWaiting:
		return "Waiting"
	case PhaseStarted:
		return "Started"
	case PhasePerformed:
		return "Performed"
	case PhaseCanceled:
		return "Canceled"
	}
	return "Unknown"
}

// DeviceKind represents the type of input device that produced a callback
type DeviceKind int

const (
	DeviceUnknown DeviceKind = iota
	DeviceKeyboard
	DeviceMouse
	DeviceGamepad
	DeviceTouchscreen
)

// Device identifies the originating device of a callback.
type Device struct {
	Name string
	Kind DeviceKind
}

var (
	Keyboard    = Device{Name: "Keyboard", Kind: DeviceKeyboard}
	Mouse       = Device{Name: "Mouse", Kind: DeviceMouse}
	Touchscreen = Device{Name: "Touchscreen", Kind: DeviceTouchscreen}
)

// Context is one device callback: which action, in which phase, with what
// value, from which device. Button actions carry a zero Value.
type Context struct {
	Action cfg.ActionID
	Phase  Phase
	Value  mgl64.Vec2
	Device Device
}

// Handler receives action callbacks from a Source.
type Handler interface {
	HandleAction(ctx Context)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx Context)

func (f HandlerFunc) HandleAction(ctx Context) {
	f(ctx)
}

// Source is a device binding that delivers callbacks to one handler while
// enabled.
type Source interface {
	SetHandler(h Handler)
	Enable()
	Disable()
	Enabled() bool
}
