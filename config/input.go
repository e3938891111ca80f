package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMove
	ActionLook
	ActionMousePosition
	ActionFire
	ActionJump
	ActionMouseControlCamera
	ActionRun
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:               "None",
	ActionMove:               "Move",
	ActionLook:               "Look",
	ActionMousePosition:      "MousePosition",
	ActionFire:               "Fire",
	ActionJump:               "Jump",
	ActionMouseControlCamera: "MouseControlCamera",
	ActionRun:                "Run",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// IsButton reports whether the action is a press/release action rather than
// a continuous value.
func (a ActionID) IsButton() bool {
	switch a {
	case ActionFire, ActionJump, ActionMouseControlCamera, ActionRun:
		return true
	}
	return false
}

// InputBinding represents the keys and buttons bound to a button action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// AxisKeys binds keys to the four directions of a 2D axis
type AxisKeys struct {
	Up, Down, Left, Right []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	MoveKeys AxisKeys
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Right stick deflection to look delta, in pixels per frame
	LookStickScale float64
	// Debug overlay toggle
	DebugKey ebiten.Key
	// Pause toggle, keyboard and gamepad
	PauseKeys          []ebiten.Key
	PauseGamepadButton ebiten.StandardGamepadButton
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		LookStickScale: 8,
		DebugKey:       ebiten.KeyF3,
		PauseKeys:      []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		// Start / Options button
		PauseGamepadButton: ebiten.StandardGamepadButtonCenterRight,
		MoveKeys: AxisKeys{
			Up:    []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
			Down:  []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
			Left:  []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
			Right: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
		},
		Bindings: map[ActionID]InputBinding{
			ActionFire: {
				Keys:         []ebiten.Key{ebiten.KeyJ},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
				// Right trigger
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomRight,
				},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionMouseControlCamera: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight},
				// Left bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionRun: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft},
				// Left stick press
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftStick,
				},
			},
		},
	}
}
