package components

import (
	"github.com/automoto/laststand/input"
	"github.com/automoto/laststand/signal"
	"github.com/yohamta/donburi"
)

// InputData is the singleton holding the device source and the relay that
// fans its events out. Jump and camera edges are mirrored for the HUD.
type InputData struct {
	Source *input.EbitenSource
	Relay  *input.Relay

	Jumping       bool
	MouseCamera   bool
	JumpCount     int
	subscriptions []signal.Subscription
}

// Track mirrors the edges nothing in the game consumes.
func (d *InputData) Track() {
	d.subscriptions = append(d.subscriptions,
		d.Relay.Jump().Subscribe(func(down bool) {
			d.Jumping = down
			if down {
				d.JumpCount++
			}
		}),
		d.Relay.MouseControlCamera().Subscribe(func(down bool) {
			d.MouseCamera = down
		}),
	)
}

var Input = donburi.NewComponentType[InputData]()
