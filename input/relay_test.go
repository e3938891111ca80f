package input

import (
	"testing"

	cfg "github.com/automoto/laststand/config"
	"github.com/go-gl/mathgl/mgl64"
)

type fakeSource struct {
	handler  Handler
	enabled  bool
	enables  int
	disables int
}

func (f *fakeSource) SetHandler(h Handler) { f.handler = h }
func (f *fakeSource) Enable()              { f.enabled = true; f.enables++ }
func (f *fakeSource) Disable()             { f.enabled = false; f.disables++ }
func (f *fakeSource) Enabled() bool        { return f.enabled }

func (f *fakeSource) send(a cfg.ActionID, phase Phase, v mgl64.Vec2, dev Device) {
	f.handler.HandleAction(Context{Action: a, Phase: phase, Value: v, Device: dev})
}

func newTestRelay(t *testing.T) (*Relay, *fakeSource) {
	t.Helper()
	src := &fakeSource{}
	r := NewRelay(src)
	if src.handler != r {
		t.Fatal("NewRelay did not bind itself as the source handler")
	}
	return r, src
}

func TestEnablePlayerActionsIsIdempotent(t *testing.T) {
	r, src := newTestRelay(t)

	r.EnablePlayerActions()
	r.EnablePlayerActions()
	if src.enables != 1 || !r.Enabled() {
		t.Errorf("enables = %d, enabled = %v", src.enables, r.Enabled())
	}

	r.DisablePlayerActions()
	r.DisablePlayerActions()
	if src.disables != 1 || r.Enabled() {
		t.Errorf("disables = %d, enabled = %v", src.disables, r.Enabled())
	}
}

func TestMoveReemitsEveryChange(t *testing.T) {
	r, src := newTestRelay(t)
	var got []mgl64.Vec2
	r.Move().Subscribe(func(v mgl64.Vec2) { got = append(got, v) })

	src.send(cfg.ActionMove, PhaseStarted, mgl64.Vec2{1, 0}, Keyboard)
	src.send(cfg.ActionMove, PhasePerformed, mgl64.Vec2{1, 0}, Keyboard)
	src.send(cfg.ActionMove, PhasePerformed, mgl64.Vec2{0.6, 0.8}, Keyboard)
	src.send(cfg.ActionMove, PhaseCanceled, mgl64.Vec2{}, Keyboard)

	if len(got) != 4 {
		t.Fatalf("move events = %d, want 4", len(got))
	}
	if got[2] != (mgl64.Vec2{0.6, 0.8}) {
		t.Errorf("third event = %v", got[2])
	}
	if r.Direction() != (mgl64.Vec2{}) {
		t.Errorf("Direction = %v, want zero after cancel", r.Direction())
	}
}

func TestDirectionTracksLastCallback(t *testing.T) {
	r, src := newTestRelay(t)
	src.send(cfg.ActionMove, PhasePerformed, mgl64.Vec2{0, -1}, Keyboard)

	if r.Direction() != (mgl64.Vec2{0, -1}) {
		t.Errorf("Direction = %v", r.Direction())
	}
}

func TestPointerSamplesCarryDeviceFlag(t *testing.T) {
	r, src := newTestRelay(t)
	var mouse []PointerSample
	var look []PointerSample
	r.Mouse().Subscribe(func(p PointerSample) { mouse = append(mouse, p) })
	r.Look().Subscribe(func(p PointerSample) { look = append(look, p) })

	if r.HasPointerSample() {
		t.Fatal("no pointer sample expected before the first callback")
	}

	src.send(cfg.ActionMousePosition, PhasePerformed, mgl64.Vec2{100, 50}, Mouse)
	src.send(cfg.ActionMousePosition, PhasePerformed, mgl64.Vec2{30, 40}, Touchscreen)
	gamepad := Device{Name: "Xbox Wireless Controller", Kind: DeviceGamepad}
	src.send(cfg.ActionLook, PhasePerformed, mgl64.Vec2{2, 0}, gamepad)
	src.send(cfg.ActionLook, PhasePerformed, mgl64.Vec2{1, 1}, Mouse)

	if len(mouse) != 2 || !mouse[0].IsPointerDevice || mouse[1].IsPointerDevice {
		t.Errorf("mouse samples = %+v", mouse)
	}
	if len(look) != 2 || look[0].IsPointerDevice || !look[1].IsPointerDevice {
		t.Errorf("look samples = %+v", look)
	}
	if r.PointerPosition() != (mgl64.Vec2{30, 40}) || !r.HasPointerSample() {
		t.Errorf("PointerPosition = %v has=%v", r.PointerPosition(), r.HasPointerSample())
	}
}

func TestButtonEdgesOnly(t *testing.T) {
	tests := []struct {
		name   string
		action cfg.ActionID
		pick   func(*Relay) func(func(bool))
	}{
		{"fire", cfg.ActionFire, func(r *Relay) func(func(bool)) {
			return func(fn func(bool)) { r.Fire().Subscribe(fn) }
		}},
		{"jump", cfg.ActionJump, func(r *Relay) func(func(bool)) {
			return func(fn func(bool)) { r.Jump().Subscribe(fn) }
		}},
		{"mouse control camera", cfg.ActionMouseControlCamera, func(r *Relay) func(func(bool)) {
			return func(fn func(bool)) { r.MouseControlCamera().Subscribe(fn) }
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, src := newTestRelay(t)
			var got []bool
			tt.pick(r)(func(v bool) { got = append(got, v) })

			for _, phase := range []Phase{PhaseWaiting, PhaseStarted, PhasePerformed, PhasePerformed, PhaseCanceled, PhaseDisabled} {
				src.send(tt.action, phase, mgl64.Vec2{}, Keyboard)
			}

			if len(got) != 2 || got[0] != true || got[1] != false {
				t.Errorf("edges = %v, want [true false]", got)
			}
		})
	}
}

func TestRunIsIgnored(t *testing.T) {
	r, src := newTestRelay(t)
	fired := false
	r.Fire().Subscribe(func(bool) { fired = true })
	r.Jump().Subscribe(func(bool) { fired = true })

	src.send(cfg.ActionRun, PhaseStarted, mgl64.Vec2{}, Keyboard)

	if fired {
		t.Error("run action must not reach other events")
	}
}
