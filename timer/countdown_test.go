package timer

import (
	"errors"
	"math"
	"testing"
)

func newTestCountdown(t *testing.T, d float64) *Countdown {
	t.Helper()
	c, err := NewCountdown(d)
	if err != nil {
		t.Fatalf("NewCountdown(%v): %v", d, err)
	}
	return c
}

func TestNewCountdownRejectsInvalidDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
	}{
		{"zero", 0},
		{"negative", -1},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCountdown(tt.duration)
			if !errors.Is(err, ErrInvalidDuration) {
				t.Errorf("err = %v, want ErrInvalidDuration", err)
			}
			if c != nil {
				t.Error("expected nil countdown on error")
			}
		})
	}
}

func TestTickToExpiryNotifiesOnce(t *testing.T) {
	c := newTestCountdown(t, 2.0)
	stops := 0
	c.OnStop().Subscribe(func(*Countdown) { stops++ })

	c.Start()
	c.Tick(0.5)
	c.Tick(0.5)
	c.Tick(1.0)

	if c.IsRunning() {
		t.Error("timer should stop once the duration has elapsed")
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining = %v, want 0", c.Remaining())
	}
	if stops != 1 {
		t.Fatalf("stop notifications = %d, want 1", stops)
	}

	c.Tick(1.0)
	c.Tick(5.0)
	if stops != 1 {
		t.Errorf("ticks after expiry notified again: %d", stops)
	}
}

func TestTickOvershootClampsToZero(t *testing.T) {
	c := newTestCountdown(t, 1.0)
	c.Start()
	c.Tick(3.0)

	if c.Remaining() != 0 || c.IsRunning() {
		t.Errorf("remaining=%v running=%v, want 0 false", c.Remaining(), c.IsRunning())
	}
}

func TestTickIgnoredWhenNotRunning(t *testing.T) {
	c := newTestCountdown(t, 1.0)
	stops := 0
	c.OnStop().Subscribe(func(*Countdown) { stops++ })

	c.Tick(5)
	if stops != 0 || c.Remaining() != 1.0 {
		t.Errorf("idle timer changed: stops=%d remaining=%v", stops, c.Remaining())
	}

	c.Start()
	c.Tick(-1)
	c.Tick(0)
	if c.Remaining() != 1.0 {
		t.Errorf("non-positive deltas changed remaining to %v", c.Remaining())
	}
}

func TestStopIsSilent(t *testing.T) {
	c := newTestCountdown(t, 1.0)
	stops := 0
	c.OnStop().Subscribe(func(*Countdown) { stops++ })

	c.Start()
	c.Tick(0.25)
	c.Stop()
	c.Tick(2)

	if stops != 0 {
		t.Errorf("manual stop notified %d times", stops)
	}
	if c.Remaining() != 0.75 {
		t.Errorf("Remaining = %v, want 0.75", c.Remaining())
	}
}

func TestStartRestartsActiveRun(t *testing.T) {
	c := newTestCountdown(t, 2.0)
	c.Start()
	c.Tick(1.5)
	c.Start()

	if c.Remaining() != 2.0 || !c.IsRunning() {
		t.Errorf("remaining=%v running=%v after restart", c.Remaining(), c.IsRunning())
	}
}

func TestResetFromStopHandlerStartsNewRun(t *testing.T) {
	c := newTestCountdown(t, 1.0)
	stops := 0
	c.OnStop().Subscribe(func(cd *Countdown) {
		stops++
		cd.Reset()
	})

	c.Start()
	for i := 0; i < 4; i++ {
		c.Tick(0.5)
	}

	if stops != 2 {
		t.Errorf("stops = %d, want 2", stops)
	}
	if !c.IsRunning() || c.Remaining() != 1.0 {
		t.Errorf("remaining=%v running=%v, want a fresh run", c.Remaining(), c.IsRunning())
	}
}

func TestSubscribeDuringRunReceivesExpiry(t *testing.T) {
	c := newTestCountdown(t, 1.0)
	c.Start()
	c.Tick(0.5)

	got := 0
	c.OnStop().Subscribe(func(*Countdown) { got++ })
	c.Tick(0.5)

	if got != 1 {
		t.Errorf("late subscriber notified %d times, want 1", got)
	}
}

func TestPauseResume(t *testing.T) {
	c := newTestCountdown(t, 1.0)
	c.Start()
	c.Tick(0.25)
	c.Pause()
	c.Tick(0.5)

	if c.Remaining() != 0.75 {
		t.Fatalf("paused timer advanced to %v", c.Remaining())
	}

	c.Resume()
	c.Tick(0.25)
	if c.Remaining() != 0.5 || !c.IsRunning() {
		t.Errorf("remaining=%v running=%v after resume", c.Remaining(), c.IsRunning())
	}
	if p := c.Progress(); p != 0.5 {
		t.Errorf("Progress = %v, want 0.5", p)
	}

	c.Tick(1)
	c.Resume()
	if c.IsRunning() {
		t.Error("Resume must not revive an expired timer")
	}
}

func TestResumeWithoutPause(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Countdown)
	}{
		{"never started", func(c *Countdown) {}},
		{"stopped", func(c *Countdown) { c.Start(); c.Tick(0.25); c.Stop() }},
		{"paused then stopped", func(c *Countdown) { c.Start(); c.Pause(); c.Stop() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCountdown(t, 1.0)
			tt.setup(c)
			c.Pause()
			c.Resume()
			if c.IsRunning() {
				t.Error("Resume started a timer that was not paused mid-run")
			}
		})
	}
}
