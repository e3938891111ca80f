// Package timer holds frame-driven timers advanced by the caller's tick.
package timer

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/laststand/signal"
)

// ErrInvalidDuration is returned for a duration that is not a positive,
// finite number of seconds.
var ErrInvalidDuration = errors.New("timer: duration must be positive and finite")

// Countdown counts down from a fixed duration and notifies OnStop once when a
// run reaches zero. Stopping it manually is silent.
type Countdown struct {
	duration  float64
	remaining float64
	running   bool
	paused    bool
	onStop    *signal.Signal[*Countdown]
}

func NewCountdown(duration float64) (*Countdown, error) {
	if !(duration > 0) || math.IsInf(duration, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidDuration, duration)
	}
	return &Countdown{
		duration:  duration,
		remaining: duration,
		onStop:    signal.New[*Countdown](),
	}, nil
}

// Start begins a new run from the full duration, restarting an active one.
func (c *Countdown) Start() {
	c.remaining = c.duration
	c.running = true
	c.paused = false
}

// Reset is Start under the name callers use when re-arming from OnStop.
func (c *Countdown) Reset() {
	c.Start()
}

// Stop ends the run without notifying.
func (c *Countdown) Stop() {
	c.running = false
	c.paused = false
}

// Pause suspends an active run, keeping the remaining time.
func (c *Countdown) Pause() {
	if c.running {
		c.running = false
		c.paused = true
	}
}

// Resume continues a run suspended by Pause. Idle and expired timers stay
// stopped.
func (c *Countdown) Resume() {
	if c.paused {
		c.running = true
		c.paused = false
	}
}

// Tick advances the run by dt seconds.
func (c *Countdown) Tick(dt float64) {
	if !c.running || !(dt > 0) {
		return
	}
	c.remaining -= dt
	if c.remaining > 0 {
		return
	}

	// settle before notifying so handlers may restart the timer
	c.remaining = 0
	c.running = false
	c.onStop.Emit(c)
}

func (c *Countdown) OnStop() *signal.Signal[*Countdown] {
	return c.onStop
}

func (c *Countdown) Duration() float64 {
	return c.duration
}

func (c *Countdown) Remaining() float64 {
	return c.remaining
}

func (c *Countdown) IsRunning() bool {
	return c.running
}

// Progress is the fraction of the run still remaining, 1 at start and 0 at
// expiry.
func (c *Countdown) Progress() float64 {
	return c.remaining / c.duration
}
