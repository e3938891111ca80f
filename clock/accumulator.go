// Package clock splits variable frame time into fixed physics steps.
package clock

import "errors"

var ErrInvalidStep = errors.New("clock: step must be positive and maxSteps at least 1")

// Accumulator banks frame time and pays it out in whole steps.
type Accumulator struct {
	step     float64
	maxSteps int
	banked   float64
	dropped  float64
}

func NewAccumulator(step float64, maxSteps int) (*Accumulator, error) {
	if !(step > 0) || maxSteps < 1 {
		return nil, ErrInvalidStep
	}
	return &Accumulator{step: step, maxSteps: maxSteps}, nil
}

// Advance banks dt and returns how many fixed steps to run now. Time beyond
// maxSteps is discarded so a long hitch cannot snowball.
func (a *Accumulator) Advance(dt float64) int {
	if dt > 0 {
		a.banked += dt
	}

	n := 0
	for a.banked >= a.step && n < a.maxSteps {
		a.banked -= a.step
		n++
	}
	if a.banked >= a.step {
		a.dropped += a.banked
		a.banked = 0
	}
	return n
}

// Alpha is the fraction of a step left in the bank, for render interpolation.
func (a *Accumulator) Alpha() float64 {
	return a.banked / a.step
}

func (a *Accumulator) Step() float64 { return a.step }

// Dropped is the total time discarded by the step cap.
func (a *Accumulator) Dropped() float64 { return a.dropped }

func (a *Accumulator) Reset() {
	a.banked = 0
	a.dropped = 0
}
