package components

import (
	"time"

	"github.com/automoto/laststand/clock"
	"github.com/yohamta/donburi"
)

type ClockData struct {
	Physics *clock.Accumulator
	Last    time.Time

	Delta    float64 // logic tick length this frame, clamped
	Steps    int     // physics steps run this frame
	Elapsed  float64
	Frames   int
	Override float64 // fixed frame delta when > 0, for replays and tests
}

var Clock = donburi.NewComponentType[ClockData]()
