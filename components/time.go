package components

import "github.com/yohamta/donburi"

// TimeData tracks frame time and the fixed-step schedule.
type TimeData struct {
	Delta       float64 // Seconds since last frame
	Elapsed     float64 // Seconds since startup
	FixedDelta  float64 // Seconds per fixed step
	Accumulator float64 // Frame time not yet consumed by fixed steps
	FixedSteps  int     // Fixed steps to run this frame
	Frame       uint64
}

var Time = donburi.NewComponentType[TimeData]()
