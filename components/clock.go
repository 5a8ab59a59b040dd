package components

import "github.com/yohamta/donburi"

// ClockData is the frame clock shared by the systems.
type ClockData struct {
	DT      float64 // seconds for this tick
	Elapsed float64
	Frame   uint64
	Paused  bool
}

var Clock = donburi.NewComponentType[ClockData]()
