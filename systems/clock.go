package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Log is the logger used by the systems. Scenes replace it on setup.
var Log = zap.NewNop()

// UpdateClock advances the frame clock by one tick.
// Must run first in the system order.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	clock.DT = 1 / float64(ebiten.TPS())
	if clock.Paused {
		clock.DT = 0
	}
	clock.Elapsed += clock.DT
	clock.Frame++
}

// frameDT returns the current tick length, zero when there is no clock.
func frameDT(ecs *ecs.ECS) float64 {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).DT
}
