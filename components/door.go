package components

import (
	"github.com/automoto/thirdperson/shared/door"
	"github.com/automoto/thirdperson/shared/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// DoorData is a hinged door. Blocker stops bodies; Panel is the trigger
// volume the interaction probe hits, kept around the swung leaf.
type DoorData struct {
	*door.Door
	Blocker *physics.Solid
	Panel   *physics.Solid
	Hinge   mgl64.Vec3 // hinge foot
	Closed  mgl64.Vec3 // leaf vector from the hinge at the closed angle
	Height  float64
	Rest    float64 // closed angle in degrees
}

var Door = donburi.NewComponentType[DoorData]()
