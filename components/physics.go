package components

import (
	"github.com/automoto/thirdperson/shared/physics"
	"github.com/yohamta/donburi"
)

// BodyData is a character body in the level's physics world.
type BodyData struct {
	*physics.Body
}

var Body = donburi.NewComponentType[BodyData]()

// SolidData links an entity to its collision box.
type SolidData struct {
	*physics.Solid
}

var Solid = donburi.NewComponentType[SolidData]()
