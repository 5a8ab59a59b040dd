package components

import (
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/automoto/thirdperson/shared/physics"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	World        *physics.World
}

var Level = donburi.NewComponentType[LevelData]()
