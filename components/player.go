package components

import (
	"github.com/automoto/thirdperson/shared/locomotion"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Controller *locomotion.Controller
	Last       locomotion.Report // result of the latest Update
	Spawn      SpawnPoint
}

// SpawnPoint is where the player is placed on start and on reset.
type SpawnPoint struct {
	X, Y, Z float64
	Yaw     float64
}

var Player = donburi.NewComponentType[PlayerData]()
