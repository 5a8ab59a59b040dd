package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Camera       = donburi.NewTag().SetName("Camera")
	Door         = donburi.NewTag().SetName("Door")
	Wall         = donburi.NewTag().SetName("Wall")
	Interactable = donburi.NewTag().SetName("Interactable")
)

// ByName resolves tag names used by level data and the interaction probe.
var ByName = map[string]donburi.IComponentType{
	"Player":       Player,
	"Camera":       Camera,
	"Door":         Door,
	"Wall":         Wall,
	"Interactable": Interactable,
}
