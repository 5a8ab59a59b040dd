package systems

import (
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/interact"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInteraction casts from the active camera for each player and
// forwards the interact press to the targeted door.
// Must run AFTER UpdateOrbitCameras so the cast uses this frame's view.
func UpdateInteraction(ecs *ecs.ECS) {
	camera, ok := activeCamera(ecs)
	if !ok || paused(ecs) {
		return
	}
	view := camera.View()
	if view == nil {
		return
	}
	pose := view.Pose()
	ray := interact.Ray{Origin: pose.Position, Direction: pose.Forward()}
	pressed := GetAction(ecs, cfg.ActionInteract).JustPressed

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		interactor := components.Interactor.Get(e)
		body := components.Body.Get(e)
		if interactor.Probe == nil || body.Body == nil {
			return
		}
		interactor.Target = interactor.Probe.Update(ray, body.Bounds().Center, pressed)
	})
}
