package systems

import (
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateCameraRigs turns the pointer delta into the rig rotation and places
// the rig at the target's eye. Runs before locomotion so the controller
// reads this frame's basis.
func UpdateCameraRigs(ecs *ecs.ECS) {
	camera, ok := activeCamera(ecs)
	if !ok {
		return
	}

	if GetAction(ecs, cfg.ActionToggleCamera).JustPressed {
		toggleCameraStyle(camera)
	}
	if camera.Style != cfg.CameraRig || camera.Rig == nil {
		return
	}

	camera.Rig.Config.Sensitivity = cfg.Rig.Sensitivity
	camera.Rig.Config.InvertY = cfg.Camera.InvertY
	camera.Rig.Update(currentInput(ecs).Look)

	if body := components.Body.Get(camera.Target); body.Body != nil {
		camera.Rig.SetPosition(body.Position.Add(mgl64.Vec3{0, cfg.Rig.EyeHeight, 0}))
	}
}

// UpdateOrbitCameras follows the target after it has moved this frame.
func UpdateOrbitCameras(ecs *ecs.ECS) {
	camera, ok := activeCamera(ecs)
	if !ok || camera.Style != cfg.CameraOrbit || camera.Orbit == nil {
		return
	}
	body := components.Body.Get(camera.Target)
	if body.Body == nil {
		return
	}

	camera.Orbit.Config.Sensitivity = cfg.Camera.Sensitivity
	camera.Orbit.Config.InvertY = cfg.Camera.InvertY
	camera.Orbit.Update(currentInput(ecs).Look, body.Position, frameDT(ecs))
}

// activeCamera returns the camera when it has a live target. A camera that
// loses its target is disabled with a warning.
func activeCamera(ecs *ecs.ECS) (*components.CameraData, bool) {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil, false
	}
	camera := components.Camera.Get(entry)
	if !camera.Enabled {
		return nil, false
	}
	if camera.Target == nil || !camera.Target.Valid() || !camera.Target.HasComponent(components.Body) {
		Log.Warn("camera: no target assigned, camera disabled")
		camera.Enabled = false
		return nil, false
	}
	return camera, true
}

// toggleCameraStyle swaps between orbit and rig, carrying the view across
// and repointing the target's controller.
func toggleCameraStyle(camera *components.CameraData) {
	if camera.Orbit == nil || camera.Rig == nil {
		return
	}
	if camera.Style == cfg.CameraRig {
		camera.Style = cfg.CameraOrbit
		camera.Orbit.Reset(camera.Rig.View)
	} else {
		camera.Style = cfg.CameraRig
		camera.Rig.View = camera.Orbit.View
		camera.Rig.View.Clamp(camera.Rig.Limits())
	}
	cfg.Camera.Style = camera.Style

	if camera.Target.HasComponent(components.Player) {
		components.Player.Get(camera.Target).Controller.View = camera.View()
	}
	Log.Debug("camera style", zap.String("style", camera.Style))
	savePreferences()
}

// ToggleCamera switches the active camera between orbit and rig.
func ToggleCamera(ecs *ecs.ECS) {
	if camera, ok := activeCamera(ecs); ok {
		toggleCameraStyle(camera)
	}
}
