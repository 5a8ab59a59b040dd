package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/lookcam"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera builds both camera styles seeded from the target's facing and
// points the target's controller at the active one. A nil target leaves the
// camera disabled.
func CreateCamera(ecs *ecs.ECS, target *donburi.Entry) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	data := components.CameraData{Style: cfg.Camera.Style}

	if target != nil && target.HasComponent(components.Player) {
		ctrl := components.Player.Get(target).Controller
		orbitCfg := OrbitConfig()
		rigCfg := RigConfig()

		data.Orbit = lookcam.NewOrbit(orbitCfg, lookcam.Seed(ctrl.Facing(), lookcam.Limits{MinPitch: orbitCfg.MinPitch, MaxPitch: orbitCfg.MaxPitch}))
		data.Rig = lookcam.NewRig(rigCfg, lookcam.Seed(ctrl.Facing(), lookcam.Limits{MinPitch: rigCfg.MinPitch, MaxPitch: rigCfg.MaxPitch}))
		data.Target = target
		data.Enabled = true
		ctrl.View = data.View()
	}

	components.Camera.SetValue(camera, data)
	return camera
}

// CreateSingletons spawns the clock, input and indicator entities. It
// returns the indicator entry.
func CreateSingletons(ecs *ecs.ECS) *donburi.Entry {
	archetypes.Clock.Spawn(ecs)
	archetypes.Input.Spawn(ecs)
	return archetypes.Indicator.Spawn(ecs)
}
