package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/animparams"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/shared/interact"
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/automoto/thirdperson/shared/locomotion"
	"github.com/automoto/thirdperson/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreatePlayer places the character at the level spawn. indicator is the
// hand indicator entry toggled by the interaction probe.
func CreatePlayer(ecs *ecs.ECS, world *physics.World, spawn leveldata.Spawn, indicator *donburi.Entry, log *zap.Logger) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	body := physics.NewBody(world, spawn.Position, cfg.Locomotion.Radius, cfg.Locomotion.Height)
	probe := locomotion.SphereProbe{
		Query:  world,
		Offset: cfg.Locomotion.GroundOffset,
		Radius: cfg.Locomotion.GroundRadius,
		Mask:   GroundMask,
	}

	ctrl := locomotion.New(ControllerConfig(), body, probe, log.Named("locomotion"))
	ctrl.SetFacing(gamemath.Euler(0, spawn.Yaw))
	params := animparams.New()
	ctrl.Animator = params

	var ind interact.Indicator
	if indicator != nil {
		ind = entryIndicator{entry: indicator}
	}
	probeLog := log.Named("interact")
	components.Interactor.SetValue(player, components.InteractorData{
		Probe: interact.New(InteractConfig(), worldCaster{world: world}, ind, probeLog),
	})

	components.Name.SetValue(player, components.NameData{Name: "player"})
	components.Body.SetValue(player, components.BodyData{Body: body})
	components.Animator.SetValue(player, components.AnimatorData{Params: params})
	components.Player.SetValue(player, components.PlayerData{
		Controller: ctrl,
		Spawn: components.SpawnPoint{
			X:   spawn.Position.X(),
			Y:   spawn.Position.Y(),
			Z:   spawn.Position.Z(),
			Yaw: spawn.Yaw,
		},
	})

	return player
}
