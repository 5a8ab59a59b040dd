package systems

import (
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/shared/locomotion"
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/automoto/thirdperson/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// jumpFlashDuration is how long the HUD marks an accepted jump
const jumpFlashDuration = 0.3

// UpdateLocomotion steps every player controller.
// Must run AFTER UpdateCameraRigs and BEFORE UpdateOrbitCameras.
func UpdateLocomotion(ecs *ecs.ECS) {
	dt := frameDT(ecs)
	if dt <= 0 {
		return
	}

	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	in := components.Input.Get(entry)
	jump := in.Action(cfg.ActionJump)
	frame := locomotion.FrameInput{
		Axis:        in.Current.Move,
		Sprint:      in.Action(cfg.ActionSprint).Pressed,
		JumpPressed: jump.JustPressed,
		JumpHeld:    jump.Pressed,
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.Controller == nil || !player.Controller.Enabled() {
			return
		}
		player.Last = player.Controller.Update(frame, dt)
		respawnIfFallen(e, player)

		anim := components.Animator.Get(e)
		if player.Last.Events.Has(motion.JumpAccepted) {
			anim.JumpFlash = jumpFlashDuration
		} else if anim.JumpFlash > 0 {
			anim.JumpFlash -= dt
		}
	})
}

// respawnIfFallen puts a player that dropped out of the level back at its
// spawn point.
func respawnIfFallen(e *donburi.Entry, player *components.PlayerData) {
	body := components.Body.Get(e)
	if body.Body == nil || body.Position.Y() >= cfg.Physics.FallLimit {
		return
	}
	sp := player.Spawn
	body.Position = mgl64.Vec3{sp.X, sp.Y, sp.Z}
	player.Controller.Reset(gamemath.Euler(0, sp.Yaw))
	Log.Info("player fell out of the level, respawned", zap.Float64("fall_limit", cfg.Physics.FallLimit))
}
