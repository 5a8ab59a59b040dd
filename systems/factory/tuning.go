package factory

import (
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/door"
	"github.com/automoto/thirdperson/shared/interact"
	"github.com/automoto/thirdperson/shared/locomotion"
	"github.com/automoto/thirdperson/shared/lookcam"
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/automoto/thirdperson/shared/physics"
)

// GroundMask is what the feet probe stands on.
const GroundMask = physics.LayerGround | physics.LayerDefault

// InteractMask is what the interaction cast can hit.
const InteractMask = physics.LayerDefault | physics.LayerGround | physics.LayerInteractable

// ControllerConfig reads the locomotion and jump globals.
func ControllerConfig() locomotion.Config {
	mode, _ := locomotion.ParseGroundMode(cfg.Locomotion.GroundMode)
	return locomotion.Config{
		WalkSpeed:     cfg.Locomotion.WalkSpeed,
		RunSpeed:      cfg.Locomotion.RunSpeed,
		TurnRate:      cfg.Locomotion.TurnRate,
		GroundMode:    mode,
		SpeedParam:    cfg.Locomotion.SpeedParam,
		GroundedParam: cfg.Locomotion.GroundedParam,
		JumpTrigger:   cfg.Locomotion.JumpTrigger,
		SpeedDamp:     cfg.Locomotion.SpeedDamp,
		Motion: motion.Config{
			Gravity:        cfg.Jump.Gravity,
			JumpHeight:     cfg.Jump.Height,
			JumpDelay:      cfg.Jump.Delay,
			StickVelocity:  cfg.Jump.StickVelocity,
			LiftoffLockout: cfg.Jump.LiftoffLockout,
		},
	}
}

func OrbitConfig() lookcam.OrbitConfig {
	return lookcam.OrbitConfig{
		Distance:     cfg.Camera.Distance,
		HeightOffset: cfg.Camera.HeightOffset,
		Sensitivity:  cfg.Camera.Sensitivity,
		MinPitch:     cfg.Camera.MinPitch,
		MaxPitch:     cfg.Camera.MaxPitch,
		SmoothTime:   cfg.Camera.SmoothTime,
		InvertY:      cfg.Camera.InvertY,
	}
}

func RigConfig() lookcam.RigConfig {
	return lookcam.RigConfig{
		Sensitivity: cfg.Rig.Sensitivity,
		MinPitch:    cfg.Rig.MinPitch,
		MaxPitch:    cfg.Rig.MaxPitch,
		InvertY:     cfg.Camera.InvertY,
	}
}

func InteractConfig() interact.Config {
	triggers, _ := physics.ParseTriggers(cfg.Interaction.Triggers)
	return interact.Config{
		Reach:            cfg.Interaction.Reach,
		AimMaxDistance:   cfg.Interaction.AimMaxDistance,
		UseSphereCast:    cfg.Interaction.UseSphereCast,
		SphereRadius:     cfg.Interaction.SphereRadius,
		Mask:             InteractMask,
		Triggers:         triggers,
		InteractableTag:  cfg.Interaction.InteractableTag,
		MaxAncestorDepth: cfg.Interaction.MaxAncestorDepth,
		Debug:            cfg.Interaction.Debug,
	}
}

// DoorConfig merges per-door level values over the door globals.
func DoorConfig(openAngle, speed float64, easing string) door.Config {
	c := door.Config{
		OpenAngle: cfg.Door.OpenAngle,
		Speed:     cfg.Door.Speed,
		Epsilon:   cfg.Door.Epsilon,
		Easing:    cfg.Door.Easing,
	}
	if openAngle != 0 {
		c.OpenAngle = openAngle
	}
	if speed > 0 {
		c.Speed = speed
	}
	if easing != "" {
		c.Easing = easing
	}
	return c
}
