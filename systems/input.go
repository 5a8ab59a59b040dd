package systems

import (
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Sampler provides the device snapshot each tick. Scenes set it on setup.
var Sampler input.Sampler

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE the camera and locomotion systems.
func UpdateInput(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok || Sampler == nil {
		return
	}
	in := components.Input.Get(entry)
	in.Push(Sampler.Sample())

	// Escape toggles the pause menu
	if in.Action(cfg.ActionReleaseCursor).JustPressed {
		if paused(ecs) {
			Resume(ecs)
		} else {
			Pause(ecs)
		}
		return
	}
	// Focus loss can free the cursor without pausing; a click takes it back
	if !paused(ecs) && ebiten.CursorMode() != ebiten.CursorModeCaptured && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if cfg.Input.CaptureCursor {
			input.CaptureCursor()
		}
		in.Suppress(cfg.ActionInteract)
	}

	if paused(ecs) {
		in.Current.Look = in.Current.Look.Mul(0)
		in.Current.Move = in.Current.Move.Mul(0)
	}
}

// GetAction returns the ActionState of the input singleton.
func GetAction(ecs *ecs.ECS, id cfg.ActionID) components.ActionState {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return components.ActionState{}
	}
	return components.Input.Get(entry).Action(id)
}

func currentInput(ecs *ecs.ECS) components.InputSnapshot {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return components.InputSnapshot{}
	}
	return components.Input.Get(entry).Current
}

// Pause stops the clock and frees the cursor.
func Pause(ecs *ecs.ECS) {
	input.ReleaseCursor()
	setPaused(ecs, true)
	Log.Debug("paused")
}

// Resume restarts the clock and recaptures the cursor. The click or key
// that resumed is not forwarded as an interact press.
func Resume(ecs *ecs.ECS) {
	if cfg.Input.CaptureCursor {
		input.CaptureCursor()
	}
	setPaused(ecs, false)
	if entry, ok := components.Input.First(ecs.World); ok {
		components.Input.Get(entry).Suppress(cfg.ActionInteract)
	}
	Log.Debug("resumed")
}

// Paused reports whether the clock is stopped.
func Paused(ecs *ecs.ECS) bool {
	return paused(ecs)
}

func setPaused(ecs *ecs.ECS, p bool) {
	if entry, ok := components.Clock.First(ecs.World); ok {
		components.Clock.Get(entry).Paused = p
	}
}

func paused(ecs *ecs.ECS) bool {
	if entry, ok := components.Clock.First(ecs.World); ok {
		return components.Clock.Get(entry).Paused
	}
	return false
}
