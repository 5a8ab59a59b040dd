// Package input samples keyboard, mouse and gamepad state once per tick.
package input

import (
	"math"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Sampler produces one input snapshot per call.
type Sampler interface {
	Sample() components.InputSnapshot
}

// Ebiten reads devices through ebiten.
type Ebiten struct {
	// Seconds per tick, used to scale the right stick into a pointer delta
	TickDT float64

	gamepadIDs []ebiten.GamepadID
	lastX      int
	lastY      int
	primed     bool
}

// NewEbiten returns a sampler for the given tick rate.
func NewEbiten(tps int) *Ebiten {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return &Ebiten{TickDT: 1 / float64(tps)}
}

// CaptureCursor hides and locks the cursor so pointer deltas drive the look.
func CaptureCursor() {
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
}

// ReleaseCursor returns the cursor to the desktop.
func ReleaseCursor() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

// Sample polls every bound action plus the move and look axes.
func (s *Ebiten) Sample() components.InputSnapshot {
	var snap components.InputSnapshot
	s.gamepadIDs = ebiten.AppendGamepadIDs(s.gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				snap.Actions[actionID] = true
				keyboardUsed = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				snap.Actions[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range s.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					snap.Actions[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	snap.Move = digitalAxis(snap.Actions)
	if stick, ok := s.stick(ebiten.StandardGamepadAxisLeftStickHorizontal, ebiten.StandardGamepadAxisLeftStickVertical); ok {
		// Stick y is down-positive, forward is up
		snap.Move = mgl64.Vec2{stick.X(), -stick.Y()}
		gamepadUsed = true
	}

	snap.Look = s.pointerDelta()
	if stick, ok := s.stick(ebiten.StandardGamepadAxisRightStickHorizontal, ebiten.StandardGamepadAxisRightStickVertical); ok {
		look := mgl64.Vec2{stick.X(), -stick.Y()}
		snap.Look = snap.Look.Add(look.Mul(cfg.Input.StickLookSpeed * s.TickDT))
		gamepadUsed = true
	}

	if gamepadUsed {
		snap.Method = components.InputGamepad
	} else if keyboardUsed {
		snap.Method = components.InputKeyboard
	}
	return snap
}

// pointerDelta returns cursor movement since the last sample while captured.
func (s *Ebiten) pointerDelta() mgl64.Vec2 {
	x, y := ebiten.CursorPosition()
	if ebiten.CursorMode() != ebiten.CursorModeCaptured || !s.primed {
		s.lastX, s.lastY, s.primed = x, y, true
		return mgl64.Vec2{}
	}
	// look deltas are y-up
	d := mgl64.Vec2{float64(x - s.lastX), float64(s.lastY - y)}
	s.lastX, s.lastY = x, y
	return d
}

// stick reads the first gamepad stick outside the deadzone.
func (s *Ebiten) stick(h, v ebiten.StandardGamepadAxis) (mgl64.Vec2, bool) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range s.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(gpID, h)
		y := ebiten.StandardGamepadAxisValue(gpID, v)
		if math.Hypot(x, y) > deadzone {
			return mgl64.Vec2{x, y}, true
		}
	}
	return mgl64.Vec2{}, false
}

func digitalAxis(actions [cfg.ActionCount]bool) mgl64.Vec2 {
	var v mgl64.Vec2
	if actions[cfg.ActionMoveRight] {
		v[0]++
	}
	if actions[cfg.ActionMoveLeft] {
		v[0]--
	}
	if actions[cfg.ActionMoveForward] {
		v[1]++
	}
	if actions[cfg.ActionMoveBack] {
		v[1]--
	}
	return v
}
