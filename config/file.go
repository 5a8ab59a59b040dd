package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/thirdperson/shared/door"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// File is the YAML tunables overlay. Keys missing from the file keep the
// values of the globals at load time.
type File struct {
	Window      WindowConfig      `yaml:"window"`
	Log         LogConfig         `yaml:"log"`
	Locomotion  LocomotionConfig  `yaml:"locomotion"`
	Jump        JumpConfig        `yaml:"jump"`
	Camera      CameraConfig      `yaml:"camera"`
	Rig         RigConfig         `yaml:"rig"`
	Interaction InteractionConfig `yaml:"interaction"`
	Door        DoorConfig        `yaml:"door"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Input       InputConfig       `yaml:"input"`
}

// Current snapshots the globals.
func Current() *File {
	return &File{
		Window:      Window,
		Log:         Log,
		Locomotion:  Locomotion,
		Jump:        Jump,
		Camera:      Camera,
		Rig:         Rig,
		Interaction: Interaction,
		Door:        Door,
		Physics:     Physics,
		Input:       Input,
	}
}

// Load reads a YAML overlay on top of the current globals and validates it.
// The globals are not touched until Apply.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse is Load without the file read.
func Parse(data []byte) (*File, error) {
	f := Current()
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Apply copies the file into the globals.
func (f *File) Apply() {
	Window = f.Window
	Log = f.Log
	Locomotion = f.Locomotion
	Jump = f.Jump
	Camera = f.Camera
	Rig = f.Rig
	Interaction = f.Interaction
	Door = f.Door
	Physics = f.Physics
	Input = f.Input
}

// Validate reports every out-of-range value joined into one error.
func (f *File) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if f.Locomotion.WalkSpeed <= 0 || f.Locomotion.RunSpeed <= 0 {
		bad("locomotion speeds must be positive")
	}
	if f.Locomotion.Radius <= 0 || f.Locomotion.Height <= 0 {
		bad("capsule radius and height must be positive")
	}
	switch f.Locomotion.GroundMode {
	case "", "probe", "mover", "either":
	default:
		bad("unknown groundMode %q", f.Locomotion.GroundMode)
	}

	if f.Jump.Gravity >= 0 {
		bad("jump.gravity must be negative, got %g", f.Jump.Gravity)
	}
	if f.Jump.Height < 0 || f.Jump.Delay < 0 || f.Jump.LiftoffLockout < 0 {
		bad("jump height, delay and lockout must not be negative")
	}
	if f.Jump.StickVelocity > 0 {
		bad("jump.stickVelocity must not be positive")
	}

	switch f.Camera.Style {
	case CameraOrbit, CameraRig:
	default:
		bad("unknown camera.style %q", f.Camera.Style)
	}
	if f.Camera.MinPitch > f.Camera.MaxPitch {
		bad("camera pitch range %g > %g", f.Camera.MinPitch, f.Camera.MaxPitch)
	}
	if f.Rig.MinPitch > f.Rig.MaxPitch {
		bad("rig pitch range %g > %g", f.Rig.MinPitch, f.Rig.MaxPitch)
	}
	if f.Camera.Distance <= 0 || f.Camera.SmoothTime < 0 {
		bad("camera distance must be positive and smoothTime not negative")
	}

	if f.Interaction.Reach <= 0 || f.Interaction.AimMaxDistance <= 0 {
		bad("interaction distances must be positive")
	}
	switch f.Interaction.Triggers {
	case "", "ignore", "collide":
	default:
		bad("unknown interaction.triggers %q", f.Interaction.Triggers)
	}

	if f.Door.Speed <= 0 || f.Door.Epsilon <= 0 {
		bad("door speed and epsilon must be positive")
	}
	if !door.ValidEasing(f.Door.Easing) {
		bad("unknown door.easing %q", f.Door.Easing)
	}
	if f.Physics.CellSize < 1 {
		bad("physics.cellSize must be at least 1")
	}
	if f.Window.Width <= 0 || f.Window.Height <= 0 || f.Window.TPS <= 0 {
		bad("window size and tps must be positive")
	}

	return errors.Join(errs...)
}
