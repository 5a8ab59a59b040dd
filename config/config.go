package config

import "image/color"

// LocomotionConfig contains planar movement and animator parameter values
type LocomotionConfig struct {
	WalkSpeed  float64 `yaml:"walkSpeed"`  // units per second
	RunSpeed   float64 `yaml:"runSpeed"`   // units per second while sprinting
	TurnRate   float64 `yaml:"turnRate"`   // exponential facing rate, 1/s
	GroundMode string  `yaml:"groundMode"` // probe, mover or either
	SpeedDamp  float64 `yaml:"speedDamp"`  // animator speed smoothing time, seconds

	// Capsule
	Radius float64 `yaml:"radius"`
	Height float64 `yaml:"height"`

	// Ground probe sphere below the feet
	GroundOffset float64 `yaml:"groundOffset"`
	GroundRadius float64 `yaml:"groundRadius"`

	// Animator parameter names
	SpeedParam    string `yaml:"speedParam"`
	GroundedParam string `yaml:"groundedParam"`
	JumpTrigger   string `yaml:"jumpTrigger"`
}

// JumpConfig contains vertical motion values
type JumpConfig struct {
	Gravity        float64 `yaml:"gravity"`        // units/s², negative
	Height         float64 `yaml:"height"`         // apex height in units
	Delay          float64 `yaml:"delay"`          // seconds between accept and liftoff, 0 for immediate
	StickVelocity  float64 `yaml:"stickVelocity"`  // downward clamp while grounded, negative
	LiftoffLockout float64 `yaml:"liftoffLockout"` // seconds the stick clamp is suppressed after liftoff
}

// CameraConfig contains orbit camera behavior
type CameraConfig struct {
	Style        string  `yaml:"style"` // orbit or rig
	Distance     float64 `yaml:"distance"`
	HeightOffset float64 `yaml:"heightOffset"`
	Sensitivity  float64 `yaml:"sensitivity"` // degrees per pixel of pointer delta
	MinPitch     float64 `yaml:"minPitch"`
	MaxPitch     float64 `yaml:"maxPitch"`
	SmoothTime   float64 `yaml:"smoothTime"`
	InvertY      bool    `yaml:"invertY"`
}

// RigConfig contains rig camera behavior
type RigConfig struct {
	Sensitivity float64 `yaml:"sensitivity"`
	MinPitch    float64 `yaml:"minPitch"`
	MaxPitch    float64 `yaml:"maxPitch"`
	EyeHeight   float64 `yaml:"eyeHeight"` // rig height above the feet
}

// InteractionConfig contains interaction probe values
type InteractionConfig struct {
	Reach            float64 `yaml:"reach"`
	AimMaxDistance   float64 `yaml:"aimMaxDistance"`
	UseSphereCast    bool    `yaml:"useSphereCast"`
	SphereRadius     float64 `yaml:"sphereRadius"`
	Triggers         string  `yaml:"triggers"` // ignore or collide
	InteractableTag  string  `yaml:"interactableTag"`
	MaxAncestorDepth int     `yaml:"maxAncestorDepth"`
	Debug            bool    `yaml:"debug"`
}

// DoorConfig contains default door values; per-door level properties win
type DoorConfig struct {
	OpenAngle float64 `yaml:"openAngle"`
	Speed     float64 `yaml:"speed"`
	Epsilon   float64 `yaml:"epsilon"`
	Easing    string  `yaml:"easing"`
}

// PhysicsConfig contains reference world values
type PhysicsConfig struct {
	CellSize  int     `yaml:"cellSize"`  // broadphase cell size in world units
	FallLimit float64 `yaml:"fallLimit"` // bodies below this height respawn
}

// WindowConfig holds general window configuration
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TPS        int    `yaml:"tps"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// LogConfig contains logger settings
type LogConfig struct {
	Level       string `yaml:"level"`  // debug, info, warn, error
	Format      string `yaml:"format"` // console or json
	Development bool   `yaml:"development"`
}

// Camera styles
const (
	CameraOrbit = "orbit"
	CameraRig   = "rig"
)

// Global configuration instances
var Window WindowConfig
var Log LogConfig
var Locomotion LocomotionConfig
var Jump JumpConfig
var Camera CameraConfig
var Rig RigConfig
var Interaction InteractionConfig
var Door DoorConfig
var Physics PhysicsConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Level     string // level stem to load
	ShowProbe bool   // draw ground probe and interaction cast
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Gray         = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	Window = WindowConfig{
		Title:  "Third Person Playground",
		Width:  960,
		Height: 540,
		TPS:    60,
	}

	Log = LogConfig{
		Level:  "info",
		Format: "console",
	}

	Locomotion = LocomotionConfig{
		WalkSpeed:  2.5,
		RunSpeed:   4.5,
		TurnRate:   10,
		GroundMode: "either",
		SpeedDamp:  0.1,

		Radius: 0.35,
		Height: 1.8,

		GroundOffset: 0.1,
		GroundRadius: 0.3,

		SpeedParam:    "Speed",
		GroundedParam: "Grounded",
		JumpTrigger:   "Jump",
	}

	Jump = JumpConfig{
		Gravity:        -20,
		Height:         1.2,
		Delay:          0,
		StickVelocity:  -2,
		LiftoffLockout: 0.08,
	}

	Camera = CameraConfig{
		Style:        CameraOrbit,
		Distance:     4,
		HeightOffset: 1.6,
		Sensitivity:  0.15,
		MinPitch:     -35,
		MaxPitch:     70,
		SmoothTime:   0.05,
	}

	Rig = RigConfig{
		Sensitivity: 0.15,
		MinPitch:    -80,
		MaxPitch:    80,
		EyeHeight:   1.6,
	}

	Interaction = InteractionConfig{
		Reach:            3.5,
		AimMaxDistance:   12,
		UseSphereCast:    true,
		SphereRadius:     0.3,
		Triggers:         "collide",
		InteractableTag:  "Interactable",
		MaxAncestorDepth: 8,
	}

	Door = DoorConfig{
		OpenAngle: 90,
		Speed:     180,
		Epsilon:   0.5,
	}

	Physics = PhysicsConfig{
		CellSize:  2,
		FallLimit: -20,
	}

	Debug = DebugConfig{
		Level: "playground",
	}
}
