package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionSprint
	ActionInteract
	ActionToggleCamera
	ActionReleaseCursor
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:          "none",
	ActionMoveForward:   "forward",
	ActionMoveBack:      "back",
	ActionMoveLeft:      "left",
	ActionMoveRight:     "right",
	ActionJump:          "jump",
	ActionSprint:        "sprint",
	ActionInteract:      "interact",
	ActionToggleCamera:  "toggleCamera",
	ActionReleaseCursor: "releaseCursor",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputConfig holds device tuning. Key and button bindings live with the
// sampler since they are engine types.
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64 `yaml:"analogDeadzone"`
	// Right stick look speed in pointer pixels per second at full tilt
	StickLookSpeed float64 `yaml:"stickLookSpeed"`
	// Capture the cursor on start
	CaptureCursor bool `yaml:"captureCursor"`
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		StickLookSpeed: 900,
		CaptureCursor:  true,
	}
}
