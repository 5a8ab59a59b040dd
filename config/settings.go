package config

// Preferences are the player settings persisted between runs.
type Preferences struct {
	Sensitivity float64 `json:"sensitivity"`
	InvertY     bool    `json:"invertY"`
	Fullscreen  bool    `json:"fullscreen"`
	CameraStyle string  `json:"cameraStyle"`
}

// SensitivitySteps are the values cycled by the in-game sensitivity key
var SensitivitySteps = []float64{0.05, 0.1, 0.15, 0.2, 0.3, 0.45}

// CurrentPreferences reads the persisted fields from the globals.
func CurrentPreferences() Preferences {
	return Preferences{
		Sensitivity: Camera.Sensitivity,
		InvertY:     Camera.InvertY,
		Fullscreen:  Window.Fullscreen,
		CameraStyle: Camera.Style,
	}
}

// Apply writes the preferences back into the globals. Zero or unknown values
// leave the current setting alone.
func (p Preferences) Apply() {
	if p.Sensitivity > 0 {
		Camera.Sensitivity = p.Sensitivity
		Rig.Sensitivity = p.Sensitivity
	}
	Camera.InvertY = p.InvertY
	Window.Fullscreen = p.Fullscreen
	if p.CameraStyle == CameraOrbit || p.CameraStyle == CameraRig {
		Camera.Style = p.CameraStyle
	}
}

// NextSensitivity returns the step after current, wrapping around.
func NextSensitivity(current float64) float64 {
	for _, s := range SensitivitySteps {
		if s > current+1e-9 {
			return s
		}
	}
	return SensitivitySteps[0]
}
