package systems

import (
	"encoding/json"

	cfg "github.com/automoto/thirdperson/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const preferencesKey = "preferences"

var gdataManager *gdata.Manager

// InitPersistence opens the gdata store for player preferences
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		Log.Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	gdataManager = m
	return nil
}

// LoadPreferences reads saved preferences. It returns nil when nothing has
// been saved or persistence is unavailable.
func LoadPreferences() (*cfg.Preferences, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(preferencesKey)
	if err != nil {
		Log.Warn("could not load preferences", zap.Error(err))
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var p cfg.Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		Log.Warn("could not parse saved preferences", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// SavePreferences writes preferences to disk
func SavePreferences(p cfg.Preferences) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(preferencesKey, data); err != nil {
		Log.Warn("could not save preferences", zap.Error(err))
		return err
	}
	return nil
}

// ApplyPreferences pushes loaded preferences into the globals and window.
func ApplyPreferences(p *cfg.Preferences) {
	if p == nil {
		return
	}
	p.Apply()
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
}

func savePreferences() {
	_ = SavePreferences(cfg.CurrentPreferences())
}

// UpdateSettings handles the preference hotkeys: F2 cycles look
// sensitivity, F3 toggles invert-Y and F11 toggles fullscreen.
func UpdateSettings(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		CycleSensitivity()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		ToggleInvertY()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ToggleFullscreen()
	}
}

// CycleSensitivity steps both camera styles to the next sensitivity and
// saves it.
func CycleSensitivity() {
	s := cfg.NextSensitivity(cfg.Camera.Sensitivity)
	cfg.Camera.Sensitivity = s
	cfg.Rig.Sensitivity = s
	preferencesChanged()
}

// ToggleInvertY flips vertical look and saves it.
func ToggleInvertY() {
	cfg.Camera.InvertY = !cfg.Camera.InvertY
	preferencesChanged()
}

// ToggleFullscreen flips the window mode and saves it.
func ToggleFullscreen() {
	cfg.Window.Fullscreen = !cfg.Window.Fullscreen
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	preferencesChanged()
}

func preferencesChanged() {
	Log.Debug("preferences changed",
		zap.Float64("sensitivity", cfg.Camera.Sensitivity),
		zap.Bool("invertY", cfg.Camera.InvertY),
		zap.Bool("fullscreen", cfg.Window.Fullscreen))
	savePreferences()
}
