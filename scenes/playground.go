package scenes

import (
	"image/color"
	"io/fs"
	"sync"

	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/input"
	"github.com/automoto/thirdperson/systems"
	"github.com/automoto/thirdperson/systems/factory"
	"github.com/automoto/thirdperson/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SceneChanger swaps the running scene
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// PlaygroundScene runs the character, camera and doors in a loaded level.
type PlaygroundScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levels       fs.FS
	levelPath    string
	log          *zap.Logger
	pauseUI      *ui.PauseUI
	once         sync.Once
	err          error
}

// NewPlaygroundScene creates the scene; the level is loaded on first update.
func NewPlaygroundScene(sc SceneChanger, levels fs.FS, levelPath string, log *zap.Logger) *PlaygroundScene {
	return &PlaygroundScene{sceneChanger: sc, levels: levels, levelPath: levelPath, log: log}
}

// Err reports a setup failure.
func (ps *PlaygroundScene) Err() error {
	return ps.err
}

func (ps *PlaygroundScene) Update() {
	ps.once.Do(ps.configure)
	if ps.ecs == nil {
		return
	}
	ps.ecs.Update()

	if systems.Paused(ps.ecs) {
		ps.pauseUI.SetStatus(ui.PauseStatus{
			Sensitivity: cfg.Camera.Sensitivity,
			InvertY:     cfg.Camera.InvertY,
			CameraStyle: cfg.Camera.Style,
			Fullscreen:  cfg.Window.Fullscreen,
		})
		ps.pauseUI.Update()
	}
}

func (ps *PlaygroundScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)

	if systems.Paused(ps.ecs) {
		ps.pauseUI.UI.Draw(screen)
	}
}

func (ps *PlaygroundScene) configure() {
	systems.Log = ps.log
	systems.Sampler = input.NewEbiten(cfg.Window.TPS)

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateConfigReload)
	ecs.AddSystem(systems.UpdateCameraRigs)
	ecs.AddSystem(systems.UpdateLocomotion)
	ecs.AddSystem(systems.UpdateOrbitCameras)
	ecs.AddSystem(systems.UpdateInteraction)
	ecs.AddSystem(systems.UpdateDoors)

	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawWorld)
	ecs.AddRenderer(archetypes.LayerHUD, systems.DrawHUD)

	indicator := factory.CreateSingletons(ecs)

	levelEntry, err := factory.CreateLevel(ecs, ps.levels, ps.levelPath, ps.log.Named("level"))
	if err != nil {
		ps.err = err
		ps.log.Error("level setup failed", zap.String("path", ps.levelPath), zap.Error(err))
		return
	}
	level := components.Level.Get(levelEntry)

	player := factory.CreatePlayer(ecs, level.World, level.CurrentLevel.Spawn, indicator, ps.log)
	factory.CreateCamera(ecs, player)

	if cfg.Input.CaptureCursor {
		input.CaptureCursor()
	}

	ps.pauseUI = ui.NewPauseUI(ui.PauseActions{
		OnResume:      func() { systems.Resume(ecs) },
		OnSensitivity: systems.CycleSensitivity,
		OnInvertY:     systems.ToggleInvertY,
		OnCamera:      func() { systems.ToggleCamera(ecs) },
		OnFullscreen:  systems.ToggleFullscreen,
		OnQuit:        func() { ps.err = ebiten.Termination },
	})
	ps.ecs = ecs
}
