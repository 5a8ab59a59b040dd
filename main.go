package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"slices"

	"github.com/automoto/thirdperson/assets"
	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/fonts"
	"github.com/automoto/thirdperson/logger"
	"github.com/automoto/thirdperson/scenes"
	"github.com/automoto/thirdperson/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(log *zap.Logger) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlaygroundScene(g, assets.FS(), assets.LevelPath(config.Debug.Level), log)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if s, ok := g.scene.(interface{ Err() error }); ok && s.Err() != nil {
		return s.Err()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Window.Width, config.Window.Height)
	return config.Window.Width, config.Window.Height
}

func main() {
	configPath := flag.String("config", "", "YAML tunables file")
	level := flag.String("level", "", "level name under assets/levels (default from config)")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	watchConfig := flag.Bool("watch", false, "reload the -config file when it changes")
	showProbe := flag.Bool("debug-probe", false, "draw the ground probe and interaction hit")
	flag.Parse()

	if *configPath != "" {
		f, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		f.Apply()
	}
	if *logLevel != "" {
		config.Log.Level = *logLevel
	}
	if *level != "" {
		config.Debug.Level = *level
	}
	if *showProbe {
		config.Debug.ShowProbe = true
	}
	if names, err := assets.LevelNames(); err == nil && !slices.Contains(names, config.Debug.Level) {
		fmt.Fprintf(os.Stderr, "unknown level %q, available: %v\n", config.Debug.Level, names)
		os.Exit(2)
	}

	log, err := logger.New(logger.Config{
		Level:       config.Log.Level,
		Format:      config.Log.Format,
		Development: config.Log.Development,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	systems.Log = log

	if *configPath != "" && *watchConfig {
		w, err := config.NewWatcher(*configPath)
		if err != nil {
			log.Warn("config watch disabled", zap.Error(err))
		} else {
			defer func() { _ = w.Close() }()
			systems.ConfigWatcher = w
			log.Info("watching config", zap.String("path", w.Path()))
		}
	}

	// Initialize persistence and load saved preferences
	if err := systems.InitPersistence("thirdperson"); err == nil {
		if saved, err := systems.LoadPreferences(); err == nil {
			systems.ApplyPreferences(saved)
		}
	}

	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetTPS(config.Window.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetFullscreen(config.Window.Fullscreen)

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal("fonts", zap.Error(err))
	}

	if err := ebiten.RunGame(NewGame(log)); err != nil {
		log.Fatal("game stopped", zap.Error(err))
	}
}
