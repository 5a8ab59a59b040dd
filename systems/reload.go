package systems

import (
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/automoto/thirdperson/systems/factory"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ConfigWatcher is set by main when a tunables file was given.
var ConfigWatcher *cfg.Watcher

// UpdateConfigReload reapplies the tunables file after it changes on disk.
// Saved preferences win over the file.
func UpdateConfigReload(ecs *ecs.ECS) {
	if ConfigWatcher == nil {
		return
	}
	select {
	case path, ok := <-ConfigWatcher.Events:
		if !ok {
			ConfigWatcher = nil
			return
		}
		reloadConfig(ecs, path)
	case err, ok := <-ConfigWatcher.Errors:
		if ok {
			Log.Warn("config watcher", zap.Error(err))
		}
	default:
	}
}

func reloadConfig(ecs *ecs.ECS, path string) {
	f, err := cfg.Load(path)
	if err != nil {
		Log.Warn("config reload rejected", zap.String("path", path), zap.Error(err))
		return
	}
	prefs := cfg.CurrentPreferences()
	f.Apply()
	prefs.Apply()
	retune(ecs)
	Log.Info("config reloaded", zap.String("path", path))
}

// retune pushes the globals into the live controllers, cameras, probes and
// doors.
func retune(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if c := components.Player.Get(e).Controller; c != nil {
			c.Config = factory.ControllerConfig()
		}
		if e.HasComponent(components.Interactor) {
			if p := components.Interactor.Get(e).Probe; p != nil {
				p.Config = factory.InteractConfig()
			}
		}
	})

	tags.Camera.Each(ecs.World, func(e *donburi.Entry) {
		cam := components.Camera.Get(e)
		if cam.Orbit != nil {
			cam.Orbit.Config = factory.OrbitConfig()
		}
		if cam.Rig != nil {
			cam.Rig.Config = factory.RigConfig()
		}
	})

	var doors map[string]leveldata.Door
	if entry, ok := components.Level.First(ecs.World); ok {
		if lvl := components.Level.Get(entry).CurrentLevel; lvl != nil {
			doors = make(map[string]leveldata.Door, len(lvl.Doors))
			for _, d := range lvl.Doors {
				doors[d.Name] = d
			}
		}
	}
	tags.Door.Each(ecs.World, func(e *donburi.Entry) {
		dd := components.Door.Get(e)
		if dd.Door == nil {
			return
		}
		if src, ok := doors[dd.Name()]; ok {
			dd.Config = factory.DoorConfig(src.OpenAngle, src.Speed, src.Easing)
		}
	})
}
