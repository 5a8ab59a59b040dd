package factory

import (
	"io/fs"

	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/automoto/thirdperson/shared/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreateLevel loads a level, builds its physics world and spawns the walls
// and doors. The player is created separately from the level spawn.
func CreateLevel(ecs *ecs.ECS, fsys fs.FS, path string, log *zap.Logger) (*donburi.Entry, error) {
	lvl, err := leveldata.Load(fsys, path)
	if err != nil {
		return nil, err
	}

	world := physics.NewWorld(
		mgl64.Vec2{lvl.Min.X(), lvl.Min.Z()},
		mgl64.Vec2{lvl.Max.X(), lvl.Max.Z()},
		cfg.Physics.CellSize,
	)

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		CurrentLevel: lvl,
		World:        world,
	})

	for _, s := range lvl.Solids {
		CreateWall(ecs, world, s)
	}
	for _, d := range lvl.Doors {
		CreateDoor(ecs, world, d, log)
	}

	log.Info("level loaded",
		zap.String("level", lvl.Name),
		zap.Int("solids", len(lvl.Solids)),
		zap.Int("doors", len(lvl.Doors)))
	return level, nil
}

func layerOf(name string) physics.Layer {
	switch name {
	case "ground":
		return physics.LayerGround
	case "interactable":
		return physics.LayerInteractable
	default:
		return physics.LayerDefault
	}
}
