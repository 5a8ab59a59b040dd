package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

// Object group names read from the map.
const (
	GroupSolids = "solids"
	GroupDoors  = "doors"
	GroupSpawn  = "spawn"
)

const (
	defaultSolidHeight = 1.0
	defaultDoorHeight  = 2.2
)

// Load parses a TMX file into a Level. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	u := DefaultUnitsPerPixel
	if props := levelMap.Properties; props != nil {
		if v := props.GetFloat("unitsPerPixel"); v > 0 {
			u = v
		}
	}

	lvl := &Level{
		Name:          strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		UnitsPerPixel: u,
		Max: mgl64.Vec3{
			float64(levelMap.Width*levelMap.TileWidth) * u,
			0,
			float64(levelMap.Height*levelMap.TileHeight) * u,
		},
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupSolids:
			for _, o := range og.Objects {
				height := o.Properties.GetFloat("height")
				if height <= 0 {
					height = defaultSolidHeight
				}
				min, max := box(o, u, o.Properties.GetFloat("base"), height)
				layer := o.Properties.GetString("layer")
				if layer == "" {
					layer = "ground"
				}
				lvl.Solids = append(lvl.Solids, Solid{
					Name:    o.Name,
					Min:     min,
					Max:     max,
					Layer:   layer,
					Trigger: o.Properties.GetBool("trigger"),
				})
			}
		case GroupDoors:
			for _, o := range og.Objects {
				height := o.Properties.GetFloat("height")
				if height <= 0 {
					height = defaultDoorHeight
				}
				min, max := box(o, u, o.Properties.GetFloat("base"), height)
				lvl.Doors = append(lvl.Doors, Door{
					Name:      o.Name,
					Min:       min,
					Max:       max,
					Angle:     o.Properties.GetFloat("angle"),
					OpenAngle: o.Properties.GetFloat("openAngle"),
					Speed:     o.Properties.GetFloat("speed"),
					Easing:    o.Properties.GetString("easing"),
				})
			}
		case GroupSpawn:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			lvl.Spawn = Spawn{
				Position: mgl64.Vec3{o.X * u, o.Properties.GetFloat("base"), o.Y * u},
				Yaw:      o.Properties.GetFloat("yaw"),
			}
			spawnFound = true
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("load TMX %s: no %q object group", tmxPath, GroupSpawn)
	}

	// Keep door order stable for HUD listing
	sort.SliceStable(lvl.Doors, func(i, j int) bool {
		return lvl.Doors[i].Name < lvl.Doors[j].Name
	})

	return lvl, nil
}

// LoadAll discovers all .tmx files in dir within fsys and returns them keyed
// by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		lvl, err := Load(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels[lvl.Name] = lvl
		names = append(names, lvl.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

func box(o *tiled.Object, u, base, height float64) (mgl64.Vec3, mgl64.Vec3) {
	return mgl64.Vec3{o.X * u, base, o.Y * u},
		mgl64.Vec3{(o.X + o.Width) * u, base + height, (o.Y + o.Height) * u}
}
