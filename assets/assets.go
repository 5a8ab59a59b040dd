package assets

import (
	"embed"
	"io/fs"
	"path"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelsDir is the directory of the embedded TMX levels.
const LevelsDir = "levels"

// FS returns the embedded asset tree.
func FS() fs.FS {
	return assetFS
}

// LevelPath returns the embedded path of a level by stem name.
func LevelPath(name string) string {
	return path.Join(LevelsDir, name+".tmx")
}

// LevelNames lists the embedded level stems.
func LevelNames() ([]string, error) {
	matches, err := fs.Glob(assetFS, LevelsDir+"/*.tmx")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		base := path.Base(m)
		names = append(names, base[:len(base)-len(".tmx")])
	}
	return names, nil
}
