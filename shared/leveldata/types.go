// Package leveldata parses playground layouts from TMX maps. It has no
// dependencies on ebitengine, donburi or resolv.
package leveldata

import "github.com/go-gl/mathgl/mgl64"

// DefaultUnitsPerPixel converts Tiled pixels to world units when the map
// does not set a unitsPerPixel property.
const DefaultUnitsPerPixel = 1.0 / 32

// Level is a parsed playground.
type Level struct {
	Name          string
	UnitsPerPixel float64
	Min, Max      mgl64.Vec3 // world extent on the ground plane
	Solids        []Solid
	Doors         []Door
	Spawn         Spawn
}

// Solid is an axis-aligned box. Tiled x maps to world X and Tiled y to
// world Z; height grows upward from Base.
type Solid struct {
	Name    string
	Min     mgl64.Vec3
	Max     mgl64.Vec3
	Layer   string // "ground" or "default"
	Trigger bool
}

// Door is a hinged door whose closed extent is the blocker box.
type Door struct {
	Name      string
	Min       mgl64.Vec3
	Max       mgl64.Vec3
	Angle     float64 // closed local yaw, degrees
	OpenAngle float64
	Speed     float64
	Easing    string
}

// Spawn is the player start.
type Spawn struct {
	Position mgl64.Vec3
	Yaw      float64
}
