// Package physics is a small reference collision world: axis-aligned solids
// indexed in a resolv space over the XZ plane, a box-footprint character
// body, and sphere overlap/cast queries. It is enough to run the controller
// end to end; it is not a general physics engine.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Resolv tags.
const (
	TagSolid   = "solid"
	TagTrigger = "trigger"
	tagQuery   = "query"
)

// PixelsPerUnit scales world units onto the resolv grid, which works in
// whole pixels. It matches the level default of 32 Tiled pixels per unit.
const PixelsPerUnit = 32

// Solid is an axis-aligned box in the world.
type Solid struct {
	Min, Max mgl64.Vec3
	Layer    Layer
	Trigger  bool
	Data     any // owner handle, e.g. a *donburi.Entry

	world   *World
	object  *resolv.Object
	enabled bool
}

// Bounds returns the box.
func (s *Solid) Bounds() Bounds { return BoundsOf(s.Min, s.Max) }

// Enabled reports whether the solid takes part in movement and queries.
func (s *Solid) Enabled() bool { return s.enabled }

// SetEnabled adds the solid to or removes it from the space.
func (s *Solid) SetEnabled(on bool) {
	if on == s.enabled || s.world == nil {
		return
	}
	s.enabled = on
	if on {
		s.world.space.Add(s.object)
	} else {
		s.world.space.Remove(s.object)
	}
}

// SetBox moves and resizes the solid.
func (s *Solid) SetBox(min, max mgl64.Vec3) {
	s.Min, s.Max = min, max
	if s.world == nil {
		return
	}
	s.world.place(s.object, min, max)
	if s.enabled {
		s.object.Update()
	}
}

func (s *Solid) matches(mask Layer, triggers Triggers) bool {
	if !s.enabled || s.Layer&mask == 0 {
		return false
	}
	return !s.Trigger || triggers == CollideTriggers
}

// World owns the solids and the broadphase space.
type World struct {
	space  *resolv.Space
	origin mgl64.Vec2 // world (x, z) of the space's (0, 0), one cell outside min
	query  *resolv.Object
	solids []*Solid
}

// NewWorld creates a world covering the planar rectangle from min to max
// (x, z), bucketed into cells of cellSize units. The grid keeps one spare
// cell on every side.
func NewWorld(min, max mgl64.Vec2, cellSize int) *World {
	if cellSize < 1 {
		cellSize = 1
	}
	cell := cellSize * PixelsPerUnit
	cols := int(math.Ceil((max.X()-min.X())/float64(cellSize))) + 2
	rows := int(math.Ceil((max.Y()-min.Y())/float64(cellSize))) + 2
	return &World{
		space:  resolv.NewSpace(cols*cell, rows*cell, cell, cell),
		origin: min.Sub(mgl64.Vec2{float64(cellSize), float64(cellSize)}),
		query:  resolv.NewObject(0, 0, 1, 1, tagQuery),
	}
}

// AddBox inserts an enabled solid.
func (w *World) AddBox(min, max mgl64.Vec3, layer Layer, trigger bool, data any) *Solid {
	tag := TagSolid
	if trigger {
		tag = TagTrigger
	}
	obj := resolv.NewObject(0, 0, 1, 1, tag)
	w.place(obj, min, max)

	s := &Solid{Min: min, Max: max, Layer: layer, Trigger: trigger, Data: data, world: w, object: obj}
	obj.Data = s
	s.SetEnabled(true)
	w.solids = append(w.solids, s)
	return s
}

// Remove deletes a solid from the world.
func (w *World) Remove(s *Solid) {
	s.SetEnabled(false)
	for i, o := range w.solids {
		if o == s {
			w.solids = append(w.solids[:i], w.solids[i+1:]...)
			break
		}
	}
	s.world = nil
}

// Solids returns every solid, enabled or not.
func (w *World) Solids() []*Solid { return w.solids }

// place sets obj to the whole-pixel rectangle covering the planar extent
// of [min, max]. resolv ends an object's cells at X+W-1, so the rectangle
// spans floor(min) to ceil(max) inclusive and is never thinner than a
// pixel.
func (w *World) place(obj *resolv.Object, min, max mgl64.Vec3) {
	x0 := math.Floor((min.X() - w.origin.X()) * PixelsPerUnit)
	y0 := math.Floor((min.Z() - w.origin.Y()) * PixelsPerUnit)
	x1 := math.Ceil((max.X() - w.origin.X()) * PixelsPerUnit)
	y1 := math.Ceil((max.Z() - w.origin.Y()) * PixelsPerUnit)
	obj.X, obj.Y = x0, y0
	obj.W, obj.H = x1-x0+1, y1-y0+1
}

// candidates returns the enabled solids whose cells touch the planar
// rectangle [min, max]. It is a broadphase: callers still test the boxes.
func (w *World) candidates(min, max mgl64.Vec3) []*Solid {
	w.place(w.query, min, max)
	w.space.Add(w.query)
	defer w.space.Remove(w.query)

	check := w.query.Check(0, 0, TagSolid, TagTrigger)
	if check == nil {
		return nil
	}
	out := make([]*Solid, 0, len(check.Objects))
	seen := make(map[*Solid]struct{}, len(check.Objects))
	for _, obj := range check.Objects {
		s, ok := obj.Data.(*Solid)
		if !ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
