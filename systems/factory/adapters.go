package factory

import (
	"fmt"

	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/interact"
	"github.com/automoto/thirdperson/shared/physics"
	"github.com/automoto/thirdperson/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// entryNode exposes an entity to the interaction probe.
type entryNode struct {
	entry *donburi.Entry
}

// NodeOf wraps an entry as an interaction node. nil stays nil.
func NodeOf(e *donburi.Entry) interact.Node {
	if e == nil || !e.Valid() {
		return nil
	}
	return entryNode{entry: e}
}

func (n entryNode) Name() string {
	if n.entry.HasComponent(components.Name) {
		return components.Name.Get(n.entry).Name
	}
	return fmt.Sprintf("entity-%v", n.entry.Entity())
}

func (n entryNode) HasTag(tag string) bool {
	c, ok := tags.ByName[tag]
	return ok && n.entry.HasComponent(c)
}

func (n entryNode) Parent() (interact.Node, bool) {
	if !n.entry.HasComponent(components.Parent) {
		return nil, false
	}
	p := components.Parent.Get(n.entry).Entry
	if p == nil || !p.Valid() {
		return nil, false
	}
	return entryNode{entry: p}, true
}

func (n entryNode) Actuator() (interact.Actuator, bool) {
	if !n.entry.HasComponent(components.Door) {
		return nil, false
	}
	d := components.Door.Get(n.entry).Door
	return d, d != nil
}

// worldCaster answers interaction casts from the physics world, resolving
// solids to the entities stored in their Data.
type worldCaster struct {
	world *physics.World
}

func (c worldCaster) SphereCast(origin, dir mgl64.Vec3, radius, maxDistance float64, mask physics.Layer, triggers physics.Triggers) (interact.Hit, bool) {
	h, ok := c.world.SphereCast(origin, dir, radius, maxDistance, mask, triggers)
	return toHit(h), ok
}

func (c worldCaster) Raycast(origin, dir mgl64.Vec3, maxDistance float64, mask physics.Layer, triggers physics.Triggers) (interact.Hit, bool) {
	h, ok := c.world.Raycast(origin, dir, maxDistance, mask, triggers)
	return toHit(h), ok
}

func toHit(h physics.Hit) interact.Hit {
	out := interact.Hit{Point: h.Point, Distance: h.Distance}
	if h.Solid != nil {
		if e, ok := h.Solid.Data.(*donburi.Entry); ok {
			out.Surface = NodeOf(e)
		}
	}
	return out
}

// entryIndicator forwards visibility to the indicator singleton. Component
// storage may move, so the entry is resolved on every call.
type entryIndicator struct {
	entry *donburi.Entry
}

func (i entryIndicator) SetVisible(v bool) {
	if i.entry == nil || !i.entry.Valid() {
		return
	}
	components.Indicator.Get(i.entry).SetVisible(v)
}

// bodyOccupancy reports whether any character body overlaps a box.
type bodyOccupancy struct {
	world donburi.World
	box   physics.Bounds
}

func (o bodyOccupancy) Occupied() bool {
	occupied := false
	components.Body.Each(o.world, func(e *donburi.Entry) {
		if b := components.Body.Get(e); b.Body != nil && b.Bounds().Intersects(o.box) {
			occupied = true
		}
	})
	return occupied
}
