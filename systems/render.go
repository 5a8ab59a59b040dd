package systems

import (
	"image/color"
	"math"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/shared/physics"
	"github.com/automoto/thirdperson/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// plan maps the world's XZ plane onto the screen, +Z up.
type plan struct {
	scale      float64
	offX, offY float64
	minX, maxZ float64
}

func newPlan(screen *ebiten.Image, min, max mgl64.Vec3) plan {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	spanX := math.Max(max.X()-min.X(), 1)
	spanZ := math.Max(max.Z()-min.Z(), 1)
	scale := 0.9 * math.Min(w/spanX, h/spanZ)
	return plan{
		scale: scale,
		offX:  (w - spanX*scale) / 2,
		offY:  (h - spanZ*scale) / 2,
		minX:  min.X(),
		maxZ:  max.Z(),
	}
}

func (p plan) point(v mgl64.Vec3) (float32, float32) {
	return float32(p.offX + (v.X()-p.minX)*p.scale), float32(p.offY + (p.maxZ-v.Z())*p.scale)
}

func (p plan) rect(min, max mgl64.Vec3) (x, y, w, h float32) {
	x0, y0 := p.point(mgl64.Vec3{min.X(), 0, max.Z()})
	x1, y1 := p.point(mgl64.Vec3{max.X(), 0, min.Z()})
	return x0, y0, x1 - x0, y1 - y0
}

// shade brightens solids with their top height.
func shade(s *physics.Solid) color.RGBA {
	v := uint8(math.Min(60+s.Max.Y()*40, 200))
	return color.RGBA{v, v, v + 20, 255}
}

// DrawWorld renders the top-down debug plan of the level.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.DarkGray)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.CurrentLevel == nil || level.World == nil {
		return
	}
	p := newPlan(screen, level.CurrentLevel.Min, level.CurrentLevel.Max)

	for _, s := range level.World.Solids() {
		x, y, w, h := p.rect(s.Min, s.Max)
		switch {
		case s.Trigger:
			vector.StrokeRect(screen, x, y, w, h, 1, cfg.Purple, false)
		case !s.Enabled():
			vector.StrokeRect(screen, x, y, w, h, 1, cfg.Gray, false)
		default:
			vector.FillRect(screen, x, y, w, h, shade(s), false)
		}
	}

	tags.Door.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Door.Get(e)
		if d.Door == nil {
			return
		}
		tip := d.Hinge.Add(gamemath.Euler(0, d.Angle()-d.Rest).Rotate(d.Closed))
		x0, y0 := p.point(d.Hinge)
		x1, y1 := p.point(tip)
		c := cfg.Orange
		if d.Busy() {
			c = cfg.Yellow
		}
		vector.StrokeLine(screen, x0, y0, x1, y1, 3, c, true)
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		drawPlayer(screen, p, e)
	})

	if camera, ok := activeCamera(ecs); ok {
		if view := camera.View(); view != nil {
			pose := view.Pose()
			x0, y0 := p.point(pose.Position)
			x1, y1 := p.point(pose.Position.Add(gamemath.Flatten(pose.Forward())))
			vector.DrawFilledCircle(screen, x0, y0, 3, cfg.LightBlue, true)
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, cfg.LightBlue, true)
		}
	}
}

func drawPlayer(screen *ebiten.Image, p plan, e *donburi.Entry) {
	body := components.Body.Get(e)
	player := components.Player.Get(e)
	if body.Body == nil || player.Controller == nil {
		return
	}

	x, y := p.point(body.Position)
	r := float32(body.Radius * p.scale)
	c := cfg.Green
	if !player.Last.Grounded {
		c = cfg.LightGreen
	}
	vector.DrawFilledCircle(screen, x, y, r, c, true)

	fx, fy := p.point(body.Position.Add(gamemath.ForwardOf(player.Controller.Facing()).Mul(body.Radius * 2)))
	vector.StrokeLine(screen, x, y, fx, fy, 2, cfg.White, true)

	if !cfg.Debug.ShowProbe {
		return
	}
	probeR := float32(cfg.Locomotion.GroundRadius * p.scale)
	vector.StrokeCircle(screen, x, y, probeR, 1, cfg.Yellow, true)

	interactor := components.Interactor.Get(e)
	if interactor.Target.HasHit {
		hx, hy := p.point(interactor.Target.Hit.Point)
		c := cfg.Red
		if interactor.Target.Targeting() {
			c = cfg.Green
		}
		vector.DrawFilledCircle(screen, hx, hy, 3, c, true)
	}
}
