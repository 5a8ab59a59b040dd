package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/fonts"
	"github.com/automoto/thirdperson/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
	handSize      = 14
)

// DrawHUD prints the controller state, door phases and the hand indicator.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	var lines []string

	playerEntry, ok := tags.Player.First(ecs.World)
	if ok && components.Player.Get(playerEntry).Controller != nil {
		player := components.Player.Get(playerEntry)
		anim := components.Animator.Get(playerEntry)
		s := player.Controller.Motion()
		lines = append(lines,
			fmt.Sprintf("speed %.2f  grounded %v  vy %+.2f", anim.Float(cfg.Locomotion.SpeedParam), player.Last.Grounded, s.VelocityY),
			fmt.Sprintf("jump queued %v  armed %v", s.JumpQueued, s.JumpArmed),
		)
		if anim.JumpFlash > 0 {
			lines = append(lines, "JUMP")
		}
	}

	tags.Door.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Door.Get(e)
		if d.Door != nil {
			lines = append(lines, fmt.Sprintf("%s: %s %.0f°", d.Name(), d.Phase(), d.Angle()))
		}
	})

	lines = append(lines, fmt.Sprintf("camera %s  sens %.2f  invertY %v  [C F2 F3 F11 Esc]",
		cfg.Camera.Style, cfg.Camera.Sensitivity, cfg.Camera.InvertY))

	for i, l := range lines {
		drawText(screen, l, fonts.HUD, hudMargin, hudMargin+i*hudLineHeight, cfg.White)
	}

	drawHand(ecs, screen)
}

// drawHand shows the interact affordance at the screen centre.
func drawHand(ecs *ecs.ECS, screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	cx, cy := float32(w)/2, float32(h)/2

	entry, ok := components.Indicator.First(ecs.World)
	if !ok || !components.Indicator.Get(entry).Visible {
		vector.DrawFilledCircle(screen, cx, cy, 2, cfg.White, true)
		return
	}
	vector.StrokeRect(screen, cx-handSize/2, cy-handSize/2, handSize, handSize, 2, cfg.Yellow, false)

	label := "E"
	adv := font.MeasureString(fonts.HUDBold.Get(), label).Ceil()
	drawText(screen, label, fonts.HUDBold, int(cx)+handSize, int(cy)-handSize/2, cfg.Yellow)
	vector.StrokeLine(screen, float32(int(cx)+handSize), cy+handSize/2, float32(int(cx)+handSize+adv), cy+handSize/2, 1, cfg.Yellow, false)
}

// drawText draws one line with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, s string, name fonts.FontName, x, y int, c color.Color) {
	if !name.Loaded() {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, name.Face(), op)
}
