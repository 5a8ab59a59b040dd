package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PauseActions are the callbacks behind the pause menu buttons.
type PauseActions struct {
	OnResume      func()
	OnSensitivity func()
	OnInvertY     func()
	OnCamera      func()
	OnFullscreen  func()
	OnQuit        func()
}

// PauseStatus is the settings summary shown above the buttons.
type PauseStatus struct {
	Sensitivity float64
	InvertY     bool
	CameraStyle string
	Fullscreen  bool
}

type PauseUI struct {
	UI *ebitenui.UI

	actions     PauseActions
	statusLabel *widget.Label
	hintLabel   *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewPauseUI(actions PauseActions) *PauseUI {
	ui := &PauseUI{actions: actions}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *PauseUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *PauseUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 160})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 12, Bottom: 12, Left: 16, Right: 16}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 240})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	panel.AddChild(ui.statusLabel)

	panel.AddChild(ui.button("Resume", color.RGBA{40, 100, 40, 255}, ui.actions.OnResume))
	panel.AddChild(ui.button("Look sensitivity", color.RGBA{60, 60, 80, 255}, ui.actions.OnSensitivity))
	panel.AddChild(ui.button("Invert Y", color.RGBA{60, 60, 80, 255}, ui.actions.OnInvertY))
	panel.AddChild(ui.button("Camera style", color.RGBA{60, 60, 80, 255}, ui.actions.OnCamera))
	panel.AddChild(ui.button("Fullscreen", color.RGBA{60, 60, 80, 255}, ui.actions.OnFullscreen))
	panel.AddChild(ui.button("Quit", color.RGBA{110, 40, 40, 255}, ui.actions.OnQuit))

	ui.hintLabel = widget.NewLabel(
		widget.LabelOpts.Text("Esc: resume", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	panel.AddChild(ui.hintLabel)

	rootContainer.AddChild(panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *PauseUI) button(label string, base color.RGBA, onClick func()) *widget.Button {
	hover := color.RGBA{clampAdd(base.R, 20), clampAdd(base.G, 20), clampAdd(base.B, 20), 255}
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(base),
			Hover:   image.NewNineSliceColor(hover),
			Pressed: image.NewNineSliceColor(color.RGBA{base.R / 2, base.G / 2, base.B / 2, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 220, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

// SetStatus refreshes the settings summary.
func (ui *PauseUI) SetStatus(s PauseStatus) {
	if ui.statusLabel == nil {
		return
	}
	ui.statusLabel.Label = fmt.Sprintf("sensitivity %.2f   invert Y %v\ncamera %s   fullscreen %v",
		s.Sensitivity, s.InvertY, s.CameraStyle, s.Fullscreen)
}

func (ui *PauseUI) Update() {
	ui.UI.Update()
}

func clampAdd(v, d uint8) uint8 {
	if int(v)+int(d) > 255 {
		return 255
	}
	return v + d
}
