// Package fonts holds the parsed font faces used by the HUD and menus.
package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD      FontName = "hud"
	HUDBold  FontName = "hud-bold"
	Title    FontName = "title"
	MenuText FontName = "menu"
)

var (
	faces    = map[FontName]font.Face{}
	xfaces   = map[FontName]text.Face{}
	defaults = []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{HUD, goregular.TTF, 12},
		{HUDBold, gobold.TTF, 12},
		{Title, gobold.TTF, 20},
		{MenuText, goregular.TTF, 14},
	}
)

// LoadDefaults parses the bundled Go fonts at their HUD and menu sizes.
func LoadDefaults() error {
	for _, d := range defaults {
		if err := LoadFontWithSize(d.name, d.ttf, d.size); err != nil {
			return err
		}
	}
	return nil
}

// LoadFontWithSize parses a TrueType font and registers it under name.
func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	f := truetype.NewFace(fontData, &truetype.Options{Size: size, Hinting: font.HintingFull})
	faces[name] = f
	xfaces[name] = text.NewGoXFace(f)
	return nil
}

// Get returns the raw face.
func (f FontName) Get() font.Face {
	face, ok := faces[f]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", f))
	}
	return face
}

// Face returns the face wrapped for ebiten text drawing.
func (f FontName) Face() text.Face {
	face, ok := xfaces[f]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", f))
	}
	return face
}

// Loaded reports whether name has been registered.
func (f FontName) Loaded() bool {
	_, ok := faces[f]
	return ok
}
