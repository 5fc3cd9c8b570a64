package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
)

// Lookup returns the face if it has been loaded.
func (f FontName) Lookup() (font.Face, bool) {
	face, ok := fonts[f]
	return face, ok
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults loads every named face from the Go regular font.
func LoadDefaults() error {
	if err := LoadFontWithSize(HUD, goregular.TTF, 16); err != nil {
		return err
	}
	return LoadFontWithSize(Title, goregular.TTF, 28)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}
