package systems

import (
	"image/color"

	"github.com/automoto/boxhop/components"
	"github.com/automoto/boxhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type DrawableKind int

const (
	DrawBackground DrawableKind = iota
	DrawPlatform
	DrawBox
	DrawItem
	DrawDebris
	DrawBody
)

// Drawable is everything a renderer needs to put one entity on screen.
type Drawable struct {
	Kind       DrawableKind
	X, Y, W, H float64
	Color      color.RGBA
	Image      *ebiten.Image
}

var drawOp = &ebiten.DrawImageOptions{}

// Drawables lists the level's drawable entities back to front.
func Drawables(ecs *ecs.ECS) []Drawable {
	conf := levelConfig(ecs)
	var out []Drawable

	tags.Background.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		out = append(out, Drawable{
			Kind: DrawBackground,
			W:    float64(conf.Width), H: float64(conf.Height),
			Color: sprite.Color, Image: sprite.Image,
		})
	})

	appendObjects := func(tag *donburi.ComponentType[donburi.Tag], kind DrawableKind) {
		tag.Each(ecs.World, func(e *donburi.Entry) {
			out = append(out, objectDrawable(e, kind))
		})
	}
	appendObjects(tags.Platform, DrawPlatform)
	appendObjects(tags.Box, DrawBox)
	appendObjects(tags.Item, DrawItem)

	tags.Debris.Each(ecs.World, func(e *donburi.Entry) {
		debris := components.Debris.Get(e)
		c := fade(components.Sprite.Get(e).Color, clamp01(debris.Alpha))
		out = append(out, Drawable{
			Kind: DrawDebris,
			X:    debris.X, Y: debris.Y + float64(debris.OffsetY),
			W: debris.W, H: debris.H,
			Color: c,
		})
	})

	appendObjects(tags.Body, DrawBody)

	return out
}

func objectDrawable(e *donburi.Entry, kind DrawableKind) Drawable {
	obj := components.Object.Get(e)
	sprite := components.Sprite.Get(e)
	return Drawable{
		Kind: kind,
		X:    obj.X, Y: obj.Y, W: obj.W, H: obj.H,
		Color: sprite.Color, Image: sprite.Image,
	}
}

// DrawLevel rasterises the level's drawables.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	for _, d := range Drawables(ecs) {
		if d.Image != nil {
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			bounds := d.Image.Bounds()
			drawOp.GeoM.Scale(d.W/float64(bounds.Dx()), d.H/float64(bounds.Dy()))
			drawOp.GeoM.Translate(d.X, d.Y)
			screen.DrawImage(d.Image, drawOp)
			continue
		}
		vector.FillRect(screen, float32(d.X), float32(d.Y), float32(d.W), float32(d.H), d.Color, false)
	}
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
