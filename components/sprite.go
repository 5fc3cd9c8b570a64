package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is how an entity is drawn. Image is optional; without one the
// renderer fills the entity's AABB with Color.
type SpriteData struct {
	Color color.RGBA
	Image *ebiten.Image
}

var Sprite = donburi.NewComponentType[SpriteData]()
