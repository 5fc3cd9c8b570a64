package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DebrisData is the short-lived visual left behind by a broken box.
// Fade runs alpha from 1 to 0, Rise moves the debris up while it fades.
type DebrisData struct {
	X, Y, W, H float64
	Alpha      float32
	OffsetY    float32
	Fade       *gween.Tween
	Rise       *gween.Tween
	Done       bool
}

var Debris = donburi.NewComponentType[DebrisData]()
