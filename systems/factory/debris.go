package factory

import (
	"github.com/automoto/boxhop/archetypes"
	"github.com/automoto/boxhop/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDebris leaves a fading copy of a broken box at its old position.
func CreateDebris(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	conf := levelConfig(ecs)
	debris := archetypes.Debris.Spawn(ecs)

	components.Debris.SetValue(debris, components.DebrisData{
		X: x, Y: y, W: w, H: h,
		Alpha: 1,
		Fade:  gween.New(1, 0, conf.Box.DebrisDuration, ease.InQuad),
		Rise:  gween.New(0, -conf.Box.DebrisRiseDelta, conf.Box.DebrisDuration, ease.OutQuad),
	})
	components.Sprite.SetValue(debris, components.SpriteData{Color: conf.Colors.Box})

	return debris
}
