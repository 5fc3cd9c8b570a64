package factory

import (
	"github.com/automoto/boxhop/archetypes"
	"github.com/automoto/boxhop/components"
	"github.com/automoto/boxhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateBox(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	box := archetypes.Box.Spawn(ecs)

	obj := newObject(x, y, w, h, tags.ResolvBox)
	obj.Data = box

	components.Object.SetValue(box, components.ObjectData{Object: obj})
	components.Box.SetValue(box, components.BoxData{State: components.BoxIntact})
	components.Sprite.SetValue(box, components.SpriteData{Color: levelConfig(ecs).Colors.Box})

	addToSpace(ecs, obj)

	return box
}
