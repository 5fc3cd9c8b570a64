package factory

import (
	"github.com/automoto/boxhop/archetypes"
	"github.com/automoto/boxhop/components"
	"github.com/automoto/boxhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateItem(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	item := archetypes.Item.Spawn(ecs)

	obj := newObject(x, y, w, h, tags.ResolvItem)
	obj.Data = item

	components.Object.SetValue(item, components.ObjectData{Object: obj})
	components.Item.SetValue(item, components.ItemData{Value: 1})
	components.Sprite.SetValue(item, components.SpriteData{Color: levelConfig(ecs).Colors.Item})

	addToSpace(ecs, obj)

	return item
}
