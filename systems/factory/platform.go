package factory

import (
	"github.com/automoto/boxhop/archetypes"
	"github.com/automoto/boxhop/components"
	"github.com/automoto/boxhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := newObject(x, y, w, h, tags.ResolvPlatform)
	obj.Data = platform // Link for O(1) lookup

	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	components.Sprite.SetValue(platform, components.SpriteData{Color: levelConfig(ecs).Colors.Platform})

	addToSpace(ecs, obj)

	return platform
}
