package factory

import (
	"fmt"

	"github.com/automoto/boxhop/archetypes"
	"github.com/automoto/boxhop/assets"
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds one copy of layout into ecs: the level singleton, its
// collision space, the background and all static geometry. Players are
// spawned separately.
func CreateLevel(ecs *ecs.ECS, conf cfg.Config, layout assets.Layout, ownerIndex int) *donburi.Entry {
	if err := conf.Validate(); err != nil {
		panic(fmt.Sprintf("create level: %v", err))
	}
	if err := layout.Validate(); err != nil {
		panic(fmt.Sprintf("create level: %v", err))
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Config:     conf,
		LayoutName: layout.Name,
		OwnerIndex: ownerIndex,
	})

	CreateSpace(ecs, conf.Width, conf.Height, CellSize, CellSize)
	CreateBackground(ecs)

	for _, p := range layout.Platforms {
		CreatePlatform(ecs, p.X(), p.Y(), p.Width(), p.Height())
	}
	for _, b := range layout.Boxes {
		CreateBox(ecs, b.X(), b.Y(), b.Width(), b.Height())
	}
	for _, it := range layout.Items {
		CreateItem(ecs, it.X(), it.Y(), it.Width(), it.Height())
	}

	return level
}

func CreateBackground(ecs *ecs.ECS) *donburi.Entry {
	bg := archetypes.Background.Spawn(ecs)
	components.Sprite.SetValue(bg, components.SpriteData{Color: levelConfig(ecs).Colors.Background})
	return bg
}

// levelConfig returns the config of the level being built, or the defaults
// when entities are spawned into a world without a level.
func levelConfig(ecs *ecs.ECS) cfg.Config {
	if entry, ok := components.Level.First(ecs.World); ok {
		return components.Level.Get(entry).Config
	}
	return cfg.DefaultConfig()
}
