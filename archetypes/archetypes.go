package archetypes

import (
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Level = newArchetype(
		components.Level,
		components.Audio,
	)
	Space = newArchetype(
		components.Space,
	)
	Background = newArchetype(
		tags.Background,
		components.Sprite,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Sprite,
	)
	Box = newArchetype(
		tags.Box,
		components.Box,
		components.Object,
		components.Sprite,
	)
	Item = newArchetype(
		tags.Item,
		components.Item,
		components.Object,
		components.Sprite,
	)
	Body = newArchetype(
		tags.Body,
		components.Body,
		components.Object,
		components.Physics,
		components.Sprite,
	)
	Player = newArchetype(
		tags.Player,
		tags.Body,
		components.Body,
		components.Player,
		components.PlayerInput,
		components.Object,
		components.Physics,
		components.Sprite,
	)
	Debris = newArchetype(
		tags.Debris,
		components.Debris,
		components.Sprite,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
