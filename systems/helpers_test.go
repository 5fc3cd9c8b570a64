package systems

import (
	"testing"

	"github.com/automoto/boxhop/assets"
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestLevel builds a level with the default tuning and the given geometry.
func newTestLevel(t *testing.T, platforms, boxes, items []assets.Tuple) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateLevel(e, cfg.DefaultConfig(), assets.Layout{
		Name:         "test",
		Platforms:    platforms,
		Boxes:        boxes,
		Items:        items,
		PlayerSpawns: []assets.PlayerSpawn{{X: 0}},
	}, 0)
	return e
}

type body struct {
	entry   *donburi.Entry
	obj     *components.ObjectData
	physics *components.PhysicsData
}

func newTestBody(e *ecs.ECS, x, y, w, h float64) body {
	entry := factory.CreateBody(e, x, y, w, h)
	return body{
		entry:   entry,
		obj:     components.Object.Get(entry),
		physics: components.Physics.Get(entry),
	}
}

func countTag(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func pendingSounds(e *ecs.ECS) []cfg.SoundID {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return nil
	}
	return components.Audio.Get(entry).PendingSFX
}

func levelSpace(ecs *ecs.ECS) *resolv.Space {
	if entry, ok := components.Space.First(ecs.World); ok {
		return components.Space.Get(entry)
	}
	return nil
}
