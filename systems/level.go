package systems

import (
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevel runs the per-frame logic of the level geometry. Platforms are
// static; boxes get their own update hook.
func UpdateLevel(ecs *ecs.ECS) {
	if entry, ok := components.Level.First(ecs.World); ok {
		components.Level.Get(entry).FrameCount++
	}

	tags.Box.Each(ecs.World, func(e *donburi.Entry) {
		components.Box.Get(e).Update()
	})
}

// Overlapping returns the object of every entity in world carrying one of the
// given tags whose AABB strictly intersects obj. Touching edges do not count.
// The scan walks the entities rather than the space cells, so geometry lying
// partly or fully outside the screen still collides.
// A linear scan is plenty for a level of a few dozen objects.
func Overlapping(world donburi.World, obj *resolv.Object, tagList ...string) []*resolv.Object {
	if world == nil {
		return nil
	}

	var hits []*resolv.Object
	components.Object.Each(world, func(e *donburi.Entry) {
		other := components.Object.Get(e).Object
		if other == nil || other == obj || !hasAnyTag(other, tagList) {
			return
		}
		if intersects(obj, other) {
			hits = append(hits, other)
		}
	})
	return hits
}

func intersects(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

func hasAnyTag(obj *resolv.Object, tagList []string) bool {
	for _, t := range tagList {
		if obj.HasTags(t) {
			return true
		}
	}
	return false
}

func levelConfig(ecs *ecs.ECS) cfg.Config {
	if entry, ok := components.Level.First(ecs.World); ok {
		return components.Level.Get(entry).Config
	}
	return cfg.DefaultConfig()
}
