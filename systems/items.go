package systems

import (
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateItems hands items to the players touching them.
func UpdateItems(ecs *ecs.ECS) {
	var collected []*donburi.Entry
	taken := make(map[donburi.Entity]bool)
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		obj := components.Object.Get(e)

		for _, hit := range Overlapping(ecs.World, obj.Object, tags.ResolvItem) {
			item, ok := hit.Data.(*donburi.Entry)
			if !ok || !item.Valid() || taken[item.Entity()] {
				continue
			}
			player.Score += components.Item.Get(item).Value
			if hit.Space != nil {
				hit.Space.Remove(hit)
			}
			taken[item.Entity()] = true
			collected = append(collected, item)
		}
	})

	for _, item := range collected {
		ecs.World.Remove(item.Entity())
		QueueSound(ecs, cfg.SoundItemPickup)
	}
}
