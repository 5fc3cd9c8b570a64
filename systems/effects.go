package systems

import (
	"github.com/automoto/boxhop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances debris tweens and removes finished debris.
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(1) / float32(levelConfig(ecs).TPS)

	var toDestroy []*donburi.Entry
	components.Debris.Each(ecs.World, func(e *donburi.Entry) {
		debris := components.Debris.Get(e)

		alpha, faded := debris.Fade.Update(dt)
		offset, _ := debris.Rise.Update(dt)
		debris.Alpha = alpha
		debris.OffsetY = offset

		if faded {
			debris.Done = true
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		ecs.World.Remove(e.Entity())
	}
}
