package systems

import (
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics steps every body of the level one after another. Break
// requests raised by a body are applied before the next body moves.
func UpdatePhysics(ecs *ecs.ECS) {
	conf := levelConfig(ecs)

	var bodies []*donburi.Entry
	tags.Body.Each(ecs.World, func(e *donburi.Entry) {
		bodies = append(bodies, e)
	})

	for _, e := range bodies {
		obj := components.Object.Get(e)
		physics := components.Physics.Get(e)

		requests := StepBody(ecs.World, obj, physics, conf)
		ClampToScreen(obj, conf)
		ApplyBreakRequests(ecs, requests)
	}
}

// ClampToScreen keeps a body horizontally inside the play area.
func ClampToScreen(obj *components.ObjectData, conf cfg.Config) {
	if obj.Right() > float64(conf.Width) {
		obj.SetRight(float64(conf.Width))
	}
	if obj.Left() < 0 {
		obj.X = 0
	}
}
