package systems

import (
	"github.com/automoto/boxhop/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers every moved object with the cells of the level
// space. Runs after UpdatePhysics.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	}
}
