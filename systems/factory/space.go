package factory

import (
	"fmt"

	"github.com/automoto/boxhop/archetypes"
	"github.com/automoto/boxhop/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CellSize is the resolv cell size used for every level space.
const CellSize = 16

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// newObject builds a rectangular collision object. A non-positive size is a
// programming error in the level data and panics.
func newObject(x, y, w, h float64, tags ...string) *resolv.Object {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("invalid %v rectangle %.1fx%.1f at (%.1f, %.1f)", tags, w, h, x, y))
	}
	obj := resolv.NewObject(x, y, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}

// addToSpace registers obj with the level's collision space, if one exists.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
