package systems

import (
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BreakRequest asks the level to break a box a body hit from below. The
// collision step never mutates level geometry itself.
type BreakRequest struct {
	Box *donburi.Entry
}

// StepBody advances one body by a frame: gravity, horizontal move and
// push-out, then vertical move and push-out. Horizontal is always resolved
// before vertical.
func StepBody(world donburi.World, obj *components.ObjectData, physics *components.PhysicsData, conf cfg.Config) []BreakRequest {
	ApplyGravity(physics, obj, conf)
	resolveHorizontal(world, obj, physics)
	return resolveVertical(world, obj, physics)
}

// resolveHorizontal moves the body by VelocityX and pushes it back out of
// anything it entered. Only the position is corrected; VelocityX is kept.
func resolveHorizontal(world donburi.World, obj *components.ObjectData, physics *components.PhysicsData) {
	dx := physics.VelocityX
	obj.X += dx
	if dx == 0 {
		return
	}

	for _, solid := range Overlapping(world, obj.Object, tags.Solid...) {
		if dx > 0 && obj.Right() > solid.X {
			obj.SetRight(solid.X)
		} else if dx < 0 && obj.Left() < solid.X+solid.W {
			obj.X = solid.X + solid.W
		}
	}
}

// resolveVertical moves the body by VelocityY and pushes it out against the
// nearest obstacle in the direction of travel. VelocityY is zeroed once per
// pass. A box contacted while rising yields a BreakRequest.
func resolveVertical(world donburi.World, obj *components.ObjectData, physics *components.PhysicsData) []BreakRequest {
	dy := physics.VelocityY
	obj.Y += dy
	if dy == 0 {
		return nil
	}

	contact := nearestContact(Overlapping(world, obj.Object, tags.Solid...), dy)
	if contact == nil {
		return nil
	}

	if dy > 0 {
		obj.SetBottom(contact.Y)
	} else {
		obj.Y = contact.Y + contact.H
	}
	physics.VelocityY = 0

	if dy < 0 && contact.HasTags(tags.ResolvBox) {
		if box, ok := contact.Data.(*donburi.Entry); ok {
			return []BreakRequest{{Box: box}}
		}
	}
	return nil
}

// nearestContact picks the obstacle that limits the move: the highest top
// when falling, the lowest bottom when rising. Ties go to the first found.
func nearestContact(hits []*resolv.Object, dy float64) *resolv.Object {
	var contact *resolv.Object
	for _, hit := range hits {
		switch {
		case contact == nil:
			contact = hit
		case dy > 0 && hit.Y < contact.Y:
			contact = hit
		case dy < 0 && hit.Y+hit.H > contact.Y+contact.H:
			contact = hit
		}
	}
	return contact
}
