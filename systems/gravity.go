package systems

import (
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
)

// ApplyGravity accelerates a body downwards and holds it on the floor of the
// play area. The floor is a hard limit that exists independently of
// platforms.
func ApplyGravity(physics *components.PhysicsData, obj *components.ObjectData, conf cfg.Config) {
	if physics.VelocityY == 0 {
		physics.VelocityY = conf.Physics.InitialFallSpeed
	} else {
		physics.VelocityY += conf.Physics.Gravity
	}

	floor := conf.FloorY(obj.H)
	if obj.Y >= floor && physics.VelocityY >= 0 {
		physics.VelocityY = 0
		obj.Y = floor
	}
}
