package systems

import (
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/tags"
	"github.com/yohamta/donburi"
)

// GoLeft and GoRight overwrite the horizontal speed; the last call wins.
func GoLeft(physics *components.PhysicsData, conf cfg.Config) {
	physics.VelocityX = -conf.Player.MoveSpeed
}

func GoRight(physics *components.PhysicsData, conf cfg.Config) {
	physics.VelocityX = conf.Player.MoveSpeed
}

func Stop(physics *components.PhysicsData) {
	physics.VelocityX = 0
}

// Jump gives the body an upward impulse when it stands on something: a
// platform or box within GroundProbe pixels below it, or the floor.
// It reports whether the jump happened.
func Jump(world donburi.World, obj *components.ObjectData, physics *components.PhysicsData, conf cfg.Config) bool {
	obj.Y += conf.Physics.GroundProbe
	supported := len(Overlapping(world, obj.Object, tags.Solid...)) > 0
	obj.Y -= conf.Physics.GroundProbe

	if !supported && obj.Bottom() < float64(conf.Height) {
		return false
	}

	physics.VelocityY = -conf.Player.JumpSpeed
	return true
}
