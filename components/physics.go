package components

import "github.com/yohamta/donburi"

// PhysicsData is the velocity of a moving body in pixels per frame.
type PhysicsData struct {
	VelocityX float64
	VelocityY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
