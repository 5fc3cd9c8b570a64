package systems

import (
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// KeySource reports which keys are held this frame.
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// EbitenKeys reads the real keyboard.
var EbitenKeys KeySource = ebitenKeys{}

// NewInputSystem polls keys for every player in the level and turns key
// presses and releases into controller calls.
// Must run BEFORE UpdatePhysics in the system order.
func NewInputSystem(keys KeySource) ecs.System {
	return func(ecs *ecs.ECS) {
		components.Player.Each(ecs.World, func(e *donburi.Entry) {
			input := components.PlayerInput.Get(e)
			player := components.Player.Get(e)

			input.Swap()
			scheme := cfg.Input.Schemes[player.Scheme]
			for actionID, binding := range scheme.Bindings {
				for _, key := range binding.Keys {
					if keys.IsKeyPressed(key) {
						input.CurrentInput[actionID] = true
					}
				}
			}

			HandlePlayerInput(ecs, e)
		})
	}
}

// HandlePlayerInput applies this frame's input edges of one player.
// Releasing a direction key only stops the player when that key is the one
// driving the motion, so letting go of Left while moving Right keeps moving.
func HandlePlayerInput(ecs *ecs.ECS, e *donburi.Entry) {
	conf := levelConfig(ecs)
	input := components.PlayerInput.Get(e)
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)

	left := input.Action(cfg.ActionMoveLeft)
	right := input.Action(cfg.ActionMoveRight)

	if left.JustPressed {
		GoLeft(physics, conf)
		player.ActiveDirection = -1
	}
	if right.JustPressed {
		GoRight(physics, conf)
		player.ActiveDirection = 1
	}
	if left.JustReleased && player.ActiveDirection < 0 {
		Stop(physics)
		player.ActiveDirection = 0
	}
	if right.JustReleased && player.ActiveDirection > 0 {
		Stop(physics)
		player.ActiveDirection = 0
	}

	if input.Action(cfg.ActionJump).JustPressed {
		Jump(ecs.World, components.Object.Get(e), physics, conf)
	}
}
