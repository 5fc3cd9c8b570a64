package components

import (
	cfg "github.com/automoto/boxhop/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PlayerInputData stores the current and previous frame's pressed state for
// each action of one player. JustPressed/JustReleased are computed on-demand by
// comparing frames.
type PlayerInputData struct {
	CurrentInput  [cfg.ActionCount]bool
	PreviousInput [cfg.ActionCount]bool
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()

// Action returns the temporal state of an action.
func (p *PlayerInputData) Action(id cfg.ActionID) ActionState {
	curr := p.CurrentInput[id]
	prev := p.PreviousInput[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Swap makes the current frame the previous one and clears the current frame.
func (p *PlayerInputData) Swap() {
	p.PreviousInput = p.CurrentInput
	p.CurrentInput = [cfg.ActionCount]bool{}
}
