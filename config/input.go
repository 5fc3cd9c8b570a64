package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionCount // Must be last - used for array sizing
)

func (a ActionID) String() string {
	switch a {
	case ActionMoveLeft:
		return "left"
	case ActionMoveRight:
		return "right"
	case ActionJump:
		return "jump"
	default:
		return "none"
	}
}

// ControlSchemeID identifies one of the keyboard control sets.
type ControlSchemeID int

const (
	ControlSchemeArrows ControlSchemeID = iota // Player A
	ControlSchemeWASD                          // Player B
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// ControlScheme maps actions to keys for one player.
type ControlScheme struct {
	Name     string
	Bindings map[ActionID]InputBinding
}

// InputConfig holds all input mappings
type InputConfig struct {
	Schemes  map[ControlSchemeID]ControlScheme
	QuitKeys []ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Schemes: map[ControlSchemeID]ControlScheme{
			ControlSchemeArrows: {
				Name: "Arrows",
				Bindings: map[ActionID]InputBinding{
					ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyArrowLeft}},
					ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyArrowRight}},
					ActionJump:      {Keys: []ebiten.Key{ebiten.KeyArrowUp}},
				},
			},
			ControlSchemeWASD: {
				Name: "WASD",
				Bindings: map[ActionID]InputBinding{
					ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyA}},
					ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyD}},
					ActionJump:      {Keys: []ebiten.Key{ebiten.KeyW}},
				},
			},
		},
		QuitKeys: []ebiten.Key{ebiten.KeyEscape},
	}
}
