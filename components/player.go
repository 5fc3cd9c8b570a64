package components

import (
	"image/color"

	cfg "github.com/automoto/boxhop/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Index  int
	Name   string
	Color  color.RGBA
	Scheme cfg.ControlSchemeID

	// Direction of the key currently driving horizontal motion (-1, 0, 1).
	// Only a release of this key stops the player.
	ActiveDirection int

	Score int
}

var Player = donburi.NewComponentType[PlayerData]()
