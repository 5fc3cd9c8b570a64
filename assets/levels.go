package assets

import (
	"errors"
	"fmt"
)

// Tuple is a level-data rectangle in [width, height, x, y] order.
type Tuple [4]float64

func (t Tuple) Width() float64  { return t[0] }
func (t Tuple) Height() float64 { return t[1] }
func (t Tuple) X() float64      { return t[2] }
func (t Tuple) Y() float64      { return t[3] }

type PlayerSpawn struct {
	X float64 // Y is derived: players start resting on the floor
}

// Layout is one compiled-in level. Every copy of a level is built from the
// same Layout.
type Layout struct {
	Name         string
	Platforms    []Tuple
	Boxes        []Tuple
	Items        []Tuple
	PlayerSpawns []PlayerSpawn
}

var ErrInvalidRect = errors.New("rectangle must have positive width and height")

// Validate checks every rectangle in the layout has a positive size.
func (l Layout) Validate() error {
	groups := []struct {
		kind   string
		tuples []Tuple
	}{
		{"platform", l.Platforms},
		{"box", l.Boxes},
		{"item", l.Items},
	}
	for _, g := range groups {
		for i, t := range g.tuples {
			if t.Width() <= 0 || t.Height() <= 0 {
				return fmt.Errorf("%s layout: %s %d %v: %w", l.Name, g.kind, i, t, ErrInvalidRect)
			}
		}
	}
	if len(l.PlayerSpawns) == 0 {
		return fmt.Errorf("%s layout: no player spawn points defined", l.Name)
	}
	return nil
}

// SpawnFor returns the spawn point for a player index, wrapping around when
// the layout defines fewer spawns than players.
func (l Layout) SpawnFor(playerIndex int) PlayerSpawn {
	return l.PlayerSpawns[playerIndex%len(l.PlayerSpawns)]
}

// DefaultLayout is the single level shipped with the game: a symmetric
// arena with two boxes at mid height and two near the top.
var DefaultLayout = Layout{
	Name: "arena",
	Platforms: []Tuple{
		{116, 30, 250, 210},
		{116, 30, 934, 210},
		{40, 20, 130, 270},
		{40, 20, 1130, 270},
		{30, 245, 170, 270},
		{30, 245, 1100, 270},
		{110, 30, 470, 240},
		{106, 30, 720, 240},
		{30, 105, 470, 270},
		{30, 105, 796, 270},
		{140, 20, 580, 355},
		{40, 20, 130, 375},
		{40, 20, 1130, 375},
		{50, 20, 200, 375},
		{50, 20, 1050, 375},
		{40, 20, 130, 495},
		{40, 20, 1130, 495},
		{450, 50, 425, 438},
		{800, 50, 250, 570},
		{200, 50, 100, 620},
		{200, 50, 1000, 620},
	},
	Boxes: []Tuple{
		{50, 50, 300, 413},
		{50, 50, 950, 413},
		{50, 50, 283, 69},
		{50, 50, 967, 69},
	},
	Items: []Tuple{},
	PlayerSpawns: []PlayerSpawn{
		{X: 840},
		{X: 340},
	},
}
