package components

import (
	cfg "github.com/automoto/boxhop/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// LevelData is the singleton describing one player's copy of the level.
type LevelData struct {
	Config      cfg.Config
	LayoutName  string
	OwnerIndex  int // index of the player this copy belongs to
	FrameCount  int
	BoxesBroken int
}

var Level = donburi.NewComponentType[LevelData]()

// Space is the level's collision space. It holds the AABB of every platform,
// box, item and body of the level.
var Space = donburi.NewComponentType[resolv.Space]()
