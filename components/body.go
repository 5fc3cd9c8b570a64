package components

import "github.com/yohamta/donburi"

type BodyKind int

const (
	BodyGeneric BodyKind = iota
	BodyPlayer
)

func (k BodyKind) String() string {
	if k == BodyPlayer {
		return "player"
	}
	return "generic"
}

// BodyData marks an entity that falls under gravity and collides with the
// level geometry.
type BodyData struct {
	Kind BodyKind
}

var Body = donburi.NewComponentType[BodyData]()
