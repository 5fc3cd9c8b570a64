package components

import "github.com/yohamta/donburi"

// ItemData is a pickup. Items do not block movement.
type ItemData struct {
	Value int
}

var Item = donburi.NewComponentType[ItemData]()
