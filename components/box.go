package components

import "github.com/yohamta/donburi"

type BoxState int

const (
	BoxIntact BoxState = iota
	BoxBroken
)

func (s BoxState) String() string {
	if s == BoxBroken {
		return "broken"
	}
	return "intact"
}

// BoxData is a breakable box. Broken is terminal.
type BoxData struct {
	State BoxState
}

var Box = donburi.NewComponentType[BoxData]()

// Break moves the box from Intact to Broken. It returns false when the box
// was already broken, in which case nothing changes.
func (b *BoxData) Break() bool {
	if b.State == BoxBroken {
		return false
	}
	b.State = BoxBroken
	return true
}

// Update is the per-frame hook for the box. Intact boxes are static.
func (b *BoxData) Update() {}
