package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the AABB of an entity. The wrapped resolv object is what the
// level's collision space stores.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

func (o ObjectData) Left() float64   { return o.X }
func (o ObjectData) Right() float64  { return o.X + o.W }
func (o ObjectData) Top() float64    { return o.Y }
func (o ObjectData) Bottom() float64 { return o.Y + o.H }

// SetRight moves the object so its right edge sits at x.
func (o ObjectData) SetRight(x float64) { o.X = x - o.W }

// SetBottom moves the object so its bottom edge sits at y.
func (o ObjectData) SetBottom(y float64) { o.Y = y - o.H }
