package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Body       = donburi.NewTag().SetName("Body")
	Platform   = donburi.NewTag().SetName("Platform")
	Box        = donburi.NewTag().SetName("Box")
	Item       = donburi.NewTag().SetName("Item")
	Background = donburi.NewTag().SetName("Background")
	Debris     = donburi.NewTag().SetName("Debris")
)

// Resolv tags for physics collision
const (
	ResolvPlatform = "platform"
	ResolvBox      = "box"
	ResolvItem     = "item"
	ResolvBody     = "body"
)

// Solid lists the resolv tags a body is pushed out of.
var Solid = []string{ResolvPlatform, ResolvBox}
