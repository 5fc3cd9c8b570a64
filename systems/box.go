package systems

import (
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ApplyBreakRequests breaks every requested box.
func ApplyBreakRequests(ecs *ecs.ECS, requests []BreakRequest) {
	for _, r := range requests {
		BreakBox(ecs, r.Box)
	}
}

// BreakBox takes a box out of the level and puts a platform of the same size
// Box.Lift pixels above where it was. It returns the new platform. Breaking a
// box that is already broken, or no longer part of the level, does nothing.
func BreakBox(ecs *ecs.ECS, boxEntry *donburi.Entry) (*donburi.Entry, bool) {
	if boxEntry == nil || !boxEntry.Valid() || !boxEntry.HasComponent(components.Box) {
		return nil, false
	}

	box := components.Box.Get(boxEntry)
	if !box.Break() {
		return nil, false
	}

	obj := components.Object.Get(boxEntry)
	x, y, w, h := obj.X, obj.Y, obj.W, obj.H
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	ecs.World.Remove(boxEntry.Entity())

	conf := levelConfig(ecs)
	platform := factory.CreatePlatform(ecs, x, y-conf.Box.Lift, w, h)
	factory.CreateDebris(ecs, x, y, w, h)
	QueueSound(ecs, cfg.SoundBoxBreak)

	if entry, ok := components.Level.First(ecs.World); ok {
		components.Level.Get(entry).BoxesBroken++
	}

	return platform, true
}
