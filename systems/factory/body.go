package factory

import (
	"github.com/automoto/boxhop/archetypes"
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBody spawns a generic body that falls and collides like a player but
// takes no input.
func CreateBody(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	body := archetypes.Body.Spawn(ecs)

	obj := newObject(x, y, w, h, tags.ResolvBody)
	obj.Data = body

	components.Object.SetValue(body, components.ObjectData{Object: obj})
	components.Body.SetValue(body, components.BodyData{Kind: components.BodyGeneric})
	components.Sprite.SetValue(body, components.SpriteData{Color: levelConfig(ecs).Colors.Body})

	addToSpace(ecs, obj)

	return body
}

// CreatePlayer spawns player index resting on the floor at x.
func CreatePlayer(ecs *ecs.ECS, index int, scheme cfg.ControlSchemeID, x float64) *donburi.Entry {
	conf := levelConfig(ecs)
	player := archetypes.Player.Spawn(ecs)

	w, h := conf.Player.CollisionWidth, conf.Player.CollisionHeight
	obj := newObject(x, conf.FloorY(h), w, h, tags.ResolvBody)
	obj.Data = player

	color := conf.Colors.Body
	if len(conf.Colors.Players) > 0 {
		color = conf.Colors.Players[index%len(conf.Colors.Players)]
	}

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Body.SetValue(player, components.BodyData{Kind: components.BodyPlayer})
	components.Player.SetValue(player, components.PlayerData{
		Index:  index,
		Name:   cfg.Input.Schemes[scheme].Name,
		Color:  color,
		Scheme: scheme,
	})
	components.Sprite.SetValue(player, components.SpriteData{Color: color})

	addToSpace(ecs, obj)

	return player
}
