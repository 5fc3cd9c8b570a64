package systems

import (
	"fmt"

	"github.com/automoto/boxhop/components"
	"github.com/automoto/boxhop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// HUDLines returns the text shown in the corner of a level's viewport.
func HUDLines(ecs *ecs.ECS) []string {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	level := components.Level.Get(levelEntry)

	lines := []string{fmt.Sprintf("Level %s  boxes broken %d", level.LayoutName, level.BoxesBroken)}
	if playerEntry, ok := components.Player.First(ecs.World); ok {
		player := components.Player.Get(playerEntry)
		lines = append(lines, fmt.Sprintf("P%d (%s)  score %d", player.Index+1, player.Name, player.Score))
	}
	return lines
}

// DrawHUD renders the level header and the player's score. It draws nothing
// until the fonts are loaded.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	title, ok := fonts.Title.Lookup()
	if !ok {
		return
	}
	face, ok := fonts.HUD.Lookup()
	if !ok {
		return
	}
	clr := levelConfig(ecs).Colors.HUDText

	y := hudMargin
	for i, line := range HUDLines(ecs) {
		f := face
		if i == 0 {
			f = title
		}
		y += f.Metrics().Height.Ceil()
		text.Draw(screen, line, f, hudMargin, y, clr)
	}
}
