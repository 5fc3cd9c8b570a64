package systems

import (
	"testing"

	"github.com/automoto/boxhop/assets"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/systems/factory"
	"github.com/automoto/boxhop/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawableKinds(ds []Drawable) []DrawableKind {
	kinds := make([]DrawableKind, len(ds))
	for i, d := range ds {
		kinds[i] = d.Kind
	}
	return kinds
}

func TestDrawablesBackToFront(t *testing.T) {
	e := newTestLevel(t,
		[]assets.Tuple{{100, 30, 0, 400}},
		[]assets.Tuple{{50, 50, 300, 413}},
		[]assets.Tuple{{20, 20, 600, 700}},
	)
	factory.CreatePlayer(e, 0, cfg.ControlSchemeArrows, 100)

	got := Drawables(e)

	assert.Equal(t, []DrawableKind{DrawBackground, DrawPlatform, DrawBox, DrawItem, DrawBody}, drawableKinds(got))

	conf := levelConfig(e)
	assert.Equal(t, float64(conf.Width), got[0].W)
	assert.Equal(t, float64(conf.Height), got[0].H)

	box := got[2]
	assert.Equal(t, [4]float64{300, 413, 50, 50}, [4]float64{box.X, box.Y, box.W, box.H})
	assert.Equal(t, conf.Colors.Box, box.Color)

	assert.Equal(t, conf.Colors.Players[0], got[4].Color)
}

func TestDrawablesDebris(t *testing.T) {
	e := newTestLevel(t, nil, []assets.Tuple{{50, 50, 300, 413}}, nil)
	box, _ := tags.Box.First(e.World)
	BreakBox(e, box)
	UpdateEffects(e)

	got := Drawables(e)
	require.Equal(t, []DrawableKind{DrawBackground, DrawPlatform, DrawDebris}, drawableKinds(got))

	debris := got[2]
	assert.Less(t, debris.Y, 413.0, "drawn with its rise offset")
	assert.Less(t, debris.Color.A, levelConfig(e).Colors.Box.A, "drawn with its fade")

	platform := got[1]
	assert.Equal(t, 343.0, platform.Y)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, float32(0), clamp01(-0.5))
	assert.Equal(t, float32(0.25), clamp01(0.25))
	assert.Equal(t, float32(1), clamp01(3))
}

func TestHUDLines(t *testing.T) {
	e := newTestLevel(t, nil, []assets.Tuple{{50, 50, 300, 413}}, nil)
	factory.CreatePlayer(e, 1, cfg.ControlSchemeWASD, 100)

	box, _ := tags.Box.First(e.World)
	BreakBox(e, box)

	lines := HUDLines(e)
	require.Len(t, lines, 2)
	assert.Equal(t, "Level test  boxes broken 1", lines[0])
	assert.Contains(t, lines[1], "P2")
	assert.Contains(t, lines[1], "score 0")
}

func TestFade(t *testing.T) {
	c := fade(cfg.Brown, 0.5)
	assert.Equal(t, uint8(75), c.R)
	assert.Equal(t, uint8(127), c.A)
	assert.Equal(t, cfg.Brown, fade(cfg.Brown, 1))
}
