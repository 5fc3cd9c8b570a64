package systems

import (
	"testing"

	"github.com/automoto/boxhop/assets"
	"github.com/automoto/boxhop/components"
	"github.com/automoto/boxhop/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebrisFadesAndIsRemoved(t *testing.T) {
	e := newTestLevel(t, nil, []assets.Tuple{{50, 50, 300, 413}}, nil)
	box, _ := tags.Box.First(e.World)
	BreakBox(e, box)

	entry, ok := components.Debris.First(e.World)
	require.True(t, ok)
	debris := components.Debris.Get(entry)
	assert.Equal(t, float32(1), debris.Alpha)

	UpdateEffects(e)
	assert.Less(t, debris.Alpha, float32(1))
	assert.Less(t, debris.OffsetY, float32(0), "debris drifts upwards")

	// 0.4s at 60 TPS is 24 frames.
	for i := 1; i < 30; i++ {
		UpdateEffects(e)
	}
	assert.Zero(t, countTag(e, tags.Debris))
}

func TestDebrisDoesNotCollide(t *testing.T) {
	e := newTestLevel(t, nil, []assets.Tuple{{50, 50, 300, 413}}, nil)
	box, _ := tags.Box.First(e.World)
	BreakBox(e, box)

	b := newTestBody(e, 310, 400, 30, 40)
	b.physics.VelocityY = 2

	UpdatePhysics(e)

	assert.Greater(t, b.obj.Y, 400.0, "falls through where the box used to be")
}
