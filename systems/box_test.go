package systems

import (
	"testing"

	"github.com/automoto/boxhop/assets"
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestBreakBoxReplacesBoxWithRaisedPlatform(t *testing.T) {
	e := newTestLevel(t, nil, []assets.Tuple{{50, 50, 300, 413}}, nil)
	box, ok := tags.Box.First(e.World)
	require.True(t, ok)

	platform, ok := BreakBox(e, box)
	require.True(t, ok)
	require.NotNil(t, platform)

	obj := components.Object.Get(platform)
	assert.Equal(t, 300.0, obj.X)
	assert.Equal(t, 343.0, obj.Y)
	assert.Equal(t, 50.0, obj.W)
	assert.Equal(t, 50.0, obj.H)
	assert.True(t, obj.HasTags(tags.ResolvPlatform))
	assert.Contains(t, levelSpace(e).Objects(), obj.Object, "new platform is part of the level space")

	assert.False(t, box.Valid())
	assert.Zero(t, countTag(e, tags.Box))
	assert.Equal(t, 1, countTag(e, tags.Debris))

	for _, o := range levelSpace(e).Objects() {
		assert.False(t, o.HasTags(tags.ResolvBox), "box removed from the space")
	}

	levelEntry, _ := components.Level.First(e.World)
	assert.Equal(t, 1, components.Level.Get(levelEntry).BoxesBroken)
	assert.Equal(t, []cfg.SoundID{cfg.SoundBoxBreak}, pendingSounds(e))
}

func TestBreakBoxIsIdempotent(t *testing.T) {
	e := newTestLevel(t, nil, []assets.Tuple{{50, 50, 300, 413}}, nil)
	box, ok := tags.Box.First(e.World)
	require.True(t, ok)

	_, ok = BreakBox(e, box)
	require.True(t, ok)

	platform, ok := BreakBox(e, box)
	assert.False(t, ok)
	assert.Nil(t, platform)

	assert.Equal(t, 1, countTag(e, tags.Platform))
	levelEntry, _ := components.Level.First(e.World)
	assert.Equal(t, 1, components.Level.Get(levelEntry).BoxesBroken)
}

func TestApplyBreakRequestsDeduplicates(t *testing.T) {
	e := newTestLevel(t, nil, []assets.Tuple{{50, 50, 300, 413}, {50, 50, 500, 413}}, nil)

	var boxes []*donburi.Entry
	tags.Box.Each(e.World, func(entry *donburi.Entry) {
		boxes = append(boxes, entry)
	})
	require.Len(t, boxes, 2)

	ApplyBreakRequests(e, []BreakRequest{{Box: boxes[0]}, {Box: boxes[0]}, {Box: boxes[1]}})

	assert.Zero(t, countTag(e, tags.Box))
	assert.Equal(t, 2, countTag(e, tags.Platform))
}

func TestBreakBoxIgnoresNonBoxes(t *testing.T) {
	e := newTestLevel(t, []assets.Tuple{{100, 30, 0, 400}}, nil, nil)
	platform, ok := tags.Platform.First(e.World)
	require.True(t, ok)

	_, broke := BreakBox(e, platform)
	assert.False(t, broke)
	_, broke = BreakBox(e, nil)
	assert.False(t, broke)

	assert.Equal(t, 1, countTag(e, tags.Platform))
	assert.Empty(t, pendingSounds(e))
}

func TestBrokenBoxPlatformIsJumpable(t *testing.T) {
	e := newTestLevel(t, nil, []assets.Tuple{{50, 50, 300, 413}}, nil)
	box, _ := tags.Box.First(e.World)
	BreakBox(e, box)

	b := newTestBody(e, 310, 300, 30, 40)
	for i := 0; i < 60; i++ {
		UpdatePhysics(e)
	}

	assert.Equal(t, 343.0, b.obj.Bottom(), "lands on the platform left by the box")
	assert.True(t, Jump(e.World, b.obj, b.physics, levelConfig(e)))
}
