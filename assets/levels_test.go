package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayoutIsValid(t *testing.T) {
	require.NoError(t, DefaultLayout.Validate())
	assert.NotEmpty(t, DefaultLayout.Platforms)
	assert.Contains(t, DefaultLayout.Boxes, Tuple{50, 50, 300, 413})
	assert.Empty(t, DefaultLayout.Items)
}

func TestLayoutValidate(t *testing.T) {
	spawns := []PlayerSpawn{{X: 10}}
	tests := []struct {
		name   string
		layout Layout
	}{
		{"zero width platform", Layout{Name: "a", Platforms: []Tuple{{0, 10, 0, 0}}, PlayerSpawns: spawns}},
		{"negative height box", Layout{Name: "b", Boxes: []Tuple{{10, -1, 0, 0}}, PlayerSpawns: spawns}},
		{"flat item", Layout{Name: "c", Items: []Tuple{{10, 0, 0, 0}}, PlayerSpawns: spawns}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.layout.Validate(), ErrInvalidRect)
		})
	}

	err := Layout{Name: "empty"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no player spawn")
}

func TestTupleOrder(t *testing.T) {
	tp := Tuple{50, 40, 300, 413}
	assert.Equal(t, 50.0, tp.Width())
	assert.Equal(t, 40.0, tp.Height())
	assert.Equal(t, 300.0, tp.X())
	assert.Equal(t, 413.0, tp.Y())
}

func TestSpawnForWraps(t *testing.T) {
	l := Layout{PlayerSpawns: []PlayerSpawn{{X: 1}, {X: 2}}}
	assert.Equal(t, 1.0, l.SpawnFor(0).X)
	assert.Equal(t, 2.0, l.SpawnFor(1).X)
	assert.Equal(t, 1.0, l.SpawnFor(2).X)
}

func TestDefaultLayoutGeometry(t *testing.T) {
	assert.Len(t, DefaultLayout.Platforms, 21)
	assert.Equal(t, []Tuple{
		{50, 50, 300, 413},
		{50, 50, 950, 413},
		{50, 50, 283, 69},
		{50, 50, 967, 69},
	}, DefaultLayout.Boxes)
	assert.Equal(t, []PlayerSpawn{{X: 840}, {X: 340}}, DefaultLayout.PlayerSpawns)

	for _, p := range DefaultLayout.Platforms {
		assert.LessOrEqualf(t, p.X()+p.Width(), 1300.0, "platform %v fits the screen width", p)
	}
}
