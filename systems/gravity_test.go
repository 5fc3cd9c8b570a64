package systems

import (
	"testing"

	cfg "github.com/automoto/boxhop/config"
	"github.com/stretchr/testify/assert"
)

func TestApplyGravityAccumulates(t *testing.T) {
	e := newTestLevel(t, nil, nil, nil)
	b := newTestBody(e, 100, 0, 30, 40)
	conf := cfg.DefaultConfig()

	for n := 1; n <= 20; n++ {
		ApplyGravity(b.physics, b.obj, conf)
		assert.InDeltaf(t, 1+0.35*float64(n-1), b.physics.VelocityY, 1e-9, "after %d calls", n)
	}
	assert.Equal(t, 0.0, b.obj.Y, "gravity alone does not move the body")
}

func TestApplyGravityGroundClamp(t *testing.T) {
	tests := []struct {
		name  string
		y     float64
		vy    float64
		wantY float64
		wantV float64
	}{
		{"resting on floor", 710, 0, 710, 0},
		{"falling onto floor", 710, 4, 710, 0},
		{"below floor", 725, 2, 710, 0},
		{"leaving floor upwards", 710, -10, 710, -9.65},
		{"above floor", 600, 2, 600, 2.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestLevel(t, nil, nil, nil)
			b := newTestBody(e, 100, tt.y, 30, 40)
			b.physics.VelocityY = tt.vy

			ApplyGravity(b.physics, b.obj, cfg.DefaultConfig())

			assert.InDelta(t, tt.wantY, b.obj.Y, 1e-9)
			assert.InDelta(t, tt.wantV, b.physics.VelocityY, 1e-9)
		})
	}
}

func TestApplyGravityUsesConfig(t *testing.T) {
	e := newTestLevel(t, nil, nil, nil)
	b := newTestBody(e, 0, 0, 10, 10)

	conf := cfg.DefaultConfig()
	conf.Physics.InitialFallSpeed = 2
	conf.Physics.Gravity = 0.5

	ApplyGravity(b.physics, b.obj, conf)
	ApplyGravity(b.physics, b.obj, conf)
	assert.InDelta(t, 2.5, b.physics.VelocityY, 1e-9)
}
