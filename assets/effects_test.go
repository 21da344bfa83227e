package assets

import (
	"testing"

	"github.com/automoto/ribbonshot/particles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestBulletRibbonCapacity(t *testing.T) {
	tests := []struct {
		name     string
		lifetime float64
		want     uint32
	}{
		{"default trail", 0.25, 22},
		{"one second", 1.0, 90},
		{"long trail", 3.0, 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			effect := BulletRibbon(3.0, tt.lifetime)
			assert.Equal(t, tt.want, effect.Capacity)
			assert.Equal(t, uint32(60*tt.lifetime*1.5), effect.Capacity)
		})
	}
}

func TestBulletRibbonDescription(t *testing.T) {
	effect := BulletRibbon(3.0, 0.25)

	assert.Equal(t, 60.0, effect.Spawner.Rate)
	assert.Equal(t, particles.SimulationGlobal, effect.SimulationSpace)
	assert.Equal(t, particles.MotionNone, effect.MotionIntegration)

	size, ok := effect.InitValue(particles.AttrSize)
	require.True(t, ok)
	assert.Equal(t, 3.0, size.Scalar)

	lifetime, ok := effect.InitValue(particles.AttrLifetime)
	require.True(t, ok)
	assert.Equal(t, 0.25, lifetime.Scalar)

	ribbon, ok := effect.InitValue(particles.AttrRibbonID)
	require.True(t, ok)
	assert.Equal(t, 0.0, ribbon.Scalar)

	assert.Len(t, effect.RenderModifiers, 2)
}

func TestBulletRibbonFades(t *testing.T) {
	in := particles.NewInstance(BulletRibbon(3.0, 0.25))
	in.Tick(0.125, zero)

	// One tick emits floor(60 * 0.125) = 7 particles, all newborn.
	pts := in.Ribbon(0, nil)
	require.Len(t, pts, 7)
	assert.Equal(t, 3.0, pts[0].Width)
	assert.InDelta(t, 0.8, pts[0].Color[3], 1e-6)

	// Half a lifetime later the oldest batch is half as wide and half as opaque.
	in.Tick(0.125, zero)
	pts = in.Ribbon(0, nil)
	assert.Equal(t, 1.5, pts[0].Width)
	assert.InDelta(t, 0.4, pts[0].Color[3], 1e-6)
}

var zero = dmath.Vec2{}
