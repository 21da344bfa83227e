package systems

import (
	"testing"

	"github.com/automoto/ribbonshot/components"
	cfg "github.com/automoto/ribbonshot/config"
	"github.com/automoto/ribbonshot/particles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestUpdateParticleEffectsCreatesInstanceAndEmits(t *testing.T) {
	e := newTestECS()
	fire(e)
	GetOrCreateTime(e).Delta = 0.25

	UpdateParticleEffects(e)

	fx := components.ParticleEffect.Get(firstTrail(e))
	require.NotNil(t, fx.Instance)
	assert.Equal(t, "bullet_ribbon", fx.Instance.Asset().Name)
	// 60 particles/s for a quarter second, within the 22 particle capacity.
	assert.Equal(t, 15, fx.Instance.Alive())
	assert.Equal(t, 15, CountParticles(e))
}

func TestUpdateParticleEffectsEmitsAtTrailPosition(t *testing.T) {
	e := newTestECS()
	fire(e)
	trail := firstTrail(e)
	components.Transform.Get(trail).Position = dmath.Vec2{X: 30, Y: -12}
	GetOrCreateTime(e).Delta = 0.1

	UpdateParticleEffects(e)

	fx := components.ParticleEffect.Get(trail)
	require.NotEmpty(t, fx.Instance.Particles())
	for _, p := range fx.Instance.Particles() {
		assert.Equal(t, dmath.Vec2{X: 30, Y: -12}, p.Position)
	}
}

func TestUpdateParticleEffectsNeverExceedsCapacity(t *testing.T) {
	e := newTestECS()
	fire(e)
	GetOrCreateTime(e).Delta = 1

	for i := 0; i < 4; i++ {
		UpdateParticleEffects(e)
	}

	fx := components.ParticleEffect.Get(firstTrail(e))
	assert.LessOrEqual(t, uint32(fx.Instance.Alive()), fx.Instance.Asset().Capacity)
	assert.Positive(t, fx.Instance.Dropped)
}

func TestUpdateParticleEffectsSkipsUnknownHandle(t *testing.T) {
	e := newTestECS()
	fire(e)
	trail := firstTrail(e)
	components.ParticleEffect.Get(trail).Handle = particles.Handle{}
	GetOrCreateTime(e).Delta = cfg.Time.FixedTimestep

	UpdateParticleEffects(e)

	assert.Nil(t, components.ParticleEffect.Get(trail).Instance)
	assert.Equal(t, 0, CountParticles(e))
}
