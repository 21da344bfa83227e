package assets

import (
	cfg "github.com/automoto/ribbonshot/config"
	"github.com/automoto/ribbonshot/particles"
	dmath "github.com/yohamta/donburi/features/math"
)

// BulletRibbon builds the projectile trail: a single ribbon of particles left behind in world
// space, each living for lifetime seconds while its width shrinks to zero and its color fades
// from translucent yellow to transparent white.
func BulletRibbon(width, lifetime float64) *particles.EffectAsset {
	rate := cfg.Trail.SpawnRate
	capacity := uint32(rate * lifetime * cfg.Trail.CapacityFactor)

	return particles.NewEffectAsset(capacity, particles.RateSpawner(rate)).
		WithName("bullet_ribbon").
		WithSimulationSpace(particles.SimulationGlobal).
		WithMotionIntegration(particles.MotionNone).
		Init(particles.SetVector(particles.AttrPosition, dmath.Vec2{})).
		Init(particles.SetScalar(particles.AttrAge, 0)).
		Init(particles.SetScalar(particles.AttrLifetime, lifetime)).
		Init(particles.SetScalar(particles.AttrSize, width)).
		Init(particles.SetScalar(particles.AttrRibbonID, 0)).
		Render(particles.SizeOverLifetime{
			Gradient: particles.LinearScalar(1, 0),
		}).
		Render(particles.ColorOverLifetime{
			Gradient: particles.LinearColor(cfg.Trail.StartColor, cfg.Trail.EndColor),
		})
}
