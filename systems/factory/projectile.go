package factory

import (
	"github.com/automoto/ribbonshot/archetypes"
	"github.com/automoto/ribbonshot/components"
	cfg "github.com/automoto/ribbonshot/config"
	"github.com/automoto/ribbonshot/particles"
	"github.com/automoto/ribbonshot/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEffects creates the effect asset store.
func CreateEffects(ecs *ecs.ECS) *particles.Assets {
	entry := archetypes.Effects.Spawn(ecs)
	components.Effects.Set(entry, particles.NewAssets())
	return components.Effects.Get(entry)
}

// CreateProjectileConfig creates the shared fire configuration.
func CreateProjectileConfig(ecs *ecs.ECS, speed float64, effect particles.Handle) *donburi.Entry {
	entry := archetypes.ProjectileConfig.Spawn(ecs)
	components.ProjectileConfig.SetValue(entry, components.ProjectileConfigData{
		Speed:  speed,
		Effect: effect,
	})
	return entry
}

// CreateProjectile spawns a projectile with a copy of transform.
func CreateProjectile(ecs *ecs.ECS, transform components.TransformData) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(ecs)
	components.Transform.SetValue(projectile, transform)

	size := cfg.Physics.ProjectileSize
	x, y := components.SpacePosition(transform.Position, size, size)
	obj := resolv.NewObject(x, y, size, size, tags.ResolvProjectile)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = projectile
	components.Object.SetValue(projectile, components.ObjectData{Object: obj})
	addObject(ecs, obj)

	return projectile
}

// CreateProjectileTrail spawns the ribbon trail following projectile. The trail starts at the
// projectile translation without its rotation or scale.
func CreateProjectileTrail(ecs *ecs.ECS, projectile *donburi.Entry, effect particles.Handle) *donburi.Entry {
	trail := archetypes.ProjectileTrail.Spawn(ecs)

	components.ProjectileTrail.SetValue(trail, components.ProjectileTrailData{
		Projectile: projectile.Entity(),
	})
	components.Transform.SetValue(trail, components.FromTranslation(components.Transform.Get(projectile).Position))
	components.ParticleEffect.SetValue(trail, components.ParticleEffectData{
		Handle: effect,
	})

	return trail
}
