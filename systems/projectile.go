package systems

import (
	"fmt"

	"github.com/automoto/ribbonshot/components"
	"github.com/automoto/ribbonshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	projectileQuery = donburi.NewQuery(filter.Contains(tags.Projectile))
	trailQuery      = donburi.NewQuery(filter.Contains(components.ProjectileTrail))
)

// UpdateProjectileMotion moves every projectile along its facing direction by speed * dt.
// Runs on the fixed timestep.
func UpdateProjectileMotion(ecs *ecs.ECS) {
	conf, ok := getProjectileConfig(ecs)
	if !ok {
		return
	}
	step := conf.Speed * GetOrCreateTime(ecs).FixedDelta

	projectileQuery.Each(ecs.World, func(e *donburi.Entry) {
		tr := components.Transform.Get(e)
		up := tr.Up()
		tr.Position.X += up.X * step
		tr.Position.Y += up.Y * step
	})
}

// UpdateTrails moves each trail onto its projectile's translation.
// A trail whose projectile no longer exists is a broken invariant and panics.
func UpdateTrails(ecs *ecs.ECS) {
	trailQuery.Each(ecs.World, func(e *donburi.Entry) {
		trail := components.ProjectileTrail.Get(e)
		if !ecs.World.Valid(trail.Projectile) {
			panic(fmt.Sprintf("trail %v follows missing projectile %v", e.Entity(), trail.Projectile))
		}
		projectile := ecs.World.Entry(trail.Projectile)
		if !projectile.HasComponent(tags.Projectile) {
			panic(fmt.Sprintf("trail %v follows entity %v which is not a projectile", e.Entity(), trail.Projectile))
		}

		components.Transform.SetValue(e, components.FromTranslation(components.Transform.Get(projectile).Position))
	})
}

// CountProjectiles returns the number of live projectiles.
func CountProjectiles(ecs *ecs.ECS) int {
	return projectileQuery.Count(ecs.World)
}

// CountTrails returns the number of live projectile trails.
func CountTrails(ecs *ecs.ECS) int {
	return trailQuery.Count(ecs.World)
}
