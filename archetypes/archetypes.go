package archetypes

import (
	"github.com/automoto/ribbonshot/components"
	cfg "github.com/automoto/ribbonshot/config"
	"github.com/automoto/ribbonshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Camera = newArchetype(
		components.Camera,
	)
	Shooter = newArchetype(
		tags.Shooter,
		components.Transform,
		components.Mesh,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Transform,
		components.Object,
	)
	ProjectileTrail = newArchetype(
		components.ProjectileTrail,
		components.Transform,
		components.ParticleEffect,
	)
	ProjectileConfig = newArchetype(
		components.ProjectileConfig,
	)
	Effects = newArchetype(
		components.Effects,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
