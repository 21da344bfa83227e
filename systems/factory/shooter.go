package factory

import (
	"github.com/automoto/ribbonshot/archetypes"
	"github.com/automoto/ribbonshot/components"
	cfg "github.com/automoto/ribbonshot/config"
	"github.com/automoto/ribbonshot/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateShooter creates the stationary firing entity at pos.
func CreateShooter(ecs *ecs.ECS, pos dmath.Vec2) *donburi.Entry {
	shooter := archetypes.Shooter.Spawn(ecs)

	components.Transform.SetValue(shooter, components.TransformData{
		Position: pos,
		Scale:    cfg.Shooter.Scale,
	})
	components.Mesh.SetValue(shooter, components.MeshData{
		Radius: cfg.Shooter.Radius,
		Color:  cfg.Shooter.Color,
	})

	size := cfg.Shooter.Radius * cfg.Shooter.Scale * 2
	x, y := components.SpacePosition(pos, size, size)
	obj := resolv.NewObject(x, y, size, size, tags.ResolvShooter)
	obj.SetShape(resolv.NewCircle(size/2, size/2, size/2))
	obj.Data = shooter
	components.Object.SetValue(shooter, components.ObjectData{Object: obj})
	addObject(ecs, obj)

	return shooter
}
