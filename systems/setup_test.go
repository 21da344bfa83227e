package systems

import (
	"github.com/automoto/ribbonshot/assets"
	"github.com/automoto/ribbonshot/components"
	cfg "github.com/automoto/ribbonshot/config"
	"github.com/automoto/ribbonshot/particles"
	"github.com/automoto/ribbonshot/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// newTestECS builds the startup entities without any renderer or window.
func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.Physics.SpaceWidth, cfg.Physics.SpaceHeight, cfg.Physics.CellWidth, cfg.Physics.CellHeight)
	factory.CreateCamera(e)
	factory.CreateShooter(e, dmath.Vec2{})

	effects := factory.CreateEffects(e)
	handle := effects.Add(assets.BulletRibbon(cfg.Trail.Width, cfg.Trail.Lifetime))
	factory.CreateProjectileConfig(e, cfg.Shooter.InitialSpeed, handle)
	return e
}

// press makes ids just pressed this frame and releases everything else.
func press(e *ecs.ECS, ids ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = [cfg.ActionCount]bool{}
	input.Current = [cfg.ActionCount]bool{}
	for _, id := range ids {
		input.Current[id] = true
	}
}

// release clears all input for the next frame.
func release(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
}

func fire(e *ecs.ECS) {
	press(e, cfg.ActionFire)
	UpdateFire(e)
	release(e)
}

func speed(e *ecs.ECS) float64 {
	conf, _ := getProjectileConfig(e)
	return conf.Speed
}

func firstTrail(e *ecs.ECS) *donburi.Entry {
	entry, _ := components.ProjectileTrail.First(e.World)
	return entry
}

func effectHandle(e *ecs.ECS) particles.Handle {
	conf, _ := getProjectileConfig(e)
	return conf.Effect
}
