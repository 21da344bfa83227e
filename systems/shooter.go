package systems

import (
	"math"

	"github.com/automoto/ribbonshot/components"
	cfg "github.com/automoto/ribbonshot/config"
	"github.com/automoto/ribbonshot/systems/factory"
	"github.com/automoto/ribbonshot/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAim turns the shooter to face the cursor so shots travel toward the click.
func UpdateAim(ecs *ecs.ECS) {
	shooterEntry, ok := tags.Shooter.First(ecs.World)
	if !ok {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	input := getOrCreateInput(ecs)
	camera := components.Camera.Get(cameraEntry)
	target := camera.ScreenToWorld(input.CursorX, input.CursorY)

	shooter := components.Transform.Get(shooterEntry)
	dx := target.X - shooter.Position.X
	dy := target.Y - shooter.Position.Y
	if dx == 0 && dy == 0 {
		return
	}
	// Up() is (-sin, cos), so this rotation points it along (dx, dy).
	shooter.Rotation = math.Atan2(-dx, dy)
}

// UpdateFireSpeed adjusts the shared fire speed on Up/Down key presses.
// Only one adjustment applies per frame and the speed is not clamped.
func UpdateFireSpeed(ecs *ecs.ECS) {
	conf, ok := getProjectileConfig(ecs)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionSpeedUp).JustPressed {
		conf.Speed += cfg.Shooter.SpeedStep
	} else if GetAction(input, cfg.ActionSpeedDown).JustPressed {
		conf.Speed -= cfg.Shooter.SpeedStep
	}
}

// UpdateFire spawns a projectile at the shooter transform and a trail following it when the
// fire button is clicked.
func UpdateFire(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !GetAction(input, cfg.ActionFire).JustPressed {
		return
	}

	shooterEntry, ok := tags.Shooter.First(ecs.World)
	if !ok {
		return
	}
	conf, ok := getProjectileConfig(ecs)
	if !ok {
		return
	}

	projectile := factory.CreateProjectile(ecs, *components.Transform.Get(shooterEntry))
	factory.CreateProjectileTrail(ecs, projectile, conf.Effect)
}

func getProjectileConfig(ecs *ecs.ECS) (*components.ProjectileConfigData, bool) {
	entry, ok := components.ProjectileConfig.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.ProjectileConfig.Get(entry), true
}
