package components

import (
	"github.com/automoto/ribbonshot/particles"
	"github.com/yohamta/donburi"
)

// ProjectileConfigData is the shared fire configuration. Speed is adjusted at runtime by the
// speed keys; Effect is fixed at startup.
type ProjectileConfigData struct {
	Speed  float64 // Units per second
	Effect particles.Handle
}

var ProjectileConfig = donburi.NewComponentType[ProjectileConfigData]()

// ProjectileTrailData links a trail entity back to the projectile it follows.
type ProjectileTrailData struct {
	Projectile donburi.Entity
}

var ProjectileTrail = donburi.NewComponentType[ProjectileTrailData]()
