package tags

import "github.com/yohamta/donburi"

var (
	Shooter    = donburi.NewTag().SetName("Shooter")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for physics collision
const (
	ResolvShooter    = "shooter"
	ResolvProjectile = "projectile"
)
