package systems

import (
	"testing"

	"github.com/automoto/ribbonshot/components"
	cfg "github.com/automoto/ribbonshot/config"
	"github.com/automoto/ribbonshot/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestUpdateObjectsSyncsColliders(t *testing.T) {
	e := newTestECS()
	fire(e)

	projectile, ok := tags.Projectile.First(e.World)
	require.True(t, ok)
	components.Transform.Get(projectile).Position = dmath.Vec2{X: 10, Y: 20}

	UpdateObjects(e)

	size := cfg.Physics.ProjectileSize
	obj := components.Object.Get(projectile)
	assert.Equal(t, 10+float64(cfg.Physics.SpaceWidth)/2-size/2, obj.X)
	assert.Equal(t, float64(cfg.Physics.SpaceHeight)/2-20-size/2, obj.Y)
	owner, ok := obj.Data.(*donburi.Entry)
	require.True(t, ok)
	assert.Equal(t, projectile.Entity(), owner.Entity())
}

func TestCollidersRegisteredInSpace(t *testing.T) {
	e := newTestECS()
	fire(e)

	spaceEntry, ok := components.Space.First(e.World)
	require.True(t, ok)
	space := components.Space.Get(spaceEntry)

	counts := map[string]int{}
	for _, obj := range space.Objects() {
		for _, tag := range []string{tags.ResolvShooter, tags.ResolvProjectile} {
			if obj.HasTags(tag) {
				counts[tag]++
			}
		}
	}
	assert.Len(t, space.Objects(), 2)
	assert.Equal(t, map[string]int{tags.ResolvShooter: 1, tags.ResolvProjectile: 1}, counts)
}
