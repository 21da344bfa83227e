package systems

import (
	"testing"

	cfg "github.com/automoto/ribbonshot/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/ecs"
)

func TestUpdatePauseToggles(t *testing.T) {
	e := newTestECS()

	press(e, cfg.ActionPause)
	UpdatePause(e)
	assert.True(t, GetOrCreatePause(e).IsPaused)

	// Releasing the key does not toggle again.
	release(e)
	UpdatePause(e)
	assert.True(t, GetOrCreatePause(e).IsPaused)

	press(e, cfg.ActionPause)
	UpdatePause(e)
	assert.False(t, GetOrCreatePause(e).IsPaused)
}

func TestWithPauseCheck(t *testing.T) {
	e := newTestECS()
	calls := 0
	system := WithPauseCheck(func(*ecs.ECS) { calls++ })

	system(e)
	GetOrCreatePause(e).IsPaused = true
	system(e)

	assert.Equal(t, 1, calls)
}

func TestPausedWorldDoesNotFire(t *testing.T) {
	e := newTestECS()
	GetOrCreatePause(e).IsPaused = true

	press(e, cfg.ActionFire)
	WithPauseCheck(UpdateFire)(e)

	assert.Equal(t, 0, CountProjectiles(e))
}

func TestUpdateDebugToggles(t *testing.T) {
	e := newTestECS()
	assert.Equal(t, cfg.Debug.ShowColliders, GetOrCreateDebug(e).ShowColliders)

	press(e, cfg.ActionDebug)
	UpdateDebug(e)
	assert.Equal(t, !cfg.Debug.ShowColliders, GetOrCreateDebug(e).ShowColliders)
}
