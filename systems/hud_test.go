package systems

import (
	"testing"

	cfg "github.com/automoto/ribbonshot/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHUDLines(t *testing.T) {
	e := newTestECS()

	lines := HUDLines(e)
	require.Len(t, lines, 3)
	assert.Equal(t, "Speed: 1000", lines[0])
	assert.Equal(t, "Projectiles: 0   Trails: 0   Particles: 0", lines[1])

	press(e, cfg.ActionSpeedDown)
	UpdateFireSpeed(e)
	fire(e)

	lines = HUDLines(e)
	assert.Equal(t, "Speed: 800", lines[0])
	assert.Equal(t, "Projectiles: 1   Trails: 1   Particles: 0", lines[1])
}
