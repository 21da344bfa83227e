package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func testCamera(w, h float64) *CameraData {
	return &CameraData{
		Projection: ProjectionData{
			Scale:          1,
			MaxWidth:       1920,
			MaxHeight:      1080,
			ViewportOrigin: dmath.Vec2{X: 0.5, Y: 0.5},
		},
		ScreenWidth:  w,
		ScreenHeight: h,
	}
}

func TestCameraUnitsPerPixel(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
		want float64
	}{
		{"matching aspect", 1920, 1080, 1},
		{"half resolution", 960, 540, 2},
		{"wider screen keeps max width", 3840, 1080, 0.5},
		{"taller screen keeps max height", 1080, 1080, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, testCamera(tt.w, tt.h).UnitsPerPixel(), 1e-9)
		})
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := testCamera(1920, 1080)
	c.Position = dmath.Vec2{X: 100, Y: -50}

	x, y := c.WorldToScreen(dmath.Vec2{X: 100, Y: -50})
	assert.Equal(t, 960.0, x)
	assert.Equal(t, 540.0, y)

	// World Y is up, screen Y is down.
	_, y = c.WorldToScreen(dmath.Vec2{X: 100, Y: 0})
	assert.Equal(t, 490.0, y)

	p := c.ScreenToWorld(0, 0)
	assert.Equal(t, dmath.Vec2{X: -860, Y: 490}, p)

	x, y = c.WorldToScreen(p)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
}
