package factory

import (
	"github.com/automoto/ribbonshot/archetypes"
	"github.com/automoto/ribbonshot/components"
	cfg "github.com/automoto/ribbonshot/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateCamera creates the orthographic 2D camera with bloom enabled.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Projection: components.ProjectionData{
			Scale:     cfg.Camera.Scale,
			MaxWidth:  cfg.Camera.MaxWidth,
			MaxHeight: cfg.Camera.MaxHeight,
			ViewportOrigin: dmath.Vec2{
				X: cfg.Camera.ViewportOrigin[0],
				Y: cfg.Camera.ViewportOrigin[1],
			},
		},
		Bloom: components.BloomData{
			Enabled:   cfg.Camera.Bloom.Enabled,
			Threshold: cfg.Camera.Bloom.Threshold,
			Intensity: cfg.Camera.Bloom.Intensity,
			Radius:    cfg.Camera.Bloom.Radius,
		},
		ScreenWidth:  float64(cfg.C.Width),
		ScreenHeight: float64(cfg.C.Height),
	})
	return camera
}
