package systems

import (
	"github.com/automoto/ribbonshot/components"
	cfg "github.com/automoto/ribbonshot/config"
	"github.com/automoto/ribbonshot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateDebug toggles the collider overlay.
func UpdateDebug(ecs *ecs.ECS) {
	debug := GetOrCreateDebug(ecs)
	if GetAction(getOrCreateInput(ecs), cfg.ActionDebug).JustPressed {
		debug.ShowColliders = !debug.ShowColliders
	}
}

// DrawDebug outlines every object in the collision space.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(ecs).ShowColliders {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	upp := camera.UnitsPerPixel()
	halfW := float64(cfg.Physics.SpaceWidth) / 2
	halfH := float64(cfg.Physics.SpaceHeight) / 2
	for _, obj := range space.Objects() {
		// Space top-left back to the world-space top-left corner.
		x, y := camera.WorldToScreen(dmath.Vec2{X: obj.X - halfW, Y: halfH - obj.Y})

		c := cfg.Debug.ColliderColor
		if obj.HasTags(tags.ResolvShooter) {
			c = cfg.Debug.ShooterColor
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W/upp), float32(obj.H/upp), 1, c, false)
	}
}

// GetOrCreateDebug returns the singleton Debug component, creating if needed.
func GetOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	if _, ok := components.Debug.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Debug))
		components.Debug.SetValue(ent, components.DebugData{
			ShowColliders: cfg.Debug.ShowColliders,
		})
	}

	ent, _ := components.Debug.First(ecs.World)
	return components.Debug.Get(ent)
}
