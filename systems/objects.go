package systems

import (
	"github.com/automoto/ribbonshot/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves each collision object onto its entity transform.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		if !e.HasComponent(components.Transform) {
			continue
		}
		obj := components.Object.Get(e)
		obj.X, obj.Y = components.SpacePosition(components.Transform.Get(e).Position, obj.W, obj.H)
		obj.Update()
	}
}
