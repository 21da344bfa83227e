package systems

import (
	"github.com/automoto/ribbonshot/components"
	"github.com/automoto/ribbonshot/particles"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticleEffects ticks every effect instance by the frame delta with its emitter at the
// entity transform. Instances are created from the effect store on first use.
func UpdateParticleEffects(ecs *ecs.ECS) {
	store := getEffects(ecs)
	dt := GetOrCreateTime(ecs).Delta

	components.ParticleEffect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.ParticleEffect.Get(e)
		if fx.Instance == nil {
			if store == nil {
				return
			}
			asset, ok := store.Get(fx.Handle)
			if !ok {
				return
			}
			fx.Instance = particles.NewInstance(asset)
		}

		tr := components.Transform.Get(e)
		fx.Instance.Tick(dt, tr.Position)
	})
}

// CountParticles returns the number of live particles across all effects.
func CountParticles(ecs *ecs.ECS) int {
	n := 0
	components.ParticleEffect.Each(ecs.World, func(e *donburi.Entry) {
		if fx := components.ParticleEffect.Get(e); fx.Instance != nil {
			n += fx.Instance.Alive()
		}
	})
	return n
}

func getEffects(ecs *ecs.ECS) *particles.Assets {
	entry, ok := components.Effects.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Effects.Get(entry)
}
