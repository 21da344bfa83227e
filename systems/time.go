package systems

import (
	"math"

	"github.com/automoto/ribbonshot/components"
	cfg "github.com/automoto/ribbonshot/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTime advances the clock by one tick of the game loop and schedules this frame's
// fixed steps. Must run before any system wrapped with WithFixedTimestep.
func UpdateTime(ecs *ecs.ECS) {
	AdvanceTime(GetOrCreateTime(ecs), 1.0/float64(ebiten.TPS()))
}

// AdvanceTime adds dt seconds of frame time and computes how many fixed steps fit in the
// accumulated time. At most cfg.Time.MaxStepsPerFrame steps run; a larger backlog is dropped.
func AdvanceTime(t *components.TimeData, dt float64) {
	t.Delta = dt
	t.Elapsed += dt
	t.Frame++

	t.FixedSteps = 0
	if t.FixedDelta <= 0 {
		return
	}

	t.Accumulator += dt
	for t.Accumulator >= t.FixedDelta && t.FixedSteps < cfg.Time.MaxStepsPerFrame {
		t.Accumulator -= t.FixedDelta
		t.FixedSteps++
	}
	if t.Accumulator >= t.FixedDelta {
		t.Accumulator = math.Mod(t.Accumulator, t.FixedDelta)
	}
}

// WithFixedTimestep wraps a system to run once per fixed step scheduled this frame.
// Inside the system, TimeData.FixedDelta is the step duration.
func WithFixedTimestep(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		steps := GetOrCreateTime(e).FixedSteps
		for i := 0; i < steps; i++ {
			system(e)
		}
	}
}

// GetOrCreateTime returns the singleton Time component, creating if needed.
func GetOrCreateTime(ecs *ecs.ECS) *components.TimeData {
	if _, ok := components.Time.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Time))
		components.Time.SetValue(ent, components.TimeData{
			FixedDelta: cfg.Time.FixedTimestep,
		})
	}

	ent, _ := components.Time.First(ecs.World)
	return components.Time.Get(ent)
}
