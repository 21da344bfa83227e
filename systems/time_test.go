package systems

import (
	"testing"

	"github.com/automoto/ribbonshot/components"
	cfg "github.com/automoto/ribbonshot/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func TestAdvanceTime(t *testing.T) {
	step := cfg.Time.FixedTimestep

	tests := []struct {
		name      string
		frames    []float64
		wantSteps int
		wantAcc   float64
	}{
		{"less than a step", []float64{step / 2}, 0, step / 2},
		{"exactly one step", []float64{step}, 1, 0},
		{"carries remainder", []float64{step * 0.75, step * 0.75}, 1, step / 2},
		{"several steps", []float64{step * 3}, 3, 0},
		{"backlog is capped", []float64{step * 100}, cfg.Time.MaxStepsPerFrame, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			td := &components.TimeData{FixedDelta: step}
			for _, dt := range tt.frames {
				AdvanceTime(td, dt)
			}
			assert.Equal(t, tt.wantSteps, td.FixedSteps)
			assert.InDelta(t, tt.wantAcc, td.Accumulator, 1e-12)
			assert.Less(t, td.Accumulator, step)
			assert.EqualValues(t, len(tt.frames), td.Frame)
		})
	}
}

func TestAdvanceTimeTracksDelta(t *testing.T) {
	td := &components.TimeData{FixedDelta: cfg.Time.FixedTimestep}
	AdvanceTime(td, 0.5)
	AdvanceTime(td, 0.25)

	assert.Equal(t, 0.25, td.Delta)
	assert.Equal(t, 0.75, td.Elapsed)
}

func TestAdvanceTimeWithoutFixedDelta(t *testing.T) {
	td := &components.TimeData{}
	AdvanceTime(td, 1)
	assert.Zero(t, td.FixedSteps)
	assert.Zero(t, td.Accumulator)
}

func TestWithFixedTimestep(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	calls := 0
	system := WithFixedTimestep(func(*ecs.ECS) { calls++ })

	GetOrCreateTime(e).FixedSteps = 3
	system(e)
	assert.Equal(t, 3, calls)

	GetOrCreateTime(e).FixedSteps = 0
	system(e)
	assert.Equal(t, 3, calls)
}

func TestGetOrCreateTimeIsSingleton(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	a := GetOrCreateTime(e)
	b := GetOrCreateTime(e)

	assert.Same(t, a, b)
	assert.Equal(t, cfg.Time.FixedTimestep, a.FixedDelta)
	assert.Equal(t, 1, donburi.NewQuery(filter.Contains(components.Time)).Count(e.World))
}
