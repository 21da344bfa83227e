package particles

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Particle is the simulated state of one particle.
type Particle struct {
	Position dmath.Vec2
	Velocity dmath.Vec2
	Age      float64
	Lifetime float64
	Size     float64
	RibbonID uint32
}

// NormalizedAge returns Age/Lifetime in [0, 1]. A zero lifetime counts as fully aged.
func (p *Particle) NormalizedAge() float64 {
	if p.Lifetime <= 0 {
		return 1
	}
	return clamp01(p.Age / p.Lifetime)
}

// Alive reports whether the particle has not reached its lifetime yet.
func (p *Particle) Alive() bool {
	return p.Age < p.Lifetime
}

// Instance simulates one emitter of an EffectAsset.
// Alive particles are kept in spawn order, oldest first.
type Instance struct {
	asset     *EffectAsset
	particles []Particle
	spawnAcc  float64
	origin    dmath.Vec2

	// Spawned and Dropped count particles emitted and particles refused for lack of capacity.
	Spawned uint64
	Dropped uint64
}

// NewInstance creates an idle instance of asset.
func NewInstance(asset *EffectAsset) *Instance {
	return &Instance{
		asset:     asset,
		particles: make([]Particle, 0, asset.Capacity),
	}
}

// Asset returns the effect this instance simulates.
func (in *Instance) Asset() *EffectAsset {
	return in.asset
}

// Origin returns the emitter position used on the last tick.
func (in *Instance) Origin() dmath.Vec2 {
	return in.origin
}

// Alive returns the number of live particles.
func (in *Instance) Alive() int {
	return len(in.particles)
}

// Particles returns the live particles, oldest first. The slice is reused between ticks.
func (in *Instance) Particles() []Particle {
	return in.particles
}

// Tick advances the simulation by dt seconds with the emitter at origin.
// Existing particles age (and move if motion integration is on) and expire first,
// then the spawner emits new ones up to the asset capacity.
func (in *Instance) Tick(dt float64, origin dmath.Vec2) {
	in.origin = origin
	if dt <= 0 {
		return
	}

	integrate := in.asset.MotionIntegration == MotionPostUpdate
	alive := in.particles[:0]
	for _, p := range in.particles {
		p.Age += dt
		if integrate {
			p.Position.X += p.Velocity.X * dt
			p.Position.Y += p.Velocity.Y * dt
		}
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	in.particles = alive

	in.spawnAcc += in.asset.Spawner.Rate * dt
	count := math.Floor(in.spawnAcc)
	in.spawnAcc -= count

	for i := 0; i < int(count); i++ {
		if uint32(len(in.particles)) >= in.asset.Capacity {
			in.Dropped++
			continue
		}
		p := in.asset.newParticle()
		if in.asset.SimulationSpace == SimulationGlobal {
			p.Position.X += origin.X
			p.Position.Y += origin.Y
		}
		in.particles = append(in.particles, p)
		in.Spawned++
	}
}

// WorldPosition returns where p is drawn, accounting for the simulation space.
func (in *Instance) WorldPosition(p *Particle) dmath.Vec2 {
	if in.asset.SimulationSpace == SimulationLocal {
		return dmath.Vec2{X: p.Position.X + in.origin.X, Y: p.Position.Y + in.origin.Y}
	}
	return p.Position
}
