// Package particles is a small declarative particle-effect runtime. An EffectAsset describes how
// particles are spawned, initialised and rendered; an Instance simulates one emitter of an asset.
package particles

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Attribute identifies a per-particle value that an init modifier can set.
type Attribute int

const (
	AttrPosition Attribute = iota
	AttrVelocity
	AttrAge
	AttrLifetime
	AttrSize
	AttrRibbonID
)

func (a Attribute) String() string {
	switch a {
	case AttrPosition:
		return "position"
	case AttrVelocity:
		return "velocity"
	case AttrAge:
		return "age"
	case AttrLifetime:
		return "lifetime"
	case AttrSize:
		return "size"
	case AttrRibbonID:
		return "ribbon_id"
	}
	return "unknown"
}

// SimulationSpace controls whether particles stay where they were emitted (Global)
// or move with the emitter (Local).
type SimulationSpace int

const (
	SimulationGlobal SimulationSpace = iota
	SimulationLocal
)

// MotionIntegration controls whether particle velocity is applied each tick.
type MotionIntegration int

const (
	MotionNone MotionIntegration = iota
	MotionPostUpdate
)

// Spawner emits particles continuously at Rate particles per second.
type Spawner struct {
	Rate float64
}

// RateSpawner returns a continuous spawner.
func RateSpawner(rate float64) Spawner {
	return Spawner{Rate: rate}
}

// SetAttribute is an init modifier assigning a fixed value to one attribute of every new particle.
// Scalar attributes read Scalar, vector attributes read Vector.
type SetAttribute struct {
	Attribute Attribute
	Scalar    float64
	Vector    dmath.Vec2
}

// SetScalar builds an init modifier for a scalar attribute.
func SetScalar(attr Attribute, v float64) SetAttribute {
	return SetAttribute{Attribute: attr, Scalar: v}
}

// SetVector builds an init modifier for a vector attribute.
func SetVector(attr Attribute, v dmath.Vec2) SetAttribute {
	return SetAttribute{Attribute: attr, Vector: v}
}

func (m SetAttribute) apply(p *Particle) {
	switch m.Attribute {
	case AttrPosition:
		p.Position = m.Vector
	case AttrVelocity:
		p.Velocity = m.Vector
	case AttrAge:
		p.Age = m.Scalar
	case AttrLifetime:
		p.Lifetime = m.Scalar
	case AttrSize:
		p.Size = m.Scalar
	case AttrRibbonID:
		p.RibbonID = uint32(m.Scalar)
	}
}

// RenderModifier adjusts how a particle is drawn without touching its simulated state.
type RenderModifier interface {
	modify(p *Particle, v *RibbonPoint)
}

// SizeOverLifetime scales the particle size by a gradient sampled at the normalized age.
type SizeOverLifetime struct {
	Gradient ScalarGradient
}

func (m SizeOverLifetime) modify(p *Particle, v *RibbonPoint) {
	v.Width *= m.Gradient.Sample(p.NormalizedAge())
}

// ColorOverLifetime replaces the particle color with a gradient sampled at the normalized age.
type ColorOverLifetime struct {
	Gradient ColorGradient
}

func (m ColorOverLifetime) modify(p *Particle, v *RibbonPoint) {
	v.Color = m.Gradient.Sample(p.NormalizedAge())
}

// EffectAsset is the immutable description of a particle effect.
type EffectAsset struct {
	Name              string
	Capacity          uint32
	Spawner           Spawner
	SimulationSpace   SimulationSpace
	MotionIntegration MotionIntegration
	InitModifiers     []SetAttribute
	RenderModifiers   []RenderModifier
}

// NewEffectAsset creates an effect holding at most capacity particles alive at once.
func NewEffectAsset(capacity uint32, spawner Spawner) *EffectAsset {
	return &EffectAsset{
		Capacity:          capacity,
		Spawner:           spawner,
		SimulationSpace:   SimulationGlobal,
		MotionIntegration: MotionPostUpdate,
	}
}

func (e *EffectAsset) WithName(name string) *EffectAsset {
	e.Name = name
	return e
}

func (e *EffectAsset) WithSimulationSpace(s SimulationSpace) *EffectAsset {
	e.SimulationSpace = s
	return e
}

func (e *EffectAsset) WithMotionIntegration(m MotionIntegration) *EffectAsset {
	e.MotionIntegration = m
	return e
}

// Init appends an init modifier. Later modifiers win over earlier ones for the same attribute.
func (e *EffectAsset) Init(m SetAttribute) *EffectAsset {
	e.InitModifiers = append(e.InitModifiers, m)
	return e
}

// Render appends a render modifier, applied in insertion order.
func (e *EffectAsset) Render(m RenderModifier) *EffectAsset {
	e.RenderModifiers = append(e.RenderModifiers, m)
	return e
}

// InitValue returns the init modifier set for attr, if any.
func (e *EffectAsset) InitValue(attr Attribute) (SetAttribute, bool) {
	for i := len(e.InitModifiers) - 1; i >= 0; i-- {
		if e.InitModifiers[i].Attribute == attr {
			return e.InitModifiers[i], true
		}
	}
	return SetAttribute{}, false
}

func (e *EffectAsset) newParticle() Particle {
	p := Particle{}
	for _, m := range e.InitModifiers {
		m.apply(&p)
	}
	return p
}
