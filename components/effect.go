package components

import (
	"github.com/automoto/ribbonshot/particles"
	"github.com/yohamta/donburi"
)

// ParticleEffectData attaches a running instance of an effect asset to an entity.
// The emitter sits at the entity transform. Instance is created on the first update.
type ParticleEffectData struct {
	Handle   particles.Handle
	Instance *particles.Instance
}

var ParticleEffect = donburi.NewComponentType[ParticleEffectData]()

// Effects is the singleton store of effect assets.
var Effects = donburi.NewComponentType[particles.Assets]()
