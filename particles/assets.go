package particles

// Handle refers to an EffectAsset stored in Assets. The zero Handle refers to nothing.
type Handle struct {
	id uint32
}

// IsValid reports whether h was returned by Assets.Add.
func (h Handle) IsValid() bool {
	return h.id != 0
}

// Assets stores effect descriptions so entities can share one by handle.
type Assets struct {
	effects []*EffectAsset
}

// NewAssets creates an empty store.
func NewAssets() *Assets {
	return &Assets{}
}

// Add stores e and returns its handle.
func (a *Assets) Add(e *EffectAsset) Handle {
	a.effects = append(a.effects, e)
	return Handle{id: uint32(len(a.effects))}
}

// Get returns the asset behind h.
func (a *Assets) Get(h Handle) (*EffectAsset, bool) {
	if !h.IsValid() || int(h.id) > len(a.effects) {
		return nil, false
	}
	return a.effects[h.id-1], true
}

// Len returns the number of stored assets.
func (a *Assets) Len() int {
	return len(a.effects)
}
