package components

import (
	"math"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// TransformData places an entity in world space. World space is Y-up with the origin at the
// camera center; Rotation is counter-clockwise in radians.
type TransformData struct {
	Position dmath.Vec2
	Rotation float64
	Scale    float64
}

// Up returns the unit vector the entity faces: +Y rotated by Rotation.
func (t *TransformData) Up() dmath.Vec2 {
	sin, cos := math.Sincos(t.Rotation)
	return dmath.Vec2{X: -sin, Y: cos}
}

// FromTranslation returns an unrotated, unscaled transform at pos.
func FromTranslation(pos dmath.Vec2) TransformData {
	return TransformData{Position: pos, Scale: 1}
}

var Transform = donburi.NewComponentType[TransformData](TransformData{Scale: 1})
