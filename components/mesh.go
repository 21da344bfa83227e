package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// MeshData is a filled circle drawn at the entity transform. The drawn radius is
// Radius * Transform.Scale world units.
type MeshData struct {
	Radius float64
	Color  color.RGBA
}

var Mesh = donburi.NewComponentType[MeshData]()
