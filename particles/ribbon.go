package particles

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	dmath "github.com/yohamta/donburi/features/math"
)

// RibbonPoint is one particle as drawn: world position, strip width and straight-alpha color.
type RibbonPoint struct {
	Position dmath.Vec2
	Width    float64
	Color    [4]float32
}

// Ribbon appends to dst the points of every live particle with the given ribbon id,
// oldest first, after applying the asset's render modifiers.
func (in *Instance) Ribbon(id uint32, dst []RibbonPoint) []RibbonPoint {
	for i := range in.particles {
		p := &in.particles[i]
		if p.RibbonID != id {
			continue
		}
		pt := RibbonPoint{
			Position: in.WorldPosition(p),
			Width:    p.Size,
			Color:    [4]float32{1, 1, 1, 1},
		}
		for _, m := range in.asset.RenderModifiers {
			m.modify(p, &pt)
		}
		dst = append(dst, pt)
	}
	return dst
}

// Projector maps a world position to screen pixels and reports world units per pixel.
type Projector interface {
	WorldToScreen(p dmath.Vec2) (x, y float64)
	UnitsPerPixel() float64
}

// AppendRibbonMesh appends a triangle strip joining consecutive points to vs/is.
// Each point contributes two vertices offset by half its width along the strip normal.
// srcX/srcY is the texel sampled for every vertex (a white pixel).
func AppendRibbonMesh(vs []ebiten.Vertex, is []uint16, points []RibbonPoint, proj Projector, srcX, srcY float32) ([]ebiten.Vertex, []uint16) {
	if len(points) < 2 {
		return vs, is
	}
	upp := proj.UnitsPerPixel()
	if upp <= 0 {
		upp = 1
	}

	base := uint16(len(vs))
	for i := range points {
		x, y := proj.WorldToScreen(points[i].Position)

		// Tangent from the neighbours, falling back to one side at the ends.
		prev, next := i-1, i+1
		if prev < 0 {
			prev = i
		}
		if next >= len(points) {
			next = i
		}
		px, py := proj.WorldToScreen(points[prev].Position)
		nx, ny := proj.WorldToScreen(points[next].Position)
		tx, ty := nx-px, ny-py
		l := math.Hypot(tx, ty)
		var ox, oy float64
		if l > 0 {
			half := points[i].Width / upp / 2
			ox, oy = -ty/l*half, tx/l*half
		}

		c := points[i].Color
		vs = append(vs,
			ebiten.Vertex{
				DstX: float32(x + ox), DstY: float32(y + oy),
				SrcX: srcX, SrcY: srcY,
				ColorR: c[0], ColorG: c[1], ColorB: c[2], ColorA: c[3],
			},
			ebiten.Vertex{
				DstX: float32(x - ox), DstY: float32(y - oy),
				SrcX: srcX, SrcY: srcY,
				ColorR: c[0], ColorG: c[1], ColorB: c[2], ColorA: c[3],
			},
		)
	}

	for i := 0; i < len(points)-1; i++ {
		a := base + uint16(i*2)
		is = append(is, a, a+1, a+2, a+1, a+3, a+2)
	}
	return vs, is
}
