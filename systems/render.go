package systems

import (
	"image"
	"image/color"

	"github.com/automoto/ribbonshot/components"
	"github.com/automoto/ribbonshot/particles"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Ribbons are drawn as vertex-colored triangles sampling a white texel. The 1px border keeps
// linear filtering from bleeding transparent pixels into the edges.
var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image

	ribbonPoints   []particles.RibbonPoint
	ribbonVertices []ebiten.Vertex
	ribbonIndices  []uint16
	ribbonOp       = &ebiten.DrawTrianglesOptions{}
)

// Flush before the uint16 index space runs out.
const maxRibbonVertices = 60000

// DrawMeshes renders entities with a Mesh component as filled circles.
func DrawMeshes(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	upp := camera.UnitsPerPixel()

	components.Mesh.Each(ecs.World, func(e *donburi.Entry) {
		mesh := components.Mesh.Get(e)
		tr := components.Transform.Get(e)
		x, y := camera.WorldToScreen(tr.Position)
		r := mesh.Radius * tr.Scale / upp
		vector.FillCircle(screen, float32(x), float32(y), float32(r), mesh.Color, true)
	})
}

// DrawParticleEffects renders every effect instance as ribbon strips.
func DrawParticleEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	src := getWhiteSubImage()

	ribbonVertices = ribbonVertices[:0]
	ribbonIndices = ribbonIndices[:0]

	components.ParticleEffect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.ParticleEffect.Get(e)
		if fx.Instance == nil {
			return
		}
		// The bullet ribbon only uses id 0.
		ribbonPoints = fx.Instance.Ribbon(0, ribbonPoints[:0])
		ribbonVertices, ribbonIndices = particles.AppendRibbonMesh(ribbonVertices, ribbonIndices, ribbonPoints, camera, 1, 1)

		if len(ribbonVertices) >= maxRibbonVertices {
			screen.DrawTriangles(ribbonVertices, ribbonIndices, src, ribbonOp)
			ribbonVertices = ribbonVertices[:0]
			ribbonIndices = ribbonIndices[:0]
		}
	})

	if len(ribbonIndices) > 0 {
		screen.DrawTriangles(ribbonVertices, ribbonIndices, src, ribbonOp)
	}
}

func getWhiteSubImage() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}
