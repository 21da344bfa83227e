package systems

import (
	"github.com/automoto/ribbonshot/assets"
	"github.com/automoto/ribbonshot/components"
	"github.com/hajimehoshi/ebiten/v2"
)

var bloomOp = &ebiten.DrawRectShaderOptions{}

// ApplyBloom copies scene onto dst, then adds the blurred highlights of scene on top.
func ApplyBloom(dst, scene *ebiten.Image, bloom components.BloomData) {
	dst.DrawImage(scene, nil)
	if !bloom.Enabled || assets.BloomShader == nil {
		return
	}

	bloomOp.Images[0] = scene
	bloomOp.Uniforms = map[string]any{
		"Threshold": bloom.Threshold,
		"Intensity": bloom.Intensity,
		"Radius":    bloom.Radius,
	}
	bloomOp.Blend = ebiten.BlendLighter

	w, h := scene.Bounds().Dx(), scene.Bounds().Dy()
	dst.DrawRectShader(w, h, assets.BloomShader, bloomOp)
}
