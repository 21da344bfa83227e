package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// BloomShader extracts and blurs bright pixels for the camera bloom pass
	BloomShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error

	bloomSrc, err := shaderFS.ReadFile("shaders/bloom.kage")
	if err != nil {
		return err
	}
	BloomShader, err = ebiten.NewShader(bloomSrc)
	if err != nil {
		return err
	}

	return nil
}
