package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultFonts(t *testing.T) {
	require.NoError(t, LoadDefaultFonts(20))

	for _, name := range []FontName{Regular, HUD, Title} {
		assert.True(t, Loaded(name), name)
		assert.NotNil(t, name.Get())
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 12)
	assert.Error(t, err)
	assert.False(t, Loaded("broken"))
}

func TestGetMissingFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
