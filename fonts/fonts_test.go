package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	assert.Greater(t, Title.Get().Metrics().Height.Ceil(), Regular.Get().Metrics().Height.Ceil())
	assert.Greater(t, Regular.Get().Metrics().Height.Ceil(), Small.Get().Metrics().Height.Ceil())
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 10)
	assert.Error(t, err)
	assert.Panics(t, func() { FontName("broken").Get() })
}

func TestMissingFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("nope").Get() })
}
