package color_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-handy-utils/color"
)

func TestHexToRGB(t *testing.T) {
	rgb, ok := color.HexToRGB("#f53")
	require.True(t, ok)
	assert.Equal(t, color.RGB{R: 255, G: 85, B: 51}, rgb)

	rgb, ok = color.HexToRGB("ff5733")
	require.True(t, ok)
	assert.Equal(t, color.RGB{R: 255, G: 87, B: 51}, rgb)

	rgb, ok = color.HexToRGB("#000000")
	require.True(t, ok)
	assert.Equal(t, color.RGB{}, rgb)

	for _, bad := range []string{"", "#ff573", "#gg0000", "not a color"} {
		_, ok := color.HexToRGB(bad)
		assert.False(t, ok, "HexToRGB(%q)", bad)
	}
}

func TestRGBToHex(t *testing.T) {
	assert.Equal(t, "#ff5733", color.RGBToHex(255, 87, 51))
	assert.Equal(t, "#000000", color.RGBToHex(0, 0, 0))
	// out-of-range channels are clamped
	assert.Equal(t, "#ff0000", color.RGBToHex(300, -10, 0))
}

func TestHexRGBRoundTrip(t *testing.T) {
	for _, hex := range []string{"#ff5733", "#00ff00", "#123abc"} {
		rgb, ok := color.HexToRGB(hex)
		require.True(t, ok)
		assert.Equal(t, hex, color.RGBToHex(rgb.R, rgb.G, rgb.B))
	}
}

func TestLighten(t *testing.T) {
	assert.Equal(t, "#c0c0c0", color.Lighten("#808080", 0.5))
	assert.Equal(t, "#ffffff", color.Lighten("#123456", 1))
	assert.Equal(t, "#808080", color.Lighten("#808080", 0))
	// amount clamped into [0,1]
	assert.Equal(t, "#ffffff", color.Lighten("#808080", 5))
}

func TestDarken(t *testing.T) {
	assert.Equal(t, "#404040", color.Darken("#808080", 0.5))
	assert.Equal(t, "#000000", color.Darken("#123456", 1))
	assert.Equal(t, "#808080", color.Darken("#808080", 0))
}

func TestShadeInvalidInputPassesThrough(t *testing.T) {
	assert.Equal(t, "oops", color.Lighten("oops", 0.3))
	assert.Equal(t, "#12", color.Darken("#12", 0.3))
}
