package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB holds one color channel triple. Channel values are in [0, 255] when
// produced by this package; [RGBToHex] clamps anything outside.
type RGB struct {
	R, G, B int
}

// HexToRGB parses a 3- or 6-digit hex color, with or without a leading #.
// Returns ok=false for anything else.
//
//	HexToRGB("#f53")    // → {255 85 51}, true
//	HexToRGB("ff5733")  // → {255 87 51}, true
func HexToRGB(hex string) (RGB, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return RGB{}, false
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{
		R: int(n >> 16 & 0xff),
		G: int(n >> 8 & 0xff),
		B: int(n & 0xff),
	}, true
}

// RGBToHex encodes the channels as a 6-digit lowercase hex color with a
// leading #. Channels are clamped to [0, 255].
//
//	RGBToHex(255, 87, 51)  // → "#ff5733"
//	RGBToHex(300, -10, 0)  // → "#ff0000"
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clamp(r), clamp(g), clamp(b))
}

func clamp(c int) int {
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return c
}

// Lighten moves each channel of the hex color toward 255 by amount∈[0,1].
// Invalid hex is returned unchanged; amount is clamped.
//
//	Lighten("#808080", 0.5) // → "#c0c0c0"
func Lighten(hex string, amount float64) string {
	return shade(hex, amount, func(c int, f float64) float64 {
		return float64(c) + (255-float64(c))*f
	})
}

// Darken moves each channel of the hex color toward 0 by amount∈[0,1].
// Invalid hex is returned unchanged; amount is clamped.
//
//	Darken("#808080", 0.5) // → "#404040"
func Darken(hex string, amount float64) string {
	return shade(hex, amount, func(c int, f float64) float64 {
		return float64(c) * (1 - f)
	})
}

func shade(hex string, amount float64, blend func(int, float64) float64) string {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return hex
	}
	if amount < 0 {
		amount = 0
	} else if amount > 1 {
		amount = 1
	}
	return RGBToHex(
		int(math.Round(blend(rgb.R, amount))),
		int(math.Round(blend(rgb.G, amount))),
		int(math.Round(blend(rgb.B, amount))),
	)
}
