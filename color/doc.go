// Package color converts between hex color strings and RGB components and
// derives lighter or darker shades.
//
//	rgb, _ := color.HexToRGB("#f53") // → {R:255 G:85 B:51}
//	color.RGBToHex(255, 87, 51)      // → "#ff5733"
//	color.Lighten("#808080", 0.5)    // → "#c0c0c0"
//
// These helpers sit in rendering paths, so invalid input never fails:
// conversions report ok=false and the shade helpers pass invalid hex
// through unchanged.
package color
