package graphics

import "image/color"

// Color is an 8-bit, non-premultiplied RGBA color used to paint cards.
// It implements [color.Color].
type Color struct {
	R, G, B, A uint8
}

// White is the default label color.
var White = RGB(0xFF, 0xFF, 0xFF)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// NRGBA returns c as an image/color value, for pixel comparisons.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA(c)
}

// RGBA implements [color.Color].
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA(c).RGBA()
}
