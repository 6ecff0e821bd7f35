package colormap

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Opaque returns the opaque color with the given red, green and blue.
func Opaque(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// FromColorful converts a go-colorful color to an opaque RGBA.
func FromColorful(c colorful.Color) RGBA {
	return Opaque(c.R, c.G, c.B)
}

// Colorful drops alpha and returns the go-colorful form of c.
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Lightness is the CIE L* of c, in [0, 1].
func (c RGBA) Lightness() float64 {
	l, _, _ := c.Colorful().Lab()
	return l
}

// RGBA64 converts c to 16 bits per channel, clamping out-of-range components.
func (c RGBA) RGBA64() color.RGBA64 {
	a := clamp01(c.A)
	return color.RGBA64{
		R: uint16(clamp01(c.R)*a*0xffff + 0.5),
		G: uint16(clamp01(c.G)*a*0xffff + 0.5),
		B: uint16(clamp01(c.B)*a*0xffff + 0.5),
		A: uint16(a*0xffff + 0.5),
	}
}

// NRGBA converts c to 8 bits per channel, clamping out-of-range components.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func lerp(a, b RGBA, t float64) RGBA {
	return RGBA{
		R: a.R + t*(b.R-a.R),
		G: a.G + t*(b.G-a.G),
		B: a.B + t*(b.B-a.B),
		A: a.A + t*(b.A-a.A),
	}
}

// clamp01 clamps x to [0, 1]; NaN becomes 0.
func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
