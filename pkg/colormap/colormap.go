// Package colormap turns normalized iteration outcomes into colors.
package colormap

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Stops is the number of entries in the palette.
const Stops = 8

// Palette holds eight stops sampled evenly from viridis, dark to light.
// Stop i sits at theta = i/8.
var Palette = [Stops]RGBA{
	mustHex("#440154"),
	mustHex("#46327e"),
	mustHex("#365c8d"),
	mustHex("#277f8e"),
	mustHex("#1fa187"),
	mustHex("#4ac16d"),
	mustHex("#a0da39"),
	mustHex("#fde725"),
}

func mustHex(s string) RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return FromColorful(c)
}

// Map colors the outcome k out of total.
func Map(k, total int) RGBA {
	return At(float64(k) / float64(total))
}

// At colors theta in [0, 1] by interpolating between the two palette stops
// around it. Theta is clamped first, and NaN is treated as 0.
func At(theta float64) RGBA {
	theta = clamp01(theta)

	x := theta * Stops
	left := math.Floor(x)
	right := math.Ceil(x)
	l, r := stopIndex(left), stopIndex(right)
	if left == right {
		return Palette[l]
	}

	// Stops are 1/8 apart, so the position between them is x - left.
	return lerp(Palette[l], Palette[r], x-left)
}

// stopIndex clamps a palette position to a valid index. Theta = 1 lands on
// position 8, one past the last stop.
func stopIndex(pos float64) int {
	i := int(pos)
	if i < 0 {
		return 0
	}
	if i > Stops-1 {
		return Stops - 1
	}
	return i
}

// Gray returns theta in [0, 1] as an opaque gray level. NaN is treated as 0.
func Gray(theta float64) RGBA {
	g := clamp01(theta)
	return Opaque(g, g, g)
}
