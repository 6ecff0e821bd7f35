// Package roots builds root sets for Newton fractals.
//
// Root sets are chosen once per session by the caller and handed to the
// renderer; nothing here is called while a frame is being evaluated.
package roots

import (
	"math"
	"math/rand"

	"github.com/willbeason/fractals/pkg/complexops"
	"github.com/willbeason/fractals/pkg/polynomial"
	"github.com/willbeason/fractals/pkg/viewport"
)

// CubeRootsOfUnity returns the roots of z^3 - 1 rounded to five decimals.
func CubeRootsOfUnity() polynomial.Roots {
	return polynomial.Roots{
		complexops.New(1, 0),
		complexops.New(-0.5, -0.86603),
		complexops.New(-0.5, 0.86603),
	}
}

// UnitCircle returns the n roots of z^n - 1, counter-clockwise from 1.
func UnitCircle(n int) polynomial.Roots {
	rs := make(polynomial.Roots, n)
	for k := range rs {
		rs[k] = complexops.Polar(1, 2*math.Pi*float64(k)/float64(n))
	}
	return rs
}

// Random places n roots uniformly inside vp.
// The same rng state always yields the same roots.
func Random(n int, vp viewport.Viewport, rng *rand.Rand) polynomial.Roots {
	rs := make(polynomial.Roots, n)
	for k := range rs {
		u := rng.Float64()
		v := rng.Float64()
		rs[k] = vp.Sample(u, v)
	}
	return rs
}
