package render

import (
	"github.com/willbeason/fractals/pkg/colormap"
	"github.com/willbeason/fractals/pkg/complexops"
	"github.com/willbeason/fractals/pkg/iteration"
	"github.com/willbeason/fractals/pkg/viewport"
)

// SamplePoint is where the center of pixel (px, py) lands in vp:
// u = (px + 0.5)/width and v = (py + 0.5)/height.
func SamplePoint(px, py, width, height int, vp viewport.Viewport) complexops.Value {
	u := (float64(px) + 0.5) / float64(width)
	v := (float64(py) + 0.5) / float64(height)
	return vp.Sample(u, v)
}

// Outcome runs the iteration for p.Kind from z. See package iteration for
// what the result means per kind.
func Outcome(z complexops.Value, p Params) int {
	switch p.Kind {
	case Newton:
		return iteration.Newton(z, p.Roots, p.Iterations)
	case Mandelbrot:
		return iteration.Mandelbrot(z, p.Iterations)
	case Julia:
		return iteration.Julia(z, p.JuliaAngle, p.Iterations)
	default:
		return 0
	}
}

// Shade colors outcome k of p according to p.Mode.
func Shade(k int, p Params) colormap.RGBA {
	if p.Mode == Grayscale {
		return colormap.Gray(float64(k) / float64(p.Steps()))
	}
	return colormap.Map(k, p.Steps())
}

// Pixel evaluates one pixel of a width x height frame. It reads nothing but
// its arguments, so pixels can be evaluated in any order or concurrently.
func Pixel(px, py, width, height int, p Params, vp viewport.Viewport) colormap.RGBA {
	return Shade(Outcome(SamplePoint(px, py, width, height, vp), p), p)
}
