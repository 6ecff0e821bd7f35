// Package iteration runs the per-sample fractal iterations and reports their
// outcomes.
//
// Newton basins run a fixed number of Newton-Raphson steps and report the
// nearest root. Mandelbrot and Julia sets report how much of the iteration
// budget remained when the orbit escaped the radius-2 disk, or 0 if it never
// did.
package iteration

import (
	"github.com/willbeason/fractals/pkg/complexops"
	"github.com/willbeason/fractals/pkg/polynomial"
	"github.com/willbeason/fractals/pkg/transforms"
)

// EscapeRadius bounds the orbits of the quadratic maps.
const EscapeRadius = 2.0

// Newton runs exactly budget Newton steps from z and returns the index of the
// root nearest the final point.
//
// No convergence test stops the loop early. If the derivative vanishes along
// the way the point becomes NaN or Inf, stays that way, and the result is 0
// since every distance comparison against NaN fails.
func Newton(z complexops.Value, roots polynomial.Roots, budget int) int {
	step := transforms.Newton{Roots: roots}
	for i := 0; i < budget; i++ {
		z = step.Next(z)
	}
	return roots.Nearest(z)
}

// Mandelbrot iterates z^2 + c from z = c.
func Mandelbrot(c complexops.Value, budget int) int {
	return Escape(transforms.Mandelbrot{C: c}, c, budget).Outcome(budget)
}

// Julia iterates z^2 + 0.7885*e^(i*angle) from z.
func Julia(z complexops.Value, angle float64, budget int) int {
	return Escape(transforms.JuliaAngle(angle), z, budget).Outcome(budget)
}
