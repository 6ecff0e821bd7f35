package transforms

import "github.com/willbeason/fractals/pkg/complexops"

// A Transform advances a point by one step of a recurrence.
type Transform interface {
	Next(complexops.Value) complexops.Value
}

var (
	_ Transform = Newton{}
	_ Transform = Julia{}
	_ Transform = Mandelbrot{}
	_ Transform = Linear{}
)
