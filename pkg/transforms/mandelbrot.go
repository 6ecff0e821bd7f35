package transforms

import "github.com/willbeason/fractals/pkg/complexops"

// Mandelbrot is z^2 + C where C is the sample point itself.
type Mandelbrot struct {
	C complexops.Value
}

func (m Mandelbrot) Next(z complexops.Value) complexops.Value {
	return z.Mul(z).Add(m.C)
}
