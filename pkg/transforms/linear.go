package transforms

import "github.com/willbeason/fractals/pkg/complexops"

// Linear is z*Multiply + Add. A real Multiply scales about the origin.
type Linear struct {
	Multiply complexops.Value
	Add      complexops.Value
}

// ScaleAbout returns the map that scales by factor while holding center fixed.
func ScaleAbout(center complexops.Value, factor float64) Linear {
	return Linear{
		Multiply: complexops.New(factor, 0),
		Add:      center.Scale(1 - factor),
	}
}

func (l Linear) Next(z complexops.Value) complexops.Value {
	return z.Mul(l.Multiply).Add(l.Add)
}
