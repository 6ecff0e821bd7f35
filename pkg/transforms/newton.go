package transforms

import (
	"github.com/willbeason/fractals/pkg/complexops"
	"github.com/willbeason/fractals/pkg/polynomial"
)

// Newton is one Newton-Raphson step toward a root of the monic polynomial
// with the given roots.
type Newton struct {
	Roots polynomial.Roots
}

// Next returns z - p(z)/p'(z). A zero derivative makes the result non-finite.
func (n Newton) Next(z complexops.Value) complexops.Value {
	return z.Sub(n.Roots.Evaluate(z).Div(n.Roots.Derivative(z)))
}
