// Package polynomial evaluates monic polynomials given only their roots.
package polynomial

import "github.com/willbeason/fractals/pkg/complexops"

// MaxRoots is a soft upper bound on the number of roots.
// Evaluation is quadratic in the root count, so larger sets work but slow every
// pixel down; nothing enforces the bound.
const MaxRoots = 128

// Roots is the ordered root set of a monic polynomial.
// The order matters: Nearest reports indices into it.
type Roots []complexops.Value

// Evaluate returns p(z) = (z - r0)(z - r1)...(z - rn-1).
// An empty root set is a precondition violation.
func (rs Roots) Evaluate(z complexops.Value) complexops.Value {
	p := z.Sub(rs[0])
	for _, r := range rs[1:] {
		p = p.Mul(z.Sub(r))
	}
	return p
}

// Derivative returns p'(z) as the product-rule sum over i of the product of
// (z - rj) for all j != i.
func (rs Roots) Derivative(z complexops.Value) complexops.Value {
	var sum complexops.Value
	for i := range rs {
		term := complexops.New(1, 0)
		for j, r := range rs {
			if j == i {
				continue
			}
			term = term.Mul(z.Sub(r))
		}
		sum = sum.Add(term)
	}
	return sum
}

// Nearest returns the index of the root closest to z.
//
// Ties go to the lowest index. If z is not finite every comparison fails and
// the result is 0.
func (rs Roots) Nearest(z complexops.Value) int {
	best := 0
	bestDist := z.Sub(rs[0]).Abs()
	for i := 1; i < len(rs); i++ {
		if d := z.Sub(rs[i]).Abs(); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
