package transforms

import "github.com/willbeason/fractals/pkg/complexops"

// JuliaRadius is the magnitude of the Julia constant; the configured angle
// only rotates it.
const JuliaRadius = 0.7885

// Julia is the quadratic map z^2 + C for a fixed C.
type Julia struct {
	C complexops.Value
}

// JuliaAngle returns the Julia map for C = JuliaRadius * e^(i*angle).
func JuliaAngle(angle float64) Julia {
	return Julia{C: complexops.Polar(JuliaRadius, angle)}
}

func (j Julia) Next(z complexops.Value) complexops.Value {
	return z.Mul(z).Add(j.C)
}
