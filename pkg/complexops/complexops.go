// Package complexops implements the complex arithmetic used by the fractal
// iterations.
//
// Go's complex128 division rescales its operands to avoid overflow, which
// changes the low bits of the result and hides a zero divisor. Value uses the
// textbook formulas instead, so a zero divisor yields NaN or Inf that
// propagates through the rest of the iteration.
package complexops

import "math"

// Value is a complex number with double-precision components.
type Value struct {
	Re, Im float64
}

// New returns re + im*i.
func New(re, im float64) Value {
	return Value{Re: re, Im: im}
}

// FromComplex converts a complex128.
func FromComplex(z complex128) Value {
	return Value{Re: real(z), Im: imag(z)}
}

// Complex converts v to a complex128.
func (v Value) Complex() complex128 {
	return complex(v.Re, v.Im)
}

func (v Value) Add(w Value) Value {
	return Value{Re: v.Re + w.Re, Im: v.Im + w.Im}
}

func (v Value) Sub(w Value) Value {
	return Value{Re: v.Re - w.Re, Im: v.Im - w.Im}
}

func (v Value) Mul(w Value) Value {
	return Value{
		Re: v.Re*w.Re - v.Im*w.Im,
		Im: v.Re*w.Im + v.Im*w.Re,
	}
}

// Div returns v / w.
//
// Division by exactly (0, 0) is not an error: the result has non-finite
// components.
func (v Value) Div(w Value) Value {
	d := w.Re*w.Re + w.Im*w.Im
	return Value{
		Re: (v.Re*w.Re + v.Im*w.Im) / d,
		Im: (v.Im*w.Re - v.Re*w.Im) / d,
	}
}

// Abs is the Euclidean magnitude of v.
func (v Value) Abs() float64 {
	return math.Sqrt(v.Re*v.Re + v.Im*v.Im)
}

// Exp returns e^v = e^Re * (cos Im, sin Im).
func (v Value) Exp() Value {
	r := math.Exp(v.Re)
	return Value{Re: r * math.Cos(v.Im), Im: r * math.Sin(v.Im)}
}

// Polar returns r * e^(i*theta).
func Polar(r, theta float64) Value {
	return Value{Re: 0, Im: theta}.Exp().Scale(r)
}

// Scale multiplies both components by s.
func (v Value) Scale(s float64) Value {
	return Value{Re: v.Re * s, Im: v.Im * s}
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Value) IsFinite() bool {
	return !math.IsNaN(v.Re) && !math.IsNaN(v.Im) && !math.IsInf(v.Re, 0) && !math.IsInf(v.Im, 0)
}
