package render

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/willbeason/fractals/pkg/logging"
	"github.com/willbeason/fractals/pkg/polynomial"
)

var (
	ErrUnknownKind        = errors.New("unknown fractal kind")
	ErrNegativeIterations = errors.New("negative iteration budget")
	ErrNoRoots            = errors.New("newton fractal needs at least one root")
	ErrUnexpectedRoots    = errors.New("only newton fractals take roots")
	ErrEmptyImage         = errors.New("image has no pixels")
)

// Params are the fractal-specific inputs of one frame. They are read by every
// pixel concurrently and must not change while a frame renders.
type Params struct {
	Kind Kind

	// Iterations is the budget of steps per pixel.
	Iterations int

	// JuliaAngle rotates the Julia constant, in radians. Only Julia uses it.
	JuliaAngle float64

	// Roots define the Newton polynomial. Only Newton uses them.
	Roots polynomial.Roots

	Mode Mode
}

// Validate checks the invariants between the fields of p.
func (p Params) Validate() error {
	if p.Iterations < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeIterations, p.Iterations)
	}

	switch p.Kind {
	case Newton:
		if len(p.Roots) == 0 {
			return ErrNoRoots
		}
		if len(p.Roots) > polynomial.MaxRoots {
			logging.Logger().Warn("large root set will render slowly",
				zap.Int("roots", len(p.Roots)), zap.Int("soft_limit", polynomial.MaxRoots))
		}
	case Mandelbrot, Julia:
		if len(p.Roots) != 0 {
			return fmt.Errorf("%w: %v has %d roots", ErrUnexpectedRoots, p.Kind, len(p.Roots))
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownKind, p.Kind)
	}

	switch p.Mode {
	case Colormap, Grayscale:
	default:
		return fmt.Errorf("unknown color mode %v", p.Mode)
	}

	return nil
}

// Steps is the denominator that normalizes an outcome to [0, 1]: the root
// count for Newton, the iteration budget otherwise.
func (p Params) Steps() int {
	if p.Kind == Newton {
		return len(p.Roots)
	}
	return p.Iterations
}

// StepIterations adjusts an iteration budget by delta, never going below 0.
func StepIterations(n, delta int) int {
	n += delta
	if n < 0 {
		return 0
	}
	return n
}
