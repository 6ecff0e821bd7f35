package iteration

import (
	"fmt"

	"github.com/willbeason/fractals/pkg/complexops"
	"github.com/willbeason/fractals/pkg/transforms"
)

// Phase is the state of an escape-time orbit.
type Phase int

const (
	Iterating Phase = iota
	Escaped
	BudgetExhausted
)

func (p Phase) String() string {
	switch p {
	case Iterating:
		return "iterating"
	case Escaped:
		return "escaped"
	case BudgetExhausted:
		return "budget-exhausted"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is an escape-time orbit paused between steps.
type State struct {
	Phase Phase

	// Step is the index of the next step while Iterating, and the index of the
	// step that left the disk once Escaped.
	Step int

	Z complexops.Value
}

// Start returns the state of an orbit beginning at z.
func Start(z complexops.Value, budget int) State {
	if budget <= 0 {
		return State{Phase: BudgetExhausted, Z: z}
	}
	return State{Phase: Iterating, Z: z}
}

// Advance applies one step of t. Terminal states are returned unchanged.
func (s State) Advance(t transforms.Transform, budget int) State {
	if s.Phase != Iterating {
		return s
	}

	s.Z = t.Next(s.Z)
	if s.Z.Abs() > EscapeRadius {
		s.Phase = Escaped
		return s
	}

	s.Step++
	if s.Step >= budget {
		s.Phase = BudgetExhausted
	}
	return s
}

// Outcome is the remaining budget at escape, or 0 if the orbit never escaped.
func (s State) Outcome(budget int) int {
	if s.Phase == Escaped {
		return budget - s.Step
	}
	return 0
}

// Escape runs t from z until the orbit leaves the disk of EscapeRadius or the
// budget is spent.
//
// A NaN orbit never compares greater than the radius, so it runs out the
// budget.
func Escape(t transforms.Transform, z complexops.Value, budget int) State {
	s := Start(z, budget)
	for s.Phase == Iterating {
		s = s.Advance(t, budget)
	}
	return s
}
