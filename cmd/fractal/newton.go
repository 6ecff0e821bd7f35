package main

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/willbeason/fractals/pkg/polynomial"
	"github.com/willbeason/fractals/pkg/render"
	"github.com/willbeason/fractals/pkg/roots"
	"github.com/willbeason/fractals/pkg/viewport"
)

var errRootCount = errors.New("number of roots must be greater than zero")

func newtonCmd(a *app) *cobra.Command {
	var unitCircle bool

	cmd := &cobra.Command{
		Use:   "newton [nroots]",
		Short: "Newton basins of a polynomial given by its roots",
		Long: `Color each point by the root Newton's method reaches from it.

Without nroots the polynomial is z^3 - 1. With nroots, that many roots are
placed at random inside the viewport (see --seed), or evenly on the unit
circle with --unit-circle.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vp, err := a.cfg.ViewportFor(viewport.Default)
			if err != nil {
				return err
			}

			rs, err := rootSet(args, unitCircle, a.cfg.Seed, vp)
			if err != nil {
				return err
			}

			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			p := render.Params{
				Kind:       render.Newton,
				Iterations: a.cfg.Iterations,
				Roots:      rs,
				Mode:       a.mode,
			}
			return a.session(cmd.Context(), p, vp)
		},
	}

	cmd.Flags().BoolVar(&unitCircle, "unit-circle", false, "place nroots evenly on the unit circle")

	return cmd
}

func rootSet(args []string, unitCircle bool, seed int64, vp viewport.Viewport) (polynomial.Roots, error) {
	if len(args) == 0 {
		return roots.CubeRootsOfUnity(), nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("parsing nroots: %w", err)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", errRootCount, n)
	}

	if unitCircle {
		return roots.UnitCircle(n), nil
	}
	return roots.Random(n, vp, rand.New(rand.NewSource(seed))), nil
}
