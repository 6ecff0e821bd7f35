package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/willbeason/fractals/pkg/render"
	"github.com/willbeason/fractals/pkg/viewport"
)

func juliaCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "julia [angle]",
		Short: "Julia set of z^2 + 0.7885e^(i*angle)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			angle := a.cfg.JuliaAngle
			if len(args) == 1 {
				var err error
				angle, err = strconv.ParseFloat(args[0], 64)
				if err != nil {
					return fmt.Errorf("parsing angle: %w", err)
				}
			}

			vp, err := a.cfg.ViewportFor(viewport.Default)
			if err != nil {
				return err
			}

			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			p := render.Params{
				Kind:       render.Julia,
				Iterations: a.cfg.Iterations,
				JuliaAngle: angle,
				Mode:       a.mode,
			}
			return a.session(cmd.Context(), p, vp)
		},
	}

	return cmd
}
