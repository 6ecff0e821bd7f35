package main

import (
	"github.com/spf13/cobra"

	"github.com/willbeason/fractals/pkg/render"
	"github.com/willbeason/fractals/pkg/viewport"
)

func mandelbrotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "The Mandelbrot set",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			vp, err := a.cfg.ViewportFor(viewport.MandelbrotDefault)
			if err != nil {
				return err
			}

			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			p := render.Params{
				Kind:       render.Mandelbrot,
				Iterations: a.cfg.Iterations,
				Mode:       a.mode,
			}
			return a.session(cmd.Context(), p, vp)
		},
	}

	return cmd
}
