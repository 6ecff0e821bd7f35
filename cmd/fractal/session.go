package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/willbeason/fractals/pkg/export"
	"github.com/willbeason/fractals/pkg/logging"
	"github.com/willbeason/fractals/pkg/render"
	"github.com/willbeason/fractals/pkg/viewport"
)

// session renders the configured number of frames, zooming about the center
// of the first viewport between frames, and writes each one.
func (a *app) session(ctx context.Context, p render.Params, vp viewport.Viewport) error {
	r := render.NewRenderer(a.cfg.Workers)
	defer r.Close()

	e := export.NewExporter(a.cfg.Out, a.cfg.Prefix, a.format)
	e.Downsample = a.cfg.Supersample

	size := a.cfg.Size * a.cfg.Supersample
	center := vp.Center()

	log := logging.Logger()
	log.Debug("starting session",
		zap.Stringer("kind", p.Kind),
		zap.Int("roots", len(p.Roots)),
		zap.Int("frames", a.cfg.Frames),
		zap.Int("render_size", size),
		zap.Int("workers", r.Workers()))

	for frame := 0; frame < a.cfg.Frames; frame++ {
		buf, err := r.Render(ctx, size, size, p, vp)
		if err != nil {
			return err
		}

		if _, err := e.Export(buf, a.caption(p)); err != nil {
			return err
		}

		vp = vp.Zoom(center, a.cfg.Zoom)
	}

	return nil
}

func (a *app) caption(p render.Params) string {
	if !a.cfg.Caption {
		return ""
	}
	if p.Kind == render.Newton {
		return fmt.Sprintf("%v roots=%d iters=%d", p.Kind, len(p.Roots), p.Iterations)
	}
	return fmt.Sprintf("%v iters=%d", p.Kind, p.Iterations)
}
