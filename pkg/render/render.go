// Package render evaluates whole fractal frames.
//
// Every pixel is an independent pure function of the frame parameters (see
// Pixel), so a frame comes out identical whether its rows are evaluated on one
// goroutine or many.
package render

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/willbeason/fractals/pkg/logging"
	"github.com/willbeason/fractals/pkg/parallel"
	"github.com/willbeason/fractals/pkg/viewport"
)

const tracerName = "github.com/willbeason/fractals/pkg/render"

// Render evaluates a width x height frame on the calling goroutine.
// Inputs are not validated; see Renderer.Render.
func Render(width, height int, p Params, vp viewport.Viewport) *Buffer {
	buf := NewBuffer(width, height)
	for py := 0; py < height; py++ {
		renderRow(buf, py, p, vp)
	}
	return buf
}

func renderRow(buf *Buffer, py int, p Params, vp viewport.Viewport) {
	row := buf.Row(py)
	for px := range row {
		row[px] = Pixel(px, py, buf.Width, buf.Height, p, vp)
	}
}

// An Executor evaluates rows of a frame.
type Executor interface {
	// Run calls fn once for every row in [0, rows).
	Run(rows int, fn func(row int))
	Workers() int
}

// Serial evaluates rows one after another on the calling goroutine.
type Serial struct{}

func (Serial) Run(rows int, fn func(row int)) {
	for y := 0; y < rows; y++ {
		fn(y)
	}
}

func (Serial) Workers() int { return 1 }

var (
	_ Executor = Serial{}
	_ Executor = (*parallel.Pool)(nil)
)

// Renderer validates frame parameters and evaluates frames on an Executor.
type Renderer struct {
	exec  Executor
	close func()
}

// NewRenderer returns a Renderer with the given number of workers. One worker
// renders on the calling goroutine; zero or fewer means GOMAXPROCS.
func NewRenderer(workers int) *Renderer {
	if workers == 1 {
		return &Renderer{exec: Serial{}, close: func() {}}
	}
	pool := parallel.NewPool(workers)
	return &Renderer{exec: pool, close: pool.Close}
}

// NewRendererWith returns a Renderer running on exec. The caller owns exec.
func NewRendererWith(exec Executor) *Renderer {
	return &Renderer{exec: exec, close: func() {}}
}

// Workers is the number of goroutines evaluating rows.
func (r *Renderer) Workers() int {
	return r.exec.Workers()
}

// Close releases the workers started by NewRenderer.
func (r *Renderer) Close() {
	r.close()
}

// Render validates its inputs and evaluates a width x height frame.
//
// Rows not yet started when ctx is cancelled are skipped and ctx.Err() is
// returned. The output does not depend on the number of workers.
func (r *Renderer) Render(ctx context.Context, width, height int, p Params, vp viewport.Viewport) (*Buffer, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "render")
	defer span.End()
	span.SetAttributes(
		attribute.String("fractal.kind", p.Kind.String()),
		attribute.Int("fractal.iterations", p.Iterations),
		attribute.Int("image.width", width),
		attribute.Int("image.height", height),
		attribute.Int("render.workers", r.exec.Workers()),
	)

	if err := validate(width, height, p, vp); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	start := time.Now()
	buf := NewBuffer(width, height)
	r.exec.Run(height, func(py int) {
		if ctx.Err() != nil {
			return
		}
		renderRow(buf, py, p, vp)
	})

	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	logging.Logger().Debug("rendered frame",
		zap.Stringer("kind", p.Kind),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("iterations", p.Iterations),
		zap.Stringer("viewport", vp),
		zap.Int("workers", r.exec.Workers()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return buf, nil
}

func validate(width, height int, p Params, vp viewport.Viewport) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyImage, width, height)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	if err := vp.Validate(); err != nil {
		return fmt.Errorf("invalid viewport: %w", err)
	}
	return nil
}
