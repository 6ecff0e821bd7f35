// Package export writes rendered frames to image files.
package export

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/willbeason/fractals/pkg/logging"
	"github.com/willbeason/fractals/pkg/render"
)

// Exporter numbers and writes frames. It keeps its frame counter and scratch
// images between calls, so each session should own its own Exporter.
// An Exporter is not safe for concurrent use.
type Exporter struct {
	// Dir is created on the first export if missing.
	Dir string

	// Prefix starts every file name, followed by the 3-digit frame number.
	Prefix string

	Format Format

	// Downsample shrinks frames by this factor before encoding, to turn a
	// supersampled render into the final resolution. Values below 2 keep the
	// rendered size.
	Downsample int

	frame   int
	full    *image.RGBA64
	reduced *image.RGBA64
}

// NewExporter returns an Exporter writing into dir.
func NewExporter(dir, prefix string, format Format) *Exporter {
	return &Exporter{Dir: dir, Prefix: prefix, Format: format}
}

// Frame is the number the next exported file will carry.
func (e *Exporter) Frame() int {
	return e.frame
}

// Next is the path the next Export will write.
func (e *Exporter) Next() string {
	name := fmt.Sprintf("%s%03d%s", e.Prefix, e.frame, e.Format.Ext())
	return filepath.Join(e.Dir, name)
}

// Export writes buf to the next numbered file and returns its path.
// A non-empty caption is drawn in the lower left corner.
func (e *Exporter) Export(buf *render.Buffer, caption string) (string, error) {
	if err := os.MkdirAll(e.Dir, os.ModePerm); err != nil {
		return "", err
	}

	path := e.Next()
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	err = e.Write(f, buf, caption)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	e.frame++
	logging.Logger().Info("wrote image",
		zap.String("path", path),
		zap.Int("width", buf.Width),
		zap.Int("height", buf.Height))

	return path, nil
}

// Write encodes buf to w without touching the frame counter.
func (e *Exporter) Write(w io.Writer, buf *render.Buffer, caption string) error {
	img := e.Image(buf)
	if caption != "" {
		Caption(img, caption)
	}
	return e.Format.Encode(w, img)
}

// Image returns buf as an upright image, downsampled if configured.
// The result is reused by the next call.
func (e *Exporter) Image(buf *render.Buffer) *image.RGBA64 {
	e.full = reuse(e.full, buf.Width, buf.Height)
	buf.DrawTo(e.full)

	if e.Downsample < 2 {
		return e.full
	}

	w := max(buf.Width/e.Downsample, 1)
	h := max(buf.Height/e.Downsample, 1)
	e.reduced = reuse(e.reduced, w, h)
	draw.CatmullRom.Scale(e.reduced, e.reduced.Bounds(), e.full, e.full.Bounds(), draw.Src, nil)
	return e.reduced
}

func reuse(img *image.RGBA64, w, h int) *image.RGBA64 {
	if img != nil && img.Rect.Dx() == w && img.Rect.Dy() == h {
		return img
	}
	return image.NewRGBA64(image.Rect(0, 0, w, h))
}

// Caption draws text in white along the bottom left of img.
func Caption(img draw.Image, text string) {
	face := basicfont.Face7x13
	b := img.Bounds()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(b.Min.X+4, b.Max.Y-face.Descent-2),
	}
	d.DrawString(text)
}
