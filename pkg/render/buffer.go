package render

import (
	"image"

	"github.com/willbeason/fractals/pkg/colormap"
)

// Buffer is a rendered frame. Row 0 holds the samples nearest YMin.
type Buffer struct {
	Width, Height int
	Pix           []colormap.RGBA
}

// NewBuffer allocates a width x height buffer.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]colormap.RGBA, width*height),
	}
}

// At returns the color at column x of row y.
func (b *Buffer) At(x, y int) colormap.RGBA {
	return b.Pix[y*b.Width+x]
}

// Row returns the colors of row y. The slice aliases the buffer.
func (b *Buffer) Row(y int) []colormap.RGBA {
	return b.Pix[y*b.Width : (y+1)*b.Width]
}

// Image converts the buffer to 16-bit color with YMax on the top row, the
// orientation image files are viewed in.
func (b *Buffer) Image() *image.RGBA64 {
	img := image.NewRGBA64(image.Rect(0, 0, b.Width, b.Height))
	b.DrawTo(img)
	return img
}

// DrawTo writes the buffer into img the way Image does. img must have the
// buffer's dimensions with its origin at (0, 0).
func (b *Buffer) DrawTo(img *image.RGBA64) {
	for y := 0; y < b.Height; y++ {
		dy := b.Height - 1 - y
		for x, c := range b.Row(y) {
			img.SetRGBA64(x, dy, c.RGBA64())
		}
	}
}
