package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an image file encoding.
type Format int

const (
	PNG Format = iota
	BMP
	TIFF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext is the file extension for f, including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// Encode writes img to w.
func (f Format) Encode(w io.Writer, img image.Image) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported format %v", f)
	}
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	switch strings.ToLower(s) {
	case "png":
		*f = PNG
	case "bmp":
		*f = BMP
	case "tif", "tiff":
		*f = TIFF
	default:
		return fmt.Errorf("unknown image format %q, want png, bmp or tiff", s)
	}
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

var _ pflag.Value = (*Format)(nil)
