// Package viewport maps normalized image coordinates onto a rectangle of the
// complex plane.
package viewport

import (
	"errors"
	"fmt"
	"math"

	"github.com/willbeason/fractals/pkg/complexops"
	"github.com/willbeason/fractals/pkg/transforms"
)

var ErrDegenerateViewport = errors.New("degenerate viewport")

// Viewport is the region of the complex plane mapped onto an image.
// Viewports are values: every method returns a new one.
type Viewport struct {
	XMin float64 `mapstructure:"xmin"`
	XMax float64 `mapstructure:"xmax"`
	YMin float64 `mapstructure:"ymin"`
	YMax float64 `mapstructure:"ymax"`
}

// Validate requires finite bounds with XMax > XMin and YMax > YMin.
func (vp Viewport) Validate() error {
	for _, b := range []float64{vp.XMin, vp.XMax, vp.YMin, vp.YMax} {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("%w: non-finite bound in %v", ErrDegenerateViewport, vp)
		}
	}
	if !(vp.XMax > vp.XMin) {
		return fmt.Errorf("%w: xmax %g <= xmin %g", ErrDegenerateViewport, vp.XMax, vp.XMin)
	}
	if !(vp.YMax > vp.YMin) {
		return fmt.Errorf("%w: ymax %g <= ymin %g", ErrDegenerateViewport, vp.YMax, vp.YMin)
	}
	return nil
}

// Sample maps (u, v) in [0,1]^2 to the point u of the way from XMin to XMax
// and v of the way from YMin to YMax.
//
// The corners map exactly: (0,0) is (XMin, YMin) and (1,1) is (XMax, YMax).
// Coordinates outside [0,1] extrapolate linearly.
func (vp Viewport) Sample(u, v float64) complexops.Value {
	return complexops.New(lerp(vp.XMin, vp.XMax, u), lerp(vp.YMin, vp.YMax, v))
}

// lerp weighs both endpoints so that t = 0 and t = 1 reproduce them bit for bit,
// which min + t*(max-min) does not when max-min rounds.
func lerp(lo, hi, t float64) float64 {
	return (1-t)*lo + t*hi
}

// Width is the extent along the real axis.
func (vp Viewport) Width() float64 {
	return vp.XMax - vp.XMin
}

// Height is the extent along the imaginary axis.
func (vp Viewport) Height() float64 {
	return vp.YMax - vp.YMin
}

// Center is the midpoint of the rectangle.
func (vp Viewport) Center() complexops.Value {
	return vp.Sample(0.5, 0.5)
}

// Pan moves the viewport by (dx, dy) in units of its own width and height.
func (vp Viewport) Pan(dx, dy float64) Viewport {
	ox := dx * vp.Width()
	oy := dy * vp.Height()
	return Viewport{
		XMin: vp.XMin + ox,
		XMax: vp.XMax + ox,
		YMin: vp.YMin + oy,
		YMax: vp.YMax + oy,
	}
}

// Stretch grows each axis symmetrically by dx and dy on both sides.
// Negative values shrink it; shrinking past zero width yields a viewport that
// fails Validate.
func (vp Viewport) Stretch(dx, dy float64) Viewport {
	return Viewport{
		XMin: vp.XMin - dx,
		XMax: vp.XMax + dx,
		YMin: vp.YMin - dy,
		YMax: vp.YMax + dy,
	}
}

// Zoom scales the viewport by factor about center. A factor below 1 zooms in.
func (vp Viewport) Zoom(center complexops.Value, factor float64) Viewport {
	l := transforms.ScaleAbout(center, factor)
	lo := l.Next(complexops.New(vp.XMin, vp.YMin))
	hi := l.Next(complexops.New(vp.XMax, vp.YMax))
	return Viewport{XMin: lo.Re, XMax: hi.Re, YMin: lo.Im, YMax: hi.Im}
}

func (vp Viewport) String() string {
	return fmt.Sprintf("[%g, %g]x[%g, %g]", vp.XMin, vp.XMax, vp.YMin, vp.YMax)
}
