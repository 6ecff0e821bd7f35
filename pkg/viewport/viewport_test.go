package viewport

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/willbeason/fractals/pkg/complexops"
)

var testViewports = []Viewport{
	Default,
	MandelbrotDefault,
	SeahorseValley,
	SpiralMinibrot,
	{XMin: 0.1, XMax: 0.3, YMin: -1e-9, YMax: 7.7},
	{XMin: -1234.5678, XMax: 0.0001, YMin: 1.1, YMax: 1.3},
}

func TestSample_Corners(t *testing.T) {
	for _, vp := range testViewports {
		if got, want := vp.Sample(0, 0), complexops.New(vp.XMin, vp.YMin); got != want {
			t.Errorf("%v.Sample(0, 0) = %v, want %v", vp, got, want)
		}
		if got, want := vp.Sample(1, 1), complexops.New(vp.XMax, vp.YMax); got != want {
			t.Errorf("%v.Sample(1, 1) = %v, want %v", vp, got, want)
		}
		if got, want := vp.Sample(1, 0), complexops.New(vp.XMax, vp.YMin); got != want {
			t.Errorf("%v.Sample(1, 0) = %v, want %v", vp, got, want)
		}
	}
}

func TestSample_Interior(t *testing.T) {
	got := MandelbrotDefault.Sample(0.5, 0.25)
	want := complexops.New(-0.5, -0.75)
	if got != want {
		t.Errorf("Sample(0.5, 0.25) = %v, want %v", got, want)
	}
}

func TestSample_Extrapolates(t *testing.T) {
	got := Default.Sample(-0.5, 1.5)
	want := complexops.New(-2, 2)
	if got != want {
		t.Errorf("Sample(-0.5, 1.5) = %v, want %v", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		vp      Viewport
		wantErr bool
	}{
		{"default", Default, false},
		{"mandelbrot", MandelbrotDefault, false},
		{"flat x", Viewport{XMin: 1, XMax: 1, YMin: 0, YMax: 1}, true},
		{"inverted y", Viewport{XMin: 0, XMax: 1, YMin: 1, YMax: 0}, true},
		{"NaN", Viewport{XMin: math.NaN(), XMax: 1, YMin: 0, YMax: 1}, true},
		{"Inf", Viewport{XMin: 0, XMax: math.Inf(1), YMin: 0, YMax: 1}, true},
		{"zero value", Viewport{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.vp.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrDegenerateViewport) {
				t.Errorf("Validate() error = %v, want ErrDegenerateViewport", err)
			}
		})
	}
}

func TestPan(t *testing.T) {
	got := Default.Pan(0.25, -0.5)
	want := Viewport{XMin: -0.5, XMax: 1.5, YMin: -2, YMax: 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Pan() mismatch (-want +got):\n%s", diff)
	}
}

func TestStretch(t *testing.T) {
	got := Default.Stretch(0.5, -0.25)
	want := Viewport{XMin: -1.5, XMax: 1.5, YMin: -0.75, YMax: 0.75}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Stretch() mismatch (-want +got):\n%s", diff)
	}

	if err := Default.Stretch(-1, 0).Validate(); err == nil {
		t.Error("Stretch(-1, 0).Validate() = nil, want error")
	}
}

func TestZoom(t *testing.T) {
	got := MandelbrotDefault.Zoom(complexops.New(-0.5, 0), 0.5)
	want := Viewport{XMin: -1.25, XMax: 0.25, YMin: -0.75, YMax: 0.75}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-15)); diff != "" {
		t.Errorf("Zoom() mismatch (-want +got):\n%s", diff)
	}

	if center := got.Center(); center != complexops.New(-0.5, 0) {
		t.Errorf("Zoom().Center() = %v, want (-0.5, 0)", center)
	}
}

func TestRegion(t *testing.T) {
	vp, err := Region("seahorse")
	if err != nil {
		t.Fatalf("Region(seahorse) error = %v", err)
	}
	if vp != SeahorseValley {
		t.Errorf("Region(seahorse) = %v, want %v", vp, SeahorseValley)
	}

	if _, err := Region("nowhere"); err == nil {
		t.Error("Region(nowhere) error = nil, want error")
	}

	for _, name := range RegionNames() {
		vp, err := Region(name)
		if err != nil {
			t.Fatalf("Region(%q) error = %v", name, err)
		}
		if err := vp.Validate(); err != nil {
			t.Errorf("Region(%q).Validate() = %v", name, err)
		}
	}
}
