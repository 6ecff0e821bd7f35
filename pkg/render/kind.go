package render

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Kind selects the fractal family.
type Kind int

const (
	Newton Kind = iota
	Mandelbrot
	Julia
)

var kindNames = map[Kind]string{
	Newton:     "newton",
	Mandelbrot: "mandelbrot",
	Julia:      "julia",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts a family name in any letter case.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Set implements pflag.Value.
func (k *Kind) Set(s string) error {
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Type implements pflag.Value.
func (k *Kind) Type() string {
	return "kind"
}

// Mode selects how outcomes become colors.
type Mode int

const (
	// Colormap runs outcomes through the viridis palette.
	Colormap Mode = iota
	// Grayscale uses the normalized outcome as the gray level.
	Grayscale
)

func (m Mode) String() string {
	switch m {
	case Colormap:
		return "colormap"
	case Grayscale:
		return "gray"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	switch strings.ToLower(s) {
	case "colormap", "color":
		*m = Colormap
	case "gray", "grey", "grayscale":
		*m = Grayscale
	default:
		return fmt.Errorf("unknown color mode %q, want colormap or gray", s)
	}
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string {
	return "mode"
}

var (
	_ pflag.Value = (*Kind)(nil)
	_ pflag.Value = (*Mode)(nil)
)
