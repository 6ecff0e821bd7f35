package viewport

import (
	"fmt"
	"sort"
)

var (
	// Default frames the unit square around the origin, where the Newton roots
	// and the Julia set live.
	Default = Viewport{XMin: -1, XMax: 1, YMin: -1, YMax: 1}

	// MandelbrotDefault frames the whole Mandelbrot set.
	MandelbrotDefault = Viewport{XMin: -2, XMax: 1, YMin: -1.5, YMax: 1.5}

	// Seahorse Valley: dense filaments and repeating curls.
	SeahorseValley = Viewport{XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15}

	// Elephant Valley: large bulb with trunk-like tendrils.
	ElephantValley = Viewport{XMin: 0.25, XMax: 0.35, YMin: -0.05, YMax: 0.05}

	// Spiral minibrot: a small copy of the set with tight spiral arms.
	SpiralMinibrot = Viewport{XMin: -0.7435, XMax: -0.7420, YMin: 0.1310, YMax: 0.1325}

	// Triple spiral: threefold symmetric spiral structure.
	TripleSpiral = Viewport{XMin: -0.7480, XMax: -0.7450, YMin: 0.0950, YMax: 0.0980}
)

var regions = map[string]Viewport{
	"default":    Default,
	"mandelbrot": MandelbrotDefault,
	"seahorse":   SeahorseValley,
	"elephant":   ElephantValley,
	"minibrot":   SpiralMinibrot,
	"triple":     TripleSpiral,
}

// Region looks up a named viewport.
func Region(name string) (Viewport, error) {
	vp, ok := regions[name]
	if !ok {
		return Viewport{}, fmt.Errorf("unknown region %q, want one of %v", name, RegionNames())
	}
	return vp, nil
}

// RegionNames lists the named viewports in sorted order.
func RegionNames() []string {
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
