package cellshape

import (
	"fmt"

	"github.com/katalvlaran/geocontour/core"
	"github.com/katalvlaran/geocontour/interpolate"
)

// DedupEpsilon is the per-axis distance under which two candidate points of
// one cell are treated as the same point (the first one is kept).
const DedupEpsilon = 1e-9

// Params carries the interpolation settings used for every crossing of a cell.
type Params struct {
	// Smoothing is the centre-bias factor in [0,1].
	Smoothing float64
	// Method selects planar cosine or great-circle placement.
	Method core.Method
}

// DefaultParams returns Smoothing=0.999 and Method=core.Cosine.
func DefaultParams() Params {
	return Params{Smoothing: interpolate.DefaultSmoothing, Method: interpolate.DefaultMethod}
}

// Family is the topology class an isoband configuration code routes to.
type Family int

const (
	// Blank codes produce no edges (0, 170 and any value outside the catalog).
	Blank Family = iota
	// Triangle codes have one corner on a different side from the other three.
	Triangle
	// Pentagon codes cut one corner off an otherwise in-band cell.
	Pentagon
	// Rectangle codes split the cell with two parallel crossings.
	Rectangle
	// Trapezoid codes span both thresholds across two opposite sides.
	Trapezoid
	// Hexagon codes cut two adjacent-side corners.
	Hexagon
	// Saddle codes are ambiguous and resolved by the four-corner average.
	Saddle
	// Square is the all-in-band cell.
	Square
)

var familyNames = [...]string{"blank", "triangle", "pentagon", "rectangle", "trapezoid", "hexagon", "saddle", "square"}

func (f Family) String() string {
	if f < Blank || f > Square {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}
