package interpolate

import (
	"math"

	"github.com/katalvlaran/geocontour/core"
)

const (
	// DefaultSmoothing is the centre-bias factor applied to the cosine fraction.
	DefaultSmoothing = 0.999

	// DefaultMethod is the interpolation method used when none is configured.
	DefaultMethod = core.Cosine

	// DegenerateEpsilon bounds |v1-v0| below which the midpoint is returned,
	// and the arc length below which great-circle falls back to a linear blend.
	DegenerateEpsilon = 1e-10
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)
