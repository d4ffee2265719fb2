package contour

import (
	"errors"

	"github.com/katalvlaran/geocontour/core"
	"github.com/katalvlaran/geocontour/trace"
)

// ErrThresholds indicates an invalid threshold or level list.
var ErrThresholds = errors.New("contour: invalid thresholds")

// Band is the filled region between Lower (inclusive) and Upper (exclusive).
// Every ring in Polygons is closed.
type Band struct {
	Lower, Upper float64
	Polygons     []core.Polygon
	Stats        trace.Stats
}

// Line is the set of polylines where the field equals Level. A closed path
// repeats its first vertex at the end.
type Line struct {
	Level float64
	Paths [][]core.Point
}
