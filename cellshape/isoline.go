package cellshape

import (
	"github.com/katalvlaran/geocontour/core"
	"github.com/katalvlaran/geocontour/interpolate"
)

// Segment joins the crossings on two sides of one cell.
type Segment [2]core.Side

// isolineTable maps every unambiguous 4-bit code to its single segment.
// A code and its complement cross the same two sides.
var isolineTable = [16][]Segment{
	1:  {{core.Left, core.Bottom}},
	2:  {{core.Bottom, core.Right}},
	3:  {{core.Left, core.Right}},
	4:  {{core.Right, core.Top}},
	6:  {{core.Top, core.Bottom}},
	7:  {{core.Top, core.Left}},
	8:  {{core.Top, core.Left}},
	9:  {{core.Top, core.Bottom}},
	11: {{core.Right, core.Top}},
	12: {{core.Left, core.Right}},
	13: {{core.Bottom, core.Right}},
	14: {{core.Left, core.Bottom}},
}

// Saddle pairings. When the centre is at/above level the two high corners
// connect through it and the segments cut off the low corners.
var (
	saddle5Joined  = []Segment{{core.Left, core.Top}, {core.Bottom, core.Right}}
	saddle5Split   = []Segment{{core.Left, core.Bottom}, {core.Right, core.Top}}
	saddle10Joined = []Segment{{core.Top, core.Right}, {core.Bottom, core.Left}}
	saddle10Split  = []Segment{{core.Top, core.Left}, {core.Bottom, core.Right}}
)

// IsolineSegments returns the side pairs crossed by level in a cell, or nil
// for blank codes 0 and 15.
func IsolineSegments(c core.Corners, level float64) []Segment {
	switch code := IsolineCode(c, level); code {
	case 5:
		if c.Average() >= level {
			return saddle5Joined
		}
		return saddle5Split
	case 10:
		if c.Average() >= level {
			return saddle10Joined
		}
		return saddle10Split
	default:
		return isolineTable[code]
	}
}

// Isoline classifies one cell against level and returns one edge per crossing
// segment (two for saddles), or nil when the level does not cross the cell.
// Segments are undirected: every edge carries MoveNone and the caller joins
// them by shared endpoints.
// Complexity: O(1).
func Isoline(c core.Corners, level float64, p Params) *core.CellShape {
	segs := IsolineSegments(c, level)
	if len(segs) == 0 {
		return nil
	}
	edges := make([]core.Edge, 0, len(segs))
	for _, s := range segs {
		edges = append(edges, core.Edge{
			Start: interpolate.OnSide(s[0], level, c, p.Smoothing, p.Method),
			End:   interpolate.OnSide(s[1], level, c, p.Smoothing, p.Method),
			Move:  core.MoveNone,
		})
	}
	return shapeOf(edges)
}

// Classify dispatches on the number of thresholds: one level selects the
// isoline path, a (lower, upper) pair the isoband path. Any other count
// yields nil.
func Classify(c core.Corners, thresholds []float64, p Params, b core.Boundary) *core.CellShape {
	switch len(thresholds) {
	case 1:
		return Isoline(c, thresholds[0], p)
	case 2:
		return Isoband(c, thresholds[0], thresholds[1], p, b)
	default:
		return nil
	}
}
