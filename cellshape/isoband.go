package cellshape

import (
	"math"

	"github.com/katalvlaran/geocontour/core"
	"github.com/katalvlaran/geocontour/interpolate"
)

// bandCell holds the inputs of one isoband classification.
type bandCell struct {
	c            core.Corners
	lower, upper float64
	p            Params
}

func (k *bandCell) cross(level float64, s core.Side) core.Point {
	return interpolate.OnSide(s, level, k.c, k.p.Smoothing, k.p.Method)
}

func (k *bandCell) corner(id cornerID) core.GridPoint {
	switch id {
	case cornerTL:
		return k.c.TL
	case cornerTR:
		return k.c.TR
	case cornerBR:
		return k.c.BR
	default:
		return k.c.BL
	}
}

func (k *bandCell) resolve(v vertex) core.Point {
	switch v.kind {
	case atLower:
		return k.cross(k.lower, v.side)
	case atUpper:
		return k.cross(k.upper, v.side)
	default:
		return k.corner(v.corner).Pos()
	}
}

// blankSide reports whether both corners of s sit on the same outer side of
// the band, so the side carries no boundary at all.
func (k *bandCell) blankSide(s core.Side) bool {
	a, b := interpolate.SideCorners(s, k.c)
	return (a.Value >= k.upper && b.Value >= k.upper) || (a.Value < k.lower && b.Value < k.lower)
}

// candidate is the point on side s nearest corner id: the crossing of the
// threshold the corner lies beyond, or the corner itself when it is in band.
func (k *bandCell) candidate(s core.Side, id cornerID) core.Point {
	g := k.corner(id)
	switch {
	case g.Value >= k.upper:
		return k.cross(k.upper, s)
	case g.Value < k.lower:
		return k.cross(k.lower, s)
	default:
		return g.Pos()
	}
}

// candidateOrder walks the cell clockwise starting on the top side next to TR.
var candidateOrder = [8]struct {
	side   core.Side
	corner cornerID
}{
	{core.Top, cornerTR},
	{core.Right, cornerTR},
	{core.Right, cornerBR},
	{core.Bottom, cornerBR},
	{core.Bottom, cornerBL},
	{core.Left, cornerBL},
	{core.Left, cornerTL},
	{core.Top, cornerTL},
}

// candidates returns up to eight boundary points in clockwise order, skipping
// blank sides, non-finite points and near-duplicates of earlier points.
func (k *bandCell) candidates() []core.Point {
	var blank [4]bool
	for s := core.Top; s <= core.Left; s++ {
		blank[s] = k.blankSide(s)
	}
	pts := make([]core.Point, 0, len(candidateOrder))
	for _, o := range candidateOrder {
		if blank[o.side] {
			continue
		}
		p := k.candidate(o.side, o.corner)
		if !finite(p) || nearAny(pts, p) {
			continue
		}
		pts = append(pts, p)
	}
	return pts
}

func nearAny(pts []core.Point, p core.Point) bool {
	for _, q := range pts {
		if math.Abs(q.X-p.X) < DedupEpsilon && math.Abs(q.Y-p.Y) < DedupEpsilon {
			return true
		}
	}
	return false
}

func finite(p core.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func finiteEdge(e core.Edge) bool {
	return finite(e.Start) && finite(e.End)
}

// Isoband classifies one cell against the band [lower, upper) and returns its
// directed boundary edges, or nil when the cell contributes none.
//
// Boundary flags mark cell sides on the grid border: edges running along such
// a side are emitted, and moves that would leave the grid become MoveNone.
// Codes outside the catalog (reachable when a corner sits exactly on a
// threshold in a way no family covers) are blank, not errors.
// Complexity: O(1).
func Isoband(c core.Corners, lower, upper float64, p Params, b core.Boundary) *core.CellShape {
	code := IsobandCode(c, lower, upper)
	if code == CodeAllBelow || code == CodeAllAbove {
		return nil
	}
	sh := catalog[code]
	if sh == nil {
		return nil
	}

	k := bandCell{c: c, lower: lower, upper: upper, p: p}
	var edges []core.Edge
	if sh.split != nil {
		for _, st := range sh.split.pick(c.Average(), lower, upper) {
			pts := make([]core.Point, len(st.verts))
			for i, v := range st.verts {
				pts[i] = k.resolve(v)
			}
			edges = connect(edges, pts, st.steps, b)
		}
	} else {
		pts := k.candidates()
		if len(pts) < sh.need {
			return nil
		}
		edges = connect(edges, pts, sh.steps, b)
	}

	return shapeOf(edges)
}

// shapeOf drops non-finite edges and wraps the rest, or returns nil.
func shapeOf(edges []core.Edge) *core.CellShape {
	kept := edges[:0]
	for _, e := range edges {
		if finiteEdge(e) {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return core.NewCellShape(kept)
}
