package polygon

import "github.com/katalvlaran/geocontour/core"

// PointInRing reports whether p lies inside r by ray casting. r may be open
// or closed; points exactly on an edge may test either way.
// Complexity: O(len(r)).
func PointInRing(p core.Point, r core.Ring) bool {
	inside := false
	n := len(r)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := r[i], r[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// RingInside reports whether every vertex of inner lies inside outer.
// An empty inner ring is never inside.
func RingInside(inner, outer core.Ring) bool {
	if len(inner) == 0 || len(outer) < 3 {
		return false
	}
	for _, p := range inner {
		if !PointInRing(p, outer) {
			return false
		}
	}
	return true
}

// Organize nests rings into polygons. Input order decides ties only; every
// output hole lies inside its exterior and outside its sibling holes.
func Organize(rings []core.Ring) []core.Polygon {
	var result []core.Polygon
	pending := make([]core.Ring, 0, len(rings))
	for _, r := range rings {
		if len(r) >= 3 {
			pending = append(pending, r)
		}
	}

	for len(pending) > 0 {
		r := pending[0]
		pending = pending[1:]

		handled := false
		for i := range result {
			if !RingInside(r, result[i].Exterior) || insideAny(r, result[i].Holes) {
				continue
			}
			// Holes already inside r are islands within it, not siblings.
			var islands []core.Ring
			result[i].Holes, islands = split(result[i].Holes, r)
			result[i].Holes = append(result[i].Holes, r)
			pending = append(pending, islands...)
			handled = true
			break
		}

		kept := result[:0]
		for _, pg := range result {
			if RingInside(pg.Exterior, r) {
				pending = append(pending, pg.Exterior)
				pending = append(pending, pg.Holes...)
				continue
			}
			kept = append(kept, pg)
		}
		result = kept

		if !handled {
			result = append(result, core.Polygon{Exterior: r})
		}
	}

	return result
}

// split partitions holes into those outside r and those inside it.
func split(holes []core.Ring, r core.Ring) (outside, inside []core.Ring) {
	for _, h := range holes {
		if RingInside(h, r) {
			inside = append(inside, h)
		} else {
			outside = append(outside, h)
		}
	}
	return outside, inside
}

func insideAny(r core.Ring, holes []core.Ring) bool {
	for _, h := range holes {
		if RingInside(r, h) {
			return true
		}
	}
	return false
}

// Area returns the signed shoelace area of r: positive when counter-clockwise
// in an x-right, y-up frame.
func Area(r core.Ring) float64 {
	n := len(r)
	if n < 3 {
		return 0
	}
	var s float64
	for i := 0; i < n; i++ {
		a, b := r[i], r[(i+1)%n]
		s += a.X*b.Y - b.X*a.Y
	}
	return s / 2
}

// Orient returns a copy of p with a counter-clockwise exterior and clockwise
// holes.
func Orient(p core.Polygon) core.Polygon {
	out := core.Polygon{Exterior: oriented(p.Exterior, true)}
	if len(p.Holes) > 0 {
		out.Holes = make([]core.Ring, len(p.Holes))
		for i, h := range p.Holes {
			out.Holes[i] = oriented(h, false)
		}
	}
	return out
}

func oriented(r core.Ring, ccw bool) core.Ring {
	out := make(core.Ring, len(r))
	copy(out, r)
	if a := Area(out); a != 0 && (a > 0) != ccw {
		reverse(out)
	}
	return out
}

func reverse(r core.Ring) {
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
}
