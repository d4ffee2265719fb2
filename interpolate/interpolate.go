package interpolate

import (
	"math"

	"github.com/katalvlaran/geocontour/core"
)

// Interpolate places the point where the field crosses level between corner
// p0 (value v0) and corner p1 (value v1).
//
// The fraction mu=(level-v0)/(v1-v0) is smoothed with a cosine term and
// pulled toward the centre by smoothing: newMu = 0.5 + (mu2-0.5)*smoothing,
// where mu2 = (1-cos(mu*pi))/2. Cosine blends p0 and p1 linearly by newMu;
// GreatCircle moves newMu of the way along the great circle from p0 to p1.
//
// When |v1-v0| < DegenerateEpsilon the midpoint of p0 and p1 is returned.
// The function is pure: identical inputs always produce bit-identical output.
// Complexity: O(1).
func Interpolate(level, v0, v1 float64, p0, p1 core.Point, smoothing float64, m core.Method) core.Point {
	if math.Abs(v1-v0) < DegenerateEpsilon {
		return midpoint(p0, p1)
	}
	mu := (level - v0) / (v1 - v0)
	mu2 := (1 - math.Cos(mu*math.Pi)) / 2
	newMu := 0.5 + (mu2-0.5)*smoothing

	if m == core.GreatCircle {
		return greatCircle(p0, p1, newMu)
	}
	return lerp(p0, p1, newMu)
}

// OnSide interpolates level along one side of cell c.
//
// Operand order is fixed per side (Top tl→tr, Right tr→br, Bottom bl→br,
// Left tl→bl), so the two cells sharing a side compute the same crossing
// from the same operands and get bit-identical points.
func OnSide(side core.Side, level float64, c core.Corners, smoothing float64, m core.Method) core.Point {
	a, b := SideCorners(side, c)
	return Interpolate(level, a.Value, b.Value, a.Pos(), b.Pos(), smoothing, m)
}

// SideCorners returns the ordered corner pair that spans side.
func SideCorners(side core.Side, c core.Corners) (core.GridPoint, core.GridPoint) {
	switch side {
	case core.Top:
		return c.TL, c.TR
	case core.Right:
		return c.TR, c.BR
	case core.Bottom:
		return c.BL, c.BR
	default:
		return c.TL, c.BL
	}
}

// Pair is one interpolation job for Batch4.
type Pair struct {
	Level  float64
	V0, V1 float64
	P0, P1 core.Point
}

// Batch4 interpolates four independent pairs. Each result is bit-identical
// to the corresponding scalar Interpolate call.
func Batch4(pairs [4]Pair, smoothing float64, m core.Method) [4]core.Point {
	var out [4]core.Point
	for i := range pairs {
		p := pairs[i]
		out[i] = Interpolate(p.Level, p.V0, p.V1, p.P0, p.P1, smoothing, m)
	}
	return out
}

func midpoint(p0, p1 core.Point) core.Point {
	return core.Point{X: (p0.X + p1.X) / 2, Y: (p0.Y + p1.Y) / 2}
}

func lerp(p0, p1 core.Point, t float64) core.Point {
	return core.Point{
		X: p0.X + t*(p1.X-p0.X),
		Y: p0.Y + t*(p1.Y-p0.Y),
	}
}

// greatCircle slerps on the unit sphere; X is longitude and Y latitude, in degrees.
func greatCircle(p0, p1 core.Point, t float64) core.Point {
	lat0, lon0 := p0.Y*degToRad, p0.X*degToRad
	lat1, lon1 := p1.Y*degToRad, p1.X*degToRad

	cosD := math.Sin(lat0)*math.Sin(lat1) + math.Cos(lat0)*math.Cos(lat1)*math.Cos(lon1-lon0)
	d := math.Acos(math.Max(-1, math.Min(1, cosD)))
	if d < DegenerateEpsilon || math.Abs(d-math.Pi) < DegenerateEpsilon {
		return lerp(p0, p1, t)
	}

	sinD := math.Sin(d)
	a := math.Sin((1-t)*d) / sinD
	b := math.Sin(t*d) / sinD

	x := a*math.Cos(lat0)*math.Cos(lon0) + b*math.Cos(lat1)*math.Cos(lon1)
	y := a*math.Cos(lat0)*math.Sin(lon0) + b*math.Cos(lat1)*math.Sin(lon1)
	z := a*math.Sin(lat0) + b*math.Sin(lat1)

	lat := math.Atan2(z, math.Sqrt(x*x+y*y))
	lon := math.Atan2(y, x)

	return core.Point{X: lon * radToDeg, Y: lat * radToDeg}
}
