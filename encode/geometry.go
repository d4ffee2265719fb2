package encode

import (
	"math"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"

	"github.com/katalvlaran/geocontour/contour"
	"github.com/katalvlaran/geocontour/core"
	"github.com/katalvlaran/geocontour/polygon"
)

// Round rounds v half away from zero to precision decimals.
func Round(v float64, precision int) float64 {
	if precision < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	scale := math.Pow(10, float64(precision))
	return math.Round(v*scale) / scale
}

func flat(dst []float64, pts []core.Point, precision int) []float64 {
	for _, p := range pts {
		dst = append(dst, Round(p.X, precision), Round(p.Y, precision))
	}
	return dst
}

// polygonFlat lays out the exterior and holes of p in go-geom flat form.
func polygonFlat(p core.Polygon, precision int) ([]float64, []int) {
	coords := flat(nil, p.Exterior, precision)
	ends := []int{len(coords)}
	for _, h := range p.Holes {
		coords = flat(coords, h, precision)
		ends = append(ends, len(coords))
	}
	return coords, ends
}

// BandGeometry builds the MultiPolygon of one band with RFC 7946 winding.
func BandGeometry(b contour.Band, precision int) (*geom.MultiPolygon, error) {
	if precision < 0 {
		return nil, ErrPrecision
	}
	mp := geom.NewMultiPolygon(geom.XY).SetSRID(SRID)
	for i, p := range b.Polygons {
		coords, ends := polygonFlat(polygon.Orient(p), precision)
		if err := mp.Push(geom.NewPolygonFlat(geom.XY, coords, ends)); err != nil {
			return nil, eris.Wrapf(err, "encode: band [%g,%g) polygon %d", b.Lower, b.Upper, i)
		}
	}
	return mp, nil
}

// LineGeometry builds the MultiLineString of one isoline level.
func LineGeometry(l contour.Line, precision int) (*geom.MultiLineString, error) {
	if precision < 0 {
		return nil, ErrPrecision
	}
	mls := geom.NewMultiLineString(geom.XY).SetSRID(SRID)
	for i, path := range l.Paths {
		if err := mls.Push(geom.NewLineStringFlat(geom.XY, flat(nil, path, precision))); err != nil {
			return nil, eris.Wrapf(err, "encode: level %g path %d", l.Level, i)
		}
	}
	return mls, nil
}
