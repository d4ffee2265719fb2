package encode

import (
	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"

	"github.com/katalvlaran/geocontour/contour"
	"github.com/katalvlaran/geocontour/core"
	"github.com/katalvlaran/geocontour/polygon"
)

// Shapefile attribute names (dBASE limits them to 10 characters).
const (
	FieldLower    = "LOWER"
	FieldUpper    = "UPPER"
	FieldIsovalue = "ISOVALUE"
)

// WriteShapefile writes bands as one POLYGON record each (fields LOWER,
// UPPER) or lines as one POLYLINE record each (field ISOVALUE). Passing both
// is an error; passing neither writes nothing.
func WriteShapefile(path string, bands []contour.Band, lines []contour.Line, precision int) error {
	switch {
	case precision < 0:
		return ErrPrecision
	case len(bands) > 0 && len(lines) > 0:
		return ErrMixedKinds
	case len(bands) > 0:
		return writeBands(path, bands, precision)
	case len(lines) > 0:
		return writeLines(path, lines, precision)
	default:
		return nil
	}
}

func writeBands(path string, bands []contour.Band, precision int) error {
	w, err := shp.Create(path, shp.POLYGON)
	if err != nil {
		return eris.Wrapf(err, "encode: create shapefile %s", path)
	}
	defer w.Close()

	if err := w.SetFields([]shp.Field{
		shp.FloatField(FieldLower, 24, 8),
		shp.FloatField(FieldUpper, 24, 8),
	}); err != nil {
		return eris.Wrap(err, "encode: set shapefile fields")
	}

	for _, b := range bands {
		var parts [][]shp.Point
		for _, p := range b.Polygons {
			p = polygon.Orient(p)
			// ESRI rings wind opposite to RFC 7946.
			parts = append(parts, shpRing(p.Exterior, precision))
			for _, h := range p.Holes {
				parts = append(parts, shpRing(h, precision))
			}
		}
		poly := shp.Polygon(*shp.NewPolyLine(parts))
		n := int(w.Write(&poly))
		if err := w.WriteAttribute(n, 0, b.Lower); err != nil {
			return eris.Wrap(err, "encode: write LOWER")
		}
		if err := w.WriteAttribute(n, 1, b.Upper); err != nil {
			return eris.Wrap(err, "encode: write UPPER")
		}
	}
	return nil
}

func writeLines(path string, lines []contour.Line, precision int) error {
	w, err := shp.Create(path, shp.POLYLINE)
	if err != nil {
		return eris.Wrapf(err, "encode: create shapefile %s", path)
	}
	defer w.Close()

	if err := w.SetFields([]shp.Field{shp.FloatField(FieldIsovalue, 24, 8)}); err != nil {
		return eris.Wrap(err, "encode: set shapefile fields")
	}

	for _, l := range lines {
		parts := make([][]shp.Point, 0, len(l.Paths))
		for _, path := range l.Paths {
			parts = append(parts, shpPoints(path, precision))
		}
		n := int(w.Write(shp.NewPolyLine(parts)))
		if err := w.WriteAttribute(n, 0, l.Level); err != nil {
			return eris.Wrap(err, "encode: write ISOVALUE")
		}
	}
	return nil
}

// shpRing reverses an RFC 7946 ring into ESRI order.
func shpRing(r core.Ring, precision int) []shp.Point {
	pts := shpPoints(r, precision)
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
	return pts
}

func shpPoints(pts []core.Point, precision int) []shp.Point {
	out := make([]shp.Point, len(pts))
	for i, p := range pts {
		out[i] = shp.Point{X: Round(p.X, precision), Y: Round(p.Y, precision)}
	}
	return out
}
