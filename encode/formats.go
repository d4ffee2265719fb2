package encode

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/katalvlaran/geocontour/contour"
)

// Feature property names.
const (
	PropLower    = "lower_level"
	PropUpper    = "upper_level"
	PropIsovalue = "isovalue"
)

// Features converts bands then lines into GeoJSON features, one per band or
// level, in input order.
func Features(bands []contour.Band, lines []contour.Line, precision int) ([]*geojson.Feature, error) {
	out := make([]*geojson.Feature, 0, len(bands)+len(lines))
	for _, b := range bands {
		g, err := BandGeometry(b, precision)
		if err != nil {
			return nil, err
		}
		out = append(out, &geojson.Feature{
			Geometry:   g,
			Properties: map[string]interface{}{PropLower: b.Lower, PropUpper: b.Upper},
		})
	}
	for _, l := range lines {
		g, err := LineGeometry(l, precision)
		if err != nil {
			return nil, err
		}
		out = append(out, &geojson.Feature{
			Geometry:   g,
			Properties: map[string]interface{}{PropIsovalue: l.Level},
		})
	}
	return out, nil
}

// GeoJSON encodes bands and lines as one FeatureCollection.
func GeoJSON(bands []contour.Band, lines []contour.Line, precision int) ([]byte, error) {
	features, err := Features(bands, lines, precision)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(&geojson.FeatureCollection{Features: features})
	if err != nil {
		return nil, eris.Wrap(err, "encode: marshal geojson")
	}
	return data, nil
}

// EWKB encodes g as little-endian extended WKB, keeping its SRID.
func EWKB(g geom.T) ([]byte, error) {
	data, err := ewkb.Marshal(g, ewkb.NDR)
	if err != nil {
		return nil, eris.Wrap(err, "encode: marshal ewkb")
	}
	return data, nil
}

// WKT encodes g as well-known text.
func WKT(g geom.T) (string, error) {
	s, err := wkt.Marshal(g)
	if err != nil {
		return "", eris.Wrap(err, "encode: marshal wkt")
	}
	return s, nil
}

// WriteWKT writes one WKT geometry per band, then per line, each on its own line.
func WriteWKT(w io.Writer, bands []contour.Band, lines []contour.Line, precision int) error {
	features, err := Features(bands, lines, precision)
	if err != nil {
		return err
	}
	for _, f := range features {
		s, err := WKT(f.Geometry)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, s+"\n"); err != nil {
			return eris.Wrap(err, "encode: write wkt")
		}
	}
	return nil
}
