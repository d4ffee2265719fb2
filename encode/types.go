package encode

import (
	"errors"
	"strings"

	"github.com/rotisserie/eris"
)

// SRID of every geometry produced here (WGS 84 lon/lat).
const SRID = 4326

// DefaultPrecision is the number of decimals kept by default.
const DefaultPrecision = 6

var (
	// ErrFormat indicates an unknown output format name.
	ErrFormat = errors.New("encode: unknown output format")
	// ErrMixedKinds indicates bands and lines passed to one shapefile.
	ErrMixedKinds = errors.New("encode: a shapefile holds either bands or lines")
	// ErrPrecision indicates a negative precision.
	ErrPrecision = errors.New("encode: precision must be >= 0")
)

// Format names an output encoding.
type Format int

const (
	// GeoJSONFormat writes one FeatureCollection.
	GeoJSONFormat Format = iota
	// WKTFormat writes one WKT geometry per line.
	WKTFormat
	// ShapefileFormat writes an ESRI shapefile set.
	ShapefileFormat
)

var formatNames = [...]string{"geojson", "wkt", "shp"}

func (f Format) String() string {
	if f < GeoJSONFormat || f > ShapefileFormat {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat accepts "geojson"/"json", "wkt" and "shp"/"shapefile".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "geojson", "json":
		return GeoJSONFormat, nil
	case "wkt":
		return WKTFormat, nil
	case "shp", "shapefile":
		return ShapefileFormat, nil
	default:
		return GeoJSONFormat, eris.Wrapf(ErrFormat, "%q", s)
	}
}
