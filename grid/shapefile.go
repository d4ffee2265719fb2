package grid

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"

	"github.com/katalvlaran/geocontour/core"
)

// ReadShapefile loads a POINT shapefile whose points lie on a regular lon/lat
// lattice. field names the numeric attribute holding the sample value.
// Columns are ordered west to east and rows north to south. Every lattice
// position must be present exactly once.
func ReadShapefile(path, field string) (*Grid, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "grid: open shapefile %s", path)
	}
	defer func() { _ = reader.Close() }()

	idx := fieldIndex(reader, field)
	if idx < 0 {
		return nil, eris.Errorf("grid: field %q not found in %s", field, path)
	}

	type sample struct{ lon, lat, value float64 }
	var samples []sample
	for reader.Next() {
		_, s := reader.Shape()
		p, ok := s.(*shp.Point)
		if !ok {
			continue
		}
		raw := strings.Trim(reader.Attribute(idx), " \x00")
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, eris.Wrapf(err, "grid: parse %s value %q", field, raw)
		}
		samples = append(samples, sample{lon: p.X, lat: p.Y, value: v})
	}
	if err := reader.Err(); err != nil {
		return nil, eris.Wrap(err, "grid: read shapefile")
	}
	if len(samples) == 0 {
		return nil, ErrEmptyGrid
	}

	lonIdx, lons := axis(len(samples), func(i int) float64 { return samples[i].lon }, false)
	latIdx, lats := axis(len(samples), func(i int) float64 { return samples[i].lat }, true)
	if len(lons)*len(lats) != len(samples) {
		return nil, eris.Wrapf(ErrLattice, "%d points for %d×%d lattice", len(samples), len(lats), len(lons))
	}

	points := make([][]core.GridPoint, len(lats))
	seen := make([][]bool, len(lats))
	for i := range points {
		points[i] = make([]core.GridPoint, len(lons))
		seen[i] = make([]bool, len(lons))
	}
	for _, s := range samples {
		r, c := latIdx[s.lat], lonIdx[s.lon]
		if seen[r][c] {
			return nil, eris.Wrapf(ErrLattice, "duplicate point at lon=%g lat=%g", s.lon, s.lat)
		}
		seen[r][c] = true
		points[r][c] = core.GridPoint{Lon: s.lon, Lat: s.lat, Value: s.value}
	}

	return New(points)
}

// axis collects the distinct values of one coordinate, sorted ascending (or
// descending), and maps each to its position.
func axis(n int, at func(int) float64, descending bool) (map[float64]int, []float64) {
	pos := make(map[float64]int)
	var vals []float64
	for i := 0; i < n; i++ {
		v := at(i)
		if _, ok := pos[v]; !ok {
			pos[v] = 0
			vals = append(vals, v)
		}
	}
	sort.Float64s(vals)
	if descending {
		sort.Sort(sort.Reverse(sort.Float64Slice(vals)))
	}
	for i, v := range vals {
		pos[v] = i
	}
	return pos, vals
}

// fieldIndex returns the index of a named field, or -1 if not found.
func fieldIndex(reader *shp.Reader, name string) int {
	for i, f := range reader.Fields() {
		if strings.EqualFold(strings.TrimRight(f.String(), "\x00"), name) {
			return i
		}
	}
	return -1
}
