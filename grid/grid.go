package grid

import (
	"math"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"

	"github.com/katalvlaran/geocontour/core"
)

// Grid is an immutable rows×cols lattice of samples.
type Grid struct {
	rows, cols int
	points     []core.GridPoint // row-major
}

// New validates points and deep-copies them into a Grid.
// Complexity: O(rows×cols).
func New(points [][]core.GridPoint) (*Grid, error) {
	if len(points) == 0 || len(points[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(points), len(points[0])
	for _, row := range points {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	if rows < 2 || cols < 2 {
		return nil, eris.Wrapf(ErrDimensions, "got %d×%d", rows, cols)
	}

	g := &Grid{rows: rows, cols: cols, points: make([]core.GridPoint, 0, rows*cols)}
	for r, row := range points {
		for c, p := range row {
			if !validLon(p.Lon) || !validLat(p.Lat) {
				return nil, eris.Wrapf(ErrCoordinates, "point (%d,%d) at lon=%g lat=%g", r, c, p.Lon, p.Lat)
			}
			g.points = append(g.points, p)
		}
	}

	return g, nil
}

// FromAxes builds a regular grid where values[i][j] sits at (lons[j], lats[i]).
func FromAxes(lons, lats []float64, values [][]float64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if len(values) != len(lats) {
		return nil, eris.Wrapf(ErrDimensions, "%d value rows for %d latitudes", len(values), len(lats))
	}
	for _, row := range values {
		if len(row) != len(values[0]) {
			return nil, ErrNonRectangular
		}
	}
	if len(values[0]) != len(lons) {
		return nil, eris.Wrapf(ErrDimensions, "%d value columns for %d longitudes", len(values[0]), len(lons))
	}

	points := make([][]core.GridPoint, len(values))
	for i, row := range values {
		points[i] = make([]core.GridPoint, len(row))
		for j, v := range row {
			points[i][j] = core.GridPoint{Lon: lons[j], Lat: lats[i], Value: v}
		}
	}

	return New(points)
}

func validLon(v float64) bool { return !math.IsNaN(v) && v >= -180 && v <= 180 }
func validLat(v float64) bool { return !math.IsNaN(v) && v >= -90 && v <= 90 }

// Rows returns the number of point rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of point columns.
func (g *Grid) Cols() int { return g.cols }

// CellRows returns the number of cell rows (Rows-1).
func (g *Grid) CellRows() int { return g.rows - 1 }

// CellCols returns the number of cell columns (Cols-1).
func (g *Grid) CellCols() int { return g.cols - 1 }

// InBounds reports whether (row, col) addresses a point.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the point at (row, col). It panics when out of bounds.
func (g *Grid) At(row, col int) core.GridPoint {
	return g.points[g.index(row, col)]
}

func (g *Grid) index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(eris.Errorf("grid: point (%d,%d) out of bounds %d×%d", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

// Corners returns the four samples of cell (row, col).
func (g *Grid) Corners(row, col int) core.Corners {
	return core.Corners{
		TL: g.At(row, col),
		TR: g.At(row, col+1),
		BR: g.At(row+1, col+1),
		BL: g.At(row+1, col),
	}
}

// Boundary flags which sides of cell (row, col) lie on the grid border.
func (g *Grid) Boundary(row, col int) core.Boundary {
	return core.Boundary{
		Top:    row == 0,
		Right:  col+1 == g.cols-1,
		Bottom: row+1 == g.rows-1,
		Left:   col == 0,
	}
}

// Bounds returns the lon/lat extent of all points.
func (g *Grid) Bounds() *geom.Bounds {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range g.points {
		minX, maxX = math.Min(minX, p.Lon), math.Max(maxX, p.Lon)
		minY, maxY = math.Min(minY, p.Lat), math.Max(maxY, p.Lat)
	}
	return geom.NewBounds(geom.XY).Set(minX, minY, maxX, maxY)
}

// ValueRange returns the smallest and largest non-NaN values. Both are NaN
// when every sample is NaN.
func (g *Grid) ValueRange() (lo, hi float64) {
	lo, hi = math.NaN(), math.NaN()
	for _, p := range g.points {
		if math.IsNaN(p.Value) {
			continue
		}
		if math.IsNaN(lo) || p.Value < lo {
			lo = p.Value
		}
		if math.IsNaN(hi) || p.Value > hi {
			hi = p.Value
		}
	}
	return lo, hi
}
