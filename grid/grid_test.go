package grid_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geocontour/core"
	"github.com/katalvlaran/geocontour/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func pts(rows, cols int) [][]core.GridPoint {
	out := make([][]core.GridPoint, rows)
	for r := range out {
		out[r] = make([]core.GridPoint, cols)
		for c := range out[r] {
			out[r][c] = core.GridPoint{Lon: float64(c), Lat: -float64(r), Value: float64(r*cols + c)}
		}
	}
	return out
}

func TestNew_Errors(t *testing.T) {
	bad := pts(2, 2)
	bad[1][0].Lat = 91
	nan := pts(2, 2)
	nan[0][1].Lon = math.NaN()

	cases := []struct {
		name string
		in   [][]core.GridPoint
		err  error
	}{
		{"EmptyRows", nil, grid.ErrEmptyGrid},
		{"EmptyCols", [][]core.GridPoint{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]core.GridPoint{make([]core.GridPoint, 2), make([]core.GridPoint, 3)}, grid.ErrNonRectangular},
		{"OneRow", pts(1, 5), grid.ErrDimensions},
		{"OneCol", pts(5, 1), grid.ErrDimensions},
		{"LatRange", bad, grid.ErrCoordinates},
		{"NaNLon", nan, grid.ErrCoordinates},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.in)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNew_DeepCopy(t *testing.T) {
	in := pts(2, 3)
	g, err := grid.New(in)
	require.NoError(t, err)
	in[0][0].Value = 99
	assert.Equal(t, 0.0, g.At(0, 0).Value)
}

func TestAccessors(t *testing.T) {
	g, err := grid.New(pts(3, 4))
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, 2, g.CellRows())
	assert.Equal(t, 3, g.CellCols())
	assert.True(t, g.InBounds(2, 3))
	assert.False(t, g.InBounds(3, 0))
	assert.False(t, g.InBounds(0, -1))
	assert.Equal(t, 6.0, g.At(1, 2).Value)
	assert.Panics(t, func() { g.At(3, 0) })

	c := g.Corners(1, 2)
	assert.Equal(t, g.At(1, 2), c.TL)
	assert.Equal(t, g.At(1, 3), c.TR)
	assert.Equal(t, g.At(2, 3), c.BR)
	assert.Equal(t, g.At(2, 2), c.BL)
}

func TestBoundary(t *testing.T) {
	g, err := grid.New(pts(3, 4))
	require.NoError(t, err)

	assert.Equal(t, core.Boundary{Top: true, Left: true}, g.Boundary(0, 0))
	assert.Equal(t, core.Boundary{Top: true}, g.Boundary(0, 1))
	assert.Equal(t, core.Boundary{Top: true, Right: true}, g.Boundary(0, 2))
	assert.Equal(t, core.Boundary{Bottom: true, Left: true}, g.Boundary(1, 0))
	assert.Equal(t, core.Boundary{Bottom: true, Right: true}, g.Boundary(1, 2))

	one, err := grid.New(pts(2, 2))
	require.NoError(t, err)
	assert.Equal(t, core.Boundary{Top: true, Right: true, Bottom: true, Left: true}, one.Boundary(0, 0))
}

func TestBoundsAndRange(t *testing.T) {
	g, err := grid.FromAxes([]float64{10, 11, 12}, []float64{50, 49}, [][]float64{
		{3, math.NaN(), -2},
		{7, 1, 4},
	})
	require.NoError(t, err)

	b := g.Bounds()
	assert.Equal(t, 10.0, b.Min(0))
	assert.Equal(t, 49.0, b.Min(1))
	assert.Equal(t, 12.0, b.Max(0))
	assert.Equal(t, 50.0, b.Max(1))

	lo, hi := g.ValueRange()
	assert.Equal(t, -2.0, lo)
	assert.Equal(t, 7.0, hi)
}

func TestFromAxes_Errors(t *testing.T) {
	_, err := grid.FromAxes([]float64{0, 1}, []float64{0}, [][]float64{{1, 2}, {3, 4}})
	assert.ErrorIs(t, err, grid.ErrDimensions)
	_, err = grid.FromAxes([]float64{0, 1, 2}, []float64{0, 1}, [][]float64{{1, 2}, {3, 4}})
	assert.ErrorIs(t, err, grid.ErrDimensions)
	_, err = grid.FromAxes([]float64{0, 1}, []float64{0, 1}, [][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
	_, err = grid.FromAxes(nil, nil, nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

//----------------------------------------------------------------------------//
// Loaders
//----------------------------------------------------------------------------//

const doc = `
lons: [0, 1, 2]
lats: [1, 0]
values:
  - [1, 2, 3]
  - [4, 5, 6]
`

func TestLoadYAML(t *testing.T) {
	g, err := grid.LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, core.GridPoint{Lon: 2, Lat: 0, Value: 6}, g.At(1, 2))

	_, err = grid.LoadYAML(strings.NewReader("lons: [oops"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "field.yml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	g, err := grid.LoadFile(path, "")
	require.NoError(t, err)
	assert.Equal(t, 5.0, g.At(1, 1).Value)

	_, err = grid.LoadFile(filepath.Join(dir, "field.csv"), "")
	assert.ErrorIs(t, err, grid.ErrFormat)

	_, err = grid.LoadFile(filepath.Join(dir, "missing.yaml"), "")
	assert.Error(t, err)
}

// writePoints writes a POINT shapefile with one VALUE attribute.
func writePoints(t *testing.T, path string, points [][3]float64) {
	t.Helper()
	w, err := shp.Create(path, shp.POINT)
	require.NoError(t, err)
	require.NoError(t, w.SetFields([]shp.Field{shp.FloatField("VALUE", 12, 4)}))
	for _, p := range points {
		n := w.Write(&shp.Point{X: p[0], Y: p[1]})
		require.NoError(t, w.WriteAttribute(int(n), 0, p[2]))
	}
	w.Close()
}

func TestReadShapefile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.shp")
	// Shuffled lattice: 2 rows (lat 5, 4) × 3 cols (lon -1, 0, 1).
	writePoints(t, path, [][3]float64{
		{0, 4, 5}, {-1, 5, 1}, {1, 5, 3},
		{-1, 4, 4}, {0, 5, 2}, {1, 4, 6},
	})

	g, err := grid.LoadFile(path, "value")
	require.NoError(t, err)
	require.Equal(t, 2, g.Rows())
	require.Equal(t, 3, g.Cols())
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			p := g.At(r, c)
			assert.Equal(t, float64(r*3+c+1), p.Value)
			assert.Equal(t, float64(c-1), p.Lon)
			assert.Equal(t, float64(5-r), p.Lat)
		}
	}
}

func TestReadShapefile_Errors(t *testing.T) {
	dir := t.TempDir()

	holes := filepath.Join(dir, "holes.shp")
	writePoints(t, holes, [][3]float64{{0, 0, 1}, {1, 0, 2}, {0, 1, 3}})
	_, err := grid.ReadShapefile(holes, "VALUE")
	assert.ErrorIs(t, err, grid.ErrLattice)

	_, err = grid.ReadShapefile(holes, "DEPTH")
	assert.Error(t, err)

	_, err = grid.ReadShapefile(filepath.Join(dir, "none.shp"), "VALUE")
	assert.Error(t, err)
}
