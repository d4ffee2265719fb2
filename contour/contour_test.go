package contour_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/geocontour/contour"
	"github.com/katalvlaran/geocontour/core"
	"github.com/katalvlaran/geocontour/grid"
	"github.com/katalvlaran/geocontour/polygon"
)

// field builds a grid with lon=col and lat=-row.
func field(t *testing.T, values [][]float64) *grid.Grid {
	t.Helper()
	lons := make([]float64, len(values[0]))
	for i := range lons {
		lons[i] = float64(i)
	}
	lats := make([]float64, len(values))
	for i := range lats {
		lats[i] = -float64(i)
	}
	g, err := grid.FromAxes(lons, lats, values)
	require.NoError(t, err)
	return g
}

var (
	spot = [][]float64{
		{0, 0, 0},
		{0, 10, 0},
		{0, 0, 0},
	}
	annulus = [][]float64{
		{0, 0, 0, 0, 0},
		{0, 10, 10, 10, 0},
		{0, 10, 30, 10, 0},
		{0, 10, 10, 10, 0},
		{0, 0, 0, 0, 0},
	}
)

//----------------------------------------------------------------------------//
// Isobands
//----------------------------------------------------------------------------//

func TestIsobands_Thresholds(t *testing.T) {
	g := field(t, spot)
	for name, ts := range map[string][]float64{
		"empty":      nil,
		"single":     {5},
		"descending": {10, 5},
		"equal":      {5, 5},
		"nan":        {5, math.NaN()},
		"inf":        {math.Inf(-1), 5},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := contour.Isobands(context.Background(), g, ts)
			assert.ErrorIs(t, err, contour.ErrThresholds)
		})
	}
}

// TestIsobands_Spot: one high centre gives one exterior ring and no holes.
func TestIsobands_Spot(t *testing.T) {
	bands, err := contour.Isobands(context.Background(), field(t, spot), []float64{5, 20})
	require.NoError(t, err)
	require.Len(t, bands, 1)

	b := bands[0]
	assert.Equal(t, 5.0, b.Lower)
	assert.Equal(t, 20.0, b.Upper)
	require.Len(t, b.Polygons, 1)
	assert.Empty(t, b.Polygons[0].Holes)

	ext := b.Polygons[0].Exterior
	assert.Len(t, ext, 5)
	assert.True(t, ext.Closed())
	assert.Equal(t, b.Stats.Generated, b.Stats.Consumed)
	assert.Zero(t, b.Stats.Failed)
}

// TestIsobands_Annulus: an in-band ring around a peak yields a polygon with a
// hole, and the peak itself lands in the next band.
func TestIsobands_Annulus(t *testing.T) {
	bands, err := contour.Isobands(context.Background(), field(t, annulus), []float64{5, 20, 40})
	require.NoError(t, err)
	require.Len(t, bands, 2)

	low, high := bands[0], bands[1]
	assert.Equal(t, 5.0, low.Lower)
	assert.Equal(t, 20.0, high.Lower)

	require.Len(t, low.Polygons, 1)
	require.Len(t, low.Polygons[0].Holes, 1)
	hole := low.Polygons[0].Holes[0]
	assert.True(t, hole.Closed())
	assert.True(t, polygon.RingInside(hole, low.Polygons[0].Exterior))

	require.Len(t, high.Polygons, 1)
	assert.Empty(t, high.Polygons[0].Holes)
	assert.True(t, polygon.RingInside(high.Polygons[0].Exterior, hole))
}

func TestIsobands_EmptyBandsOmitted(t *testing.T) {
	bands, err := contour.Isobands(context.Background(), field(t, spot), []float64{100, 200, 300})
	require.NoError(t, err)
	assert.Empty(t, bands)
}

// TestIsobands_Order keeps threshold order with many concurrent bands.
func TestIsobands_Order(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	values := make([][]float64, 12)
	for r := range values {
		values[r] = make([]float64, 12)
		for c := range values[r] {
			values[r][c] = rng.Float64() * 30
		}
	}
	var ts []float64
	for v := 0.0; v <= 30; v += 2 {
		ts = append(ts, v)
	}

	g := field(t, values)
	serial, err := contour.Isobands(context.Background(), g, ts, contour.WithConcurrency(1))
	require.NoError(t, err)
	parallel, err := contour.Isobands(context.Background(), g, ts, contour.WithConcurrency(8))
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
	for i := 1; i < len(parallel); i++ {
		assert.Less(t, parallel[i-1].Lower, parallel[i].Lower)
	}
	for _, b := range parallel {
		assert.LessOrEqual(t, b.Stats.Consumed, b.Stats.Generated)
		for _, p := range b.Polygons {
			assert.True(t, p.Exterior.Closed())
			for _, h := range p.Holes {
				assert.True(t, polygon.RingInside(h, p.Exterior))
			}
		}
	}
}

func TestIsobands_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := contour.Isobands(ctx, field(t, spot), []float64{5, 20})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsobands_Logs(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	_, err := contour.Isobands(context.Background(), field(t, spot), []float64{5, 20},
		contour.WithLogger(zap.New(obs)))
	require.NoError(t, err)
	entries := logs.FilterMessage("isoband traced").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ContextMap()["polygons"])
}

func TestIsobands_GreatCircle(t *testing.T) {
	bands, err := contour.Isobands(context.Background(), field(t, spot), []float64{5, 20},
		contour.WithMethod(core.GreatCircle), contour.WithSmoothing(0.5))
	require.NoError(t, err)
	require.Len(t, bands, 1)
	assert.Len(t, bands[0].Polygons, 1)
}

//----------------------------------------------------------------------------//
// Isolines
//----------------------------------------------------------------------------//

func TestIsolines_Levels(t *testing.T) {
	g := field(t, spot)
	_, err := contour.Isolines(context.Background(), g, nil)
	assert.ErrorIs(t, err, contour.ErrThresholds)
	_, err = contour.Isolines(context.Background(), g, []float64{1, math.NaN()})
	assert.ErrorIs(t, err, contour.ErrThresholds)
}

// TestIsolines_SingleCell: low top row, high bottom row, level between.
func TestIsolines_SingleCell(t *testing.T) {
	lines, err := contour.Isolines(context.Background(), field(t, [][]float64{{10, 10}, {20, 20}}), []float64{15})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Paths, 1)

	path := lines[0].Paths[0]
	require.Len(t, path, 2)
	assert.Equal(t, 0.0, path[0].X)
	assert.Equal(t, 1.0, path[1].X)
	assert.InDelta(t, path[0].Y, path[1].Y, 1e-12)
	assert.InDelta(t, -0.5, path[0].Y, 1e-12)
}

// TestIsolines_ClosedLoop: the level around a peak is one closed path.
func TestIsolines_ClosedLoop(t *testing.T) {
	lines, err := contour.Isolines(context.Background(), field(t, spot), []float64{5})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Paths, 1)
	path := lines[0].Paths[0]
	assert.Len(t, path, 5)
	assert.Equal(t, path[0], path[len(path)-1])
}

// TestIsolines_OpenPath: a ridge crossing the grid gives one open polyline
// spanning all cells.
func TestIsolines_OpenPath(t *testing.T) {
	lines, err := contour.Isolines(context.Background(), field(t, [][]float64{
		{0, 0, 0, 0},
		{10, 10, 10, 10},
	}), []float64{5})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Len(t, lines[0].Paths, 1)
	path := lines[0].Paths[0]
	require.Len(t, path, 4)
	assert.NotEqual(t, path[0], path[len(path)-1])
}

func TestIsolines_OrderAndOmission(t *testing.T) {
	lines, err := contour.Isolines(context.Background(), field(t, annulus), []float64{20, 99, 5})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 20.0, lines[0].Level)
	assert.Equal(t, 5.0, lines[1].Level)
}

//----------------------------------------------------------------------------//
// Options
//----------------------------------------------------------------------------//

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { contour.WithSmoothing(1.5) })
	assert.Panics(t, func() { contour.WithSmoothing(math.NaN()) })
	assert.Panics(t, func() { contour.WithConcurrency(0) })
	assert.Panics(t, func() { contour.WithMaxIterations(0) })
	assert.Panics(t, func() { contour.WithMethod(core.Method(9)) })
	assert.NotPanics(t, func() { contour.WithSmoothing(0) })
}
