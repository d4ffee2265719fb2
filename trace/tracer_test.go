package trace_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/geocontour/cellshape"
	"github.com/katalvlaran/geocontour/core"
	"github.com/katalvlaran/geocontour/trace"
)

// bandShapes classifies every cell of values (row 0 on top) against
// [lower, upper) with lon=col and lat=-row.
func bandShapes(values [][]float64, lower, upper float64) (rows, cols int, shapes []*core.CellShape) {
	gp := func(r, c int) core.GridPoint {
		return core.GridPoint{Lon: float64(c), Lat: -float64(r), Value: values[r][c]}
	}
	rows, cols = len(values)-1, len(values[0])-1
	p := cellshape.DefaultParams()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			corners := core.Corners{TL: gp(r, c), TR: gp(r, c+1), BR: gp(r+1, c+1), BL: gp(r+1, c)}
			b := core.Boundary{Top: r == 0, Right: c+1 == cols, Bottom: r+1 == rows, Left: c == 0}
			shapes = append(shapes, cellshape.Isoband(corners, lower, upper, p, b))
		}
	}
	return rows, cols, shapes
}

func newTracer(t *testing.T, values [][]float64, lower, upper float64, opts ...trace.Option) *trace.Tracer {
	t.Helper()
	rows, cols, shapes := bandShapes(values, lower, upper)
	tr, err := trace.New(rows, cols, shapes, opts...)
	require.NoError(t, err)
	return tr
}

func TestNew_Dimensions(t *testing.T) {
	_, err := trace.New(0, 1, nil)
	assert.ErrorIs(t, err, trace.ErrDimensions)
	_, err = trace.New(2, 2, make([]*core.CellShape, 3))
	assert.ErrorIs(t, err, trace.ErrDimensions)

	tr, err := trace.New(1, 1, []*core.CellShape{nil})
	require.NoError(t, err)
	assert.Empty(t, tr.TraceAllRings())
	assert.Equal(t, trace.Stats{}, tr.Stats())
}

// TestTraceRing_SingleSquare: one all-in-band cell on a 2×2 grid is one quad.
func TestTraceRing_SingleSquare(t *testing.T) {
	tr := newTracer(t, [][]float64{{7, 7}, {7, 7}}, 5, 10)

	ring, ok := tr.TraceRing(0, 0)
	require.True(t, ok)
	assert.Len(t, ring, 4)
	assert.NotEqual(t, ring[0], ring[len(ring)-1], "closing vertex is implicit")

	_, ok = tr.TraceRing(0, 0)
	assert.False(t, ok, "cell is cleared")
	st := tr.Stats()
	assert.Equal(t, 4, st.Generated)
	assert.Equal(t, 4, st.Consumed)
	assert.Equal(t, 1, st.Closed)
}

// TestTraceAllRings_Spot: a single high centre on a 3×3 grid gives exactly one
// ring that walks through all four cells.
func TestTraceAllRings_Spot(t *testing.T) {
	tr := newTracer(t, [][]float64{
		{0, 0, 0},
		{0, 10, 0},
		{0, 0, 0},
	}, 5, 20)

	rings := tr.TraceAllRings()
	require.Len(t, rings, 1)
	assert.Len(t, rings[0], 4)
	for _, p := range rings[0] {
		assert.Greater(t, p.X, 0.0)
		assert.Less(t, p.X, 2.0)
		assert.Less(t, p.Y, 0.0)
		assert.Greater(t, p.Y, -2.0)
	}

	st := tr.Stats()
	assert.Equal(t, 4, st.Generated)
	assert.Equal(t, st.Generated, st.Consumed)
	assert.Equal(t, 0, st.Failed)
}

// TestTraceAllRings_Plateau: an in-band block filling the grid traces its
// outer border only.
func TestTraceAllRings_Plateau(t *testing.T) {
	tr := newTracer(t, [][]float64{
		{7, 7, 7},
		{7, 7, 7},
		{7, 7, 7},
	}, 5, 10)

	rings := tr.TraceAllRings()
	require.Len(t, rings, 1)
	assert.Len(t, rings[0], 8, "two corner points per border side")
	assert.Equal(t, 0, tr.Stats().Failed)
}

// TestTraceAllRings_Conservation runs random fields and checks that every
// edge is consumed exactly once, every trace closes and every ring is valid.
// The stepped fields put many corners exactly on a threshold.
func TestTraceAllRings_Conservation(t *testing.T) {
	cases := []struct {
		name         string
		seed         int64
		fields       int
		rows, cols   int
		lower, upper float64
		sample       func(rng *rand.Rand) float64
	}{
		{"continuous", 42, 20, 8, 9, 6, 13, func(rng *rand.Rand) float64 { return rng.Float64() * 20 }},
		{"on_thresholds", 9, 500, 6, 7, 5, 10, func(rng *rand.Rand) float64 { return float64(rng.Intn(5)) * 5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(tc.seed))
			for n := 0; n < tc.fields; n++ {
				values := make([][]float64, tc.rows)
				for r := range values {
					values[r] = make([]float64, tc.cols)
					for c := range values[r] {
						values[r][c] = tc.sample(rng)
					}
				}
				tr := newTracer(t, values, tc.lower, tc.upper)
				rings := tr.TraceAllRings()

				st := tr.Stats()
				assert.Equal(t, st.Generated, st.Consumed)
				assert.Zero(t, st.Failed, "field %d", n)
				assert.Zero(t, st.CeilingHits)
				assert.Len(t, rings, st.Closed-st.Discarded)
				for _, r := range rings {
					assert.True(t, r.Valid())
					assert.False(t, r.Closed())
				}
			}
		})
	}
}

// TestTraceRing_LeavesGrid: a lone edge pointing out of the arena fails.
func TestTraceRing_LeavesGrid(t *testing.T) {
	shape := core.NewCellShape([]core.Edge{
		{Start: core.Point{X: 0, Y: 0}, End: core.Point{X: 1, Y: 0}, Move: core.MoveRight},
	})
	tr, err := trace.New(1, 1, []*core.CellShape{shape})
	require.NoError(t, err)

	_, ok := tr.TraceRing(0, 0)
	assert.False(t, ok)
	st := tr.Stats()
	assert.Equal(t, 1, st.Failed)
	assert.Equal(t, 1, st.Consumed)
}

// TestTraceRing_MissingContinuation: the neighbour has no edge at the carried point.
func TestTraceRing_MissingContinuation(t *testing.T) {
	a := core.NewCellShape([]core.Edge{
		{Start: core.Point{X: 0, Y: 0}, End: core.Point{X: 1, Y: 0}, Move: core.MoveRight},
	})
	b := core.NewCellShape([]core.Edge{
		{Start: core.Point{X: 5, Y: 5}, End: core.Point{X: 6, Y: 5}, Move: core.MoveNone},
	})
	tr, err := trace.New(1, 2, []*core.CellShape{a, b})
	require.NoError(t, err)

	assert.Empty(t, tr.TraceAllRings())
	st := tr.Stats()
	assert.Equal(t, 2, st.Failed)
	assert.Equal(t, 2, st.Consumed)
}

// TestTraceRing_ShortRingDiscarded: a two-vertex loop closes but is dropped.
func TestTraceRing_ShortRingDiscarded(t *testing.T) {
	p, q := core.Point{X: 0, Y: 0}, core.Point{X: 1, Y: 1}
	shape := core.NewCellShape([]core.Edge{
		{Start: p, End: q, Move: core.MoveNone},
		{Start: q, End: p, Move: core.MoveNone},
	})
	tr, err := trace.New(1, 1, []*core.CellShape{shape})
	require.NoError(t, err)

	_, ok := tr.TraceRing(0, 0)
	assert.False(t, ok)
	st := tr.Stats()
	assert.Equal(t, 1, st.Closed)
	assert.Equal(t, 1, st.Discarded)
}

// TestTraceRing_Ceiling aborts a long trace and logs it.
func TestTraceRing_Ceiling(t *testing.T) {
	obs, logs := observer.New(zapcore.WarnLevel)
	tr := newTracer(t, [][]float64{{7, 7}, {7, 7}}, 5, 10,
		trace.WithMaxIterations(2), trace.WithLogger(zap.New(obs)))

	_, ok := tr.TraceRing(0, 0)
	assert.False(t, ok)
	st := tr.Stats()
	assert.Equal(t, 1, st.CeilingHits)
	assert.Equal(t, 1, st.Failed)
	assert.Equal(t, 2, st.Consumed)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "ring trace hit iteration ceiling", logs.All()[0].Message)
}

// TestTraceAllRings_Deterministic traces the same field twice.
func TestTraceAllRings_Deterministic(t *testing.T) {
	values := [][]float64{
		{1, 4, 9, 12, 3},
		{6, 11, 2, 8, 14},
		{13, 7, 5, 10, 1},
		{2, 9, 12, 6, 7},
	}
	a := newTracer(t, values, 5, 10).TraceAllRings()
	b := newTracer(t, values, 5, 10).TraceAllRings()
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}
