package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geocontour/core"
)

// TestMove_Delta checks the row/column offset of every move.
func TestMove_Delta(t *testing.T) {
	cases := []struct {
		move       core.Move
		dRow, dCol int
	}{
		{core.MoveNone, 0, 0},
		{core.MoveRight, 0, 1},
		{core.MoveDown, 1, 0},
		{core.MoveLeft, 0, -1},
		{core.MoveUp, -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.move.String(), func(t *testing.T) {
			dr, dc := tc.move.Delta()
			assert.Equal(t, tc.dRow, dr)
			assert.Equal(t, tc.dCol, dc)
		})
	}
}

// TestRing_Close verifies closure is explicit, idempotent and copy-on-write.
func TestRing_Close(t *testing.T) {
	r := core.Ring{{0, 0}, {1, 0}, {1, 1}}
	assert.True(t, r.Valid())
	assert.False(t, r.Closed())

	closed := r.Close()
	require.Len(t, closed, 4)
	assert.True(t, closed.Closed())
	assert.Equal(t, closed[0], closed[3])
	assert.Len(t, r, 3, "input must not be mutated")

	again := closed.Close()
	assert.Equal(t, closed, again, "closing a closed ring is a no-op")

	assert.False(t, core.Ring{{0, 0}, {1, 1}}.Valid())
	assert.Empty(t, core.Ring(nil).Close())
}

// TestCellShape_FirstStartWins ensures duplicate start points keep the first edge.
func TestCellShape_FirstStartWins(t *testing.T) {
	a, b, c := core.Point{X: 0, Y: 0}, core.Point{X: 1, Y: 0}, core.Point{X: 1, Y: 1}
	cs := core.NewCellShape([]core.Edge{
		{Start: a, End: b, Move: core.MoveNone},
		{Start: b, End: c, Move: core.MoveRight},
		{Start: a, End: c, Move: core.MoveUp},
	})
	require.Equal(t, 2, cs.Len())

	e, ok := cs.EdgeFrom(a)
	require.True(t, ok)
	assert.Equal(t, b, e.End)
	assert.Equal(t, core.MoveNone, e.Move)

	_, ok = cs.EdgeFrom(c)
	assert.False(t, ok)

	edges := cs.Edges()
	assert.Equal(t, a, edges[0].Start)
	assert.Equal(t, b, edges[1].Start)

	first, ok := cs.First()
	require.True(t, ok)
	assert.Equal(t, edges[0], first)
	assert.Equal(t, edges[1], cs.At(1))
	i, ok := cs.IndexFrom(b)
	require.True(t, ok)
	assert.Equal(t, 1, i)
}

func TestCellShape_Nil(t *testing.T) {
	var cs *core.CellShape
	assert.Equal(t, 0, cs.Len())
	assert.Nil(t, cs.Edges())
	_, ok := cs.EdgeFrom(core.Point{})
	assert.False(t, ok)
	_, ok = cs.First()
	assert.False(t, ok)
	_, ok = cs.IndexFrom(core.Point{})
	assert.False(t, ok)
}

// TestParseMethod covers accepted spellings and the sentinel on failure.
func TestParseMethod(t *testing.T) {
	for name, want := range map[string]core.Method{
		"":             core.Cosine,
		"cosine":       core.Cosine,
		"COSINE":       core.Cosine,
		"great_circle": core.GreatCircle,
		"great-circle": core.GreatCircle,
		"GreatCircle":  core.GreatCircle,
	} {
		got, err := core.ParseMethod(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := core.ParseMethod("bilinear")
	assert.ErrorIs(t, err, core.ErrUnknownMethod)
}

func TestCorners_Average(t *testing.T) {
	c := core.Corners{
		TL: core.GridPoint{Value: 1},
		TR: core.GridPoint{Value: 2},
		BR: core.GridPoint{Value: 3},
		BL: core.GridPoint{Value: 6},
	}
	assert.Equal(t, 3.0, c.Average())
}
