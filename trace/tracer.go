package trace

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/geocontour/core"
)

// cellState is the tracer-owned view of one cell.
type cellState struct {
	shape    *core.CellShape
	used     []bool
	consumed int
	cleared  bool
}

// next returns the first unconsumed edge index in insertion order.
func (c *cellState) next() (int, bool) {
	for i, u := range c.used {
		if !u {
			return i, true
		}
	}
	return -1, false
}

// from returns the unconsumed edge starting at p.
func (c *cellState) from(p core.Point) (int, bool) {
	i, ok := c.shape.IndexFrom(p)
	if !ok || c.used[i] {
		return -1, false
	}
	return i, true
}

func (c *cellState) take(i int) core.Edge {
	c.used[i] = true
	c.consumed++
	if c.consumed >= len(c.used) {
		c.cleared = true
	}
	return c.shape.At(i)
}

// Tracer walks one band's cell arena.
type Tracer struct {
	rows, cols int
	cells      []cellState
	maxIter    int
	log        *zap.Logger
	stats      Stats
}

// New wraps shapes (row-major, rows×cols, nil for blank cells) in a fresh
// arena. The shapes are read, never modified.
func New(rows, cols int, shapes []*core.CellShape, opts ...Option) (*Tracer, error) {
	if rows < 1 || cols < 1 || len(shapes) != rows*cols {
		return nil, ErrDimensions
	}
	t := &Tracer{
		rows:    rows,
		cols:    cols,
		cells:   make([]cellState, len(shapes)),
		maxIter: DefaultMaxIterations,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	for i, s := range shapes {
		n := s.Len()
		t.cells[i] = cellState{shape: s, used: make([]bool, n), cleared: n == 0}
		t.stats.Generated += n
	}

	return t, nil
}

// Stats returns a snapshot of the counters.
func (t *Tracer) Stats() Stats {
	return t.stats
}

func (t *Tracer) cell(row, col int) *cellState {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return nil
	}
	return &t.cells[row*t.cols+col]
}

// TraceRing traces one ring starting at the first unconsumed edge of cell
// (row, col). It reports false when the cell is out of range or cleared, or
// when the trace fails or closes with fewer than three vertices.
func (t *Tracer) TraceRing(row, col int) (core.Ring, bool) {
	ring, out := t.trace(row, col)
	return ring, out == closed && ring != nil
}

// TraceAllRings scans the arena row-major and traces each cell until it is
// cleared, returning every ring with at least three vertices.
func (t *Tracer) TraceAllRings() []core.Ring {
	var rings []core.Ring
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			for {
				ring, out := t.trace(row, col)
				if out == idle {
					break
				}
				if ring != nil {
					rings = append(rings, ring)
				}
			}
		}
	}

	return rings
}

func (t *Tracer) trace(row, col int) (core.Ring, outcome) {
	c := t.cell(row, col)
	if c == nil || c.cleared {
		return nil, idle
	}
	i, ok := c.next()
	if !ok {
		return nil, idle
	}

	first := c.take(i)
	t.stats.Consumed++
	origin := first.Start
	ring := core.Ring{origin}
	last := first
	iter := 1

	for {
		if last.End == origin {
			t.stats.Closed++
			if !ring.Valid() {
				t.stats.Discarded++
				return nil, closed
			}
			return ring, closed
		}
		ring = append(ring, last.End)

		if iter >= t.maxIter {
			t.stats.CeilingHits++
			t.stats.Failed++
			t.log.Warn("ring trace hit iteration ceiling",
				zap.Int("row", row),
				zap.Int("col", col),
				zap.Int("max_iterations", t.maxIter),
				zap.Int("vertices", len(ring)),
			)
			return nil, ceiling
		}

		// Continue inside the current cell first.
		if j, ok := c.from(last.End); ok {
			last = c.take(j)
			t.stats.Consumed++
			iter++
			continue
		}

		dr, dc := last.Move.Delta()
		if dr == 0 && dc == 0 {
			t.stats.Failed++
			return nil, failed
		}
		row, col = row+dr, col+dc
		c = t.cell(row, col)
		if c == nil || c.cleared {
			t.stats.Failed++
			return nil, failed
		}
		j, ok := c.from(last.End)
		if !ok {
			t.stats.Failed++
			return nil, failed
		}
		last = c.take(j)
		t.stats.Consumed++
		iter++
	}
}
