package contour

import (
	"context"
	"math"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/geocontour/cellshape"
	"github.com/katalvlaran/geocontour/core"
	"github.com/katalvlaran/geocontour/grid"
)

// Isolines computes one Line per level. levels must be non-empty and finite;
// order is free and each level is independent. Levels with no crossing are
// omitted; the rest keep input order.
func Isolines(ctx context.Context, g *grid.Grid, levels []float64, opts ...Option) ([]Line, error) {
	if len(levels) == 0 {
		return nil, eris.Wrap(ErrThresholds, "isolines need at least 1 level")
	}
	for i, l := range levels {
		if math.IsNaN(l) || math.IsInf(l, 0) {
			return nil, eris.Wrapf(ErrThresholds, "level %d is not finite", i)
		}
	}
	o := gatherOptions(opts...)

	results := make([]Line, len(levels))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.concurrency)
	for i := range results {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = line(g, levels[i], o)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, eris.Wrap(err, "contour: isolines")
	}

	out := results[:0]
	for _, l := range results {
		if len(l.Paths) > 0 {
			out = append(out, l)
		}
	}
	return out, nil
}

func line(g *grid.Grid, level float64, o Options) Line {
	p := o.params()
	var segs []core.Edge
	for r := 0; r < g.CellRows(); r++ {
		for c := 0; c < g.CellCols(); c++ {
			segs = append(segs, cellshape.Isoline(g.Corners(r, c), level, p).Edges()...)
		}
	}
	paths := joinSegments(segs)
	o.log.Debug("isoline joined",
		zap.Float64("level", level),
		zap.Int("segments", len(segs)),
		zap.Int("paths", len(paths)),
	)
	return Line{Level: level, Paths: paths}
}

// joinSegments chains undirected segments that share an endpoint (exact
// equality) into polylines. A path that returns to its start is closed by
// repeating the first vertex. Segments are visited in input order.
func joinSegments(segs []core.Edge) [][]core.Point {
	adj := make(map[core.Point][]int, 2*len(segs))
	for i, s := range segs {
		adj[s.Start] = append(adj[s.Start], i)
		adj[s.End] = append(adj[s.End], i)
	}
	used := make([]bool, len(segs))

	var paths [][]core.Point
	for i, s := range segs {
		if used[i] {
			continue
		}
		used[i] = true
		path := extend([]core.Point{s.Start, s.End}, segs, adj, used)
		if path[0] != path[len(path)-1] {
			reversePath(path)
			path = extend(path, segs, adj, used)
			reversePath(path)
		}
		paths = append(paths, path)
	}
	return paths
}

// extend grows path from its tail until no unused segment continues it or
// the path closes on its head.
func extend(path []core.Point, segs []core.Edge, adj map[core.Point][]int, used []bool) []core.Point {
	for {
		tail := path[len(path)-1]
		next := -1
		for _, j := range adj[tail] {
			if !used[j] {
				next = j
				break
			}
		}
		if next < 0 {
			return path
		}
		used[next] = true
		s := segs[next]
		other := s.End
		if s.End == tail {
			other = s.Start
		}
		path = append(path, other)
		if other == path[0] {
			return path
		}
	}
}

func reversePath(p []core.Point) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
