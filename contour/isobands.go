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
	"github.com/katalvlaran/geocontour/polygon"
	"github.com/katalvlaran/geocontour/trace"
)

// Isobands computes one Band per adjacent threshold pair. thresholds must
// hold at least two finite, strictly ascending values. Bands without any
// polygon are omitted; the rest keep threshold order.
func Isobands(ctx context.Context, g *grid.Grid, thresholds []float64, opts ...Option) ([]Band, error) {
	if err := validateThresholds(thresholds); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	results := make([]Band, len(thresholds)-1)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.concurrency)
	for i := range results {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := band(g, thresholds[i], thresholds[i+1], o)
			if err != nil {
				return err
			}
			results[i] = b
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, eris.Wrap(err, "contour: isobands")
	}

	out := results[:0]
	for _, b := range results {
		if len(b.Polygons) > 0 {
			out = append(out, b)
		}
	}
	return out, nil
}

func validateThresholds(ts []float64) error {
	if len(ts) < 2 {
		return eris.Wrapf(ErrThresholds, "isobands need at least 2 thresholds, got %d", len(ts))
	}
	for i, t := range ts {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return eris.Wrapf(ErrThresholds, "threshold %d is not finite", i)
		}
		if i > 0 && t <= ts[i-1] {
			return eris.Wrapf(ErrThresholds, "thresholds must be strictly ascending at index %d", i)
		}
	}
	return nil
}

// band classifies every cell, then traces and nests the rings of one band.
// The arena is fully populated before tracing starts.
func band(g *grid.Grid, lower, upper float64, o Options) (Band, error) {
	rows, cols := g.CellRows(), g.CellCols()
	p := o.params()
	shapes := make([]*core.CellShape, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			shapes[r*cols+c] = cellshape.Isoband(g.Corners(r, c), lower, upper, p, g.Boundary(r, c))
		}
	}

	log := o.log.With(zap.Float64("lower", lower), zap.Float64("upper", upper))
	tr, err := trace.New(rows, cols, shapes, trace.WithMaxIterations(o.maxIter), trace.WithLogger(log))
	if err != nil {
		return Band{}, eris.Wrap(err, "contour: build tracer")
	}
	rings := tr.TraceAllRings()

	polys := polygon.Organize(rings)
	for i := range polys {
		polys[i] = closePolygon(polys[i])
	}

	st := tr.Stats()
	log.Debug("isoband traced",
		zap.Int("rings", len(rings)),
		zap.Int("polygons", len(polys)),
		zap.Int("edges", st.Generated),
		zap.Int("failed", st.Failed),
	)
	if st.CeilingHits > 0 {
		log.Warn("isoband topology anomaly", zap.Int("ceiling_hits", st.CeilingHits))
	}

	return Band{Lower: lower, Upper: upper, Polygons: polys, Stats: st}, nil
}

func closePolygon(p core.Polygon) core.Polygon {
	out := core.Polygon{Exterior: p.Exterior.Close()}
	if len(p.Holes) > 0 {
		out.Holes = make([]core.Ring, len(p.Holes))
		for i, h := range p.Holes {
			out.Holes[i] = h.Close()
		}
	}
	return out
}
