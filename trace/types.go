package trace

import (
	"errors"

	"go.uber.org/zap"
)

// DefaultMaxIterations bounds the edges one trace may consume.
const DefaultMaxIterations = 10000

// ErrDimensions is returned when the shape slice does not match rows×cols.
var ErrDimensions = errors.New("trace: shapes must hold rows*cols entries with rows, cols >= 1")

// Stats counts what a Tracer has done so far.
type Stats struct {
	// Generated is the total number of edges in the arena.
	Generated int
	// Consumed is the number of edges taken by any trace, closed or failed.
	Consumed int
	// Closed counts traces that returned to their first vertex.
	Closed int
	// Discarded counts closed traces with fewer than three vertices.
	Discarded int
	// Failed counts traces that consumed edges but did not close.
	Failed int
	// CeilingHits counts traces aborted by the iteration ceiling.
	CeilingHits int
}

// Option configures a Tracer.
type Option func(*Tracer)

// WithMaxIterations overrides DefaultMaxIterations. Non-positive values are ignored.
func WithMaxIterations(n int) Option {
	return func(t *Tracer) {
		if n > 0 {
			t.maxIter = n
		}
	}
}

// WithLogger sets the logger used to report topology anomalies.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tracer) {
		if l != nil {
			t.log = l
		}
	}
}

// outcome classifies one trace attempt.
type outcome int

const (
	// idle: the start cell had nothing left to trace.
	idle outcome = iota
	closed
	failed
	ceiling
)
