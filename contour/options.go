package contour

import (
	"math"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/geocontour/cellshape"
	"github.com/katalvlaran/geocontour/core"
	"github.com/katalvlaran/geocontour/interpolate"
	"github.com/katalvlaran/geocontour/trace"
)

// ---------- Panic messages ----------

const (
	panicMethodInvalid     = "contour: WithMethod: unknown interpolation method"
	panicSmoothingInvalid  = "contour: WithSmoothing: smoothing must be finite and within [0,1]"
	panicConcurrencyTooLow = "contour: WithConcurrency: n must be >= 1"
	panicMaxIterTooLow     = "contour: WithMaxIterations: n must be >= 1"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved configuration; public entry points take ...Option.
type Options struct {
	method      core.Method
	smoothing   float64
	concurrency int // 0 means GOMAXPROCS
	maxIter     int
	log         *zap.Logger // nil means zap.L() at call time
}

// WithMethod selects the interpolation method.
func WithMethod(m core.Method) Option {
	if m != core.Cosine && m != core.GreatCircle {
		panic(panicMethodInvalid)
	}
	return func(o *Options) { o.method = m }
}

// WithSmoothing sets the centre-bias factor.
//
// Behavior highlights:
//   - 0 puts every crossing at the side midpoint, 1 is pure cosine placement.
//   - Panics on NaN or values outside [0,1].
func WithSmoothing(s float64) Option {
	if math.IsNaN(s) || s < 0 || s > 1 {
		panic(panicSmoothingInvalid)
	}
	return func(o *Options) { o.smoothing = s }
}

// WithConcurrency bounds the number of bands or levels computed at once.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(panicConcurrencyTooLow)
	}
	return func(o *Options) { o.concurrency = n }
}

// WithMaxIterations overrides the per-ring tracing ceiling.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterTooLow)
	}
	return func(o *Options) { o.maxIter = n }
}

// WithLogger sets the logger for per-band summaries and topology anomalies.
// A nil logger falls back to zap.L().
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.log = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		method:    interpolate.DefaultMethod,
		smoothing: interpolate.DefaultSmoothing,
		maxIter:   trace.DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.concurrency == 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	if o.log == nil {
		o.log = zap.L()
	}
	return o
}

func (o Options) params() cellshape.Params {
	return cellshape.Params{Smoothing: o.smoothing, Method: o.method}
}
