// Package contour extracts isobands and isolines from a grid.Grid.
//
// What:
//
//   - Isobands: for ascending thresholds t0<t1<…<tn, one Band per adjacent
//     pair [ti, ti+1). Every cell is classified (cellshape.Isoband), the full
//     arena is traced into rings (trace), and the rings are nested into
//     polygons with holes (polygon).
//   - Isolines: one Line per level, in any order. Cell segments
//     (cellshape.Isoline) are joined into polylines at shared endpoints.
//
// Concurrency:
//
//	Bands and levels share nothing mutable, so each runs as one task in an
//	errgroup limited by WithConcurrency. Results are stored by input index, so
//	output order follows input order regardless of completion order. The
//	context is checked before each task starts; a running band is never
//	interrupted.
//
// Output:
//
//	Coordinates are full precision. Rings are closed (last vertex repeats the
//	first) after tracing and nesting; rounding belongs to encode and must come
//	after closure. Bands and levels that produce no geometry are omitted.
//
// Options:
//
//   - WithMethod       interpolation method (core.Cosine by default).
//   - WithSmoothing    centre bias in [0,1] (0.999 by default).
//   - WithConcurrency  parallel band/level tasks (GOMAXPROCS by default).
//   - WithMaxIterations tracer ceiling (10000 by default).
//   - WithLogger       zap logger (zap.L() by default).
package contour
