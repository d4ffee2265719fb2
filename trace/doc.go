// Package trace assembles closed rings from per-cell edge fragments.
//
// What:
//
//	A Tracer owns one band's cell arena: a row-major slice of cell states,
//	each wrapping a core.CellShape plus a consumed flag per edge. A trace
//	starts at the first unconsumed edge of a cell, follows the chain of edges
//	whose start equals the running point, then steps into the neighbour named
//	by the last edge's Move and continues there. It ends when the running
//	point returns to the ring's first vertex.
//
// Failure is normal:
//
//	A trace that leaves the grid, finds no continuing edge, or exceeds the
//	iteration ceiling yields no ring. Its edges stay consumed, so every
//	attempt makes progress and TraceAllRings always terminates.
//
// Invariants:
//
//   - every edge is consumed at most once (Stats.Consumed ≤ Stats.Generated);
//   - every returned ring has at least three vertices and closes on its first
//     vertex under exact Point equality (the closing vertex is not repeated);
//   - scan order is row-major and edge order is insertion order, so output is
//     deterministic.
//
// A Tracer is not safe for concurrent use; create one per band.
package trace
