// Package core holds the value types shared by every stage of the contouring
// pipeline in github.com/katalvlaran/geocontour.
//
// Data flow:
//
//	GridPoint samples ─► cellshape (per-cell Edge sets, CellShape)
//	                 ─► trace (closed Rings)
//	                 ─► polygon (Polygon: exterior + holes)
//
// Equality discipline:
//
//   - Point is a comparable struct and is compared with == everywhere: as a
//     map key in CellShape, when the tracer carries an endpoint into the
//     neighbouring cell, and when it decides a ring is closed.
//   - This works because the interpolator is pure and adjacent cells feed it
//     the same corner operands in the same order for a shared side.
//   - Rounding to fixed decimals must therefore happen only after rings are
//     closed (see package encode).
//
// Moves:
//
//	MoveRight (0,+1)  MoveDown (+1,0)  MoveLeft (0,-1)  MoveUp (-1,0)  MoveNone (0,0)
//
// Rows grow downward (row 0 is the top of the grid), columns grow to the right.
package core
