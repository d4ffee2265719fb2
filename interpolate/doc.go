// Package interpolate places contour crossings on cell sides.
//
// What:
//
//	Given two corners (position + value) and a target level, return the point
//	on the segment between them where the field is assumed to equal level.
//
// Why not plain linear interpolation?
//
//	On coarse grids linear crossings make visibly angular contours. A cosine
//	term softens the crossing and a centre bias (smoothing, default 0.999)
//	keeps it away from the corners, without changing the cell topology.
//
// Methods:
//
//   - core.Cosine (default): planar blend in lon/lat degrees.
//   - core.GreatCircle: the same fraction measured along the great circle,
//     for grid spacing beyond roughly 100 km or near the poles.
//
// Degenerate inputs never error:
//
//   - |v1-v0| < 1e-10 → midpoint of the two corners.
//   - coincident or antipodal corners in GreatCircle mode → planar blend.
//
// Determinism:
//
//	Interpolate is pure. OnSide fixes operand order per side so neighbouring
//	cells reproduce a shared crossing bit-for-bit, which the tracer relies on.
//
// Complexity: O(1) per crossing.
package interpolate
