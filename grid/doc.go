// Package grid holds the validated lon/lat sample lattice that contouring
// runs over.
//
// What:
//
//   - Grid wraps a rectangular rows×cols array of core.GridPoint, at least 2×2,
//     with finite coordinates inside lon [-180,180] and lat [-90,90].
//   - Row 0 is the top row; column 0 is the left column. Cell (row, col) spans
//     points (row, col) to (row+1, col+1).
//   - Values may be any float64; NaN samples simply yield no crossings.
//
// Loaders:
//
//   - LoadYAML reads {lons, lats, values} documents (gopkg.in/yaml.v3).
//   - ReadShapefile reads a POINT shapefile laid out on a regular lattice
//     (github.com/jonas-p/go-shp), taking values from a named attribute.
//   - LoadFile dispatches on the file extension.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrDimensions: fewer than 2 rows or 2 columns, or axis/value mismatch.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCoordinates: a coordinate is non-finite or out of range.
//   - ErrLattice: shapefile points do not fill a regular lattice.
//
// A Grid is immutable once built and safe for concurrent readers.
package grid
