package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrDimensions indicates fewer than 2×2 points or mismatched axes.
	ErrDimensions = errors.New("grid: at least 2 rows and 2 columns with matching axes required")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrCoordinates indicates a non-finite or out-of-range lon/lat.
	ErrCoordinates = errors.New("grid: coordinates must be finite with lon in [-180,180] and lat in [-90,90]")
	// ErrLattice indicates scattered points that do not fill a regular lattice.
	ErrLattice = errors.New("grid: points do not form a complete regular lattice")
	// ErrFormat indicates an unsupported input file extension.
	ErrFormat = errors.New("grid: unsupported input format")
)
