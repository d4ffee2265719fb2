// Package core defines the shared value types of the contouring pipeline:
// grid samples, geographic points, cell sides, tracer moves, directed edges,
// per-cell edge sets, rings and polygons.
//
// This file declares GridPoint, Point, Side, Move, Edge, Ring, Polygon,
// Corners, Boundary and Method. CellShape lives in shape.go.
//
// Errors:
//
//	ErrUnknownMethod - a method name did not match any interpolation Method.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for core operations.
var (
	// ErrUnknownMethod indicates ParseMethod received an unrecognised name.
	ErrUnknownMethod = errors.New("core: unknown interpolation method")
)

// GridPoint is one immutable grid sample: a longitude, a latitude and the
// scalar field value measured there.
type GridPoint struct {
	Lon   float64
	Lat   float64
	Value float64
}

// Pos returns the sample position as a Point (x=lon, y=lat).
func (g GridPoint) Pos() Point {
	return Point{X: g.Lon, Y: g.Lat}
}

// Point is a geographic coordinate, X=longitude and Y=latitude in degrees.
//
// Points are compared with exact bitwise equality everywhere (==, map keys).
// Adjacent cells compute a shared crossing from identical operands in identical
// order, so the results are bit-identical and no tolerance is needed.
type Point struct {
	X float64
	Y float64
}

// String renders the point for logs and test failures.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Side names one edge of a grid cell.
type Side int

const (
	// Top is the edge between the top-left and top-right corners.
	Top Side = iota
	// Right is the edge between the top-right and bottom-right corners.
	Right
	// Bottom is the edge between the bottom-left and bottom-right corners.
	Bottom
	// Left is the edge between the top-left and bottom-left corners.
	Left
)

var sideNames = [...]string{"top", "right", "bottom", "left"}

func (s Side) String() string {
	if s < Top || s > Left {
		return fmt.Sprintf("Side(%d)", int(s))
	}
	return sideNames[s]
}

// Move tells the tracer which neighbouring cell continues a ring after an
// edge ends on a shared cell side. MoveNone keeps the walk in the same cell.
type Move int

const (
	// MoveNone continues within the current cell.
	MoveNone Move = iota
	// MoveRight steps to column+1.
	MoveRight
	// MoveDown steps to row+1.
	MoveDown
	// MoveLeft steps to column-1.
	MoveLeft
	// MoveUp steps to row-1.
	MoveUp
)

var moveNames = [...]string{"none", "right", "down", "left", "up"}

func (m Move) String() string {
	if m < MoveNone || m > MoveUp {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return moveNames[m]
}

// Delta returns the row and column offsets of the move.
func (m Move) Delta() (dRow, dCol int) {
	switch m {
	case MoveRight:
		return 0, 1
	case MoveDown:
		return 1, 0
	case MoveLeft:
		return 0, -1
	case MoveUp:
		return -1, 0
	default:
		return 0, 0
	}
}

// Edge is one directed boundary fragment inside a cell. Move describes where
// the fragment continues after End.
type Edge struct {
	Start Point
	End   Point
	Move  Move
}

// Ring is an ordered vertex sequence. A traced ring is closed under Point
// equality (last reachable from first); Close makes the closure explicit.
type Ring []Point

// Valid reports whether the ring has at least three vertices.
func (r Ring) Valid() bool {
	return len(r) >= 3
}

// Closed reports whether the last vertex repeats the first.
func (r Ring) Closed() bool {
	return len(r) > 1 && r[0] == r[len(r)-1]
}

// Close returns a copy of r whose last vertex equals its first.
// A ring that is already closed is copied unchanged.
func (r Ring) Close() Ring {
	out := make(Ring, len(r), len(r)+1)
	copy(out, r)
	if len(r) > 0 && !r.Closed() {
		out = append(out, r[0])
	}
	return out
}

// Polygon is one exterior ring with zero or more holes. Every hole lies inside
// the exterior and no hole lies inside a sibling.
type Polygon struct {
	Exterior Ring
	Holes    []Ring
}

// Corners bundles the four samples of one cell, clockwise from top-left.
type Corners struct {
	TL, TR, BR, BL GridPoint
}

// Average returns the mean of the four corner values, the saddle tie-break.
func (c Corners) Average() float64 {
	return (c.TL.Value + c.TR.Value + c.BR.Value + c.BL.Value) / 4
}

// Boundary flags the cell sides that coincide with the grid border.
// Edges that would step across a flagged side are never emitted.
type Boundary struct {
	Top, Right, Bottom, Left bool
}

// On reports whether side s lies on the grid border.
func (b Boundary) On(s Side) bool {
	switch s {
	case Top:
		return b.Top
	case Right:
		return b.Right
	case Bottom:
		return b.Bottom
	case Left:
		return b.Left
	default:
		return false
	}
}

// Method selects how a crossing point is placed between two corners.
type Method int

const (
	// Cosine blends linearly by a cosine-smoothed, centre-biased fraction.
	Cosine Method = iota
	// GreatCircle uses the same fraction along the great circle through both corners.
	GreatCircle
)

func (m Method) String() string {
	switch m {
	case Cosine:
		return "cosine"
	case GreatCircle:
		return "great_circle"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a configuration name to a Method. Matching ignores case;
// "greatcircle", "great-circle" and "great_circle" are accepted.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "cosine":
		return Cosine, nil
	case "great_circle", "great-circle", "greatcircle":
		return GreatCircle, nil
	default:
		return Cosine, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}
