package cellshape

import "github.com/katalvlaran/geocontour/core"

// shape is the handler for one or two isoband codes.
//
// Candidate families (triangle .. hexagon) connect the first need candidate
// points with steps. Saddle and square shapes ignore candidates and pick a
// strand set by the four-corner average.
type shape struct {
	family Family
	need   int
	steps  []step
	split  *regimes
}

// regimes selects strands by where the corner average falls.
type regimes struct {
	below   []strand // average < lower
	between []strand // lower <= average < upper
	above   []strand // average >= upper
}

func (r *regimes) pick(avg, lower, upper float64) []strand {
	switch {
	case avg < lower:
		return r.below
	case avg >= upper:
		return r.above
	default:
		return r.between
	}
}

var catalog [CodeAllAbove + 1]*shape

func register(s *shape, codes ...int) {
	for _, c := range codes {
		catalog[c] = s
	}
}

func polygonal(f Family, need int, steps ...step) *shape {
	return &shape{family: f, need: need, steps: steps}
}

const (
	none  = core.MoveNone
	right = core.MoveRight
	down  = core.MoveDown
	left  = core.MoveLeft
	up    = core.MoveUp
)

func init() {
	// Triangles: one corner differs from the other three. Paired codes mirror
	// each other across the thresholds and share one handler.
	register(polygonal(Triangle, 3, along(core.Bottom, 0, 1, left), along(core.Left, 1, 2, none), always(2, 0, down)), 169, 1)
	register(polygonal(Triangle, 3, along(core.Right, 0, 1, down), along(core.Bottom, 1, 2, none), always(2, 0, right)), 166, 4)
	register(polygonal(Triangle, 3, along(core.Right, 0, 1, none), always(1, 2, up), along(core.Top, 2, 0, right)), 154, 16)
	register(polygonal(Triangle, 3, always(0, 1, left), along(core.Left, 1, 2, up), along(core.Top, 2, 0, none)), 106, 64)

	// Pentagons.
	register(polygonal(Pentagon, 5, across(0, 1, right), along(core.Right, 1, 2, down), along(core.Bottom, 2, 3, left), along(core.Left, 3, 4, up), along(core.Top, 4, 0, none)), 101, 69)
	register(polygonal(Pentagon, 5, along(core.Right, 0, 1, down), along(core.Bottom, 1, 2, left), along(core.Left, 2, 3, none), across(3, 4, up), along(core.Top, 4, 0, right)), 149, 21)
	register(polygonal(Pentagon, 5, along(core.Right, 0, 1, down), along(core.Bottom, 1, 2, none), across(2, 3, left), along(core.Left, 3, 4, up), along(core.Top, 4, 0, right)), 86, 84)
	register(polygonal(Pentagon, 5, along(core.Right, 0, 1, none), across(1, 2, down), along(core.Bottom, 2, 3, left), along(core.Left, 3, 4, up), along(core.Top, 4, 0, right)), 89, 81)
	register(polygonal(Pentagon, 5, across(0, 1, right), along(core.Right, 1, 2, none), across(2, 3, left), along(core.Left, 3, 4, up), along(core.Top, 4, 0, none)), 96, 74)
	register(polygonal(Pentagon, 5, along(core.Right, 0, 1, none), across(1, 2, down), along(core.Bottom, 2, 3, none), across(3, 4, up), along(core.Top, 4, 0, right)), 24, 146)
	register(polygonal(Pentagon, 5, along(core.Right, 0, 1, down), along(core.Bottom, 1, 2, none), across(2, 3, left), along(core.Left, 3, 4, none), across(4, 0, right)), 6, 164)
	register(polygonal(Pentagon, 5, across(0, 1, down), along(core.Bottom, 1, 2, left), along(core.Left, 2, 3, none), across(3, 4, up), along(core.Top, 4, 0, none)), 129, 41)
	register(polygonal(Pentagon, 5, across(0, 1, down), along(core.Bottom, 1, 2, none), across(2, 3, left), along(core.Left, 3, 4, up), along(core.Top, 4, 0, none)), 66, 104)
	register(polygonal(Pentagon, 5, along(core.Right, 0, 1, none), across(1, 2, left), along(core.Left, 2, 3, none), across(3, 4, up), along(core.Top, 4, 0, right)), 144, 26)
	register(polygonal(Pentagon, 5, across(0, 1, right), along(core.Right, 1, 2, down), along(core.Bottom, 2, 3, none), across(3, 4, up), along(core.Top, 4, 0, none)), 36, 134)
	register(polygonal(Pentagon, 5, along(core.Right, 0, 1, none), across(1, 2, down), along(core.Bottom, 2, 3, left), along(core.Left, 3, 4, none), across(4, 0, right)), 9, 161)

	// Rectangles.
	register(polygonal(Rectangle, 4, along(core.Right, 0, 1, down), along(core.Bottom, 1, 2, left), along(core.Left, 2, 3, none), across(3, 0, right)), 5, 165)
	register(polygonal(Rectangle, 4, along(core.Right, 0, 1, down), along(core.Bottom, 1, 2, none), across(2, 3, up), along(core.Top, 3, 0, right)), 20, 150)
	register(polygonal(Rectangle, 4, along(core.Right, 0, 1, none), across(1, 2, left), along(core.Left, 2, 3, up), along(core.Top, 3, 0, right)), 80, 90)
	register(polygonal(Rectangle, 4, across(0, 1, down), along(core.Bottom, 1, 2, left), along(core.Left, 2, 3, up), along(core.Top, 3, 0, none)), 65, 105)
	register(polygonal(Rectangle, 4, along(core.Right, 0, 1, none), across(1, 2, left), along(core.Left, 2, 3, none), across(3, 0, right)), 160, 10)
	register(polygonal(Rectangle, 4, across(0, 1, down), along(core.Bottom, 1, 2, none), across(2, 3, up), along(core.Top, 3, 0, none)), 130, 40)

	// Trapezoids.
	register(polygonal(Trapezoid, 4, along(core.Bottom, 0, 1, none), across(1, 2, left), along(core.Left, 2, 3, none), across(3, 0, down)), 168, 2)
	register(polygonal(Trapezoid, 4, along(core.Right, 0, 1, none), across(1, 2, down), along(core.Bottom, 2, 3, none), across(3, 0, right)), 162, 8)
	register(polygonal(Trapezoid, 4, across(0, 1, right), along(core.Right, 1, 2, none), across(2, 3, up), along(core.Top, 3, 0, none)), 138, 32)
	register(polygonal(Trapezoid, 4, across(0, 1, left), along(core.Left, 1, 2, none), across(2, 3, up), along(core.Top, 3, 0, none)), 42, 128)

	// Hexagons.
	register(polygonal(Hexagon, 6, across(0, 1, right), along(core.Right, 1, 2, down), along(core.Bottom, 2, 3, left), along(core.Left, 3, 4, none), across(4, 5, up), along(core.Top, 5, 0, none)), 37, 133)
	register(polygonal(Hexagon, 6, along(core.Right, 0, 1, down), along(core.Bottom, 1, 2, none), across(2, 3, left), along(core.Left, 3, 4, none), across(4, 5, up), along(core.Top, 5, 0, right)), 148, 22)
	register(polygonal(Hexagon, 6, along(core.Right, 0, 1, none), across(1, 2, down), along(core.Bottom, 2, 3, none), across(3, 4, left), along(core.Left, 4, 5, up), along(core.Top, 5, 0, right)), 82, 88)
	register(polygonal(Hexagon, 6, across(0, 1, right), along(core.Right, 1, 2, none), across(2, 3, down), along(core.Bottom, 3, 4, left), along(core.Left, 4, 5, up), along(core.Top, 5, 0, none)), 73, 97)
	register(polygonal(Hexagon, 6, along(core.Right, 0, 1, none), across(1, 2, down), along(core.Bottom, 2, 3, left), along(core.Left, 3, 4, none), across(4, 5, up), along(core.Top, 5, 0, right)), 145, 25)
	register(polygonal(Hexagon, 6, across(0, 1, right), along(core.Right, 1, 2, down), along(core.Bottom, 2, 3, none), across(3, 4, left), along(core.Left, 4, 5, up), along(core.Top, 5, 0, none)), 70, 100)

	registerSaddles()

	// Square: the whole cell is in band. Only border sides produce edges and
	// they run between the shared corner points.
	sq := []strand{{
		verts: []vertex{at(cornerTR), at(cornerBR), at(cornerBL), at(cornerTL)},
		steps: []step{along(core.Right, 0, 1, down), along(core.Bottom, 1, 2, left), along(core.Left, 2, 3, up), along(core.Top, 3, 0, right)},
	}}
	register(&shape{family: Square, split: &regimes{below: sq, between: sq, above: sq}}, 85)
}
