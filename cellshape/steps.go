package cellshape

import "github.com/katalvlaran/geocontour/core"

type stepKind uint8

const (
	// kindAlways emits the edge with its fixed move.
	kindAlways stepKind = iota
	// kindAlong emits the edge only when it runs along a grid-border side.
	kindAlong
	// kindAcross always emits the edge; its move is dropped to MoveNone when
	// the neighbour it points to would be outside the grid.
	kindAcross
)

// step connects vertex from to vertex to of one sub-ring.
type step struct {
	from, to int
	kind     stepKind
	side     core.Side
	move     core.Move
}

func always(from, to int, m core.Move) step {
	return step{from: from, to: to, kind: kindAlways, move: m}
}

func along(s core.Side, from, to int, m core.Move) step {
	return step{from: from, to: to, kind: kindAlong, side: s, move: m}
}

func across(from, to int, m core.Move) step {
	return step{from: from, to: to, kind: kindAcross, side: exitSide(m), move: m}
}

// exitSide is the cell side a move crosses.
func exitSide(m core.Move) core.Side {
	switch m {
	case core.MoveRight:
		return core.Right
	case core.MoveDown:
		return core.Bottom
	case core.MoveLeft:
		return core.Left
	default:
		return core.Top
	}
}

// connect appends one edge per applicable step over pts.
func connect(dst []core.Edge, pts []core.Point, steps []step, b core.Boundary) []core.Edge {
	for _, s := range steps {
		m := s.move
		switch s.kind {
		case kindAlong:
			if !b.On(s.side) {
				continue
			}
		case kindAcross:
			if b.On(s.side) {
				m = core.MoveNone
			}
		}
		dst = append(dst, core.Edge{Start: pts[s.from], End: pts[s.to], Move: m})
	}
	return dst
}

type cornerID uint8

const (
	cornerTL cornerID = iota
	cornerTR
	cornerBR
	cornerBL
)

type vertexKind uint8

const (
	atCorner vertexKind = iota
	atLower
	atUpper
)

// vertex names a point of a saddle or square sub-ring: either a cell corner
// or the crossing of one threshold on one side.
type vertex struct {
	kind   vertexKind
	side   core.Side
	corner cornerID
}

// level builds the crossing vertex of one threshold on a side.
type level func(core.Side) vertex

func hi(s core.Side) vertex { return vertex{kind: atUpper, side: s} }
func lo(s core.Side) vertex { return vertex{kind: atLower, side: s} }

func at(c cornerID) vertex { return vertex{kind: atCorner, corner: c} }

// strand is one closed sub-ring of a cell.
type strand struct {
	verts []vertex
	steps []step
}
