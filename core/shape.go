package core

// CellShape is the edge set produced for one cell. Edges keep their insertion
// order and are addressable by start point; no two edges share a start.
type CellShape struct {
	edges []Edge
	index map[Point]int
}

// NewCellShape builds a CellShape from edges in order. An edge whose start
// repeats an earlier edge's start is dropped, keeping the first.
// Complexity: O(n).
func NewCellShape(edges []Edge) *CellShape {
	cs := &CellShape{
		edges: make([]Edge, 0, len(edges)),
		index: make(map[Point]int, len(edges)),
	}
	for _, e := range edges {
		if _, dup := cs.index[e.Start]; dup {
			continue
		}
		cs.index[e.Start] = len(cs.edges)
		cs.edges = append(cs.edges, e)
	}

	return cs
}

// Len returns the number of edges.
func (cs *CellShape) Len() int {
	if cs == nil {
		return 0
	}
	return len(cs.edges)
}

// Edges returns a copy of the edges in insertion order.
func (cs *CellShape) Edges() []Edge {
	if cs == nil {
		return nil
	}
	out := make([]Edge, len(cs.edges))
	copy(out, cs.edges)
	return out
}

// At returns the i-th edge in insertion order.
func (cs *CellShape) At(i int) Edge {
	return cs.edges[i]
}

// First returns the first edge in insertion order.
func (cs *CellShape) First() (Edge, bool) {
	if cs.Len() == 0 {
		return Edge{}, false
	}
	return cs.edges[0], true
}

// IndexFrom returns the insertion index of the edge starting at p.
// Complexity: O(1).
func (cs *CellShape) IndexFrom(p Point) (int, bool) {
	if cs == nil {
		return -1, false
	}
	i, ok := cs.index[p]
	if !ok {
		return -1, false
	}
	return i, true
}

// EdgeFrom returns the edge starting at p.
// Complexity: O(1).
func (cs *CellShape) EdgeFrom(p Point) (Edge, bool) {
	if cs == nil {
		return Edge{}, false
	}
	i, ok := cs.index[p]
	if !ok {
		return Edge{}, false
	}
	return cs.edges[i], true
}
