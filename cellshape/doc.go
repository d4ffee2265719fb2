// Package cellshape classifies one grid cell and emits its directed boundary
// edges.
//
// Isobands:
//
//	Each corner is 0 (below lower), 1 (in band) or 2 (at/above upper). The
//	code TL·64 + TR·16 + BR·4 + BL selects one of 81 configurations:
//
//	  blank       0, 170
//	  triangle    8 codes, one corner alone on its side of the band
//	  pentagon    24 codes, one corner cut off an in-band cell
//	  rectangle   12 codes, two parallel crossings
//	  trapezoid   8 codes, both thresholds across the cell
//	  hexagon     12 codes, two adjacent-side corners cut
//	  saddle      14 codes, resolved by the corner average
//	  square      85, all four corners in band
//
//	Polygon families collect up to eight candidate points clockwise from the
//	top side next to TR and connect them by a per-code step list. Saddles and
//	the square carry explicit strands per average regime.
//
// Edges and moves:
//
//	Every edge names the neighbour cell holding its continuation. Edges along
//	a cell side exist only when that side is a grid border; interior sides are
//	shared and would cancel. Moves that would leave the grid become
//	core.MoveNone.
//
// Isolines:
//
//	Classic 4-bit marching squares with saddles 5 and 10 split by the average.
//	Isoline edges are undirected segments carrying core.MoveNone.
//
// Every function here is pure and O(1) per cell.
package cellshape
