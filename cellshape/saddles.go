package cellshape

import "github.com/katalvlaran/geocontour/core"

// Saddle strands are written once per geometric pattern against two threshold
// builders; a code and its threshold mirror instantiate the same pattern with
// the builders swapped.

// aroundTR is the corner strand around TR using crossings of lv.
func aroundTR(lv level) strand {
	return strand{
		verts: []vertex{lv(core.Right), lv(core.Top), at(cornerTR)},
		steps: []step{across(0, 1, up), along(core.Top, 1, 2, right), along(core.Right, 2, 0, none)},
	}
}

func aroundBL(lv level) strand {
	return strand{
		verts: []vertex{lv(core.Left), lv(core.Bottom), at(cornerBL)},
		steps: []step{across(0, 1, down), along(core.Bottom, 1, 2, left), along(core.Left, 2, 0, none)},
	}
}

func aroundTL(lv level) strand {
	return strand{
		verts: []vertex{lv(core.Top), lv(core.Left), at(cornerTL)},
		steps: []step{across(0, 1, left), along(core.Left, 1, 2, up), along(core.Top, 2, 0, none)},
	}
}

func aroundBR(lv level) strand {
	return strand{
		verts: []vertex{lv(core.Bottom), lv(core.Right), at(cornerBR)},
		steps: []step{across(0, 1, right), along(core.Right, 1, 2, down), along(core.Bottom, 2, 0, none)},
	}
}

// joinedTRBL links the TR and BL in-band corners through the cell centre.
func joinedTRBL(lv level) strand {
	return strand{
		verts: []vertex{lv(core.Right), lv(core.Bottom), at(cornerBL), lv(core.Left), lv(core.Top), at(cornerTR)},
		steps: []step{
			across(0, 1, down), along(core.Bottom, 1, 2, left), along(core.Left, 2, 3, none),
			across(3, 4, up), along(core.Top, 4, 5, right), along(core.Right, 5, 0, none),
		},
	}
}

// joinedTLBR links the TL and BR in-band corners through the cell centre.
func joinedTLBR(lv level) strand {
	return strand{
		verts: []vertex{lv(core.Top), lv(core.Right), at(cornerBR), lv(core.Bottom), lv(core.Left), at(cornerTL)},
		steps: []step{
			across(0, 1, right), along(core.Right, 1, 2, down), along(core.Bottom, 2, 3, none),
			across(3, 4, left), along(core.Left, 4, 5, up), along(core.Top, 5, 0, none),
		},
	}
}

// Quads span both thresholds along one corner: from the a-crossing on the
// first side to the a-crossing on the second, then back along the b-crossings.

func quadTL(a, b level) strand {
	return strand{
		verts: []vertex{a(core.Top), a(core.Left), b(core.Left), b(core.Top)},
		steps: []step{across(0, 1, left), along(core.Left, 1, 2, none), across(2, 3, up), along(core.Top, 3, 0, none)},
	}
}

func quadTR(a, b level) strand {
	return strand{
		verts: []vertex{a(core.Top), a(core.Right), b(core.Right), b(core.Top)},
		steps: []step{across(0, 1, right), along(core.Right, 1, 2, none), across(2, 3, up), along(core.Top, 3, 0, none)},
	}
}

func quadBR(a, b level) strand {
	return strand{
		verts: []vertex{a(core.Right), a(core.Bottom), b(core.Bottom), b(core.Right)},
		steps: []step{across(0, 1, down), along(core.Bottom, 1, 2, none), across(2, 3, right), along(core.Right, 3, 0, none)},
	}
}

func quadBL(a, b level) strand {
	return strand{
		verts: []vertex{a(core.Bottom), a(core.Left), b(core.Left), b(core.Bottom)},
		steps: []step{across(0, 1, left), along(core.Left, 1, 2, none), across(2, 3, down), along(core.Bottom, 3, 0, none)},
	}
}

// octagon is the in-between regime of the 2020/0202 saddles.
func octagon(a, b level) strand {
	return strand{
		verts: []vertex{a(core.Top), a(core.Right), b(core.Right), b(core.Bottom), a(core.Bottom), a(core.Left), b(core.Left), b(core.Top)},
		steps: []step{
			across(0, 1, right), along(core.Right, 1, 2, none), across(2, 3, down), along(core.Bottom, 3, 4, none),
			across(4, 5, left), along(core.Left, 5, 6, none), across(6, 7, up), along(core.Top, 7, 0, none),
		},
	}
}

// Mixed saddles: one corner strand plus one two-threshold quad in the outer
// regimes, a single heptagon in between.

func heptTR(a, b level) strand { // 2120 with a=hi, b=lo
	return strand{
		verts: []vertex{a(core.Right), a(core.Bottom), b(core.Bottom), b(core.Left), a(core.Left), a(core.Top), at(cornerTR)},
		steps: []step{
			across(0, 1, down), along(core.Bottom, 1, 2, none), across(2, 3, left), along(core.Left, 3, 4, none),
			across(4, 5, up), along(core.Top, 5, 6, right), along(core.Right, 6, 0, none),
		},
	}
}

func heptBL(a, b level) strand { // 2021 with a=lo, b=hi
	return strand{
		verts: []vertex{a(core.Top), a(core.Right), b(core.Right), b(core.Bottom), at(cornerBL), b(core.Left), b(core.Top)},
		steps: []step{
			across(0, 1, right), along(core.Right, 1, 2, none), across(2, 3, down), along(core.Bottom, 3, 4, left),
			along(core.Left, 4, 5, none), across(5, 6, up), along(core.Top, 6, 0, none),
		},
	}
}

func heptTL(a, b level) strand { // 1202 with a=hi, b=lo
	return strand{
		verts: []vertex{a(core.Top), a(core.Right), b(core.Right), b(core.Bottom), a(core.Bottom), a(core.Left), at(cornerTL)},
		steps: []step{
			across(0, 1, right), along(core.Right, 1, 2, none), across(2, 3, down), along(core.Bottom, 3, 4, none),
			across(4, 5, left), along(core.Left, 5, 6, up), along(core.Top, 6, 0, none),
		},
	}
}

func heptBR(a, b level) strand { // 0212 with a=hi, b=lo
	return strand{
		verts: []vertex{a(core.Top), a(core.Right), at(cornerBR), a(core.Bottom), a(core.Left), b(core.Left), b(core.Top)},
		steps: []step{
			across(0, 1, right), along(core.Right, 1, 2, down), along(core.Bottom, 2, 3, none),
			across(3, 4, left), along(core.Left, 4, 5, none), across(5, 6, up), along(core.Top, 6, 0, none),
		},
	}
}

func saddle(r regimes) *shape {
	return &shape{family: Saddle, split: &r}
}

func outer(parts []strand, mid strand) *shape {
	return saddle(regimes{below: parts, between: []strand{mid}, above: parts})
}

func registerSaddles() {
	// 2121 / 0101: TR and BL in band. Split when the centre is outside the band.
	register(saddle(regimes{
		between: []strand{joinedTRBL(hi)},
		above:   []strand{aroundTR(hi), aroundBL(hi)},
	}), 153)
	register(saddle(regimes{
		below:   []strand{aroundTR(lo), aroundBL(lo)},
		between: []strand{joinedTRBL(lo)},
	}), 17)

	// 1212 / 1010: TL and BR in band.
	register(saddle(regimes{
		between: []strand{joinedTLBR(hi)},
		above:   []strand{aroundTL(hi), aroundBR(hi)},
	}), 102)
	register(saddle(regimes{
		below:   []strand{aroundTL(lo), aroundBR(lo)},
		between: []strand{joinedTLBR(lo)},
	}), 68)

	// 2020 / 0202: opposite corners on opposite sides of the band.
	register(saddle(regimes{
		below:   []strand{quadTL(lo, hi), quadBR(hi, lo)},
		between: []strand{octagon(lo, hi)},
		above:   []strand{quadTR(lo, hi), quadBL(lo, hi)},
	}), 136)
	register(saddle(regimes{
		below:   []strand{quadTR(hi, lo), quadBL(hi, lo)},
		between: []strand{octagon(hi, lo)},
		above:   []strand{quadTL(hi, lo), quadBR(lo, hi)},
	}), 34)

	// Mixed saddles: one in-band corner, one corner per threshold side.
	register(outer([]strand{aroundTR(hi), quadBL(lo, hi)}, heptTR(hi, lo)), 152)
	register(outer([]strand{aroundTR(lo), quadBL(hi, lo)}, heptTR(lo, hi)), 18)
	register(outer([]strand{quadTR(lo, hi), aroundBL(hi)}, heptBL(lo, hi)), 137)
	register(outer([]strand{quadTR(hi, lo), aroundBL(lo)}, heptBL(hi, lo)), 33)
	register(outer([]strand{aroundTL(hi), quadBR(lo, hi)}, heptTL(hi, lo)), 98)
	register(outer([]strand{aroundTL(lo), quadBR(hi, lo)}, heptTL(lo, hi)), 72)
	register(outer([]strand{quadTL(hi, lo), aroundBR(hi)}, heptBR(hi, lo)), 38)
	register(outer([]strand{quadTL(lo, hi), aroundBR(lo)}, heptBR(lo, hi)), 132)
}
