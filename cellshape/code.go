package cellshape

import "github.com/katalvlaran/geocontour/core"

// Corner weights of the ternary isoband code.
const (
	weightTL = 64
	weightTR = 16
	weightBR = 4
	weightBL = 1
)

// Blank isoband codes: every corner below lower, or every corner at/above upper.
const (
	CodeAllBelow = 0
	CodeAllAbove = 170
)

// ternary classifies one value: 0 below lower, 1 in [lower, upper), 2 at/above upper.
func ternary(v, lower, upper float64) int {
	switch {
	case v < lower:
		return 0
	case v >= upper:
		return 2
	default:
		return 1
	}
}

// IsobandCode encodes the four corner states as TL·64 + TR·16 + BR·4 + BL.
// The result lies in [0,170]; 81 of those values are reachable.
func IsobandCode(c core.Corners, lower, upper float64) int {
	return ternary(c.TL.Value, lower, upper)*weightTL +
		ternary(c.TR.Value, lower, upper)*weightTR +
		ternary(c.BR.Value, lower, upper)*weightBR +
		ternary(c.BL.Value, lower, upper)*weightBL
}

// IsolineCode encodes corners at/above level as bits TL=8, TR=4, BR=2, BL=1.
func IsolineCode(c core.Corners, level float64) int {
	code := 0
	if c.TL.Value >= level {
		code |= 8
	}
	if c.TR.Value >= level {
		code |= 4
	}
	if c.BR.Value >= level {
		code |= 2
	}
	if c.BL.Value >= level {
		code |= 1
	}
	return code
}

// FamilyOf returns the topology family of an isoband code. Codes outside the
// catalog are Blank.
func FamilyOf(code int) Family {
	if code < 0 || code >= len(catalog) || catalog[code] == nil {
		return Blank
	}
	return catalog[code].family
}
