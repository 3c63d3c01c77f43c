// Package format renders svgdsl numbers as SVG path-compatible text.
//
// By default a number prints with the shortest decimal representation that
// round-trips back to the same float64 (strconv's -1 precision mode, the
// idiomatic Go way to do this; there is no ecosystem library in the
// retrieved examples that improves on the standard library here). When
// CompileOptions.ToFixed is set, rounding uses github.com/shopspring/
// decimal instead of raw float arithmetic, because naive float rounding
// produces exactly the kind of off-by-one-ULP error (e.g. 10.0/3 rounding
// to "3.33" vs "3.34") that decimal exists to avoid.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Options controls numeric rendering.
type Options struct {
	// ToFixed, when non-nil, rounds non-integer numbers to this many
	// decimal places.
	ToFixed *int
}

// Number renders v as path-command-compatible text.
func Number(v float64, opt Options) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 1) {
		return "Infinity"
	}
	if math.IsInf(v, -1) {
		return "-Infinity"
	}
	if opt.ToFixed == nil || v == math.Trunc(v) {
		return shortest(v)
	}
	return fixed(v, *opt.ToFixed)
}

// Flag renders an SVG arc flag (0 or 1), always as a bare integer
// regardless of rounding options.
func Flag(v float64) string {
	if v != 0 {
		return "1"
	}
	return "0"
}

func shortest(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fixed rounds v to k decimal places using round-half-away-from-zero, via
// shopspring/decimal, and prints exactly k decimals (no trailing-zero
// stripping unless k is 0, per spec).
func fixed(v float64, k int) string {
	if k < 0 {
		k = 0
	}
	d := decimal.NewFromFloat(v)
	// decimal.Round uses banker's rounding (round-half-to-even); instead,
	// scale by 10^k, add 0.5 in the value's sign direction and truncate, so
	// ties resolve away from zero, matching spec's "round-half-away-from-zero".
	scale := decimal.New(1, int32(k))
	shifted := d.Mul(scale)
	half := decimal.NewFromFloat(0.5)
	if shifted.Sign() < 0 {
		half = half.Neg()
	}
	rounded := shifted.Add(half).Truncate(0).Div(scale)
	s := rounded.StringFixed(int32(k))
	return padFixed(s, k)
}

// padFixed is a defensive no-op formatter kept separate from the rounding
// math above so a future change to trailing-zero behavior touches one
// place.
func padFixed(s string, k int) string {
	if k == 0 {
		// Integers only: strip a trailing ".0" if StringFixed left one.
		if i := strings.IndexByte(s, '.'); i >= 0 {
			return s[:i]
		}
	}
	return s
}
