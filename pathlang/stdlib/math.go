// Package stdlib implements svgdsl's standard library: pure math/trig
// helpers and the path-shape generators, kept independent of the
// evaluator and value model so they're unit-testable on their own. Package
// eval wires these into the global environment as values.Builtin entries
// and, for the shape generators, drives their returned Cmd lists into the
// active pathctx.PathContext.
package stdlib

import "math"

const (
	Pi  = math.Pi
	E   = math.E
	Tau = 2 * math.Pi
)

func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Map re-ranges v from [inLo, inHi] to [outLo, outHi].
func Map(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	t := (v - inLo) / (inHi - inLo)
	return outLo + t*(outHi-outLo)
}

func Deg(rad float64) float64 { return rad * 180 / math.Pi }
func Rad(deg float64) float64 { return deg * math.Pi / 180 }

// Sign returns -1, 0, or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Min/Max are variadic so the builtin wrapper can pass through any arity.
func Min(vs ...float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func Max(vs ...float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
