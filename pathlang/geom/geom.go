// Package geom provides the small set of 2D vector operations shared by
// pathctx, pathblock, stdlib, and values, so none of those packages need to
// import one another just to pass points around.
package geom

import "math"

// Point is a plain 2D coordinate.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Lerp returns the point t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Midpoint returns the midpoint of p and q.
func (p Point) Midpoint(q Point) Point {
	return p.Lerp(q, 0.5)
}

// AngleTo returns the angle in radians from p to q, atan2(dy, dx).
func (p Point) AngleTo(q Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// PolarOffset returns p translated by dist at angle (radians).
func (p Point) PolarOffset(angle, dist float64) Point {
	return Point{p.X + math.Cos(angle)*dist, p.Y + math.Sin(angle)*dist}
}

// Rotate returns p rotated by angle (radians) around origin.
func (p Point) Rotate(angle float64, origin Point) Point {
	s, c := math.Sin(angle), math.Cos(angle)
	dx, dy := p.X-origin.X, p.Y-origin.Y
	return Point{
		X: origin.X + dx*c - dy*s,
		Y: origin.Y + dx*s + dy*c,
	}
}

// Equal reports whether p and q are exactly equal.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}
