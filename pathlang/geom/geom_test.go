package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	t.Parallel()

	p := Point{1, 2}
	q := Point{3, 5}

	assert.Equal(t, Point{4, 7}, p.Add(q))
	assert.Equal(t, Point{-2, -3}, p.Sub(q))
	assert.Equal(t, Point{2, 4}, p.Scale(2))
	assert.InDelta(t, 5.0, Point{0, 0}.Distance(Point{3, 4}), 1e-9)
}

func TestPointLerpAndMidpoint(t *testing.T) {
	t.Parallel()

	p := Point{0, 0}
	q := Point{10, 20}

	assert.Equal(t, Point{5, 10}, p.Midpoint(q))
	assert.Equal(t, Point{2.5, 5}, p.Lerp(q, 0.25))
	assert.Equal(t, p, p.Lerp(q, 0))
	assert.Equal(t, q, p.Lerp(q, 1))
}

func TestPointAngleToAndPolarOffset(t *testing.T) {
	t.Parallel()

	p := Point{0, 0}
	angle := p.AngleTo(Point{1, 0})
	assert.InDelta(t, 0.0, angle, 1e-9)

	angle = p.AngleTo(Point{0, 1})
	assert.InDelta(t, math.Pi/2, angle, 1e-9)

	moved := p.PolarOffset(0, 5)
	assert.InDelta(t, 5.0, moved.X, 1e-9)
	assert.InDelta(t, 0.0, moved.Y, 1e-9)
}

func TestPointRotate(t *testing.T) {
	t.Parallel()

	p := Point{1, 0}
	rotated := p.Rotate(math.Pi/2, Point{0, 0})
	assert.InDelta(t, 0.0, rotated.X, 1e-9)
	assert.InDelta(t, 1.0, rotated.Y, 1e-9)
}

func TestPointEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, Point{1, 2}.Equal(Point{1, 2}))
	assert.False(t, Point{1, 2}.Equal(Point{1, 3}))
}
