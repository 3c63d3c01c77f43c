package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 5.0, Lerp(0, 10, 0.5), 1e-9)
	assert.Equal(t, 0.0, Lerp(0, 10, 0))
	assert.Equal(t, 10.0, Lerp(0, 10, 1))
}

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5.0, Clamp(5, 0, 10))
	assert.Equal(t, 0.0, Clamp(-5, 0, 10))
	assert.Equal(t, 10.0, Clamp(15, 0, 10))
}

func TestClampSwapsInvertedBounds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5.0, Clamp(5, 10, 0))
}

func TestMap(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 5.0, Map(5, 0, 10, 0, 10), 1e-9)
	assert.InDelta(t, 50.0, Map(5, 0, 10, 0, 100), 1e-9)
}

func TestMapDegenerateInputRangeReturnsOutLo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3.0, Map(5, 4, 4, 3, 9))
}

func TestDegRad(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 180.0, Deg(Pi), 1e-9)
	assert.InDelta(t, Pi, Rad(180), 1e-9)
}

func TestSign(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, Sign(5))
	assert.Equal(t, -1.0, Sign(-5))
	assert.Equal(t, 0.0, Sign(0))
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, Min(3, 1, 2))
	assert.Equal(t, 3.0, Max(3, 1, 2))
}
