package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestNumberShortest(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		v    float64
		want string
	}{
		{"integer", 10, "10"},
		{"negative_integer", -5, "-5"},
		{"decimal", 1.5, "1.5"},
		{"zero", 0, "0"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Number(tc.v, Options{}))
		})
	}
}

func TestNumberSpecialValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "NaN", Number(math.NaN(), Options{}))
	assert.Equal(t, "Infinity", Number(math.Inf(1), Options{}))
	assert.Equal(t, "-Infinity", Number(math.Inf(-1), Options{}))
}

func TestNumberToFixed(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		v    float64
		k    int
		want string
	}{
		{"two_places", 10.0 / 3, 2, "3.33"},
		{"round_half_away_from_zero", 0.125, 2, "0.13"},
		{"negative_rounding", -0.125, 2, "-0.13"},
		{"zero_places", 1.7, 0, "2"},
		{"whole_number_unaffected", 5, 2, "5"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Number(tc.v, Options{ToFixed: intPtr(tc.k)}))
		})
	}
}

func TestFlag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", Flag(0))
	assert.Equal(t, "1", Flag(1))
	assert.Equal(t, "1", Flag(-1))
}
