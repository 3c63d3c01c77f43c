package srcmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapPosition(t *testing.T) {
	t.Parallel()

	m := New("ab\ncde\nf")

	for _, tc := range []struct {
		name   string
		offset int
		want   Position
	}{
		{"start", 0, Position{Line: 1, Column: 1}},
		{"mid_first_line", 1, Position{Line: 1, Column: 2}},
		{"start_second_line", 3, Position{Line: 2, Column: 1}},
		{"mid_second_line", 5, Position{Line: 2, Column: 3}},
		{"start_third_line", 7, Position{Line: 3, Column: 1}},
		{"clamped_negative", -5, Position{Line: 1, Column: 1}},
		{"clamped_past_end", 1000, Position{Line: 3, Column: 2}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, m.Position(tc.offset))
		})
	}
}

func TestMapSlice(t *testing.T) {
	t.Parallel()

	m := New("hello world")
	assert.Equal(t, "hello", m.Slice(0, 5))
	assert.Equal(t, "world", m.Slice(6, 11))
	assert.Equal(t, "", m.Slice(5, 5))
	assert.Equal(t, "hello world", m.Slice(0, 1000))
}
