package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleBlockSetGetPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	s := NewStyleBlock()
	s.Set("stroke", "red")
	s.Set("fill", "blue")
	s.Set("stroke", "green")

	assert.Equal(t, []string{"stroke", "fill"}, s.Keys())
	v, ok := s.Get("stroke")
	assert.True(t, ok)
	assert.Equal(t, "green", v)
}

func TestStyleBlockMergeOverwritesSharedKeys(t *testing.T) {
	t.Parallel()

	a := NewStyleBlock()
	a.Set("stroke", "red")
	a.Set("fill", "blue")

	b := NewStyleBlock()
	b.Set("stroke", "green")
	b.Set("stroke-width", "2")

	merged := a.Merge(b)
	assert.Equal(t, []string{"stroke", "fill", "stroke-width"}, merged.Keys())
	v, _ := merged.Get("stroke")
	assert.Equal(t, "green", v)
}

func TestStyleBlockString(t *testing.T) {
	t.Parallel()

	s := NewStyleBlock()
	s.Set("stroke", "red")
	s.Set("fill", "blue")

	assert.Equal(t, "stroke: red; fill: blue;", s.String())
}

func TestStyleBlockToMap(t *testing.T) {
	t.Parallel()

	s := NewStyleBlock()
	s.Set("stroke", "red")

	assert.Equal(t, map[string]string{"stroke": "red"}, s.ToMap())
}

func TestKebabToCamelAndBack(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "strokeWidth", KebabToCamel("stroke-width"))
	assert.Equal(t, "stroke-width", CamelToKebab("strokeWidth"))
	assert.Equal(t, "fill", KebabToCamel("fill"))
	assert.Equal(t, "fill", CamelToKebab("fill"))
}
