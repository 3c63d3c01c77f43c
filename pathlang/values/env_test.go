package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvDeclareAndLookup(t *testing.T) {
	t.Parallel()

	g := NewGlobalEnv()
	g.Declare("x", Plain(1))

	v, ok := g.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, Plain(1), v)

	_, ok = g.Lookup("y")
	assert.False(t, ok)
}

func TestEnvChildShadowsParent(t *testing.T) {
	t.Parallel()

	g := NewGlobalEnv()
	g.Declare("x", Plain(1))

	child := g.Child()
	child.Declare("x", Plain(2))

	v, _ := child.Lookup("x")
	assert.Equal(t, Plain(2), v)

	v, _ = g.Lookup("x")
	assert.Equal(t, Plain(1), v)
}

func TestEnvChildSeesParentBindings(t *testing.T) {
	t.Parallel()

	g := NewGlobalEnv()
	g.Declare("x", Plain(1))
	child := g.Child()

	v, ok := child.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, Plain(1), v)
}

func TestEnvAssignNearestUpdatesDeclaringScope(t *testing.T) {
	t.Parallel()

	g := NewGlobalEnv()
	g.Declare("x", Plain(1))
	child := g.Child()

	ok := child.AssignNearest("x", Plain(5))
	assert.True(t, ok)

	v, _ := g.Lookup("x")
	assert.Equal(t, Plain(5), v)

	_, hasOwn := func() (Value, bool) { v, ok := child.vars["x"]; return v, ok }()
	assert.False(t, hasOwn)
}

func TestEnvAssignNearestUndeclaredFails(t *testing.T) {
	t.Parallel()

	g := NewGlobalEnv()
	assert.False(t, g.AssignNearest("never", Plain(1)))
}
