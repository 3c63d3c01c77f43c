package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/svgdsl/svgdsl/pathlang/srcmap"
)

func TestNodePosPropagatesFromConstructor(t *testing.T) {
	t.Parallel()

	pos := srcmap.Position{Line: 3, Column: 7}
	lit := NewNumberLiteral(pos, 5, UnitNone)
	assert.Equal(t, pos, lit.Pos())

	let := NewLetDeclaration(pos, "x", lit)
	assert.Equal(t, pos, let.Pos())
	assert.Equal(t, "x", let.Name)
	assert.Same(t, lit, let.Value)
}

func TestBinaryExpressionHoldsOperandsAndOp(t *testing.T) {
	t.Parallel()

	pos := srcmap.Position{Line: 1, Column: 1}
	left := NewNumberLiteral(pos, 1, UnitNone)
	right := NewNumberLiteral(pos, 2, UnitNone)
	bin := NewBinaryExpression(pos, OpAdd, left, right)

	assert.Equal(t, OpAdd, bin.Op)
	assert.Same(t, left, bin.Left)
	assert.Same(t, right, bin.Right)
}

func TestProgramBodyIsStored(t *testing.T) {
	t.Parallel()

	pos := srcmap.Position{Line: 1, Column: 1}
	stmt := NewExpressionStatement(pos, NewNullLiteral(pos))
	prog := NewProgram(pos, []Stmt{stmt})

	assert.Len(t, prog.Body, 1)
	assert.Same(t, stmt, prog.Body[0])
}
