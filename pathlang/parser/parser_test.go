package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgdsl/svgdsl/pathlang/ast"
)

func TestParsePathCommands(t *testing.T) {
	t.Parallel()

	prog, err := Parse("M 10 20 l 5 5 Z")
	require.NoError(t, err)
	require.Len(t, prog.Body, 3)

	m, ok := prog.Body[0].(*ast.PathCommand)
	require.True(t, ok)
	assert.Equal(t, "M", m.Letter)
	require.Len(t, m.Args, 2)

	z, ok := prog.Body[2].(*ast.PathCommand)
	require.True(t, ok)
	assert.Equal(t, "Z", z.Letter)
	assert.Empty(t, z.Args)
}

func TestParsePathCommandNegativeArg(t *testing.T) {
	t.Parallel()

	prog, err := Parse("l -5 -3")
	require.NoError(t, err)
	cmd := prog.Body[0].(*ast.PathCommand)
	require.Len(t, cmd.Args, 2)
	u, ok := cmd.Args[0].(*ast.UnaryExpression)
	require.True(t, ok)
	assert.Equal(t, ast.OpNeg, u.Op)
}

func TestParseLetAndAssignment(t *testing.T) {
	t.Parallel()

	prog, err := Parse("let x = 5; x = x + 1;")
	require.NoError(t, err)
	require.Len(t, prog.Body, 2)

	decl, ok := prog.Body[0].(*ast.LetDeclaration)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)

	assign, ok := prog.Body[1].(*ast.Assignment)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)
	bin, ok := assign.Value.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, bin.Op)
}

func TestParseReservedWordAsDeclNameFails(t *testing.T) {
	t.Parallel()

	_, err := Parse("let if = 1;")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "reserved word")
}

func TestParseForRange(t *testing.T) {
	t.Parallel()

	prog, err := Parse("for (i in 0..10) { l i 0 }")
	require.NoError(t, err)
	fr, ok := prog.Body[0].(*ast.ForRange)
	require.True(t, ok)
	assert.Equal(t, "i", fr.Var)
	require.Len(t, fr.Body, 1)
}

func TestParseForRangeDestructuredBindingError(t *testing.T) {
	t.Parallel()

	_, err := Parse("for ([x,i] in 0..10) { }")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "destructured binding")
}

func TestParseForEachDestructured(t *testing.T) {
	t.Parallel()

	prog, err := Parse("for ([x, i] in pts) { l x 0 }")
	require.NoError(t, err)
	fe, ok := prog.Body[0].(*ast.ForEach)
	require.True(t, ok)
	assert.Equal(t, "x", fe.ItemVar)
	assert.Equal(t, "i", fe.IndexVar)
}

func TestParseIfElseIfElse(t *testing.T) {
	t.Parallel()

	prog, err := Parse(`
		if (x == 1) { l 1 1 }
		else if (x == 2) { l 2 2 }
		else { l 0 0 }
	`)
	require.NoError(t, err)
	ifs, ok := prog.Body[0].(*ast.IfStatement)
	require.True(t, ok)
	require.Len(t, ifs.Branches, 2)
	require.NotNil(t, ifs.Alternate)
}

func TestParseFunctionDefinitionAndReturn(t *testing.T) {
	t.Parallel()

	prog, err := Parse(`
		fn add(a, b) {
			return a + b;
		}
	`)
	require.NoError(t, err)
	fn, ok := prog.Body[0].(*ast.FunctionDefinition)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
	ret, ok := fn.Body[0].(*ast.ReturnStatement)
	require.True(t, ok)
	require.NotNil(t, ret.Value)
}

func TestParseBareReturn(t *testing.T) {
	t.Parallel()

	prog, err := Parse(`fn noop() { return; }`)
	require.NoError(t, err)
	fn := prog.Body[0].(*ast.FunctionDefinition)
	ret := fn.Body[0].(*ast.ReturnStatement)
	assert.Nil(t, ret.Value)
}

func TestParseLayerDefineAndApply(t *testing.T) {
	t.Parallel()

	prog, err := Parse(`
		define default PathLayer("outline") ${ stroke: red; };
		layer("outline").apply { M 0 0 }
	`)
	require.NoError(t, err)
	require.Len(t, prog.Body, 2)

	def, ok := prog.Body[0].(*ast.LayerDefine)
	require.True(t, ok)
	assert.False(t, def.IsText)
	assert.True(t, def.IsDefault)

	apply, ok := prog.Body[1].(*ast.LayerApply)
	require.True(t, ok)
	require.Len(t, apply.Body, 1)
}

func TestParseTextLayerDefine(t *testing.T) {
	t.Parallel()

	prog, err := Parse(`define TextLayer("labels") ${ fill: black; };`)
	require.NoError(t, err)
	def := prog.Body[0].(*ast.LayerDefine)
	assert.True(t, def.IsText)
	assert.False(t, def.IsDefault)
}

func TestParseExpressionPrecedence(t *testing.T) {
	t.Parallel()

	prog, err := Parse("let x = 1 + 2 * 3;")
	require.NoError(t, err)
	decl := prog.Body[0].(*ast.LetDeclaration)
	bin := decl.Value.(*ast.BinaryExpression)
	assert.Equal(t, ast.OpAdd, bin.Op)
	rhs, ok := bin.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, ast.OpMul, rhs.Op)
}

func TestParseMergeOperator(t *testing.T) {
	t.Parallel()

	prog, err := Parse("let x = a << b;")
	require.NoError(t, err)
	decl := prog.Body[0].(*ast.LetDeclaration)
	bin := decl.Value.(*ast.BinaryExpression)
	assert.Equal(t, ast.OpMerge, bin.Op)
}

func TestParsePostfixChains(t *testing.T) {
	t.Parallel()

	prog, err := Parse("let x = a.b[0].c(1, 2);")
	require.NoError(t, err)
	decl := prog.Body[0].(*ast.LetDeclaration)
	call, ok := decl.Value.(*ast.MethodCall)
	require.True(t, ok)
	assert.Equal(t, "c", call.Name)
	require.Len(t, call.Args, 2)

	idx, ok := call.Receiver.(*ast.Index)
	require.True(t, ok)
	_, ok = idx.Receiver.(*ast.Property)
	require.True(t, ok)
}

func TestParseArrayLiteral(t *testing.T) {
	t.Parallel()

	prog, err := Parse("let x = [1, 2, 3];")
	require.NoError(t, err)
	decl := prog.Body[0].(*ast.LetDeclaration)
	arr, ok := decl.Value.(*ast.ArrayLiteral)
	require.True(t, ok)
	assert.Len(t, arr.Elements, 3)
}

func TestParseCalcExpression(t *testing.T) {
	t.Parallel()

	prog, err := Parse("l calc(1 + 2) 0")
	require.NoError(t, err)
	cmd := prog.Body[0].(*ast.PathCommand)
	calc, ok := cmd.Args[0].(*ast.CalcExpression)
	require.True(t, ok)
	require.NotNil(t, calc.Inner)
}

func TestParseStyleBlockLiteral(t *testing.T) {
	t.Parallel()

	prog, err := Parse(`let s = ${ stroke: red; stroke-width: 1px solid black; fill: calc(1+1); };`)
	require.NoError(t, err)
	decl := prog.Body[0].(*ast.LetDeclaration)
	blk, ok := decl.Value.(*ast.StyleBlockLiteral)
	require.True(t, ok)
	require.Len(t, blk.Entries, 3)
	assert.Equal(t, "stroke", blk.Entries[0].Property)
	strVal, ok := blk.Entries[0].Value.(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "red", strVal.Value)

	assert.Equal(t, "stroke-width", blk.Entries[1].Property)
	sw, ok := blk.Entries[1].Value.(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "1px solid black", sw.Value)

	_, ok = blk.Entries[2].Value.(*ast.CalcExpression)
	require.True(t, ok)
}

func TestParsePathBlockExpression(t *testing.T) {
	t.Parallel()

	prog, err := Parse("let x = @{ M 0 0 l 1 1 };")
	require.NoError(t, err)
	decl := prog.Body[0].(*ast.LetDeclaration)
	pb, ok := decl.Value.(*ast.PathBlockExpression)
	require.True(t, ok)
	assert.Len(t, pb.Body, 2)
}

func TestParseTemplateLiteralInterpolation(t *testing.T) {
	t.Parallel()

	prog, err := Parse("let x = `a${1 + 2}b`;")
	require.NoError(t, err)
	decl := prog.Body[0].(*ast.LetDeclaration)
	tmpl, ok := decl.Value.(*ast.TemplateLiteral)
	require.True(t, ok)
	require.Len(t, tmpl.Parts, 3)
	assert.Equal(t, "a", tmpl.Parts[0].Literal)
	require.NotNil(t, tmpl.Parts[1].Expr)
	assert.Equal(t, "b", tmpl.Parts[2].Literal)
}

func TestParseTextInlineTemplate(t *testing.T) {
	t.Parallel()

	prog, err := Parse("text(10, 20) `hello`;")
	require.NoError(t, err)
	txt, ok := prog.Body[0].(*ast.TextStatement)
	require.True(t, ok)
	require.NotNil(t, txt.Inline)
	assert.Nil(t, txt.Rotation)
}

func TestParseTextWithRotationAndStyle(t *testing.T) {
	t.Parallel()

	prog, err := Parse("text(10, 20, 90deg, ${ fill: red; }) `hi`;")
	require.NoError(t, err)
	txt := prog.Body[0].(*ast.TextStatement)
	require.NotNil(t, txt.Rotation)
	require.NotNil(t, txt.StyleExpr)
}

func TestParseTextBlockWithTspanAndControlFlow(t *testing.T) {
	t.Parallel()

	prog, err := Parse(`
		text(0, 0) {
			` + "`prefix `" + `
			tspan(1, 2) ` + "`middle`" + `;
			for (i in 0..2) { ` + "`x`" + ` }
			if (1) { ` + "`y`" + ` }
		}
	`)
	require.NoError(t, err)
	txt := prog.Body[0].(*ast.TextStatement)
	require.Len(t, txt.Children, 4)
	assert.Equal(t, ast.ChildRun, txt.Children[0].Kind)
	assert.Equal(t, ast.ChildTspan, txt.Children[1].Kind)
	assert.Equal(t, ast.ChildFor, txt.Children[2].Kind)
	assert.Equal(t, ast.ChildIf, txt.Children[3].Kind)
}

func TestParseLogArgSpans(t *testing.T) {
	t.Parallel()

	prog, err := Parse(`log(x + 1, "literal");`)
	require.NoError(t, err)
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expr.(*ast.FunctionCall)
	require.True(t, ok)
	require.Len(t, call.ArgSpans, 2)
	assert.Equal(t, "x + 1", call.ArgSpans[0])
}

func TestParseErrorUnexpectedToken(t *testing.T) {
	t.Parallel()

	_, err := Parse("let = 1;")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrParse)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Pos.Line)
}

func TestParseLenientTrailingSemicolon(t *testing.T) {
	t.Parallel()

	prog, err := Parse("let x = 1")
	require.NoError(t, err)
	require.Len(t, prog.Body, 1)
}
