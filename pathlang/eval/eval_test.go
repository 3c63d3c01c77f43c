package eval

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgdsl/svgdsl/pathlang/parser"
)

func run(t *testing.T, source string) *Evaluator {
	t.Helper()
	program, err := parser.Parse(source)
	require.NoError(t, err)
	e := New(source, Options{})
	require.NoError(t, e.Run(program))
	return e
}

func TestEvalArithmeticPrecedence(t *testing.T) {
	t.Parallel()

	e := run(t, "M calc(1 + 2 * 3) 0")
	assert.Equal(t, "M 7 0", e.DefaultLayer().Ctx.Data())
}

func TestEvalComparisonAndLogicalOperators(t *testing.T) {
	t.Parallel()

	e := run(t, "if (1 < 2 && 2 == 2) { M 1 1 } else { M 0 0 }")
	assert.Equal(t, "M 1 1", e.DefaultLayer().Ctx.Data())
}

func TestEvalElseBranchOnFalseCondition(t *testing.T) {
	t.Parallel()

	e := run(t, "if (1 > 2) { M 1 1 } else { M 0 0 }")
	assert.Equal(t, "M 0 0", e.DefaultLayer().Ctx.Data())
}

func TestEvalMergeCombinesStyleBlocksWithRightPrecedence(t *testing.T) {
	t.Parallel()

	src := "let s = ${ stroke: red; fill: blue; } << ${ stroke: green; }; log(s.stroke, s.fill);"
	program, err := parser.Parse(src)
	require.NoError(t, err)
	e := New(src, Options{})
	require.NoError(t, e.Run(program))
	require.Len(t, e.Logs, 1)
	parts := e.Logs[0].Parts
	require.Len(t, parts, 2)
	assert.Equal(t, "green", parts[0].Value)
	assert.Equal(t, "blue", parts[1].Value)
}

func TestEvalMergeRejectsNonStyleBlockOperands(t *testing.T) {
	t.Parallel()

	src := "let x = 1 << 2;"
	program, err := parser.Parse(src)
	require.NoError(t, err)
	e := New(src, Options{})
	err = e.Run(program)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTypeError)
}

func TestEvalArrayIndexOutOfBoundsError(t *testing.T) {
	t.Parallel()

	program, err := parser.Parse("let a = [1,2]; M a[5] 0")
	require.NoError(t, err)
	e := New("let a = [1,2]; M a[5] 0", Options{})
	err = e.Run(program)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestEvalUndefinedFunctionCallError(t *testing.T) {
	t.Parallel()

	program, err := parser.Parse("M missingFn(1) 0")
	require.NoError(t, err)
	e := New("M missingFn(1) 0", Options{})
	err = e.Run(program)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUndefinedFunction)
}

func TestEvalFunctionArityMismatchError(t *testing.T) {
	t.Parallel()

	src := "fn add(a,b) { return calc(a+b); } M add(1) 0"
	program, err := parser.Parse(src)
	require.NoError(t, err)
	e := New(src, Options{})
	err = e.Run(program)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrArityMismatch)
}

func TestEvalNullUsageAsPathArgError(t *testing.T) {
	t.Parallel()

	src := "let x = null; M x 0"
	program, err := parser.Parse(src)
	require.NoError(t, err)
	e := New(src, Options{})
	err = e.Run(program)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNullUsage)
}

func TestEvalAssignmentToUndeclaredVariableError(t *testing.T) {
	t.Parallel()

	src := "x = 1;"
	program, err := parser.Parse(src)
	require.NoError(t, err)
	e := New(src, Options{})
	err = e.Run(program)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrAssignmentError)
}

func TestEvalForRangeStopsAtInclusiveBound(t *testing.T) {
	t.Parallel()

	e := run(t, "for (i in 0..2) { M i 0 }")
	assert.Equal(t, "M 0 0 M 1 0 M 2 0", e.DefaultLayer().Ctx.Data())
}

func TestEvalForEachIteratesArrayWithIndex(t *testing.T) {
	t.Parallel()

	e := run(t, "let pts = [10, 20]; for ([v, i] in pts) { M v i }")
	assert.Equal(t, "M 10 0 M 20 1", e.DefaultLayer().Ctx.Data())
}

func TestEvalForRangeIterationBudgetIsPerLoopNotCumulative(t *testing.T) {
	t.Parallel()

	// Two independent loops, each well under the 10000-iteration cap on
	// its own, must not share a single evaluator-wide budget.
	e := run(t, "for (i in 0..5999) {} for (j in 0..4999) { M j 0 }")
	want := make([]string, 5000)
	for j := range want {
		want[j] = "M " + strconv.Itoa(j) + " 0"
	}
	assert.Equal(t, strings.Join(want, " "), e.DefaultLayer().Ctx.Data())
}

func TestEvalCalcAngleUnitMismatchRejectsBareNumberPlusAngle(t *testing.T) {
	t.Parallel()

	program, err := parser.Parse("M calc(90deg + 5) 0")
	require.NoError(t, err)
	e := New("M calc(90deg + 5) 0", Options{})
	err = e.Run(program)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAngleUnitMismatch)
}

func TestEvalNamedLayerApplyAccumulatesSeparateContext(t *testing.T) {
	t.Parallel()

	src := `define PathLayer("outline") ${ stroke: red; };
layer("outline").apply { M 1 1 L 2 2 }`
	e := run(t, src)

	require.Len(t, e.Layers(), 1)
	layer := e.Layers()[0]
	assert.Equal(t, "outline", layer.Name)
	assert.Equal(t, "M 1 1 L 2 2", layer.Ctx.Data())
	v, ok := layer.Style.Get("stroke")
	require.True(t, ok)
	assert.Equal(t, "red", v)
}

func TestEvalLogLiteralStringPassesThroughVerbatim(t *testing.T) {
	t.Parallel()

	src := `log("hello", 1 + 1);`
	program, err := parser.Parse(src)
	require.NoError(t, err)
	e := New(src, Options{})
	require.NoError(t, e.Run(program))

	require.Len(t, e.Logs, 1)
	parts := e.Logs[0].Parts
	require.Len(t, parts, 2)
	assert.False(t, parts[0].IsValue)
	assert.Equal(t, "hello", parts[0].String)
	assert.True(t, parts[1].IsValue)
	assert.Equal(t, "2", parts[1].Value)
	assert.Equal(t, "1 + 1", parts[1].Label)
}
