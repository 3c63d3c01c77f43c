package eval

import (
	"math"

	"github.com/svgdsl/svgdsl/pathlang/ast"
	"github.com/svgdsl/svgdsl/pathlang/values"
)

// ctrl propagates a return-statement's unwind up through nested blocks. It
// is an explicit signal distinct from error, caught only at the function
// call boundary, per the design note "return as unwind".
type ctrl struct {
	isReturn bool
	value    values.Value
}

func noCtrl() ctrl { return ctrl{} }

// execBlock runs stmts in order, stopping early on the first error or
// return signal.
func (e *Evaluator) execBlock(stmts []ast.Stmt, env *values.Env) (ctrl, error) {
	for _, s := range stmts {
		c, err := e.execStmt(s, env)
		if err != nil {
			return noCtrl(), err
		}
		if c.isReturn {
			return c, nil
		}
	}
	return noCtrl(), nil
}

func (e *Evaluator) execStmt(s ast.Stmt, env *values.Env) (ctrl, error) {
	switch n := s.(type) {
	case *ast.LetDeclaration:
		v, err := e.eval(n.Value, env)
		if err != nil {
			return noCtrl(), err
		}
		env.Declare(n.Name, v)
		return noCtrl(), nil

	case *ast.Assignment:
		v, err := e.eval(n.Value, env)
		if err != nil {
			return noCtrl(), err
		}
		if !env.AssignNearest(n.Name, v) {
			return noCtrl(), newError(KindAssignmentError, n.Pos(), "cannot assign to undeclared variable %q", n.Name)
		}
		return noCtrl(), nil

	case *ast.PathCommand:
		return noCtrl(), e.execPathCommand(n, env)

	case *ast.ForRange:
		return e.execForRange(n, env)

	case *ast.ForEach:
		return e.execForEach(n, env)

	case *ast.IfStatement:
		return e.execIf(n, env)

	case *ast.FunctionDefinition:
		env.Declare(n.Name, values.FunctionValue(&values.UserFunction{
			Name: n.Name, Params: n.Params, Body: n.Body, Captured: env,
		}))
		return noCtrl(), nil

	case *ast.ReturnStatement:
		if n.Value == nil {
			return ctrl{isReturn: true, value: values.Null}, nil
		}
		v, err := e.eval(n.Value, env)
		if err != nil {
			return noCtrl(), err
		}
		return ctrl{isReturn: true, value: v}, nil

	case *ast.LayerDefine:
		return noCtrl(), e.execLayerDefine(n, env)

	case *ast.LayerApply:
		return e.execLayerApply(n, env)

	case *ast.TextStatement:
		return noCtrl(), e.execTextStatement(n, env)

	case *ast.ExpressionStatement:
		_, err := e.eval(n.Expr, env)
		return noCtrl(), err

	default:
		return noCtrl(), newError(KindTypeError, s.Pos(), "unsupported statement node %T", s)
	}
}

func (e *Evaluator) execForRange(n *ast.ForRange, env *values.Env) (ctrl, error) {
	startV, err := e.eval(n.Start, env)
	if err != nil {
		return noCtrl(), err
	}
	endV, err := e.eval(n.End, env)
	if err != nil {
		return noCtrl(), err
	}
	if !startV.IsNumber() || !endV.IsNumber() {
		return noCtrl(), newError(KindRangeError, n.Pos(), "for-loop range bounds must be numbers")
	}
	start, end := startV.Num(), endV.Num()
	if isNonFinite(start) || isNonFinite(end) {
		return noCtrl(), newError(KindRangeError, n.Pos(), "for-loop range bounds must be finite")
	}

	step := 1.0
	count := int(end-start) + 1
	if start > end {
		step = -1
		count = int(start-end) + 1
	}
	if count < 0 {
		count = 0
	}

	if e.Hooks.BeforeFor != nil {
		e.Hooks.BeforeFor(forRangeLabel(n), n.Pos().Line, count)
	}

	var iterations int
	for i := 0; i < count; i++ {
		if iterations >= maxForIterations {
			return noCtrl(), newError(KindRangeError, n.Pos(), "for-loop exceeded the maximum of %d iterations", maxForIterations)
		}
		iterations++

		if e.Hooks.BeforeIteration != nil {
			e.Hooks.BeforeIteration(i)
		}

		iterVal := start + step*float64(i)
		child := env.Child()
		child.Declare(n.Var, values.Plain(iterVal))
		c, err := e.execBlock(n.Body, child)
		if err != nil {
			return noCtrl(), err
		}
		if c.isReturn {
			return c, nil
		}
	}

	if e.Hooks.AfterForEnd != nil {
		e.Hooks.AfterForEnd()
	}
	return noCtrl(), nil
}

func (e *Evaluator) execForEach(n *ast.ForEach, env *values.Env) (ctrl, error) {
	iterV, err := e.eval(n.Iterable, env)
	if err != nil {
		return noCtrl(), err
	}
	if iterV.Kind() != values.KindArray {
		return noCtrl(), newError(KindTypeError, n.Pos(), "for-in requires an array, got %s", iterV.KindName())
	}
	items := iterV.Array().Items()

	if e.Hooks.BeforeFor != nil {
		e.Hooks.BeforeFor(forEachLabel(n), n.Pos().Line, len(items))
	}

	var iterations int
	for i, item := range items {
		if iterations >= maxForIterations {
			return noCtrl(), newError(KindRangeError, n.Pos(), "for-loop exceeded the maximum of %d iterations", maxForIterations)
		}
		iterations++

		if e.Hooks.BeforeIteration != nil {
			e.Hooks.BeforeIteration(i)
		}

		child := env.Child()
		child.Declare(n.ItemVar, item)
		if n.IndexVar != "" {
			child.Declare(n.IndexVar, values.Plain(float64(i)))
		}
		c, err := e.execBlock(n.Body, child)
		if err != nil {
			return noCtrl(), err
		}
		if c.isReturn {
			return c, nil
		}
	}

	if e.Hooks.AfterForEnd != nil {
		e.Hooks.AfterForEnd()
	}
	return noCtrl(), nil
}

func (e *Evaluator) execIf(n *ast.IfStatement, env *values.Env) (ctrl, error) {
	for _, branch := range n.Branches {
		condV, err := e.eval(branch.Cond, env)
		if err != nil {
			return noCtrl(), err
		}
		if condV.Truthy() {
			return e.execBlock(branch.Body, env.Child())
		}
	}
	if n.Alternate != nil {
		return e.execBlock(n.Alternate, env.Child())
	}
	return noCtrl(), nil
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
