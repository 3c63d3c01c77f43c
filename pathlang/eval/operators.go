package eval

import (
	"math"

	"github.com/svgdsl/svgdsl/pathlang/ast"
	"github.com/svgdsl/svgdsl/pathlang/values"
)

func (e *Evaluator) evalBinary(n *ast.BinaryExpression, env *values.Env) (values.Value, error) {
	// && and || short-circuit and yield 1/0 of the decisive operand's
	// truthiness (spec.md section 9 open question, resolved this way).
	if n.Op == ast.OpAnd || n.Op == ast.OpOr {
		left, err := e.eval(n.Left, env)
		if err != nil {
			return values.Value{}, err
		}
		if n.Op == ast.OpAnd && !left.Truthy() {
			return values.Bool(false), nil
		}
		if n.Op == ast.OpOr && left.Truthy() {
			return values.Bool(true), nil
		}
		right, err := e.eval(n.Right, env)
		if err != nil {
			return values.Value{}, err
		}
		return values.Bool(right.Truthy()), nil
	}

	if n.Op == ast.OpMerge {
		left, err := e.eval(n.Left, env)
		if err != nil {
			return values.Value{}, err
		}
		right, err := e.eval(n.Right, env)
		if err != nil {
			return values.Value{}, err
		}
		if left.Kind() != values.KindStyleBlock || right.Kind() != values.KindStyleBlock {
			return values.Value{}, newError(KindTypeError, n.Pos(), "<< requires two style blocks, got %s and %s", left.KindName(), right.KindName())
		}
		return values.StyleBlockValue(left.Style().Merge(right.Style())), nil
	}

	left, err := e.eval(n.Left, env)
	if err != nil {
		return values.Value{}, err
	}
	right, err := e.eval(n.Right, env)
	if err != nil {
		return values.Value{}, err
	}

	switch n.Op {
	case ast.OpEq:
		return values.Bool(values.StructuralEqual(left, right)), nil
	case ast.OpNeq:
		return values.Bool(!values.StructuralEqual(left, right)), nil
	}

	switch n.Op {
	case ast.OpLt, ast.OpLte, ast.OpGt, ast.OpGte:
		if !left.IsNumber() || !right.IsNumber() {
			return values.Value{}, newError(KindTypeError, n.Pos(), "comparison requires two numbers, got %s and %s", left.KindName(), right.KindName())
		}
		a, b := left.Num(), right.Num()
		switch n.Op {
		case ast.OpLt:
			return values.Bool(a < b), nil
		case ast.OpLte:
			return values.Bool(a <= b), nil
		case ast.OpGt:
			return values.Bool(a > b), nil
		default:
			return values.Bool(a >= b), nil
		}
	}

	// Arithmetic: + - * / %
	if left.IsNull() || right.IsNull() {
		return values.Value{}, newError(KindNullUsage, n.Pos(), "null cannot be used in arithmetic")
	}
	if !left.IsNumber() || !right.IsNumber() {
		return values.Value{}, newError(KindTypeError, n.Pos(), "arithmetic requires two numbers, got %s and %s", left.KindName(), right.KindName())
	}

	a, b := left.Num(), right.Num()
	aUnit, bUnit := left.Unit(), right.Unit()

	switch n.Op {
	case ast.OpAdd, ast.OpSub:
		unit, ok := combineAddUnit(aUnit, bUnit)
		if !ok {
			return values.Value{}, newError(KindAngleUnitMismatch, n.Pos(), "cannot add/subtract different angle units")
		}
		if n.Op == ast.OpAdd {
			return values.Number(a+b, unit), nil
		}
		return values.Number(a-b, unit), nil
	case ast.OpMul:
		return values.Number(a*b, combineMulUnit(aUnit, bUnit)), nil
	case ast.OpDiv:
		return values.Number(a/b, combineMulUnit(aUnit, bUnit)), nil
	case ast.OpMod:
		return values.Number(math.Mod(a, b), combineMulUnit(aUnit, bUnit)), nil
	default:
		return values.Value{}, newError(KindTypeError, n.Pos(), "unsupported binary operator %s", n.Op)
	}
}

// combineAddUnit implements the +/- angle-unit discipline: operands must
// agree in unit exactly. Unlike */%, unit-None does not act as a wildcard
// here, so 90deg + 5 is a mismatch.
func combineAddUnit(a, b values.AngleUnit) (values.AngleUnit, bool) {
	if a == b {
		return a, true
	}
	return values.UnitNone, false
}

// combineMulUnit implements */%: Rad-by-None is Rad, Rad-by-Rad is
// dimensionless None.
func combineMulUnit(a, b values.AngleUnit) values.AngleUnit {
	if a == values.UnitRad && b == values.UnitRad {
		return values.UnitNone
	}
	if a == values.UnitRad || b == values.UnitRad {
		return values.UnitRad
	}
	return values.UnitNone
}

func (e *Evaluator) evalUnary(n *ast.UnaryExpression, env *values.Env) (values.Value, error) {
	v, err := e.eval(n.Operand, env)
	if err != nil {
		return values.Value{}, err
	}
	switch n.Op {
	case ast.OpNeg:
		if v.IsNull() {
			return values.Value{}, newError(KindNullUsage, n.Pos(), "null cannot be used as a unary operand")
		}
		if !v.IsNumber() {
			return values.Value{}, newError(KindTypeError, n.Pos(), "unary - requires a number, got %s", v.KindName())
		}
		return values.Number(-v.Num(), v.Unit()), nil
	case ast.OpNot:
		return values.Bool(!v.Truthy()), nil
	default:
		return values.Value{}, newError(KindTypeError, n.Pos(), "unsupported unary operator %s", n.Op)
	}
}
