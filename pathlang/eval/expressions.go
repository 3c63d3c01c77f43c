package eval

import (
	"strings"

	"github.com/svgdsl/svgdsl/pathlang/ast"
	"github.com/svgdsl/svgdsl/pathlang/pathblock"
	"github.com/svgdsl/svgdsl/pathlang/pathctx"
	"github.com/svgdsl/svgdsl/pathlang/values"
)

func (e *Evaluator) eval(expr ast.Expr, env *values.Env) (values.Value, error) {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		return values.Number(n.Value, n.Unit), nil

	case *ast.StringLiteral:
		return values.String(n.Value), nil

	case *ast.NullLiteral:
		return values.Null, nil

	case *ast.TemplateLiteral:
		return e.evalTemplate(n, env)

	case *ast.Identifier:
		v, ok := env.Lookup(n.Name)
		if !ok {
			return values.Value{}, newError(KindUndefinedVariable, n.Pos(), "undefined variable %q", n.Name)
		}
		return v, nil

	case *ast.BinaryExpression:
		return e.evalBinary(n, env)

	case *ast.UnaryExpression:
		return e.evalUnary(n, env)

	case *ast.ArrayLiteral:
		items := make([]values.Value, len(n.Elements))
		for i, el := range n.Elements {
			v, err := e.eval(el, env)
			if err != nil {
				return values.Value{}, err
			}
			items[i] = v
		}
		return values.ArrayValue(values.NewArray(items)), nil

	case *ast.StyleBlockLiteral:
		return e.evalStyleBlockLiteral(n, env)

	case *ast.PathBlockExpression:
		return e.evalPathBlockExpression(n, env)

	case *ast.CalcExpression:
		return e.eval(n.Inner, env)

	case *ast.Index:
		return e.evalIndex(n, env)

	case *ast.Property:
		return e.evalProperty(n, env)

	case *ast.FunctionCall:
		return e.evalCall(n, env)

	case *ast.MethodCall:
		return e.evalMethodCall(n, env)

	default:
		return values.Value{}, newError(KindTypeError, expr.Pos(), "unsupported expression node %T", expr)
	}
}

func (e *Evaluator) evalTemplate(n *ast.TemplateLiteral, env *values.Env) (values.Value, error) {
	var sb strings.Builder
	for _, part := range n.Parts {
		if part.Expr == nil {
			sb.WriteString(part.Literal)
			continue
		}
		v, err := e.eval(part.Expr, env)
		if err != nil {
			return values.Value{}, err
		}
		sb.WriteString(values.Display(v, e.renderNumber))
	}
	return values.String(sb.String()), nil
}

func (e *Evaluator) renderNumber(v float64) string {
	return renderNumberWith(v, e.fmtOpt)
}

func (e *Evaluator) evalStyleBlockLiteral(n *ast.StyleBlockLiteral, env *values.Env) (values.Value, error) {
	sb := values.NewStyleBlock()
	for _, entry := range n.Entries {
		v, err := e.eval(entry.Value, env)
		if err != nil {
			return values.Value{}, err
		}
		sb.Set(entry.Property, values.Display(v, e.renderNumber))
	}
	return values.StyleBlockValue(sb), nil
}

func (e *Evaluator) evalPathBlockExpression(n *ast.PathBlockExpression, env *values.Env) (values.Value, error) {
	if e.activeCtx != nil && e.activeCtx.InPathBlock {
		return values.Value{}, newError(KindPathBlockRestriction, n.Pos(), "path blocks cannot be nested")
	}
	capture := pathctx.NewRecording()
	prevActive := e.activeCtx
	prevTextApply := e.inTextApply
	e.activeCtx = capture
	e.inTextApply = false

	_, err := e.execBlock(n.Body, env.Child())

	e.activeCtx = prevActive
	e.inTextApply = prevTextApply
	if err != nil {
		return values.Value{}, err
	}

	block := pathblock.Build(capture.Tokens(), capture.History())
	return values.PathBlockValue(block), nil
}

func (e *Evaluator) evalIndex(n *ast.Index, env *values.Env) (values.Value, error) {
	recv, err := e.eval(n.Receiver, env)
	if err != nil {
		return values.Value{}, err
	}
	idxV, err := e.eval(n.IndexExp, env)
	if err != nil {
		return values.Value{}, err
	}
	if !idxV.IsNumber() {
		return values.Value{}, newError(KindTypeError, n.Pos(), "index must be a number, got %s", idxV.KindName())
	}
	idx := int(idxV.Num())
	if float64(idx) != idxV.Num() {
		return values.Value{}, newError(KindTypeError, n.Pos(), "index must be an integer, got %v", idxV.Num())
	}

	switch recv.Kind() {
	case values.KindArray:
		arr := recv.Array()
		if idx < 0 || idx >= arr.Len() {
			return values.Value{}, newError(KindIndexOutOfBounds, n.Pos(), "array index %d out of bounds (length %d)", idx, arr.Len())
		}
		return arr.Get(idx), nil
	case values.KindString:
		s := recv.Str()
		if idx < 0 || idx >= len(s) {
			return values.Value{}, newError(KindIndexOutOfBounds, n.Pos(), "string index %d out of bounds (length %d)", idx, len(s))
		}
		return values.String(string(s[idx])), nil
	default:
		return values.Value{}, newError(KindTypeError, n.Pos(), "cannot index a %s", recv.KindName())
	}
}
