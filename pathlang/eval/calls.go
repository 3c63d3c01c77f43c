package eval

import (
	"github.com/svgdsl/svgdsl/pathlang/ast"
	"github.com/svgdsl/svgdsl/pathlang/values"
)

// callableName extracts a callee's identifier name, for error messages and
// the annotator trace label; non-identifier callees (unusual, but the
// grammar permits any primary in callee position) fall back to "<call>".
func callableName(callee ast.Expr) string {
	if id, ok := callee.(*ast.Identifier); ok {
		return id.Name
	}
	return "<call>"
}

func (e *Evaluator) evalCall(n *ast.FunctionCall, env *values.Env) (values.Value, error) {
	if id, ok := n.Callee.(*ast.Identifier); ok && id.Name == "log" {
		return e.evalLog(n, env)
	}

	calleeV, err := e.eval(n.Callee, env)
	if err != nil {
		if id, ok := n.Callee.(*ast.Identifier); ok {
			if evalErr, isEvalErr := AsError(err); isEvalErr && evalErr.ErrKind == KindUndefinedVariable {
				return values.Value{}, newError(KindUndefinedFunction, n.Pos(), "undefined function %q", id.Name)
			}
		}
		return values.Value{}, err
	}

	args := make([]values.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.eval(a, env)
		if err != nil {
			return values.Value{}, err
		}
		args[i] = v
	}

	name := callableName(n.Callee)
	traced := calleeV.Kind() == values.KindFunction || (calleeV.Kind() == values.KindBuiltin && e.shapeGenerators[name])
	if e.Hooks.BeforeCall != nil {
		e.Hooks.BeforeCall(callLabel(name, n.Args), n.Pos().Line, traced)
	}

	switch calleeV.Kind() {
	case values.KindFunction:
		return e.callUserFunction(calleeV.Function(), args, n)
	case values.KindBuiltin:
		return e.callBuiltin(calleeV.Builtin(), args, n)
	default:
		return values.Value{}, newError(KindTypeError, n.Pos(), "%s is not callable", calleeV.KindName())
	}
}

// evalLog implements log(values...): each literal-string argument
// contributes its text verbatim; every other argument contributes its
// source text as a label alongside its evaluated display form.
func (e *Evaluator) evalLog(n *ast.FunctionCall, env *values.Env) (values.Value, error) {
	parts := make([]LogPart, 0, len(n.Args))
	for i, argExpr := range n.Args {
		if strLit, ok := argExpr.(*ast.StringLiteral); ok {
			parts = append(parts, LogPart{IsValue: false, String: strLit.Value})
			continue
		}
		v, err := e.eval(argExpr, env)
		if err != nil {
			return values.Value{}, err
		}
		label := exprSource(argExpr)
		if i < len(n.ArgSpans) && n.ArgSpans[i] != "" {
			label = n.ArgSpans[i]
		}
		parts = append(parts, LogPart{IsValue: true, Label: label, Value: values.Display(v, e.renderNumber)})
	}
	e.Logs = append(e.Logs, LogEntry{Line: n.Pos().Line, Parts: parts})
	return values.Null, nil
}

func (e *Evaluator) callUserFunction(fn *values.UserFunction, args []values.Value, n *ast.FunctionCall) (values.Value, error) {
	if len(args) != len(fn.Params) {
		return values.Value{}, newError(KindArityMismatch, n.Pos(), "%s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}
	call := fn.Captured.Child()
	for i, p := range fn.Params {
		call.Declare(p, args[i])
	}
	c, err := e.execBlock(fn.Body, call)
	if err != nil {
		return values.Value{}, err
	}
	if c.isReturn {
		return c.value, nil
	}
	return values.Null, nil
}

func (e *Evaluator) callBuiltin(b *values.Builtin, args []values.Value, n *ast.FunctionCall) (values.Value, error) {
	if !b.Accepts(len(args)) {
		return values.Value{}, newError(KindArgumentError, n.Pos(), "%s expects between %d and %d argument(s), got %d", b.Name, b.MinArgs, maxArgsDisplay(b.MaxArgs), len(args))
	}
	v, err := b.Call(args)
	if err != nil {
		return values.Value{}, newError(KindArgumentError, n.Pos(), "%s: %v", b.Name, err)
	}
	return v, nil
}

func maxArgsDisplay(max int) int {
	if max < 0 {
		return 1 << 30
	}
	return max
}
