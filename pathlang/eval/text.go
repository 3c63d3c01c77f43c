package eval

import (
	"github.com/svgdsl/svgdsl/pathlang/ast"
	"github.com/svgdsl/svgdsl/pathlang/values"
)

func (e *Evaluator) evalNum(expr ast.Expr, env *values.Env, what string) (float64, error) {
	v, err := e.eval(expr, env)
	if err != nil {
		return 0, err
	}
	if !v.IsNumber() {
		return 0, newError(KindTypeError, expr.Pos(), "%s must be a number, got %s", what, v.KindName())
	}
	return v.Num(), nil
}

func (e *Evaluator) evalOptNum(expr ast.Expr, env *values.Env, what string) (*float64, error) {
	if expr == nil {
		return nil, nil
	}
	v, err := e.evalNum(expr, env, what)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (e *Evaluator) evalOptStyle(expr ast.Expr, env *values.Env, what string) (*values.StyleBlock, error) {
	if expr == nil {
		return nil, nil
	}
	v, err := e.eval(expr, env)
	if err != nil {
		return nil, err
	}
	if v.Kind() != values.KindStyleBlock {
		return nil, newError(KindTypeError, expr.Pos(), "%s must be a style block, got %s", what, v.KindName())
	}
	return v.Style(), nil
}

func (e *Evaluator) execTextStatement(n *ast.TextStatement, env *values.Env) error {
	if e.activeCtx != nil && e.activeCtx.InPathBlock {
		return newError(KindPathBlockRestriction, n.Pos(), "text() is not allowed inside a path block")
	}
	if !e.inTextApply || e.activeTextLayer == nil {
		return newError(KindLayerError, n.Pos(), "text() is only allowed inside a text layer's apply block")
	}

	x, err := e.evalNum(n.X, env, "text() x")
	if err != nil {
		return err
	}
	y, err := e.evalNum(n.Y, env, "text() y")
	if err != nil {
		return err
	}
	rotation, err := e.evalOptNum(n.Rotation, env, "text() rotation")
	if err != nil {
		return err
	}
	styles, err := e.evalOptStyle(n.StyleExpr, env, "text() style")
	if err != nil {
		return err
	}

	elem := &TextElement{X: x, Y: y, Rotation: rotation, Styles: styles}

	if n.Inline != nil {
		s, err := e.evalTemplate(n.Inline, env)
		if err != nil {
			return err
		}
		elem.Children = append(elem.Children, &TextNode{Kind: TextNodeRun, Text: s.Str()})
	} else {
		var nodes []*TextNode
		if err := e.execTextChildren(n.Children, env, &nodes); err != nil {
			return err
		}
		elem.Children = nodes
	}

	e.activeTextLayer.TextElements = append(e.activeTextLayer.TextElements, elem)
	return nil
}

func (e *Evaluator) buildTspanNode(ts *ast.TspanStatement, env *values.Env) (*TextNode, error) {
	dx, err := e.evalOptNum(ts.DX, env, "tspan() dx")
	if err != nil {
		return nil, err
	}
	dy, err := e.evalOptNum(ts.DY, env, "tspan() dy")
	if err != nil {
		return nil, err
	}
	rotation, err := e.evalOptNum(ts.Rotation, env, "tspan() rotation")
	if err != nil {
		return nil, err
	}
	styles, err := e.evalOptStyle(ts.StyleExpr, env, "tspan() style")
	if err != nil {
		return nil, err
	}
	text := ""
	if ts.Text != nil {
		v, err := e.evalTemplate(ts.Text, env)
		if err != nil {
			return nil, err
		}
		text = v.Str()
	}
	return &TextNode{Kind: TextNodeTspan, Text: text, DX: dx, DY: dy, Rotation: rotation, Styles: styles}, nil
}

func (e *Evaluator) execTextChildren(children []ast.TextChild, env *values.Env, out *[]*TextNode) error {
	for _, c := range children {
		switch c.Kind {
		case ast.ChildRun:
			v, err := e.evalTemplate(c.Template, env)
			if err != nil {
				return err
			}
			*out = append(*out, &TextNode{Kind: TextNodeRun, Text: v.Str()})

		case ast.ChildTspan:
			node, err := e.buildTspanNode(c.Tspan, env)
			if err != nil {
				return err
			}
			*out = append(*out, node)

		case ast.ChildFor:
			switch {
			case c.ForRange != nil:
				if err := e.execTextForRange(c.ForRange, env, out); err != nil {
					return err
				}
			case c.ForEach != nil:
				if err := e.execTextForEach(c.ForEach, env, out); err != nil {
					return err
				}
			}

		case ast.ChildIf:
			if err := e.execTextIf(c.If, env, out); err != nil {
				return err
			}

		case ast.ChildLet:
			v, err := e.eval(c.Let.Value, env)
			if err != nil {
				return err
			}
			env.Declare(c.Let.Name, v)
		}
	}
	return nil
}

// execTextBodyStmt interprets one statement of a nested for/if body inside
// a text() block: template-literal expression statements and tspan()
// calls contribute children; let declares; nested for/if recurse.
func (e *Evaluator) execTextBodyStmt(s ast.Stmt, env *values.Env, out *[]*TextNode) error {
	switch n := s.(type) {
	case *ast.LetDeclaration:
		v, err := e.eval(n.Value, env)
		if err != nil {
			return err
		}
		env.Declare(n.Name, v)
		return nil

	case *ast.TspanStatement:
		node, err := e.buildTspanNode(n, env)
		if err != nil {
			return err
		}
		*out = append(*out, node)
		return nil

	case *ast.ExpressionStatement:
		if tmpl, ok := n.Expr.(*ast.TemplateLiteral); ok {
			v, err := e.evalTemplate(tmpl, env)
			if err != nil {
				return err
			}
			*out = append(*out, &TextNode{Kind: TextNodeRun, Text: v.Str()})
			return nil
		}
		_, err := e.eval(n.Expr, env)
		return err

	case *ast.ForRange:
		return e.execTextForRange(n, env, out)

	case *ast.ForEach:
		return e.execTextForEach(n, env, out)

	case *ast.IfStatement:
		return e.execTextIf(n, env, out)

	default:
		_, err := e.execStmt(s, env)
		return err
	}
}

func (e *Evaluator) execTextForRange(n *ast.ForRange, env *values.Env, out *[]*TextNode) error {
	startV, err := e.eval(n.Start, env)
	if err != nil {
		return err
	}
	endV, err := e.eval(n.End, env)
	if err != nil {
		return err
	}
	if !startV.IsNumber() || !endV.IsNumber() {
		return newError(KindRangeError, n.Pos(), "for-loop range bounds must be numbers")
	}
	start, end := startV.Num(), endV.Num()
	if isNonFinite(start) || isNonFinite(end) {
		return newError(KindRangeError, n.Pos(), "for-loop range bounds must be finite")
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
			return newError(KindRangeError, n.Pos(), "for-loop exceeded the maximum of %d iterations", maxForIterations)
		}
		iterations++

		if e.Hooks.BeforeIteration != nil {
			e.Hooks.BeforeIteration(i)
		}

		iterVal := start + step*float64(i)
		child := env.Child()
		child.Declare(n.Var, values.Plain(iterVal))
		for _, bodyStmt := range n.Body {
			if err := e.execTextBodyStmt(bodyStmt, child, out); err != nil {
				return err
			}
		}
	}

	if e.Hooks.AfterForEnd != nil {
		e.Hooks.AfterForEnd()
	}
	return nil
}

func (e *Evaluator) execTextForEach(n *ast.ForEach, env *values.Env, out *[]*TextNode) error {
	iterV, err := e.eval(n.Iterable, env)
	if err != nil {
		return err
	}
	if iterV.Kind() != values.KindArray {
		return newError(KindTypeError, n.Pos(), "for-in requires an array, got %s", iterV.KindName())
	}
	items := iterV.Array().Items()

	if e.Hooks.BeforeFor != nil {
		e.Hooks.BeforeFor(forEachLabel(n), n.Pos().Line, len(items))
	}

	var iterations int
	for i, item := range items {
		if iterations >= maxForIterations {
			return newError(KindRangeError, n.Pos(), "for-loop exceeded the maximum of %d iterations", maxForIterations)
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
		for _, bodyStmt := range n.Body {
			if err := e.execTextBodyStmt(bodyStmt, child, out); err != nil {
				return err
			}
		}
	}

	if e.Hooks.AfterForEnd != nil {
		e.Hooks.AfterForEnd()
	}
	return nil
}

func (e *Evaluator) execTextIf(n *ast.IfStatement, env *values.Env, out *[]*TextNode) error {
	for _, branch := range n.Branches {
		condV, err := e.eval(branch.Cond, env)
		if err != nil {
			return err
		}
		if condV.Truthy() {
			child := env.Child()
			for _, bodyStmt := range branch.Body {
				if err := e.execTextBodyStmt(bodyStmt, child, out); err != nil {
					return err
				}
			}
			return nil
		}
	}
	if n.Alternate != nil {
		child := env.Child()
		for _, bodyStmt := range n.Alternate {
			if err := e.execTextBodyStmt(bodyStmt, child, out); err != nil {
				return err
			}
		}
	}
	return nil
}
