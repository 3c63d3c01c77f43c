package eval

import (
	"strings"

	"github.com/svgdsl/svgdsl/pathlang/ast"
	"github.com/svgdsl/svgdsl/pathlang/geom"
	"github.com/svgdsl/svgdsl/pathlang/pathblock"
	"github.com/svgdsl/svgdsl/pathlang/values"
)

func (e *Evaluator) evalMethodCall(n *ast.MethodCall, env *values.Env) (values.Value, error) {
	recv, err := e.eval(n.Receiver, env)
	if err != nil {
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

	switch recv.Kind() {
	case values.KindArray:
		return e.arrayMethod(recv.Array(), n, args)
	case values.KindString:
		return e.stringMethod(recv.Str(), n, args)
	case values.KindPoint:
		return e.pointMethod(recv.Point(), n, args)
	case values.KindPathBlock:
		return e.pathBlockMethod(recv.PathBlock(), n, args)
	case values.KindProjectedPath:
		return e.projectedPathMethod(recv.Projected(), n, args)
	}

	return values.Value{}, newError(KindTypeError, n.Pos(), "%s has no method %q", recv.KindName(), n.Name)
}

func wantNum(v values.Value, pos ast.Node, what string) (float64, error) {
	if !v.IsNumber() {
		return 0, newError(KindTypeError, pos.Pos(), "%s must be a number, got %s", what, v.KindName())
	}
	return v.Num(), nil
}

func (e *Evaluator) arrayMethod(arr *values.Array, n *ast.MethodCall, args []values.Value) (values.Value, error) {
	switch n.Name {
	case "push":
		if len(args) != 1 {
			return values.Value{}, newError(KindArityMismatch, n.Pos(), "push expects 1 argument, got %d", len(args))
		}
		return values.Plain(float64(arr.Push(args[0]))), nil
	case "pop":
		return arr.Pop(), nil
	case "shift":
		return arr.Shift(), nil
	case "unshift":
		if len(args) != 1 {
			return values.Value{}, newError(KindArityMismatch, n.Pos(), "unshift expects 1 argument, got %d", len(args))
		}
		return values.Plain(float64(arr.Unshift(args[0]))), nil
	case "empty":
		return values.Bool(arr.Empty()), nil
	}
	return values.Value{}, newError(KindTypeError, n.Pos(), "array has no method %q", n.Name)
}

func (e *Evaluator) stringMethod(s string, n *ast.MethodCall, args []values.Value) (values.Value, error) {
	switch n.Name {
	case "split":
		runes := []rune(s)
		items := make([]values.Value, len(runes))
		for i, r := range runes {
			items[i] = values.String(string(r))
		}
		return values.ArrayValue(values.NewArray(items)), nil
	case "append":
		if len(args) != 1 || !args[0].IsString() {
			return values.Value{}, newError(KindTypeError, n.Pos(), "append expects a string argument")
		}
		return values.String(s + args[0].Str()), nil
	case "prepend":
		if len(args) != 1 || !args[0].IsString() {
			return values.Value{}, newError(KindTypeError, n.Pos(), "prepend expects a string argument")
		}
		return values.String(args[0].Str() + s), nil
	case "includes":
		if len(args) != 1 || !args[0].IsString() {
			return values.Value{}, newError(KindTypeError, n.Pos(), "includes expects a string argument")
		}
		return values.Bool(strings.Contains(s, args[0].Str())), nil
	case "slice":
		return stringSlice(s, n, args)
	case "empty":
		return values.Bool(len(s) == 0), nil
	}
	return values.Value{}, newError(KindTypeError, n.Pos(), "string has no method %q", n.Name)
}

func stringSlice(s string, n *ast.MethodCall, args []values.Value) (values.Value, error) {
	if len(args) < 1 || len(args) > 2 {
		return values.Value{}, newError(KindArityMismatch, n.Pos(), "slice expects 1 or 2 arguments, got %d", len(args))
	}
	l := len(s)
	resolve := func(v values.Value, def int) (int, error) {
		if v.Kind() == values.KindNull {
			return def, nil
		}
		if !v.IsNumber() {
			return 0, newError(KindTypeError, n.Pos(), "slice indices must be numbers")
		}
		idx := int(v.Num())
		if idx < 0 {
			idx += l
		}
		if idx < 0 {
			idx = 0
		}
		if idx > l {
			idx = l
		}
		return idx, nil
	}
	start, err := resolve(args[0], 0)
	if err != nil {
		return values.Value{}, err
	}
	end := l
	if len(args) == 2 {
		end, err = resolve(args[1], l)
		if err != nil {
			return values.Value{}, err
		}
	}
	if start > end {
		return values.String(""), nil
	}
	return values.String(s[start:end]), nil
}

func (e *Evaluator) pointMethod(p geom.Point, n *ast.MethodCall, args []values.Value) (values.Value, error) {
	switch n.Name {
	case "translate":
		if len(args) != 2 {
			return values.Value{}, newError(KindArityMismatch, n.Pos(), "translate expects 2 arguments, got %d", len(args))
		}
		dx, err := wantNum(args[0], n, "translate dx")
		if err != nil {
			return values.Value{}, err
		}
		dy, err := wantNum(args[1], n, "translate dy")
		if err != nil {
			return values.Value{}, err
		}
		return values.PointValue(p.Add(geom.Point{X: dx, Y: dy})), nil
	case "polarTranslate":
		if len(args) != 2 {
			return values.Value{}, newError(KindArityMismatch, n.Pos(), "polarTranslate expects 2 arguments, got %d", len(args))
		}
		angle, err := wantNum(args[0], n, "polarTranslate angle")
		if err != nil {
			return values.Value{}, err
		}
		dist, err := wantNum(args[1], n, "polarTranslate distance")
		if err != nil {
			return values.Value{}, err
		}
		return values.PointValue(p.PolarOffset(angle, dist)), nil
	case "midpoint":
		if len(args) != 1 || args[0].Kind() != values.KindPoint {
			return values.Value{}, newError(KindTypeError, n.Pos(), "midpoint expects a point argument")
		}
		return values.PointValue(p.Midpoint(args[0].Point())), nil
	case "lerp":
		if len(args) != 2 || args[0].Kind() != values.KindPoint {
			return values.Value{}, newError(KindTypeError, n.Pos(), "lerp expects (point, t)")
		}
		t, err := wantNum(args[1], n, "lerp t")
		if err != nil {
			return values.Value{}, err
		}
		return values.PointValue(p.Lerp(args[0].Point(), t)), nil
	case "rotate":
		if len(args) != 2 || args[1].Kind() != values.KindPoint {
			return values.Value{}, newError(KindTypeError, n.Pos(), "rotate expects (angle, origin)")
		}
		angle, err := wantNum(args[0], n, "rotate angle")
		if err != nil {
			return values.Value{}, err
		}
		return values.PointValue(p.Rotate(angle, args[1].Point())), nil
	case "distanceTo":
		if len(args) != 1 || args[0].Kind() != values.KindPoint {
			return values.Value{}, newError(KindTypeError, n.Pos(), "distanceTo expects a point argument")
		}
		return values.Plain(p.Distance(args[0].Point())), nil
	case "angleTo":
		if len(args) != 1 || args[0].Kind() != values.KindPoint {
			return values.Value{}, newError(KindTypeError, n.Pos(), "angleTo expects a point argument")
		}
		return values.Number(p.AngleTo(args[0].Point()), values.UnitRad), nil
	}
	return values.Value{}, newError(KindTypeError, n.Pos(), "point has no method %q", n.Name)
}

func sampleValue(pt geom.Point, angle float64) values.Value {
	return values.ArrayValue(values.NewArray([]values.Value{
		values.PointValue(pt),
		values.Number(angle, values.UnitRad),
	}))
}

func wantT(n *ast.MethodCall, args []values.Value) (float64, error) {
	if len(args) != 1 {
		return 0, newError(KindArityMismatch, n.Pos(), "%s expects 1 argument, got %d", n.Name, len(args))
	}
	t, err := wantNum(args[0], n, n.Name+" parameter")
	if err != nil {
		return 0, err
	}
	if t < 0 || t > 1 {
		return 0, newError(KindRangeError, n.Pos(), "%s parameter must be in [0,1], got %v", n.Name, t)
	}
	return t, nil
}

func wantN(n *ast.MethodCall, args []values.Value) (int, error) {
	if len(args) != 1 {
		return 0, newError(KindArityMismatch, n.Pos(), "partition expects 1 argument, got %d", len(args))
	}
	v, err := wantNum(args[0], n, "partition count")
	if err != nil {
		return 0, err
	}
	count := int(v)
	if float64(count) != v || count < 1 {
		return 0, newError(KindRangeError, n.Pos(), "partition count must be a positive integer, got %v", v)
	}
	return count, nil
}

func (e *Evaluator) pathBlockMethod(pb *pathblock.PathBlock, n *ast.MethodCall, args []values.Value) (values.Value, error) {
	switch n.Name {
	case "draw":
		if len(args) != 0 {
			return values.Value{}, newError(KindArityMismatch, n.Pos(), "draw expects no arguments, got %d", len(args))
		}
		ctx, err := e.activeContext(n.Pos())
		if err != nil {
			return values.Value{}, err
		}
		if ctx.InPathBlock {
			return values.Value{}, newError(KindPathBlockRestriction, n.Pos(), "draw() is not allowed inside a path block")
		}
		origin := ctx.Position
		ctx.Absorb(pb.Tokens, pb.History())
		return values.ProjectedPathValue(pathblock.NewProjectedPath(pb, origin)), nil
	case "project":
		if len(args) != 2 {
			return values.Value{}, newError(KindArityMismatch, n.Pos(), "project expects 2 arguments, got %d", len(args))
		}
		ctx, err := e.activeContext(n.Pos())
		if err == nil && ctx.InPathBlock {
			return values.Value{}, newError(KindPathBlockRestriction, n.Pos(), "project() is not allowed inside a path block")
		}
		x, err := wantNum(args[0], n, "project x")
		if err != nil {
			return values.Value{}, err
		}
		y, err := wantNum(args[1], n, "project y")
		if err != nil {
			return values.Value{}, err
		}
		return values.ProjectedPathValue(pathblock.NewProjectedPath(pb, geom.Point{X: x, Y: y})), nil
	case "get":
		t, err := wantT(n, args)
		if err != nil {
			return values.Value{}, err
		}
		pt, err := pb.At(t)
		if err != nil {
			return values.Value{}, newError(KindRangeError, n.Pos(), "%v", err)
		}
		return values.PointValue(pt), nil
	case "tangent":
		t, err := wantT(n, args)
		if err != nil {
			return values.Value{}, err
		}
		pt, angle, err := pb.Tangent(t)
		if err != nil {
			return values.Value{}, newError(KindRangeError, n.Pos(), "%v", err)
		}
		return sampleValue(pt, angle), nil
	case "normal":
		t, err := wantT(n, args)
		if err != nil {
			return values.Value{}, err
		}
		pt, angle, err := pb.Normal(t)
		if err != nil {
			return values.Value{}, newError(KindRangeError, n.Pos(), "%v", err)
		}
		return sampleValue(pt, angle), nil
	case "partition":
		count, err := wantN(n, args)
		if err != nil {
			return values.Value{}, err
		}
		samples, err := pb.Partition(count)
		if err != nil {
			return values.Value{}, newError(KindRangeError, n.Pos(), "%v", err)
		}
		items := make([]values.Value, len(samples))
		for i, s := range samples {
			items[i] = sampleValue(s.Point, s.Angle)
		}
		return values.ArrayValue(values.NewArray(items)), nil
	}
	return values.Value{}, newError(KindTypeError, n.Pos(), "path block has no method %q", n.Name)
}

func (e *Evaluator) projectedPathMethod(pp *pathblock.ProjectedPath, n *ast.MethodCall, args []values.Value) (values.Value, error) {
	switch n.Name {
	case "get":
		t, err := wantT(n, args)
		if err != nil {
			return values.Value{}, err
		}
		pt, err := pp.At(t)
		if err != nil {
			return values.Value{}, newError(KindRangeError, n.Pos(), "%v", err)
		}
		return values.PointValue(pt), nil
	case "tangent":
		t, err := wantT(n, args)
		if err != nil {
			return values.Value{}, err
		}
		pt, angle, err := pp.Tangent(t)
		if err != nil {
			return values.Value{}, newError(KindRangeError, n.Pos(), "%v", err)
		}
		return sampleValue(pt, angle), nil
	case "normal":
		t, err := wantT(n, args)
		if err != nil {
			return values.Value{}, err
		}
		pt, angle, err := pp.Normal(t)
		if err != nil {
			return values.Value{}, newError(KindRangeError, n.Pos(), "%v", err)
		}
		return sampleValue(pt, angle), nil
	case "partition":
		count, err := wantN(n, args)
		if err != nil {
			return values.Value{}, err
		}
		samples, err := pp.Partition(count)
		if err != nil {
			return values.Value{}, newError(KindRangeError, n.Pos(), "%v", err)
		}
		items := make([]values.Value, len(samples))
		for i, s := range samples {
			items[i] = sampleValue(s.Point, s.Angle)
		}
		return values.ArrayValue(values.NewArray(items)), nil
	}
	return values.Value{}, newError(KindTypeError, n.Pos(), "projected path has no method %q", n.Name)
}
