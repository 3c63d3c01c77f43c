package eval

import (
	"github.com/svgdsl/svgdsl/pathlang/ast"
	"github.com/svgdsl/svgdsl/pathlang/geom"
	"github.com/svgdsl/svgdsl/pathlang/pathblock"
	"github.com/svgdsl/svgdsl/pathlang/values"
)

func (e *Evaluator) evalProperty(n *ast.Property, env *values.Env) (values.Value, error) {
	recv, err := e.eval(n.Receiver, env)
	if err != nil {
		return values.Value{}, err
	}

	switch recv.Kind() {
	case values.KindPoint:
		switch n.Name {
		case "x":
			return values.Plain(recv.Point().X), nil
		case "y":
			return values.Plain(recv.Point().Y), nil
		}

	case values.KindArray:
		if n.Name == "length" {
			return values.Plain(float64(recv.Array().Len())), nil
		}

	case values.KindString:
		if n.Name == "length" {
			return values.Plain(float64(len(recv.Str()))), nil
		}

	case values.KindStyleBlock:
		kebab := values.CamelToKebab(n.Name)
		if v, ok := recv.Style().Get(kebab); ok {
			return values.String(v), nil
		}
		return values.Value{}, newError(KindTypeError, n.Pos(), "style block has no property %q", n.Name)

	case values.KindPathBlock:
		return pathBlockProperty(recv.PathBlock(), n, geom.Point{})

	case values.KindProjectedPath:
		return projectedPathProperty(recv.Projected(), n)

	case values.KindLayerRef:
		ref := recv.LayerRef()
		switch n.Name {
		case "name":
			return values.String(ref.Name), nil
		case "ctx":
			if ref.Ctx == nil {
				return values.Value{}, newError(KindTypeError, n.Pos(), "a text layer has no path context")
			}
			return values.ContextValue(ref.Ctx), nil
		}

	case values.KindContext:
		ctx := recv.Context()
		switch n.Name {
		case "position":
			return values.PointValue(ctx.Position), nil
		case "subpathStart":
			return values.PointValue(ctx.SubpathStart), nil
		}
	}

	return values.Value{}, newError(KindTypeError, n.Pos(), "%s has no property %q", recv.KindName(), n.Name)
}

func pathBlockProperty(pb *pathblock.PathBlock, n *ast.Property, origin geom.Point) (values.Value, error) {
	switch n.Name {
	case "length":
		return values.Plain(pb.Length), nil
	case "startPoint":
		return values.PointValue(origin.Add(pb.StartPoint)), nil
	case "endPoint":
		return values.PointValue(origin.Add(pb.EndPoint)), nil
	case "vertices":
		items := make([]values.Value, len(pb.Vertices))
		for i, v := range pb.Vertices {
			items[i] = values.PointValue(origin.Add(v))
		}
		return values.ArrayValue(values.NewArray(items)), nil
	case "subPathCount":
		return values.Plain(float64(pb.SubPathCount)), nil
	case "subPathCommands":
		return values.ArrayValue(values.NewArray(subPathCommandValues(pb.SubPathCommands, origin))), nil
	}
	return values.Value{}, newError(KindTypeError, n.Pos(), "path block has no property %q", n.Name)
}

func projectedPathProperty(pp *pathblock.ProjectedPath, n *ast.Property) (values.Value, error) {
	switch n.Name {
	case "length":
		return values.Plain(pp.Length()), nil
	case "startPoint":
		return values.PointValue(pp.StartPoint()), nil
	case "endPoint":
		return values.PointValue(pp.EndPoint()), nil
	case "vertices":
		pts := pp.Vertices()
		items := make([]values.Value, len(pts))
		for i, v := range pts {
			items[i] = values.PointValue(v)
		}
		return values.ArrayValue(values.NewArray(items)), nil
	case "subPathCount":
		return values.Plain(float64(pp.SubPathCount())), nil
	case "subPathCommands":
		return values.ArrayValue(values.NewArray(subPathCommandValues(pp.SubPathCommands(), pp.Origin))), nil
	}
	return values.Value{}, newError(KindTypeError, n.Pos(), "projected path has no property %q", n.Name)
}

// subPathCommandValues renders a PathBlock's per-command geometry as a
// [letter, startPoint, endPoint] triple for read-only inspection from user
// code.
func subPathCommandValues(cmds []pathblock.SubPathCommand, origin geom.Point) []values.Value {
	out := make([]values.Value, len(cmds))
	for i, c := range cmds {
		triple := []values.Value{
			values.String(c.Command),
			values.PointValue(origin.Add(c.Start)),
			values.PointValue(origin.Add(c.End)),
		}
		out[i] = values.ArrayValue(values.NewArray(triple))
	}
	return out
}
