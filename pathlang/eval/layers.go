package eval

import (
	"github.com/svgdsl/svgdsl/pathlang/ast"
	"github.com/svgdsl/svgdsl/pathlang/pathctx"
	"github.com/svgdsl/svgdsl/pathlang/values"
)

func (e *Evaluator) execLayerDefine(n *ast.LayerDefine, env *values.Env) error {
	if e.activeCtx != nil && e.activeCtx.InPathBlock {
		return newError(KindPathBlockRestriction, n.Pos(), "layer definitions are not allowed inside a path block")
	}
	nameV, err := e.eval(n.NameExpr, env)
	if err != nil {
		return err
	}
	if !nameV.IsString() {
		return newError(KindTypeError, n.Pos(), "layer name must be a string, got %s", nameV.KindName())
	}
	name := nameV.Str()

	if _, exists := e.layerByName[name]; exists {
		return newError(KindLayerError, n.Pos(), "duplicate layer name %q", name)
	}
	if n.IsDefault && e.defaultLayer != nil {
		return newError(KindLayerError, n.Pos(), "only one default layer is allowed")
	}

	styleV, err := e.eval(n.StyleExpr, env)
	if err != nil {
		return err
	}
	if styleV.Kind() != values.KindStyleBlock {
		return newError(KindTypeError, n.Pos(), "layer style must be a style block, got %s", styleV.KindName())
	}

	layer := &Layer{Name: name, IsText: n.IsText, IsDefault: n.IsDefault, Style: styleV.Style()}
	if !n.IsText {
		layer.Ctx = pathctx.New()
	}
	e.layers = append(e.layers, layer)
	e.layerByName[name] = layer
	if n.IsDefault {
		e.defaultLayer = layer
	}
	return nil
}

func (e *Evaluator) execLayerApply(n *ast.LayerApply, env *values.Env) (ctrl, error) {
	if e.inApply {
		return noCtrl(), newError(KindLayerError, n.Pos(), "layer apply blocks cannot be nested")
	}
	if e.activeCtx != nil && e.activeCtx.InPathBlock {
		return noCtrl(), newError(KindPathBlockRestriction, n.Pos(), "layer apply blocks are not allowed inside a path block")
	}
	nameV, err := e.eval(n.NameExpr, env)
	if err != nil {
		return noCtrl(), err
	}
	if !nameV.IsString() {
		return noCtrl(), newError(KindTypeError, n.Pos(), "layer name must be a string, got %s", nameV.KindName())
	}
	layer, ok := e.layerByName[nameV.Str()]
	if !ok {
		return noCtrl(), newError(KindLayerError, n.Pos(), "undefined layer %q", nameV.Str())
	}

	e.inApply = true
	prevActive := e.activeCtx
	prevTextApply := e.inTextApply
	prevTextLayer := e.activeTextLayer
	if layer.IsText {
		e.inTextApply = true
		e.activeCtx = nil
		e.activeTextLayer = layer
	} else {
		e.inTextApply = false
		e.activeCtx = layer.Ctx
		e.activeTextLayer = nil
	}

	c, err := e.execBlock(n.Body, env.Child())

	e.inApply = false
	e.activeCtx = prevActive
	e.inTextApply = prevTextApply
	e.activeTextLayer = prevTextLayer
	return c, err
}
