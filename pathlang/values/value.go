// Package values implements the svgdsl runtime value model: a tagged
// union (Value), reference-shared Array and StyleBlock types, the lexical
// Environment, and user/built-in function representations.
//
// Every operation on Value dispatches by Kind; unsupported
// property/method access is reported by the caller (package eval) as a
// TypeError naming both the receiver kind and the attempted member, per
// the "polymorphism -> tagged sum" design note.
package values

import (
	"fmt"
	"strings"

	"github.com/svgdsl/svgdsl/pathlang/ast"
	"github.com/svgdsl/svgdsl/pathlang/geom"
	"github.com/svgdsl/svgdsl/pathlang/pathblock"
	"github.com/svgdsl/svgdsl/pathlang/pathctx"
)

// Kind discriminates the cases of Value.
type Kind uint8

const (
	KindNumber Kind = iota
	KindString
	KindNull
	KindArray
	KindPoint
	KindStyleBlock
	KindPathBlock
	KindProjectedPath
	KindLayerRef
	KindFunction
	KindBuiltin
	KindContext
)

// AngleUnit tags a Number's unit; it survives only through +, -, and
// unary -.
type AngleUnit = ast.AngleUnit

const (
	UnitNone = ast.UnitNone
	UnitRad  = ast.UnitRad
)

// Value is the tagged runtime value type.
type Value struct {
	kind Kind

	num  float64
	unit AngleUnit
	str  string

	arr       *Array
	point     geom.Point
	style     *StyleBlock
	pathBlock *pathblock.PathBlock
	projected *pathblock.ProjectedPath
	layer     *LayerRef
	fn        *UserFunction
	builtin   *Builtin
	ctx       *pathctx.PathContext
}

// Number constructs a numeric value.
func Number(v float64, unit AngleUnit) Value { return Value{kind: KindNumber, num: v, unit: unit} }

// Plain constructs a unit-less numeric value.
func Plain(v float64) Value { return Number(v, UnitNone) }

// Bool renders a boolean as 1/0, per spec's numeric logical results.
func Bool(b bool) Value {
	if b {
		return Plain(1)
	}
	return Plain(0)
}

// String constructs a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Null is the null value.
var Null = Value{kind: KindNull}

// PointValue constructs a Point value.
func PointValue(p geom.Point) Value { return Value{kind: KindPoint, point: p} }

// ArrayValue wraps an *Array.
func ArrayValue(a *Array) Value { return Value{kind: KindArray, arr: a} }

// StyleBlockValue wraps a *StyleBlock.
func StyleBlockValue(s *StyleBlock) Value { return Value{kind: KindStyleBlock, style: s} }

// PathBlockValue wraps a *pathblock.PathBlock.
func PathBlockValue(p *pathblock.PathBlock) Value { return Value{kind: KindPathBlock, pathBlock: p} }

// ProjectedPathValue wraps a *pathblock.ProjectedPath.
func ProjectedPathValue(p *pathblock.ProjectedPath) Value {
	return Value{kind: KindProjectedPath, projected: p}
}

// LayerRefValue wraps a *LayerRef.
func LayerRefValue(l *LayerRef) Value { return Value{kind: KindLayerRef, layer: l} }

// FunctionValue wraps a *UserFunction.
func FunctionValue(f *UserFunction) Value { return Value{kind: KindFunction, fn: f} }

// BuiltinValue wraps a *Builtin.
func BuiltinValue(b *Builtin) Value { return Value{kind: KindBuiltin, builtin: b} }

// ContextValue wraps a *pathctx.PathContext as the read-only record exposed
// by `LayerReference.ctx`.
func ContextValue(c *pathctx.PathContext) Value { return Value{kind: KindContext, ctx: c} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool   { return v.kind == KindNull }
func (v Value) IsNumber() bool { return v.kind == KindNumber }
func (v Value) IsString() bool { return v.kind == KindString }

// Num returns the numeric payload; callers must check IsNumber first.
func (v Value) Num() float64   { return v.num }
func (v Value) Unit() AngleUnit { return v.unit }
func (v Value) Str() string    { return v.str }
func (v Value) Point() geom.Point            { return v.point }
func (v Value) Array() *Array                { return v.arr }
func (v Value) Style() *StyleBlock           { return v.style }
func (v Value) PathBlock() *pathblock.PathBlock { return v.pathBlock }
func (v Value) Projected() *pathblock.ProjectedPath { return v.projected }
func (v Value) LayerRef() *LayerRef          { return v.layer }
func (v Value) Function() *UserFunction      { return v.fn }
func (v Value) Builtin() *Builtin            { return v.builtin }
func (v Value) Context() *pathctx.PathContext { return v.ctx }

// KindName returns a human-readable name for v's kind, used in error
// messages.
func (v Value) KindName() string { return KindName(v.kind) }

// KindName returns a human-readable name for k.
func KindName(k Kind) string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindNull:
		return "null"
	case KindArray:
		return "array"
	case KindPoint:
		return "point"
	case KindStyleBlock:
		return "style block"
	case KindPathBlock:
		return "path block"
	case KindProjectedPath:
		return "projected path"
	case KindLayerRef:
		return "layer reference"
	case KindFunction:
		return "function"
	case KindBuiltin:
		return "builtin"
	case KindContext:
		return "path context"
	default:
		return "value"
	}
}

// Truthy implements the language's truthiness rule: only Null and numeric
// zero are falsy; everything else, including the empty string, is truthy
// (spec.md's stated default for the open question).
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindNumber:
		return v.num != 0
	default:
		return true
	}
}

// StructuralEqual implements ==: numbers compare by value (ignoring
// unit), strings by content, null equals only null, and any other
// cross-kind comparison is false.
func StructuralEqual(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindNumber:
		return a.num == b.num
	case KindString:
		return a.str == b.str
	case KindPoint:
		return a.point == b.point
	default:
		return false
	}
}

// Display renders v for template-literal interpolation: numbers in their
// literal representation, points as Point(x, y), arrays recursively as
// [a, b, ...], null as the literal text "null".
func Display(v Value, numFmt func(float64) string) string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindNumber:
		return numFmt(v.num)
	case KindString:
		return v.str
	case KindPoint:
		return fmt.Sprintf("Point(%s, %s)", numFmt(v.point.X), numFmt(v.point.Y))
	case KindArray:
		parts := make([]string, v.arr.Len())
		for i := 0; i < v.arr.Len(); i++ {
			parts[i] = Display(v.arr.Get(i), numFmt)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindStyleBlock:
		return v.style.String()
	default:
		return v.KindName()
	}
}
