// Package svgdsl compiles svgdsl source -- SVG path syntax extended with
// variables, expressions, control flow, functions, a standard library,
// multi-layer output, and the parametric PathBlock geometry primitive --
// into one or more named output layers.
//
// Compile returns a structured result or a wrapped error carrying a
// symbolic kind and a 1-based line/column, in the style of the teacher's
// root path package: a thin wrapper over an internal lexer/parser/
// evaluator pipeline that never exposes its intermediate packages.
package svgdsl

import (
	"github.com/svgdsl/svgdsl/pathlang/annotate"
	"github.com/svgdsl/svgdsl/pathlang/eval"
	"github.com/svgdsl/svgdsl/pathlang/parser"
)

// Re-exported error kinds and sentinels, so callers never need to import
// pathlang/eval directly.
const (
	ErrKindParseError            = "ParseError"
	ErrKindUndefinedVariable     = string(eval.KindUndefinedVariable)
	ErrKindUndefinedFunction     = string(eval.KindUndefinedFunction)
	ErrKindArityMismatch         = string(eval.KindArityMismatch)
	ErrKindTypeError             = string(eval.KindTypeError)
	ErrKindNullUsage             = string(eval.KindNullUsage)
	ErrKindIndexOutOfBounds      = string(eval.KindIndexOutOfBounds)
	ErrKindAngleUnitMismatch     = string(eval.KindAngleUnitMismatch)
	ErrKindRangeError            = string(eval.KindRangeError)
	ErrKindLayerError            = string(eval.KindLayerError)
	ErrKindPathBlockRestriction  = string(eval.KindPathBlockRestriction)
	ErrKindAssignmentError       = string(eval.KindAssignmentError)
	ErrKindArgumentError         = string(eval.KindArgumentError)
)

var (
	ErrUndefinedVariable    = eval.ErrUndefinedVariable
	ErrUndefinedFunction    = eval.ErrUndefinedFunction
	ErrArityMismatch        = eval.ErrArityMismatch
	ErrTypeError            = eval.ErrTypeError
	ErrNullUsage            = eval.ErrNullUsage
	ErrIndexOutOfBounds     = eval.ErrIndexOutOfBounds
	ErrAngleUnitMismatch    = eval.ErrAngleUnitMismatch
	ErrRangeError           = eval.ErrRangeError
	ErrLayerError           = eval.ErrLayerError
	ErrPathBlockRestriction = eval.ErrPathBlockRestriction
	ErrAssignmentError      = eval.ErrAssignmentError
	ErrArgumentError        = eval.ErrArgumentError
	ErrParse                = parser.ErrParse
)

// CompileOptions configures one Compile/CompileAnnotated invocation.
type CompileOptions struct {
	// ToFixed, if non-nil, rounds every rendered number to this many
	// decimal places (round-half-away-from-zero); nil uses the shortest
	// round-trip representation.
	ToFixed *int
	// SeedRandom, if non-nil, seeds random()/randomRange() for
	// reproducible output; nil seeds from a fixed default.
	SeedRandom *uint64
}

func (o CompileOptions) toEvalOptions() eval.Options {
	return eval.Options{ToFixed: o.ToFixed, SeedRandom: o.SeedRandom}
}

// Cursor is a layer's drawing-cursor snapshot: current position and the
// start of the current subpath.
type Cursor struct {
	X, Y               float64
	SubpathStartX      float64
	SubpathStartY      float64
}

// TextNode is one child of a TextElement: either a literal run or a
// tspan with its own offset/rotation/style.
type TextNode struct {
	IsTspan  bool
	Text     string
	DX, DY   *float64
	Rotation *float64
	Styles   map[string]string
}

// TextElement is one `text(...)` statement's output inside a TextLayer.
type TextElement struct {
	X, Y     float64
	Rotation *float64
	Styles   map[string]string
	Children []TextNode
}

// Layer is one named output channel.
type Layer struct {
	Name      string
	IsText    bool
	IsDefault bool
	Styles    map[string]string
	// Data is the space-joined path token string, set when !IsText.
	Data string
	// TextElements is set when IsText.
	TextElements []TextElement
}

// LogPart is one piece of a log() entry.
type LogPart struct {
	IsValue bool
	String  string
	Label   string
	Value   string
}

// LogEntry records one log() call site's output.
type LogEntry struct {
	Line  int
	Parts []LogPart
}

// CompileResult is the structured output of a successful Compile call.
type CompileResult struct {
	Layers []Layer
	Logs   []LogEntry
	// Context is the default layer's final cursor, for embedders doing
	// cursor-aware follow-up work; nil if no default PathLayer ran.
	Context *Cursor
	// Path is a convenience shortcut for the default layer's Data when
	// it is a PathLayer; empty otherwise.
	Path string
}

// Compile parses and evaluates source, returning its layered output.
func Compile(source string, options CompileOptions) (CompileResult, error) {
	program, err := parser.Parse(source)
	if err != nil {
		return CompileResult{}, err
	}

	e := eval.New(source, options.toEvalOptions())
	if err := e.Run(program); err != nil {
		return CompileResult{}, err
	}

	return buildResult(e), nil
}

// CompileAnnotated parses and evaluates source, returning the annotated
// trace described in spec.md section 4.11 instead of a structured result.
func CompileAnnotated(source string, options CompileOptions) (string, error) {
	return annotate.Run(source, options.toEvalOptions())
}

func buildResult(e *eval.Evaluator) CompileResult {
	var result CompileResult

	for _, l := range e.Layers() {
		out := Layer{Name: l.Name, IsText: l.IsText, IsDefault: l.IsDefault}
		if l.Style != nil {
			out.Styles = l.Style.ToMap()
		}
		if l.IsText {
			out.TextElements = make([]TextElement, len(l.TextElements))
			for i, te := range l.TextElements {
				out.TextElements[i] = convertTextElement(te)
			}
		} else if l.Ctx != nil {
			out.Data = l.Ctx.Data()
		}
		result.Layers = append(result.Layers, out)
	}

	if def := e.DefaultLayer(); def != nil && !def.IsText && def.Ctx != nil {
		result.Path = def.Ctx.Data()
		result.Context = &Cursor{
			X: def.Ctx.Position.X, Y: def.Ctx.Position.Y,
			SubpathStartX: def.Ctx.SubpathStart.X, SubpathStartY: def.Ctx.SubpathStart.Y,
		}
	}

	for _, entry := range e.Logs {
		out := LogEntry{Line: entry.Line}
		for _, part := range entry.Parts {
			out.Parts = append(out.Parts, LogPart{
				IsValue: part.IsValue, String: part.String, Label: part.Label, Value: part.Value,
			})
		}
		result.Logs = append(result.Logs, out)
	}

	return result
}

func convertTextElement(te *eval.TextElement) TextElement {
	out := TextElement{X: te.X, Y: te.Y, Rotation: te.Rotation}
	if te.Styles != nil {
		out.Styles = te.Styles.ToMap()
	}
	for _, child := range te.Children {
		node := TextNode{
			IsTspan:  child.Kind == eval.TextNodeTspan,
			Text:     child.Text,
			DX:       child.DX,
			DY:       child.DY,
			Rotation: child.Rotation,
		}
		if child.Styles != nil {
			node.Styles = child.Styles.ToMap()
		}
		out.Children = append(out.Children, node)
	}
	return out
}
