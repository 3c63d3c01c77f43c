package eval

import (
	"github.com/svgdsl/svgdsl/pathlang/ast"
	"github.com/svgdsl/svgdsl/pathlang/format"
	"github.com/svgdsl/svgdsl/pathlang/pathctx"
	"github.com/svgdsl/svgdsl/pathlang/srcmap"
	"github.com/svgdsl/svgdsl/pathlang/stdlib"
	"github.com/svgdsl/svgdsl/pathlang/values"
)

// Options mirrors the external CompileOptions, kept as an internal type so
// package eval doesn't depend on the facade package.
type Options struct {
	ToFixed     *int
	SeedRandom  *uint64
}

// LogPart is one part of a log() entry: either a literal string or a
// labeled value.
type LogPart struct {
	IsValue bool
	String  string // literal text, when !IsValue
	Label   string // source text of the argument expression, when IsValue
	Value   string // rendered display form, when IsValue
}

// LogEntry records one log() call.
type LogEntry struct {
	Line  int
	Parts []LogPart
}

// Layer is an insertion-ordered output channel: either a PathLayer (Ctx
// accumulates tokens) or a TextLayer (TextElements accumulate).
type Layer struct {
	Name         string
	IsText       bool
	IsDefault    bool
	Style        *values.StyleBlock
	Ctx          *pathctx.PathContext
	TextElements []*TextElement
}

// TextElement is one `text(...)` statement's output.
type TextElement struct {
	X, Y     float64
	Rotation *float64
	Styles   *values.StyleBlock
	Children []*TextNode
}

// TextNodeKind discriminates TextNode cases.
type TextNodeKind uint8

const (
	TextNodeRun TextNodeKind = iota
	TextNodeTspan
)

// TextNode is one child of a TextElement: a run of literal text, or a
// tspan with its own offset/rotation/style.
type TextNode struct {
	Kind     TextNodeKind
	Text     string
	DX, DY   *float64
	Rotation *float64
	Styles   *values.StyleBlock
}

// Hooks lets package annotate observe evaluation without reimplementing
// it: each hook is called at the point named, in emission order.
type Hooks struct {
	// BeforeFor fires once per loop, after its iteration count is known,
	// so the annotator can decide on its own whether and where to elide
	// the middle of a long trace.
	BeforeFor       func(label string, line int, total int)
	BeforeIteration func(index int)
	AfterForEnd     func()
	// BeforeCall fires for every call; traced is true only for shape
	// generators and user-defined functions, per spec.md section 4.11 --
	// plain math/stdlib helper calls are not part of the annotated trace.
	BeforeCall func(label string, line int, traced bool)
	AfterEmit  func(line string)
}

// Evaluator executes a parsed Program, owning all mutable state for one
// Compile invocation: a fresh global environment, layer set, log stream,
// and path contexts. Multiple concurrent Compile calls each own their own
// Evaluator and never share state, per spec.md section 5.
type Evaluator struct {
	Global *values.Env

	layers      []*Layer
	layerByName map[string]*Layer
	defaultLayer *Layer

	Logs []LogEntry

	opts   Options
	fmtOpt format.Options
	rng    *stdlib.Random

	source *srcmap.Map
	raw    string

	activeCtx       *pathctx.PathContext
	inApply         bool
	inTextApply     bool
	activeTextLayer *Layer

	Hooks Hooks

	// shapeGenerators is the set of builtin names registered by
	// registerShape/registerShapeN, consulted by evalCall so the annotator
	// traces shape-generator calls but not plain math helpers.
	shapeGenerators map[string]bool
}

const maxForIterations = 10000

// New creates an Evaluator for one Compile invocation over source, with
// the built-in function table freshly populated (no shared mutable global
// state survives across calls, per spec.md section 5).
func New(source string, opts Options) *Evaluator {
	e := &Evaluator{
		Global:          values.NewGlobalEnv(),
		layerByName:     map[string]*Layer{},
		opts:            opts,
		fmtOpt:          format.Options{ToFixed: opts.ToFixed},
		rng:             stdlib.NewRandom(opts.SeedRandom),
		source:          srcmap.New(source),
		raw:             source,
		shapeGenerators: map[string]bool{},
	}
	registerStdlib(e)
	return e
}

// Layers returns the layers defined during evaluation, in insertion
// order.
func (e *Evaluator) Layers() []*Layer { return e.layers }

// DefaultLayer returns the default layer, or nil if none was ever
// created.
func (e *Evaluator) DefaultLayer() *Layer { return e.defaultLayer }

// Run evaluates program's top-level statements.
func (e *Evaluator) Run(program *ast.Program) error {
	_, err := e.execBlock(program.Body, e.Global)
	return err
}

// activeContext returns the PathContext that bare path commands and
// shape-generator builtins should emit into: the layer's context inside
// an apply block, the temporary capture context inside a PathBlock
// expression, or the default layer's (auto-created on demand) otherwise.
func (e *Evaluator) activeContext(pos srcmap.Position) (*pathctx.PathContext, error) {
	if e.activeCtx != nil {
		return e.activeCtx, nil
	}
	return e.ensureDefaultLayer(pos)
}

func (e *Evaluator) ensureDefaultLayer(pos srcmap.Position) (*pathctx.PathContext, error) {
	if e.defaultLayer != nil {
		if e.defaultLayer.IsText {
			return nil, newError(KindLayerError, pos, "cannot emit a path command into the default text layer")
		}
		return e.defaultLayer.Ctx, nil
	}
	layer := &Layer{Name: "", IsText: false, IsDefault: true, Style: values.NewStyleBlock(), Ctx: pathctx.New()}
	e.layers = append(e.layers, layer)
	e.layerByName[layer.Name] = layer
	e.defaultLayer = layer
	return layer.Ctx, nil
}
