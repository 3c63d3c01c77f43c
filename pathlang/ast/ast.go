// Package ast provides the abstract syntax tree produced by
// pathlang/parser.
//
// Every node carries the source position of its leading token so that
// evaluation errors and the annotator can report line/column. The complete
// list of statement node kinds:
//
//   - [LetDeclaration] [Assignment] [PathCommand] [ForRange] [ForEach]
//   - [IfStatement] [FunctionDefinition] [ReturnStatement] [LayerDefine]
//   - [LayerApply] [TextStatement] [TspanStatement] [ExpressionStatement]
//
// and expression node kinds:
//
//   - [NumberLiteral] [StringLiteral] [TemplateLiteral] [NullLiteral]
//   - [Identifier] [BinaryExpression] [UnaryExpression] [FunctionCall]
//   - [MethodCall] [Index] [Property] [ArrayLiteral] [StyleBlockLiteral]
//   - [PathBlockExpression] [CalcExpression]
package ast

import "github.com/svgdsl/svgdsl/pathlang/srcmap"

// Node is implemented by every AST node.
type Node interface {
	Pos() srcmap.Position
	node()
}

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	stmt()
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	expr()
}

// base embeds a Position and gives every node its Pos() method.
type base struct {
	Position srcmap.Position
}

func (b base) Pos() srcmap.Position { return b.Position }
func (base) node()                  {}

type stmtBase struct{ base }

func (stmtBase) stmt() {}

type exprBase struct{ base }

func (exprBase) expr() {}

// Program is the root node: a sequence of top-level statements.
type Program struct {
	base
	Body []Stmt
}

func NewProgram(pos srcmap.Position, body []Stmt) *Program {
	return &Program{base{pos}, body}
}

// AngleUnit tags a NumberLiteral's unit.
type AngleUnit uint8

const (
	UnitNone AngleUnit = iota
	UnitRad
)

// --- statements ---

// LetDeclaration declares (or redeclares) a name in the current scope.
type LetDeclaration struct {
	stmtBase
	Name  string
	Value Expr
}

// Assignment assigns to the nearest enclosing declaration of Name.
type Assignment struct {
	stmtBase
	Name  string
	Value Expr
}

// PathCommand is a bare path-letter statement, e.g. `M 10 20`.
type PathCommand struct {
	stmtBase
	Letter string
	Args   []Expr
}

// ForRange is `for (i in start..end) { body }`.
type ForRange struct {
	stmtBase
	Var        string
	Start, End Expr
	Body       []Stmt
}

// ForEach is `for (x in iterable) { body }` or `for ([x,i] in iterable) {}`.
type ForEach struct {
	stmtBase
	ItemVar  string
	IndexVar string // "" unless destructured [item, index]
	Iterable Expr
	Body     []Stmt
}

// IfBranch is one `if`/`else if` arm.
type IfBranch struct {
	Cond Expr
	Body []Stmt
}

// IfStatement is `if (...) {} else if (...) {} else {}`.
type IfStatement struct {
	stmtBase
	Branches  []IfBranch
	Alternate []Stmt // nil if no else
}

// FunctionDefinition binds a UserFunction in the current scope.
type FunctionDefinition struct {
	stmtBase
	Name   string
	Params []string
	Body   []Stmt
}

// ReturnStatement unwinds to the innermost function call.
type ReturnStatement struct {
	stmtBase
	Value Expr // nil for bare `return;`
}

// LayerDefine is `define [default] (PathLayer|TextLayer)(name) ${...}`.
type LayerDefine struct {
	stmtBase
	IsText    bool
	IsDefault bool
	NameExpr  Expr
	StyleExpr Expr
}

// LayerApply is `layer(name).apply { body }`.
type LayerApply struct {
	stmtBase
	NameExpr Expr
	Body     []Stmt
}

// TextChildKind discriminates TextStatement/Tspan children.
type TextChildKind uint8

const (
	ChildRun TextChildKind = iota
	ChildTspan
	ChildFor
	ChildIf
	ChildLet
)

// TextChild is a child of a TextStatement's block body.
type TextChild struct {
	Kind     TextChildKind
	Template *TemplateLiteral   // ChildRun
	Tspan    *TspanStatement    // ChildTspan
	ForRange *ForRange          // ChildFor (range form)
	ForEach  *ForEach           // ChildFor (each form)
	If       *IfStatement       // ChildIf
	Let      *LetDeclaration    // ChildLet
}

// TextStatement is `text(x, y[, rotation][, style]) <body>`.
type TextStatement struct {
	stmtBase
	X, Y        Expr
	Rotation    Expr // nil if absent
	StyleExpr   Expr // nil if absent
	Inline      *TemplateLiteral // set for the inline-template form
	Children    []TextChild      // set for the block form
}

// TspanStatement is `tspan(dx?, dy?, rotation?, style?) <template>`.
type TspanStatement struct {
	stmtBase
	DX, DY    Expr
	Rotation  Expr
	StyleExpr Expr
	Text      *TemplateLiteral
}

// ExpressionStatement evaluates an expression and discards its value,
// except for the path-emitting side effects of calls.
type ExpressionStatement struct {
	stmtBase
	Expr Expr
}

// --- expressions ---

// NumberLiteral is a numeric literal, with its angle unit already
// normalised to radians (deg -> rad, Npi -> N*pi) at parse time.
type NumberLiteral struct {
	exprBase
	Value float64
	Unit  AngleUnit
}

// StringLiteral is a single/double-quoted string with no interpolation.
type StringLiteral struct {
	exprBase
	Value string
}

// TemplatePart is one piece of a template literal: either a literal string
// chunk or an interpolated expression.
type TemplatePart struct {
	Literal string
	Expr    Expr // nil for a literal chunk
	// Raw is the original source text of Expr, used as log()'s label.
	Raw string
}

// TemplateLiteral is a backtick string with ${...} interpolation holes.
type TemplateLiteral struct {
	exprBase
	Parts []TemplatePart
}

// NullLiteral is the `null` literal.
type NullLiteral struct {
	exprBase
}

// Identifier is a bare name reference.
type Identifier struct {
	exprBase
	Name string
}

// BinaryOp enumerates binary operators.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
	OpAnd
	OpOr
	OpMerge // <<
)

// BinaryExpression is `left op right`.
type BinaryExpression struct {
	exprBase
	Op          BinaryOp
	Left, Right Expr
}

// UnaryOp enumerates unary operators.
type UnaryOp uint8

const (
	OpNeg UnaryOp = iota
	OpNot
)

// UnaryExpression is `op operand`.
type UnaryExpression struct {
	exprBase
	Op      UnaryOp
	Operand Expr
}

// FunctionCall is `callee(args...)`.
type FunctionCall struct {
	exprBase
	Callee Expr
	Args   []Expr
	// ArgSpans holds the raw source text of each argument, used by log()
	// for argument labels.
	ArgSpans []string
}

// MethodCall is `receiver.name(args...)`.
type MethodCall struct {
	exprBase
	Receiver Expr
	Name     string
	Args     []Expr
}

// Index is `receiver[index]`.
type Index struct {
	exprBase
	Receiver Expr
	IndexExp Expr
}

// Property is `receiver.name`.
type Property struct {
	exprBase
	Receiver Expr
	Name     string
}

// ArrayLiteral is `[a, b, c]`.
type ArrayLiteral struct {
	exprBase
	Elements []Expr
}

// StyleEntry is one `prop: value;` pair inside a style block literal.
type StyleEntry struct {
	Property string
	Value    Expr
}

// StyleBlockLiteral is `${ prop: value; ... }`.
type StyleBlockLiteral struct {
	exprBase
	Entries []StyleEntry
}

// PathBlockExpression is `@{ statement* }`.
type PathBlockExpression struct {
	exprBase
	Body []Stmt
}

// CalcExpression is `calc(expr)`, present only for syntactic
// disambiguation in path-argument position.
type CalcExpression struct {
	exprBase
	Inner Expr
}

func newExpr(pos srcmap.Position) exprBase { return exprBase{base{pos}} }
func newStmt(pos srcmap.Position) stmtBase { return stmtBase{base{pos}} }

// Constructors, so the parser never has to build the embedded base fields
// by hand.

func NewLetDeclaration(pos srcmap.Position, name string, value Expr) *LetDeclaration {
	return &LetDeclaration{newStmt(pos), name, value}
}

func NewAssignment(pos srcmap.Position, name string, value Expr) *Assignment {
	return &Assignment{newStmt(pos), name, value}
}

func NewPathCommand(pos srcmap.Position, letter string, args []Expr) *PathCommand {
	return &PathCommand{newStmt(pos), letter, args}
}

func NewForRange(pos srcmap.Position, v string, start, end Expr, body []Stmt) *ForRange {
	return &ForRange{newStmt(pos), v, start, end, body}
}

func NewForEach(pos srcmap.Position, item, index string, iterable Expr, body []Stmt) *ForEach {
	return &ForEach{newStmt(pos), item, index, iterable, body}
}

func NewIfStatement(pos srcmap.Position, branches []IfBranch, alt []Stmt) *IfStatement {
	return &IfStatement{newStmt(pos), branches, alt}
}

func NewFunctionDefinition(pos srcmap.Position, name string, params []string, body []Stmt) *FunctionDefinition {
	return &FunctionDefinition{newStmt(pos), name, params, body}
}

func NewReturnStatement(pos srcmap.Position, value Expr) *ReturnStatement {
	return &ReturnStatement{newStmt(pos), value}
}

func NewLayerDefine(pos srcmap.Position, isText, isDefault bool, nameExpr, styleExpr Expr) *LayerDefine {
	return &LayerDefine{newStmt(pos), isText, isDefault, nameExpr, styleExpr}
}

func NewLayerApply(pos srcmap.Position, nameExpr Expr, body []Stmt) *LayerApply {
	return &LayerApply{newStmt(pos), nameExpr, body}
}

func NewTextStatement(pos srcmap.Position, x, y, rotation, style Expr, inline *TemplateLiteral, children []TextChild) *TextStatement {
	return &TextStatement{newStmt(pos), x, y, rotation, style, inline, children}
}

func NewTspanStatement(pos srcmap.Position, dx, dy, rotation, style Expr, text *TemplateLiteral) *TspanStatement {
	return &TspanStatement{newStmt(pos), dx, dy, rotation, style, text}
}

func NewExpressionStatement(pos srcmap.Position, e Expr) *ExpressionStatement {
	return &ExpressionStatement{newStmt(pos), e}
}

func NewNumberLiteral(pos srcmap.Position, v float64, unit AngleUnit) *NumberLiteral {
	return &NumberLiteral{newExpr(pos), v, unit}
}

func NewStringLiteral(pos srcmap.Position, v string) *StringLiteral {
	return &StringLiteral{newExpr(pos), v}
}

func NewTemplateLiteral(pos srcmap.Position, parts []TemplatePart) *TemplateLiteral {
	return &TemplateLiteral{newExpr(pos), parts}
}

func NewNullLiteral(pos srcmap.Position) *NullLiteral {
	return &NullLiteral{newExpr(pos)}
}

func NewIdentifier(pos srcmap.Position, name string) *Identifier {
	return &Identifier{newExpr(pos), name}
}

func NewBinaryExpression(pos srcmap.Position, op BinaryOp, l, r Expr) *BinaryExpression {
	return &BinaryExpression{newExpr(pos), op, l, r}
}

func NewUnaryExpression(pos srcmap.Position, op UnaryOp, operand Expr) *UnaryExpression {
	return &UnaryExpression{newExpr(pos), op, operand}
}

func NewFunctionCall(pos srcmap.Position, callee Expr, args []Expr, spans []string) *FunctionCall {
	return &FunctionCall{newExpr(pos), callee, args, spans}
}

func NewMethodCall(pos srcmap.Position, recv Expr, name string, args []Expr) *MethodCall {
	return &MethodCall{newExpr(pos), recv, name, args}
}

func NewIndex(pos srcmap.Position, recv, idx Expr) *Index {
	return &Index{newExpr(pos), recv, idx}
}

func NewProperty(pos srcmap.Position, recv Expr, name string) *Property {
	return &Property{newExpr(pos), recv, name}
}

func NewArrayLiteral(pos srcmap.Position, elems []Expr) *ArrayLiteral {
	return &ArrayLiteral{newExpr(pos), elems}
}

func NewStyleBlockLiteral(pos srcmap.Position, entries []StyleEntry) *StyleBlockLiteral {
	return &StyleBlockLiteral{newExpr(pos), entries}
}

func NewPathBlockExpression(pos srcmap.Position, body []Stmt) *PathBlockExpression {
	return &PathBlockExpression{newExpr(pos), body}
}

func NewCalcExpression(pos srcmap.Position, inner Expr) *CalcExpression {
	return &CalcExpression{newExpr(pos), inner}
}
