package values

import "github.com/svgdsl/svgdsl/pathlang/ast"

// UserFunction is a closure: it keeps a handle to the environment active
// at definition time, so calling it creates a child of that captured
// environment rather than of the caller's, yielding lexical scope.
type UserFunction struct {
	Name     string
	Params   []string
	Body     []ast.Stmt
	Captured *Env
}

// Builtin is a standard-library function. Call is constructed by package
// eval (often as a closure over the active Evaluator, for functions like
// the path-shape generators that have emission side effects), so this
// package stays free of any dependency on eval.
type Builtin struct {
	Name    string
	MinArgs int
	MaxArgs int // -1 means unbounded
	Call    func(args []Value) (Value, error)
}

// Accepts reports whether n arguments satisfy b's arity.
func (b *Builtin) Accepts(n int) bool {
	if n < b.MinArgs {
		return false
	}
	return b.MaxArgs < 0 || n <= b.MaxArgs
}
