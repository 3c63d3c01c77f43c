// Package eval implements the svgdsl tree-walking interpreter: statement
// and expression semantics, control flow, function calls, layer and path
// context management, and the wiring of pathlang/stdlib into the global
// environment.
package eval

import (
	"errors"
	"fmt"

	"github.com/svgdsl/svgdsl/pathlang/srcmap"
)

// Kind is a fixed symbolic error-kind identifier, per spec.md section 7's
// error taxonomy.
type Kind string

const (
	KindParseError            Kind = "ParseError"
	KindUndefinedVariable     Kind = "UndefinedVariable"
	KindUndefinedFunction     Kind = "UndefinedFunction"
	KindArityMismatch         Kind = "ArityMismatch"
	KindTypeError             Kind = "TypeError"
	KindNullUsage             Kind = "NullUsage"
	KindIndexOutOfBounds      Kind = "IndexOutOfBounds"
	KindAngleUnitMismatch     Kind = "AngleUnitMismatch"
	KindRangeError            Kind = "RangeError"
	KindLayerError            Kind = "LayerError"
	KindPathBlockRestriction  Kind = "PathBlockRestriction"
	KindAssignmentError       Kind = "AssignmentError"
	KindArgumentError         Kind = "ArgumentError"
)

// Error is a structured evaluation error, always carrying a source
// position.
type Error struct {
	ErrKind Kind
	Message string
	Line    int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (line %d, column %d)", e.ErrKind, e.Message, e.Line, e.Column)
}

// Sentinels so callers can errors.Is against a specific kind without
// string-matching messages.
var (
	ErrUndefinedVariable    = errors.New("eval: undefined variable")
	ErrUndefinedFunction    = errors.New("eval: undefined function")
	ErrArityMismatch        = errors.New("eval: arity mismatch")
	ErrTypeError            = errors.New("eval: type error")
	ErrNullUsage            = errors.New("eval: null usage")
	ErrIndexOutOfBounds     = errors.New("eval: index out of bounds")
	ErrAngleUnitMismatch    = errors.New("eval: angle unit mismatch")
	ErrRangeError           = errors.New("eval: range error")
	ErrLayerError           = errors.New("eval: layer error")
	ErrPathBlockRestriction = errors.New("eval: path block restriction")
	ErrAssignmentError      = errors.New("eval: assignment error")
	ErrArgumentError        = errors.New("eval: argument error")
)

func sentinelFor(k Kind) error {
	switch k {
	case KindUndefinedVariable:
		return ErrUndefinedVariable
	case KindUndefinedFunction:
		return ErrUndefinedFunction
	case KindArityMismatch:
		return ErrArityMismatch
	case KindTypeError:
		return ErrTypeError
	case KindNullUsage:
		return ErrNullUsage
	case KindIndexOutOfBounds:
		return ErrIndexOutOfBounds
	case KindAngleUnitMismatch:
		return ErrAngleUnitMismatch
	case KindRangeError:
		return ErrRangeError
	case KindLayerError:
		return ErrLayerError
	case KindPathBlockRestriction:
		return ErrPathBlockRestriction
	case KindAssignmentError:
		return ErrAssignmentError
	case KindArgumentError:
		return ErrArgumentError
	default:
		return errors.New("eval: error")
	}
}

// wrapped lets *Error participate in errors.Is(err, eval.ErrTypeError).
type wrapped struct {
	*Error
	sentinel error
}

func (w *wrapped) Unwrap() error { return w.sentinel }

func newError(k Kind, pos srcmap.Position, format string, args ...any) error {
	e := &Error{ErrKind: k, Message: fmt.Sprintf(format, args...), Line: pos.Line, Column: pos.Column}
	return &wrapped{Error: e, sentinel: sentinelFor(k)}
}

// AsError extracts the structured *Error from err, if any.
func AsError(err error) (*Error, bool) {
	var w *wrapped
	if errors.As(err, &w) {
		return w.Error, true
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
