// Package parser implements svgdsl's hand-written recursive-descent
// parser: it consumes the token stream produced by pathlang/lexer and
// builds the pathlang/ast tree, distinguishing path-command statement
// position from expression position per spec.md section 4.2.
package parser

import (
	"errors"
	"fmt"

	"github.com/svgdsl/svgdsl/pathlang/srcmap"
)

// ErrParse is the sentinel wrapped by every parse error, so callers can
// errors.Is(err, parser.ErrParse) without string-matching messages, the
// same pattern the teacher's path/parser package uses for ErrParse.
var ErrParse = errors.New("parser")

// Error is a parse error: a named construct plus its source position.
type Error struct {
	Msg string
	Pos srcmap.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Msg, e.Pos.Line, e.Pos.Column)
}

func (e *Error) Unwrap() error { return ErrParse }

func (p *Parser) errorf(pos srcmap.Position, format string, args ...any) error {
	return &Error{Msg: fmt.Sprintf(format, args...), Pos: pos}
}
