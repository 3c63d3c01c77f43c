// Package lexer turns svgdsl source text into a stream of tagged tokens.
//
// Identifier classification follows Unicode ID_Start/ID_Continue via
// github.com/smasher164/xid, the same library the teacher's jsonpath lexer
// uses for its $variable names. Number scanning is hand-rolled rather than
// delegated to text/scanner because svgdsl numbers carry an angle-unit
// suffix (deg/rad/pi) that must bind only when adjacent to the digits with
// no intervening whitespace -- a grammar text/scanner's ScanFloats does not
// express.
package lexer

import "github.com/svgdsl/svgdsl/pathlang/srcmap"

// Kind tags a token's lexical category.
type Kind uint8

const (
	EOF Kind = iota
	Ident
	Keyword
	Number
	String
	TemplateString
	PathLetter // statement-position single-letter path command candidate

	// punctuation
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Comma
	Semicolon
	Colon
	Dot
	DotDot
	Merge // <<
	At
	AtBrace       // @{
	StyleOpen     // ${
	Assign        // =
	Eq            // ==
	Neq           // !=
	Lt
	Lte
	Gt
	Gte
	Plus
	Minus
	Star
	Slash
	Percent
	And // &&
	Or  // ||
	Not // !
)

// Keywords reserved by the language; used as identifiers they are a parse
// error.
var Keywords = map[string]bool{
	"let": true, "fn": true, "for": true, "in": true, "if": true,
	"else": true, "return": true, "calc": true, "define": true,
	"default": true, "layer": true, "apply": true, "PathLayer": true,
	"TextLayer": true, "text": true, "tspan": true, "Point": true,
	"log": true, "null": true, "true": true, "false": true,
}

// PathLetters is the set of single-character path command letters
// recognised at statement position.
var PathLetters = map[string]bool{
	"M": true, "m": true, "L": true, "l": true, "H": true, "h": true,
	"V": true, "v": true, "C": true, "c": true, "S": true, "s": true,
	"Q": true, "q": true, "T": true, "t": true, "A": true, "a": true,
	"Z": true, "z": true,
}

// Token is one lexical token.
type Token struct {
	Kind Kind
	Text string
	Num  float64
	Unit AngleUnit
	Pos  srcmap.Position
	// Start/End are byte offsets into the source, used for log() argument
	// span capture.
	Start, End int
}

// AngleUnit mirrors ast.AngleUnit without importing the ast package.
type AngleUnit uint8

const (
	UnitNone AngleUnit = iota
	UnitRad
)
