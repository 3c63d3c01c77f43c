package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(src string) []Token {
	l := New(src)
	var toks []Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
	}
}

func TestLexPunctuation(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		src  string
		kind Kind
		text string
	}{
		{"lparen", "(", LParen, "("},
		{"colon", ":", Colon, ":"},
		{"dotdot", "..", DotDot, ".."},
		{"dot", ".", Dot, "."},
		{"merge", "<<", Merge, "<<"},
		{"lte", "<=", Lte, "<="},
		{"lt", "<", Lt, "<"},
		{"gte", ">=", Gte, ">="},
		{"eq", "==", Eq, "=="},
		{"assign", "=", Assign, "="},
		{"neq", "!=", Neq, "!="},
		{"not", "!", Not, "!"},
		{"and", "&&", And, "&&"},
		{"or", "||", Or, "||"},
		{"atbrace", "@{", AtBrace, "@{"},
		{"styleopen", "${", StyleOpen, "${"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			toks := scanAll(tc.src)
			require.Len(t, toks, 2)
			assert.Equal(t, tc.kind, toks[0].Kind)
			assert.Equal(t, tc.text, toks[0].Text)
			assert.Equal(t, EOF, toks[1].Kind)
		})
	}
}

func TestLexIdentsKeywordsPathLetters(t *testing.T) {
	t.Parallel()

	toks := scanAll("foo let M x")
	require.Len(t, toks, 5)
	assert.Equal(t, Ident, toks[0].Kind)
	assert.Equal(t, Keyword, toks[1].Kind)
	assert.Equal(t, PathLetter, toks[2].Kind)
	assert.Equal(t, Ident, toks[3].Kind)
}

func TestLexNumberAngleUnits(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		src  string
		val  float64
		unit AngleUnit
	}{
		{"plain", "10", 10, UnitNone},
		{"decimal", "1.5", 1.5, UnitNone},
		{"trailing_dot", "1.", 1, UnitNone},
		{"deg", "180deg", 3.141592653589793, UnitRad},
		{"rad", "1.5rad", 1.5, UnitRad},
		{"pi", "1pi", 3.141592653589793, UnitRad},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			toks := scanAll(tc.src)
			require.Len(t, toks, 2)
			require.Equal(t, Number, toks[0].Kind)
			assert.InDelta(t, tc.val, toks[0].Num, 1e-9)
			assert.Equal(t, tc.unit, toks[0].Unit)
		})
	}
}

func TestLexNumberUnknownSuffixPutBack(t *testing.T) {
	t.Parallel()
	toks := scanAll("10px")
	require.Len(t, toks, 3)
	assert.Equal(t, Number, toks[0].Kind)
	assert.InDelta(t, 10.0, toks[0].Num, 1e-9)
	assert.Equal(t, Ident, toks[1].Kind)
	assert.Equal(t, "px", toks[1].Text)
}

func TestLexString(t *testing.T) {
	t.Parallel()

	toks := scanAll(`"a\nb"`)
	require.Len(t, toks, 2)
	assert.Equal(t, String, toks[0].Kind)
	assert.Equal(t, "a\nb", toks[0].Text)
}

func TestLexTemplateRawWithHoles(t *testing.T) {
	t.Parallel()

	toks := scanAll("`x=${1 + 2} done`")
	require.Len(t, toks, 2)
	assert.Equal(t, TemplateString, toks[0].Kind)
	assert.Equal(t, "x=${1 + 2} done", toks[0].Text)
}

func TestLexLineComment(t *testing.T) {
	t.Parallel()

	toks := scanAll("1 // trailing comment\n2")
	require.Len(t, toks, 3)
	assert.Equal(t, Number, toks[0].Kind)
	assert.Equal(t, Number, toks[1].Kind)
	assert.InDelta(t, 2.0, toks[1].Num, 1e-9)
}

func TestLexUnterminatedString(t *testing.T) {
	t.Parallel()

	l := New(`"abc`)
	l.Next()
	require.Len(t, l.Errors(), 1)
	assert.Contains(t, l.Errors()[0].Error(), "unterminated string literal")
}

func TestLexPositionTracking(t *testing.T) {
	t.Parallel()

	l := New("ab\ncd")
	first := l.Next()
	assert.Equal(t, 1, first.Pos.Line)
	assert.Equal(t, 1, first.Pos.Column)

	second := l.Next()
	assert.Equal(t, 2, second.Pos.Line)
	assert.Equal(t, 1, second.Pos.Column)
}
