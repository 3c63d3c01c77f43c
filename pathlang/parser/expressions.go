package parser

import (
	"strings"

	"github.com/svgdsl/svgdsl/pathlang/ast"
	"github.com/svgdsl/svgdsl/pathlang/lexer"
	"github.com/svgdsl/svgdsl/pathlang/srcmap"
)

// parseExpression is the grammar's entry point: or -> and -> eq -> rel ->
// add -> mul -> merge -> unary -> postfix -> primary, matching spec.md
// section 4.2's precedence table from loosest to tightest.
func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == lexer.Or {
		pos := p.cur().Pos
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(pos, ast.OpOr, left, right)
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expr, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == lexer.And {
		pos := p.cur().Pos
		p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(pos, ast.OpAnd, left, right)
	}
	return left, nil
}

func (p *Parser) parseEquality() (ast.Expr, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.cur().Kind {
		case lexer.Eq:
			op = ast.OpEq
		case lexer.Neq:
			op = ast.OpNeq
		default:
			return left, nil
		}
		pos := p.cur().Pos
		p.advance()
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(pos, op, left, right)
	}
}

func (p *Parser) parseRelational() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.cur().Kind {
		case lexer.Lt:
			op = ast.OpLt
		case lexer.Lte:
			op = ast.OpLte
		case lexer.Gt:
			op = ast.OpGt
		case lexer.Gte:
			op = ast.OpGte
		default:
			return left, nil
		}
		pos := p.cur().Pos
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(pos, op, left, right)
	}
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.cur().Kind {
		case lexer.Plus:
			op = ast.OpAdd
		case lexer.Minus:
			op = ast.OpSub
		default:
			return left, nil
		}
		pos := p.cur().Pos
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(pos, op, left, right)
	}
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parseMerge()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinaryOp
		switch p.cur().Kind {
		case lexer.Star:
			op = ast.OpMul
		case lexer.Slash:
			op = ast.OpDiv
		case lexer.Percent:
			op = ast.OpMod
		default:
			return left, nil
		}
		pos := p.cur().Pos
		p.advance()
		right, err := p.parseMerge()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(pos, op, left, right)
	}
}

// parseMerge handles `<<`, the StyleBlock merge operator. It sits below
// multiplicative and above unary so `a << b` never collides with `<`/`<=`
// relational parsing, which is resolved one level up.
func (p *Parser) parseMerge() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == lexer.Merge {
		pos := p.cur().Pos
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(pos, ast.OpMerge, left, right)
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	t := p.cur()
	switch t.Kind {
	case lexer.Minus:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(t.Pos, ast.OpNeg, operand), nil
	case lexer.Not:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(t.Pos, ast.OpNot, operand), nil
	default:
		return p.parsePostfix()
	}
}

// parsePostfix parses a primary expression followed by any chain of
// `.name`, `.name(args)`, `[index]`, or `(args)` suffixes.
func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().Kind {
		case lexer.Dot:
			dotPos := p.cur().Pos
			p.advance()
			nameTok := p.cur()
			if nameTok.Kind != lexer.Ident && nameTok.Kind != lexer.Keyword && nameTok.Kind != lexer.PathLetter {
				return nil, p.errorf(nameTok.Pos, "expected property or method name after '.'")
			}
			p.advance()
			if p.cur().Kind == lexer.LParen {
				args, spans, err := p.parseArgList()
				if err != nil {
					return nil, err
				}
				_ = spans
				expr = ast.NewMethodCall(dotPos, expr, nameTok.Text, args)
				continue
			}
			expr = ast.NewProperty(dotPos, expr, nameTok.Text)
		case lexer.LBracket:
			pos := p.cur().Pos
			p.advance()
			idx, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RBracket, "']'"); err != nil {
				return nil, err
			}
			expr = ast.NewIndex(pos, expr, idx)
		case lexer.LParen:
			pos := p.cur().Pos
			args, spans, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			expr = ast.NewFunctionCall(pos, expr, args, spans)
		default:
			return expr, nil
		}
	}
}

// parseArgList parses a parenthesised, comma-separated argument list,
// recording each argument's raw source text (trimmed) for log()'s use as
// a default label, per spec.md section 4.9.
func (p *Parser) parseArgList() ([]ast.Expr, []string, error) {
	if _, err := p.expect(lexer.LParen, "'('"); err != nil {
		return nil, nil, err
	}
	var args []ast.Expr
	var spans []string
	for p.cur().Kind != lexer.RParen {
		startOff := p.cur().Start
		arg, err := p.parseExpression()
		if err != nil {
			return nil, nil, err
		}
		endOff := p.lastEnd()
		args = append(args, arg)
		spans = append(spans, strings.TrimSpace(p.sm.Slice(startOff, endOff)))
		if p.cur().Kind == lexer.Comma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RParen, "')'"); err != nil {
		return nil, nil, err
	}
	return args, spans, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	t := p.cur()
	switch t.Kind {
	case lexer.Number:
		p.advance()
		unit := ast.UnitNone
		if t.Unit == lexer.UnitRad {
			unit = ast.UnitRad
		}
		return ast.NewNumberLiteral(t.Pos, t.Num, unit), nil
	case lexer.String:
		p.advance()
		return ast.NewStringLiteral(t.Pos, t.Text), nil
	case lexer.TemplateString:
		p.advance()
		return p.parseTemplateLiteral(t)
	case lexer.LParen:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RParen, "')'"); err != nil {
			return nil, err
		}
		return inner, nil
	case lexer.LBracket:
		return p.parseArrayLiteral()
	case lexer.StyleOpen:
		return p.parseStyleBlockLiteral()
	case lexer.AtBrace:
		return p.parsePathBlockExpression()
	case lexer.PathLetter, lexer.Ident:
		p.advance()
		return ast.NewIdentifier(t.Pos, t.Text), nil
	case lexer.Keyword:
		switch t.Text {
		case "null":
			p.advance()
			return ast.NewNullLiteral(t.Pos), nil
		case "calc":
			return p.parseCalcExpression()
		case "Point":
			p.advance()
			return ast.NewIdentifier(t.Pos, t.Text), nil
		case "log":
			p.advance()
			return ast.NewIdentifier(t.Pos, t.Text), nil
		default:
			return nil, p.errorf(t.Pos, "reserved word %q cannot be used as an expression", t.Text)
		}
	default:
		return nil, p.errorf(t.Pos, "unexpected token %q", t.Text)
	}
}

func (p *Parser) parseArrayLiteral() (ast.Expr, error) {
	pos := p.cur().Pos
	p.advance() // '['
	var elems []ast.Expr
	for p.cur().Kind != lexer.RBracket {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if p.cur().Kind == lexer.Comma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RBracket, "']'"); err != nil {
		return nil, err
	}
	return ast.NewArrayLiteral(pos, elems), nil
}

func (p *Parser) parseCalcExpression() (ast.Expr, error) {
	pos := p.cur().Pos
	p.advance() // 'calc'
	if _, err := p.expect(lexer.LParen, "'('"); err != nil {
		return nil, err
	}
	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RParen, "')'"); err != nil {
		return nil, err
	}
	return ast.NewCalcExpression(pos, inner), nil
}

func (p *Parser) parsePathBlockExpression() (ast.Expr, error) {
	pos := p.cur().Pos
	p.advance() // '@{'
	var body []ast.Stmt
	for p.cur().Kind != lexer.RBrace {
		if p.cur().Kind == lexer.EOF {
			return nil, p.errorf(p.cur().Pos, "unclosed path block")
		}
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, s)
	}
	p.advance() // '}'
	return ast.NewPathBlockExpression(pos, body), nil
}

// parseStyleBlockLiteral parses `${ prop: value; prop2: value2; ... }`.
// Property values are either a quoted/template string, a `calc(...)`
// expression, or a bareword run of tokens up to the terminating `;`/`}`,
// which is captured verbatim as a StringLiteral rather than evaluated as
// an expression -- matching how `red`, `1px solid black`, and similar CSS
// value forms are plain text, not svgdsl expressions.
func (p *Parser) parseStyleBlockLiteral() (ast.Expr, error) {
	pos := p.cur().Pos
	p.advance() // '${'
	var entries []ast.StyleEntry
	for p.cur().Kind != lexer.RBrace {
		if p.cur().Kind == lexer.EOF {
			return nil, p.errorf(p.cur().Pos, "unclosed style block")
		}
		name, err := p.parseStylePropertyName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Colon, "':'"); err != nil {
			return nil, err
		}
		value, err := p.parseStyleValue()
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.StyleEntry{Property: name, Value: value})
		if p.cur().Kind == lexer.Semicolon {
			p.advance()
		}
	}
	p.advance() // '}'
	return ast.NewStyleBlockLiteral(pos, entries), nil
}

// parseStylePropertyName assembles a kebab-case property name from one or
// more ident/keyword tokens joined by '-', e.g. `stroke-width`.
func (p *Parser) parseStylePropertyName() (string, error) {
	t := p.cur()
	if t.Kind != lexer.Ident && t.Kind != lexer.Keyword {
		return "", p.errorf(t.Pos, "expected style property name")
	}
	p.advance()
	name := t.Text
	for p.cur().Kind == lexer.Minus {
		p.advance()
		nt := p.cur()
		if nt.Kind != lexer.Ident && nt.Kind != lexer.Keyword {
			return "", p.errorf(nt.Pos, "expected style property name segment")
		}
		p.advance()
		name += "-" + nt.Text
	}
	return name, nil
}

// parseStyleValue parses the value side of a style entry. String,
// template, and calc() values become real expressions; everything else is
// a verbatim slice of source up to the next ';' or the closing '}'.
func (p *Parser) parseStyleValue() (ast.Expr, error) {
	t := p.cur()
	switch {
	case t.Kind == lexer.String:
		p.advance()
		return ast.NewStringLiteral(t.Pos, t.Text), nil
	case t.Kind == lexer.TemplateString:
		p.advance()
		return p.parseTemplateLiteral(t)
	case t.Kind == lexer.Keyword && t.Text == "calc":
		return p.parseCalcExpression()
	default:
		start := t.Pos
		startOff := t.Start
		for p.cur().Kind != lexer.Semicolon && p.cur().Kind != lexer.RBrace && p.cur().Kind != lexer.EOF {
			p.advance()
		}
		endOff := p.lastEnd()
		raw := strings.TrimSpace(p.sm.Slice(startOff, endOff))
		return ast.NewStringLiteral(start, raw), nil
	}
}

// parseTemplateLiteral splits a TemplateString token's raw text (captured
// by the lexer with `${...}` holes left unresolved) into literal chunks
// and sub-parsed expression holes. Each hole is sub-lexed independently,
// then every resulting token's position is remapped from the sub-lexer's
// local (1,1)-origin coordinates to the absolute offset in the original
// source, via srcmap.Map.Position.
func (p *Parser) parseTemplateLiteral(t lexer.Token) (ast.Expr, error) {
	raw := t.Text
	// rawBase is the offset of t.Text's first byte in the original source:
	// Start is the offset of the opening backtick, so +1 skips it.
	rawBase := t.Start + 1

	var parts []ast.TemplatePart
	var lit strings.Builder
	i := 0
	for i < len(raw) {
		if raw[i] == '$' && i+1 < len(raw) && raw[i+1] == '{' {
			if lit.Len() > 0 {
				parts = append(parts, ast.TemplatePart{Literal: lit.String()})
				lit.Reset()
			}
			depth := 1
			j := i + 2
			for j < len(raw) && depth > 0 {
				switch raw[j] {
				case '{':
					depth++
				case '}':
					depth--
				}
				if depth == 0 {
					break
				}
				j++
			}
			holeSrc := raw[i+2 : j]
			exprNode, exprRaw, err := p.parseSubExpression(holeSrc, rawBase+i+2)
			if err != nil {
				return nil, err
			}
			parts = append(parts, ast.TemplatePart{Expr: exprNode, Raw: exprRaw})
			i = j + 1
			continue
		}
		lit.WriteByte(raw[i])
		i++
	}
	if lit.Len() > 0 {
		parts = append(parts, ast.TemplatePart{Literal: lit.String()})
	}
	return ast.NewTemplateLiteral(t.Pos, parts), nil
}

// parseSubExpression parses a standalone expression out of holeSrc (the
// contents of one `${...}` interpolation hole), remapping token positions
// so errors and log() labels point back into the original source.
func (p *Parser) parseSubExpression(holeSrc string, baseOffset int) (ast.Expr, string, error) {
	toks, lexErrs := lexAll(holeSrc)
	if len(lexErrs) > 0 {
		e := lexErrs[0]
		return nil, "", &Error{Msg: e.Msg, Pos: p.sm.Position(baseOffset + e.Pos.Column - 1)}
	}
	remapped := make([]lexer.Token, len(toks))
	for i, tk := range toks {
		tk2 := tk
		tk2.Start = baseOffset + tk.Start
		tk2.End = baseOffset + tk.End
		tk2.Pos = p.sm.Position(tk2.Start)
		remapped[i] = tk2
	}
	sub := &Parser{toks: remapped, sm: p.sm, src: p.src}
	expr, err := sub.parseExpression()
	if err != nil {
		return nil, "", err
	}
	if sub.cur().Kind != lexer.EOF {
		return nil, "", p.errorf(sub.cur().Pos, "unexpected token %q in template interpolation", sub.cur().Text)
	}
	raw := strings.TrimSpace(holeSrc)
	return expr, raw, nil
}
