package parser

import (
	"github.com/svgdsl/svgdsl/pathlang/ast"
	"github.com/svgdsl/svgdsl/pathlang/lexer"
)

// parseTextStatement parses:
//
//	text(x, y [, rotation]? [, styleExpr]?) textBody
//	textBody := templateLiteral | '{' textChild* '}'
//
// rotation and styleExpr are both optional trailing arguments; a trailing
// StyleBlockLiteral (recognisable by starting with '${') is always taken
// as the style argument regardless of how many arguments precede it, so
// `text(x, y, ${...})` and `text(x, y, rot, ${...})` both parse correctly.
func (p *Parser) parseTextStatement() (ast.Stmt, error) {
	pos := p.cur().Pos
	p.advance() // 'text'
	if _, err := p.expect(lexer.LParen, "'('"); err != nil {
		return nil, err
	}
	x, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Comma, "','"); err != nil {
		return nil, err
	}
	y, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	var trailing []ast.Expr
	for p.cur().Kind == lexer.Comma {
		p.advance()
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		trailing = append(trailing, e)
	}
	if _, err := p.expect(lexer.RParen, "')'"); err != nil {
		return nil, err
	}

	rotation, style := splitTrailingStyle(trailing)

	inline, children, err := p.parseTextBody()
	if err != nil {
		return nil, err
	}
	if inline != nil {
		p.consumeSemicolon()
	}
	return ast.NewTextStatement(pos, x, y, rotation, style, inline, children), nil
}

// splitTrailingStyle pulls a trailing StyleBlockLiteral out of a list of
// optional positional arguments, returning the remaining single
// positional expression (rotation, or dx/dy/rotation callers combine
// themselves) alongside it. At most one non-style expression is expected
// by textStmt's grammar; tspanStmt handles its own up-to-three case.
func splitTrailingStyle(args []ast.Expr) (rest ast.Expr, style ast.Expr) {
	if len(args) == 0 {
		return nil, nil
	}
	last := args[len(args)-1]
	if _, ok := last.(*ast.StyleBlockLiteral); ok {
		style = last
		args = args[:len(args)-1]
	}
	if len(args) > 0 {
		rest = args[0]
	}
	return rest, style
}

func (p *Parser) parseTextBody() (*ast.TemplateLiteral, []ast.TextChild, error) {
	if p.cur().Kind == lexer.TemplateString {
		t := p.advance()
		tmpl, err := p.parseTemplateLiteral(t)
		if err != nil {
			return nil, nil, err
		}
		return tmpl.(*ast.TemplateLiteral), nil, nil
	}
	if _, err := p.expect(lexer.LBrace, "'{'"); err != nil {
		return nil, nil, err
	}
	var children []ast.TextChild
	for p.cur().Kind != lexer.RBrace {
		if p.cur().Kind == lexer.EOF {
			return nil, nil, p.errorf(p.cur().Pos, "unclosed text block")
		}
		child, err := p.parseTextChild()
		if err != nil {
			return nil, nil, err
		}
		children = append(children, child)
	}
	p.advance() // '}'
	return nil, children, nil
}

func (p *Parser) parseTextChild() (ast.TextChild, error) {
	t := p.cur()
	switch {
	case t.Kind == lexer.TemplateString:
		p.advance()
		tmpl, err := p.parseTemplateLiteral(t)
		if err != nil {
			return ast.TextChild{}, err
		}
		return ast.TextChild{Kind: ast.ChildRun, Template: tmpl.(*ast.TemplateLiteral)}, nil
	case t.Kind == lexer.Keyword && t.Text == "tspan":
		ts, err := p.parseTspanStatement()
		if err != nil {
			return ast.TextChild{}, err
		}
		return ast.TextChild{Kind: ast.ChildTspan, Tspan: ts.(*ast.TspanStatement)}, nil
	case t.Kind == lexer.Keyword && t.Text == "for":
		stmt, err := p.parseForLoop()
		if err != nil {
			return ast.TextChild{}, err
		}
		switch f := stmt.(type) {
		case *ast.ForRange:
			return ast.TextChild{Kind: ast.ChildFor, ForRange: f}, nil
		case *ast.ForEach:
			return ast.TextChild{Kind: ast.ChildFor, ForEach: f}, nil
		default:
			return ast.TextChild{}, p.errorf(t.Pos, "unexpected for-loop form in text block")
		}
	case t.Kind == lexer.Keyword && t.Text == "if":
		stmt, err := p.parseIfStatement()
		if err != nil {
			return ast.TextChild{}, err
		}
		return ast.TextChild{Kind: ast.ChildIf, If: stmt.(*ast.IfStatement)}, nil
	case t.Kind == lexer.Keyword && t.Text == "let":
		stmt, err := p.parseLetDecl()
		if err != nil {
			return ast.TextChild{}, err
		}
		return ast.TextChild{Kind: ast.ChildLet, Let: stmt.(*ast.LetDeclaration)}, nil
	default:
		return ast.TextChild{}, p.errorf(t.Pos, "unexpected token %q in text block", t.Text)
	}
}

// parseTspanStatement parses `tspan(dx?, dy?, rotation?, style?) template`.
// Up to four positional arguments are accepted; a trailing StyleBlockLiteral
// is pulled out regardless of position count, and the remaining 0-3
// expressions are assigned in order to dx, dy, rotation.
func (p *Parser) parseTspanStatement() (ast.Stmt, error) {
	pos := p.cur().Pos
	p.advance() // 'tspan'
	if _, err := p.expect(lexer.LParen, "'('"); err != nil {
		return nil, err
	}
	var args []ast.Expr
	for p.cur().Kind != lexer.RParen {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, e)
		if p.cur().Kind == lexer.Comma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RParen, "')'"); err != nil {
		return nil, err
	}

	var style ast.Expr
	if n := len(args); n > 0 {
		if _, ok := args[n-1].(*ast.StyleBlockLiteral); ok {
			style = args[n-1]
			args = args[:n-1]
		}
	}
	var dx, dy, rotation ast.Expr
	switch len(args) {
	case 1:
		dx = args[0]
	case 2:
		dx, dy = args[0], args[1]
	case 3:
		dx, dy, rotation = args[0], args[1], args[2]
	}

	if p.cur().Kind != lexer.TemplateString {
		return nil, p.errorf(p.cur().Pos, "expected template literal as tspan body")
	}
	t := p.advance()
	tmpl, err := p.parseTemplateLiteral(t)
	if err != nil {
		return nil, err
	}
	p.consumeSemicolon()
	return ast.NewTspanStatement(pos, dx, dy, rotation, style, tmpl.(*ast.TemplateLiteral)), nil
}
