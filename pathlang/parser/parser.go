package parser

import (
	"strings"

	"github.com/svgdsl/svgdsl/pathlang/ast"
	"github.com/svgdsl/svgdsl/pathlang/lexer"
	"github.com/svgdsl/svgdsl/pathlang/srcmap"
)

// Parser walks a pre-lexed token slice, building the AST by recursive
// descent. Lexing the whole input up front (rather than on demand) keeps
// the lookahead needed to disambiguate statement forms (e.g. `ident =`
// vs. a bare expression statement) a matter of indexing, not backtracking.
type Parser struct {
	toks []lexer.Token
	pos  int
	sm   *srcmap.Map
	src  string
}

// Parse lexes and parses source into a Program. Every error returned is a
// *Error wrapping ErrParse, carrying a 1-based line/column.
func Parse(source string) (*ast.Program, error) {
	toks, lexErrs := lexAll(source)
	if len(lexErrs) > 0 {
		e := lexErrs[0]
		return nil, &Error{Msg: e.Msg, Pos: e.Pos}
	}
	p := &Parser{toks: toks, sm: srcmap.New(source), src: source}
	return p.parseProgram()
}

func lexAll(source string) ([]lexer.Token, []*lexer.Error) {
	lx := lexer.New(source)
	var toks []lexer.Token
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == lexer.EOF {
			break
		}
	}
	return toks, lx.Errors()
}

// --- token cursor helpers ---

func (p *Parser) cur() lexer.Token { return p.toks[p.pos] }

func (p *Parser) peek(n int) lexer.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[i]
}

func (p *Parser) advance() lexer.Token {
	t := p.toks[p.pos]
	if t.Kind != lexer.EOF {
		p.pos++
	}
	return t
}

// lastEnd returns the byte offset just past the most recently consumed
// token, used to slice raw source spans for log() argument labels.
func (p *Parser) lastEnd() int {
	if p.pos == 0 {
		return 0
	}
	return p.toks[p.pos-1].End
}

func (p *Parser) isKeyword(text string) bool {
	t := p.cur()
	return t.Kind == lexer.Keyword && t.Text == text
}

func (p *Parser) expect(kind lexer.Kind, what string) (lexer.Token, error) {
	t := p.cur()
	if t.Kind != kind {
		return t, p.errorf(t.Pos, "expected %s", what)
	}
	return p.advance(), nil
}

func (p *Parser) expectKeyword(text string) error {
	t := p.cur()
	if !p.isKeyword(text) {
		return p.errorf(t.Pos, "expected keyword %q", text)
	}
	p.advance()
	return nil
}

// parseDeclName consumes a plain identifier used as a declared name (let,
// fn, fn param, for-loop binding). Reserved words are rejected here, per
// spec.md section 4.2's "reserved word cannot be used as a variable name".
func (p *Parser) parseDeclName() (string, error) {
	t := p.cur()
	if t.Kind == lexer.Keyword {
		return "", p.errorf(t.Pos, "reserved word %q cannot be used as a variable name", t.Text)
	}
	if t.Kind != lexer.Ident && t.Kind != lexer.PathLetter {
		return "", p.errorf(t.Pos, "expected identifier")
	}
	p.advance()
	return t.Text, nil
}

// --- program / blocks ---

func (p *Parser) parseProgram() (*ast.Program, error) {
	pos := p.cur().Pos
	var body []ast.Stmt
	for p.cur().Kind != lexer.EOF {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, s)
	}
	return ast.NewProgram(pos, body), nil
}

// parseBlock consumes `{ statement* }`.
func (p *Parser) parseBlock() ([]ast.Stmt, error) {
	if _, err := p.expect(lexer.LBrace, "'{'"); err != nil {
		return nil, err
	}
	var body []ast.Stmt
	for p.cur().Kind != lexer.RBrace {
		if p.cur().Kind == lexer.EOF {
			return nil, p.errorf(p.cur().Pos, "unclosed brace in block")
		}
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, s)
	}
	p.advance() // consume '}'
	return body, nil
}

// --- statement dispatch ---

func (p *Parser) parseStatement() (ast.Stmt, error) {
	t := p.cur()

	if t.Kind == lexer.PathLetter {
		return p.parsePathCommand()
	}

	if t.Kind == lexer.Keyword {
		switch t.Text {
		case "let":
			return p.parseLetDecl()
		case "for":
			return p.parseForLoop()
		case "if":
			return p.parseIfStatement()
		case "fn":
			return p.parseFnDecl()
		case "return":
			return p.parseReturnStatement()
		case "define":
			return p.parseLayerDefine()
		case "layer":
			return p.parseLayerApply()
		case "text":
			return p.parseTextStatement()
		}
	}

	if t.Kind == lexer.Ident && p.peek(1).Kind == lexer.Assign {
		return p.parseAssignment()
	}

	return p.parseExpressionStatement()
}

func (p *Parser) parseLetDecl() (ast.Stmt, error) {
	pos := p.cur().Pos
	p.advance() // 'let'
	name, err := p.parseDeclName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Assign, "'='"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.consumeSemicolon()
	return ast.NewLetDeclaration(pos, name, value), nil
}

func (p *Parser) parseAssignment() (ast.Stmt, error) {
	pos := p.cur().Pos
	name := p.advance().Text
	p.advance() // '='
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.consumeSemicolon()
	return ast.NewAssignment(pos, name, value), nil
}

// consumeSemicolon swallows a trailing ';' if present; svgdsl's grammar
// writes one after let/assignment/return, but the parser accepts a missing
// terminator anywhere, not only before '}' or EOF, matching the
// forgiving style of the teacher's hand-rolled statement parsing.
func (p *Parser) consumeSemicolon() {
	if p.cur().Kind == lexer.Semicolon {
		p.advance()
	}
}

func (p *Parser) parseExpressionStatement() (ast.Stmt, error) {
	pos := p.cur().Pos
	e, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.consumeSemicolon()
	return ast.NewExpressionStatement(pos, e), nil
}

// --- path commands ---

// pathArgCount is the number of arguments each path command letter takes,
// keyed by its lowercase form; duplicated from pathlang/eval's table so
// the parser never needs to import the evaluator.
var pathArgCount = map[string]int{
	"m": 2, "l": 2, "h": 1, "v": 1, "c": 6, "s": 4, "q": 4, "t": 2, "a": 7, "z": 0,
}

func (p *Parser) parsePathCommand() (ast.Stmt, error) {
	t := p.advance()
	lower := strings.ToLower(t.Text)
	n, ok := pathArgCount[lower]
	if !ok {
		return nil, p.errorf(t.Pos, "unknown path command %q", t.Text)
	}
	args := make([]ast.Expr, 0, n)
	for i := 0; i < n; i++ {
		arg, err := p.parsePathArg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return ast.NewPathCommand(t.Pos, t.Text, args), nil
}

// parsePathArg parses one path-command argument: a number literal, an
// identifier with member/index/call chaining, a calc(...), or a
// parenthesised expression -- everything parsePostfix already covers --
// with a leading '-' handled as a separate negative number/operand, per
// spec.md section 4.2.
func (p *Parser) parsePathArg() (ast.Expr, error) {
	if p.cur().Kind == lexer.Minus {
		pos := p.cur().Pos
		p.advance()
		operand, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(pos, ast.OpNeg, operand), nil
	}
	return p.parsePostfix()
}

// --- for loops ---

func (p *Parser) parseForLoop() (ast.Stmt, error) {
	pos := p.cur().Pos
	p.advance() // 'for'
	if _, err := p.expect(lexer.LParen, "'('"); err != nil {
		return nil, err
	}

	var itemVar, indexVar string
	if p.cur().Kind == lexer.LBracket {
		p.advance()
		iv, err := p.parseDeclName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Comma, "','"); err != nil {
			return nil, err
		}
		idx, err := p.parseDeclName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RBracket, "']'"); err != nil {
			return nil, err
		}
		itemVar, indexVar = iv, idx
	} else {
		iv, err := p.parseDeclName()
		if err != nil {
			return nil, err
		}
		itemVar = iv
	}

	if err := p.expectKeyword("in"); err != nil {
		return nil, err
	}

	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.cur().Kind == lexer.DotDot {
		p.advance()
		last, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if indexVar != "" {
			return nil, p.errorf(pos, "destructured binding is not valid in a numeric for range")
		}
		if _, err := p.expect(lexer.RParen, "')'"); err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return ast.NewForRange(pos, itemVar, first, last, body), nil
	}

	if _, err := p.expect(lexer.RParen, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewForEach(pos, itemVar, indexVar, first, body), nil
}

// --- if / else if / else ---

func (p *Parser) parseIfStatement() (ast.Stmt, error) {
	pos := p.cur().Pos
	p.advance() // 'if'

	var branches []ast.IfBranch
	cond, body, err := p.parseIfArm()
	if err != nil {
		return nil, err
	}
	branches = append(branches, ast.IfBranch{Cond: cond, Body: body})

	var alternate []ast.Stmt
	for p.isKeyword("else") {
		p.advance()
		if p.isKeyword("if") {
			p.advance()
			cond, body, err := p.parseIfArm()
			if err != nil {
				return nil, err
			}
			branches = append(branches, ast.IfBranch{Cond: cond, Body: body})
			continue
		}
		alternate, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
		break
	}

	return ast.NewIfStatement(pos, branches, alternate), nil
}

func (p *Parser) parseIfArm() (ast.Expr, []ast.Stmt, error) {
	if _, err := p.expect(lexer.LParen, "'('"); err != nil {
		return nil, nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, nil, err
	}
	if _, err := p.expect(lexer.RParen, "')'"); err != nil {
		return nil, nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, nil, err
	}
	return cond, body, nil
}

// --- functions ---

func (p *Parser) parseFnDecl() (ast.Stmt, error) {
	pos := p.cur().Pos
	p.advance() // 'fn'
	name, err := p.parseDeclName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LParen, "'('"); err != nil {
		return nil, err
	}
	var params []string
	for p.cur().Kind != lexer.RParen {
		pname, err := p.parseDeclName()
		if err != nil {
			return nil, err
		}
		params = append(params, pname)
		if p.cur().Kind == lexer.Comma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.RParen, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionDefinition(pos, name, params, body), nil
}

func (p *Parser) parseReturnStatement() (ast.Stmt, error) {
	pos := p.cur().Pos
	p.advance() // 'return'
	if p.cur().Kind == lexer.Semicolon {
		p.advance()
		return ast.NewReturnStatement(pos, nil), nil
	}
	if p.cur().Kind == lexer.RBrace {
		return ast.NewReturnStatement(pos, nil), nil
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.consumeSemicolon()
	return ast.NewReturnStatement(pos, value), nil
}

// --- layers ---

func (p *Parser) parseLayerDefine() (ast.Stmt, error) {
	pos := p.cur().Pos
	p.advance() // 'define'
	isDefault := false
	if p.isKeyword("default") {
		isDefault = true
		p.advance()
	}
	var isText bool
	switch {
	case p.isKeyword("PathLayer"):
		isText = false
	case p.isKeyword("TextLayer"):
		isText = true
	default:
		return nil, p.errorf(p.cur().Pos, "expected 'PathLayer' or 'TextLayer'")
	}
	p.advance()

	if _, err := p.expect(lexer.LParen, "'('"); err != nil {
		return nil, err
	}
	nameExpr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RParen, "')'"); err != nil {
		return nil, err
	}
	styleExpr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.consumeSemicolon()
	return ast.NewLayerDefine(pos, isText, isDefault, nameExpr, styleExpr), nil
}

func (p *Parser) parseLayerApply() (ast.Stmt, error) {
	pos := p.cur().Pos
	p.advance() // 'layer'
	if _, err := p.expect(lexer.LParen, "'('"); err != nil {
		return nil, err
	}
	nameExpr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RParen, "')'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Dot, "'.'"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword("apply"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewLayerApply(pos, nameExpr, body), nil
}
