package parser

import (
	"strconv"

	"github.com/kolkov/juanc/internal/ast"
	"github.com/kolkov/juanc/internal/lexer"
	"github.com/kolkov/juanc/internal/token"
	"github.com/kolkov/juanc/internal/types"
)

// tokenName returns a human-readable name for a token type.
func tokenName(t token.Token) string {
	switch t {
	case token.ILLEGAL:
		return "illegal"
	case token.EOF:
		return "end of file"
	case token.NEWLINE:
		return "newline"
	default:
		return t.String()
	}
}

// Parser is a recursive descent parser for Juan programs.
type Parser struct {
	lexer   *lexer.Lexer // Lexer instance
	tok     lexer.Token  // Current token
	prevTok lexer.Token  // Previous token
	errors  ErrorList    // Accumulated errors
}

// Parse parses a Juan program from source code.
// Returns the AST and any parse errors encountered.
func Parse(src string) (*ast.Program, error) {
	return ParseBytes([]byte(src))
}

// ParseBytes parses a Juan program from byte slice.
func ParseBytes(src []byte) (*ast.Program, error) {
	return parse(lexer.New(src), "")
}

// ParseFile parses a Juan program read from filename.
// Positions in the tree and in errors carry the file name.
func ParseFile(filename string, src []byte) (*ast.Program, error) {
	return parse(lexer.NewFile(filename, src), filename)
}

func parse(l *lexer.Lexer, filename string) (*ast.Program, error) {
	p := &Parser{lexer: l}
	p.next() // Initialize first token

	prog := p.parseProgram()
	prog.Filename = filename

	if err := p.errors.Err(); err != nil {
		return nil, err
	}
	return prog, nil
}

// ParseExpr parses a single expression (useful for testing).
func ParseExpr(src string) (ast.Expr, error) {
	p := &Parser{
		lexer: lexer.New([]byte(src)),
	}
	p.next()

	expr := p.parseExpr()
	if p.tok.Type != token.EOF && len(p.errors) == 0 {
		p.error(expectedError(p.tok.Pos, "end of expression", p.tokenDesc()))
	}

	if err := p.errors.Err(); err != nil {
		return nil, err
	}
	return expr, nil
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// next advances to the next token.
func (p *Parser) next() {
	p.prevTok = p.tok
	p.tok = p.lexer.Scan()
}

// expect checks that the current token is tok and advances.
// If not, it records an error.
func (p *Parser) expect(tok token.Token) bool {
	if p.tok.Type != tok {
		p.error(expectedError(p.tok.Pos, tokenName(tok), p.tokenDesc()))
		return false
	}
	p.next()
	return true
}

// expectName expects a NAME token and returns its value and position.
func (p *Parser) expectName() (string, token.Position) {
	name := p.tok.Value
	pos := p.tok.Pos
	if !p.expect(token.NAME) {
		return "", pos
	}
	return name, pos
}

// match returns true if current token matches any of the given types.
func (p *Parser) match(toks ...token.Token) bool {
	for _, t := range toks {
		if p.tok.Type == t {
			return true
		}
	}
	return false
}

// tokenDesc returns a description of the current token for error messages.
func (p *Parser) tokenDesc() string {
	switch p.tok.Type {
	case token.NAME, token.INT, token.STRING:
		return p.tok.Raw
	case token.ILLEGAL:
		// ILLEGAL token's Value contains the actual error message
		return p.tok.Value
	default:
		return tokenName(p.tok.Type)
	}
}

// error records a parse error.
func (p *Parser) error(err *ParseError) {
	p.errors = append(p.errors, err)
}

// errorf records a formatted parse error at current position.
func (p *Parser) errorf(format string, args ...any) {
	p.error(errorf(p.tok.Pos, format, args...))
}

// -----------------------------------------------------------------------------
// Terminator handling
// -----------------------------------------------------------------------------

// skipTerminators skips newlines and semicolons.
func (p *Parser) skipTerminators() {
	for p.match(token.NEWLINE, token.SEMICOLON) {
		p.next()
	}
}

// endStmt checks that a statement is followed by a terminator or one of
// the closing keywords, which are left for the caller.
func (p *Parser) endStmt(closers ...token.Token) {
	if p.match(token.NEWLINE, token.SEMICOLON, token.EOF) || p.match(closers...) {
		return
	}
	p.error(expectedError(p.tok.Pos, "newline or ;", p.tokenDesc()))
	p.sync()
}

// sync skips tokens up to the next statement terminator after an error.
func (p *Parser) sync() {
	for !p.match(token.NEWLINE, token.SEMICOLON, token.EOF) {
		p.next()
	}
}

// -----------------------------------------------------------------------------
// Program parsing
// -----------------------------------------------------------------------------

// parseProgram parses a complete Juan program.
func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{
		StartPos: p.tok.Pos,
	}

	for {
		p.skipTerminators()
		if p.tok.Type == token.EOF {
			break
		}
		if p.match(token.SINO, token.FIN) {
			p.errorf("%s without matching si or mientras", p.tok.Type)
			p.next()
			continue
		}

		errs := len(p.errors)
		stmt := p.parseStmt()
		if len(p.errors) > errs {
			p.sync()
			continue
		}
		prog.Stmts = append(prog.Stmts, stmt)
		p.endStmt()
	}

	prog.EndPos = p.tok.Pos
	return prog
}

// parseBlock parses statements until one of closers. It reports whether a
// closer was found; at end of input it records an Incomplete error.
func (p *Parser) parseBlock(closers ...token.Token) (*ast.Block, bool) {
	block := &ast.Block{StartPos: p.tok.Pos}

	for {
		p.skipTerminators()
		if p.match(closers...) {
			block.EndPos = p.tok.Pos
			return block, true
		}
		if p.tok.Type == token.EOF {
			block.EndPos = p.tok.Pos
			p.error(&ParseError{
				Pos:        p.tok.Pos,
				Message:    "expected fin, got end of file",
				Want:       "fin",
				Got:        "end of file",
				Incomplete: true,
			})
			return block, false
		}

		errs := len(p.errors)
		stmt := p.parseStmt()
		if len(p.errors) > errs {
			p.sync()
			continue
		}
		block.Stmts = append(block.Stmts, stmt)
		p.endStmt(closers...)
	}
}

// -----------------------------------------------------------------------------
// Statement parsing
// -----------------------------------------------------------------------------

// parseStmt parses any statement.
func (p *Parser) parseStmt() ast.Stmt {
	switch p.tok.Type {
	case token.ENTERO, token.CADENA:
		return p.parseDeclStmt()

	case token.NAME:
		return p.parseAssignStmt()

	case token.IMPRIMIR:
		startPos := p.tok.Pos
		p.next()
		value := p.parseExpr()
		return &ast.PrintStmt{
			BaseStmt: ast.MakeBaseStmt(startPos, p.tok.Pos),
			Value:    value,
		}

	case token.SI:
		return p.parseIfStmt()

	case token.MIENTRAS:
		return p.parseWhileStmt()

	default:
		p.error(expectedError(p.tok.Pos, "statement", p.tokenDesc()))
		return nil
	}
}

// parseDeclStmt parses: ('entero' | 'cadena') NAME [ '=' expr ].
func (p *Parser) parseDeclStmt() *ast.DeclStmt {
	startPos := p.tok.Pos
	typ := types.FromKeyword(p.tok.Type)
	p.next()

	name, namePos := p.expectName()
	if name == "" {
		return nil
	}

	decl := &ast.DeclStmt{
		Type:    typ,
		Name:    name,
		NamePos: namePos,
	}
	if p.tok.Type == token.ASSIGN {
		p.next()
		decl.Init = p.parseExpr()
	}
	decl.BaseStmt = ast.MakeBaseStmt(startPos, p.tok.Pos)
	return decl
}

// parseAssignStmt parses: NAME '=' expr.
func (p *Parser) parseAssignStmt() *ast.AssignStmt {
	startPos := p.tok.Pos
	name, namePos := p.expectName()
	if !p.expect(token.ASSIGN) {
		return nil
	}
	value := p.parseExpr()
	return &ast.AssignStmt{
		BaseStmt: ast.MakeBaseStmt(startPos, p.tok.Pos),
		Name:     name,
		NamePos:  namePos,
		Value:    value,
	}
}

// parseIfStmt parses: 'si' expr block [ 'sino' block ] 'fin'.
func (p *Parser) parseIfStmt() *ast.IfStmt {
	startPos := p.tok.Pos
	p.next() // consume 'si'

	cond := p.parseExpr()
	if cond == nil {
		return nil
	}

	then, ok := p.parseBlock(token.SINO, token.FIN)
	if !ok {
		return nil
	}

	var elseBlock *ast.Block
	if p.tok.Type == token.SINO {
		p.next()
		elseBlock, ok = p.parseBlock(token.FIN)
		if !ok {
			return nil
		}
	}
	p.expect(token.FIN)

	return &ast.IfStmt{
		BaseStmt: ast.MakeBaseStmt(startPos, p.tok.Pos),
		Cond:     cond,
		Then:     then,
		Else:     elseBlock,
	}
}

// parseWhileStmt parses: 'mientras' expr block 'fin'.
func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	startPos := p.tok.Pos
	p.next() // consume 'mientras'

	cond := p.parseExpr()
	if cond == nil {
		return nil
	}

	body, ok := p.parseBlock(token.FIN)
	if !ok {
		return nil
	}
	p.expect(token.FIN)

	return &ast.WhileStmt{
		BaseStmt: ast.MakeBaseStmt(startPos, p.tok.Pos),
		Cond:     cond,
		Body:     body,
	}
}

// -----------------------------------------------------------------------------
// Expression parsing
// -----------------------------------------------------------------------------

// parseExpr parses a full expression.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseCompare()
}

// parseCompare parses comparison expressions. Comparisons do not chain.
func (p *Parser) parseCompare() ast.Expr {
	expr := p.parseAdd()
	if expr == nil {
		return nil
	}

	if p.tok.Type.IsComparison() {
		op := p.tok.Type
		p.next()
		right := p.parseAdd()
		if right == nil {
			return nil
		}
		expr = &ast.BinaryExpr{
			BaseExpr: ast.MakeBaseExpr(expr.Pos(), right.End()),
			Left:     expr,
			Op:       op,
			Right:    right,
		}
		if p.tok.Type.IsComparison() {
			p.errorf("comparison operators cannot be chained; use parentheses")
			return nil
		}
	}
	return expr
}

// parseAdd parses + and - expressions.
func (p *Parser) parseAdd() ast.Expr {
	return p.parseBinaryLeft(p.parseMul, token.ADD, token.SUB)
}

// parseMul parses * and / expressions.
func (p *Parser) parseMul() ast.Expr {
	return p.parseBinaryLeft(p.parsePrimary, token.MUL, token.DIV)
}

// parsePrimary parses literals, names and parenthesized expressions.
func (p *Parser) parsePrimary() ast.Expr {
	startPos := p.tok.Pos

	switch p.tok.Type {
	case token.INT:
		n, err := strconv.ParseInt(p.tok.Value, 10, 64)
		if err != nil {
			p.errorf("integer literal %s out of range", p.tok.Value)
			return nil
		}
		p.next()
		return &ast.IntLit{
			BaseExpr: ast.MakeBaseExpr(startPos, p.prevEnd()),
			Value:    n,
			Raw:      p.prevTok.Raw,
		}

	case token.STRING:
		p.next()
		return &ast.StrLit{
			BaseExpr: ast.MakeBaseExpr(startPos, p.prevEnd()),
			Value:    p.prevTok.Value,
			Raw:      p.prevTok.Raw,
		}

	case token.NAME:
		p.next()
		return &ast.Ident{
			BaseExpr: ast.MakeBaseExpr(startPos, p.prevEnd()),
			Name:     p.prevTok.Value,
		}

	case token.LPAREN:
		p.next()
		inner := p.parseExpr()
		if inner == nil {
			return nil
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		return &ast.GroupExpr{
			BaseExpr: ast.MakeBaseExpr(startPos, p.prevEnd()),
			Expr:     inner,
		}

	case token.ILLEGAL:
		p.errorf("%s", p.tok.Value)
		return nil

	default:
		p.error(expectedError(p.tok.Pos, "expression", p.tokenDesc()))
		return nil
	}
}

// prevEnd returns the position just after the previous token.
func (p *Parser) prevEnd() token.Position {
	end := p.prevTok.Pos
	end.Column += len(p.prevTok.Raw)
	end.Offset += len(p.prevTok.Raw)
	return end
}

// -----------------------------------------------------------------------------
// Helper functions
// -----------------------------------------------------------------------------

// parseBinaryLeft parses left-associative binary operators.
func (p *Parser) parseBinaryLeft(higher func() ast.Expr, ops ...token.Token) ast.Expr {
	expr := higher()
	if expr == nil {
		return nil
	}

	for p.match(ops...) {
		op := p.tok.Type
		p.next()
		right := higher()
		if right == nil {
			return nil
		}
		expr = &ast.BinaryExpr{
			BaseExpr: ast.MakeBaseExpr(expr.Pos(), right.End()),
			Left:     expr,
			Op:       op,
			Right:    right,
		}
	}
	return expr
}
