// Package parser builds a program AST from a token stream. All expectations
// are expressed in token kinds, never in surface spellings, which is what
// keeps the grammar invariant under keyword remapping.
package parser

import (
	"strconv"

	"github.com/mamba-lang/go-mamba/ast"
	"github.com/mamba-lang/go-mamba/errors"
	"github.com/mamba-lang/go-mamba/lexer"
	"github.com/mamba-lang/go-mamba/token"
)

// Operator precedence levels, lowest first.
const (
	_ int = iota
	LOWEST
	LOGICAL_OR  // or
	LOGICAL_AND // and
	EQUALS      // == !=
	LESSGREATER // < <= > >=
	SUM         // + -
	PRODUCT     // * / %
	PREFIX      // -x, not x
	CALL        // fn(x)
)

var precedences = map[token.Type]int{
	token.OR:       LOGICAL_OR,
	token.AND:      LOGICAL_AND,
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.LE:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.GE:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.PERCENT:  PRODUCT,
	token.LPAREN:   CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser holds the state of the parser.
type Parser struct {
	l    *lexer.Lexer
	errs []*errors.Error

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New creates a new parser over the lexer's token stream.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = make(map[token.Type]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.NIL, p.parseNilLiteral)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.NOT, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.ASK, p.parseAskExpression)
	p.registerPrefix(token.ILLEGAL, p.parseIllegal)

	p.infixParseFns = make(map[token.Type]infixParseFn)
	for _, t := range []token.Type{
		token.OR, token.AND, token.EQ, token.NOT_EQ,
		token.LT, token.LE, token.GT, token.GE,
		token.PLUS, token.MINUS, token.SLASH, token.ASTERISK, token.PERCENT,
	} {
		p.registerInfix(t, p.parseInfixExpression)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)

	// Read two tokens, so curToken and peekToken are both set.
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns the errors encountered during parsing.
func (p *Parser) Errors() []*errors.Error {
	return p.errs
}

// Err returns the first error encountered, or nil. Parsing stops at the
// first fault, so this is the diagnostic a driver reports.
func (p *Parser) Err() *errors.Error {
	if len(p.errs) == 0 {
		return nil
	}
	return p.errs[0]
}

// ParseProgram parses the token stream and returns the root AST node.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) && len(p.errs) == 0 {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
	}

	return program
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
	for p.peekToken.Type == token.COMMENT {
		p.peekToken = p.l.NextToken()
	}
}

// The contract for all parse functions is that they are entered with
// p.curToken being the first token of the construct, and they must return
// with p.curToken pointing to the token *after* the construct.

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.PRINT:
		return p.parseSayStatement()
	case token.EXIT:
		return p.parseExitStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.FUNCTION:
		return p.parseFunctionStatement()
	case token.LBRACE:
		return p.parseBlockStatement()
	case token.IDENT:
		if p.peekToken.Type == token.ASSIGN {
			return p.parseAssignStatement()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseAssignStatement() *ast.AssignStatement {
	stmt := &ast.AssignStatement{Token: p.curToken}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	p.nextToken() // consume name
	p.nextToken() // consume '='

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	if !p.expectSemicolon() {
		return nil
	}
	return stmt
}

func (p *Parser) parseSayStatement() *ast.SayStatement {
	stmt := &ast.SayStatement{Token: p.curToken}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	if !p.expectSemicolon() {
		return nil
	}
	return stmt
}

func (p *Parser) parseExitStatement() *ast.ExitStatement {
	stmt := &ast.ExitStatement{Token: p.curToken}
	p.nextToken()
	if !p.expectSemicolon() {
		return nil
	}
	return stmt
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	p.nextToken()

	if p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
		return stmt
	}

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	if !p.expectSemicolon() {
		return nil
	}
	return stmt
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	stmt := &ast.IfStatement{Token: p.curToken}

	if !p.expectCur(token.IF, token.LPAREN) {
		return nil
	}
	p.nextToken() // consume '('

	stmt.Condition = p.parseExpression(LOWEST)
	if stmt.Condition == nil {
		return nil
	}
	if !p.expectCurIs(token.RPAREN) {
		return nil
	}

	stmt.Consequence = p.parseBlockStatement()
	if stmt.Consequence == nil {
		return nil
	}

	if p.curTokenIs(token.ELSE) {
		p.nextToken()
		if p.curTokenIs(token.IF) {
			// else-if chains nest as a block holding the inner if.
			inner := p.parseIfStatement()
			if inner == nil {
				return nil
			}
			stmt.Alternative = &ast.BlockStatement{
				Token:      inner.Token,
				Statements: []ast.Statement{inner},
			}
		} else {
			stmt.Alternative = p.parseBlockStatement()
			if stmt.Alternative == nil {
				return nil
			}
		}
	}
	return stmt
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	stmt := &ast.WhileStatement{Token: p.curToken}

	if !p.expectCur(token.WHILE, token.LPAREN) {
		return nil
	}
	p.nextToken() // consume '('

	stmt.Condition = p.parseExpression(LOWEST)
	if stmt.Condition == nil {
		return nil
	}
	if !p.expectCurIs(token.RPAREN) {
		return nil
	}

	stmt.Body = p.parseBlockStatement()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseForStatement() *ast.ForStatement {
	stmt := &ast.ForStatement{Token: p.curToken}

	if !p.expectCur(token.FOR, token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectCur(token.IDENT, token.IN) {
		return nil
	}
	p.nextToken() // consume 'in'

	stmt.From = p.parseExpression(LOWEST)
	if stmt.From == nil {
		return nil
	}
	if !p.expectCurIs(token.DOTDOT) {
		return nil
	}

	stmt.To = p.parseExpression(LOWEST)
	if stmt.To == nil {
		return nil
	}

	stmt.Body = p.parseBlockStatement()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseFunctionStatement() *ast.FunctionStatement {
	stmt := &ast.FunctionStatement{Token: p.curToken}

	if !p.expectCur(token.FUNCTION, token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectCur(token.IDENT, token.LPAREN) {
		return nil
	}
	p.nextToken() // consume '('

	stmt.Parameters = p.parseFunctionParameters()
	if stmt.Parameters == nil {
		return nil
	}

	stmt.Body = p.parseBlockStatement()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	params := []*ast.Identifier{}

	if p.curTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}

	for {
		if !p.curTokenIs(token.IDENT) {
			if p.curTokenIs(token.ILLEGAL) {
				p.illegalf(p.curToken)
				return nil
			}
			p.errorf(errors.Syntax, "expected parameter name, got %s ('%s')",
				p.curToken.Type, p.curToken.Literal)
			return nil
		}
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
		p.nextToken()

		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}

	if !p.expectCurIs(token.RPAREN) {
		return nil
	}
	return params
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	if !p.curTokenIs(token.LBRACE) {
		if p.curTokenIs(token.ILLEGAL) {
			p.illegalf(p.curToken)
			return nil
		}
		p.errorf(errors.Syntax, "expected '{', got %s ('%s')",
			p.curToken.Type, p.curToken.Literal)
		return nil
	}
	block := &ast.BlockStatement{Token: p.curToken}
	p.nextToken() // consume '{'

	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			p.errorf(errors.Syntax, "unterminated block, expected '}'")
			return nil
		}
		if len(p.errs) > 0 {
			return nil
		}
		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)
	}
	p.nextToken() // consume '}'
	return block
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}
	if !p.expectSemicolon() {
		return nil
	}
	return stmt
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errorf(errors.Syntax, "unexpected token %s ('%s')",
			p.curToken.Type, p.curToken.Literal)
		return nil
	}
	left := prefix()
	if left == nil {
		return nil
	}

	for precedence < p.curPrecedence() {
		infix := p.infixParseFns[p.curToken.Type]
		if infix == nil {
			return left
		}
		left = infix(left)
		if left == nil {
			return nil
		}
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	expr := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	p.nextToken()
	return expr
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curToken}
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errorf(errors.Syntax, "could not parse %q as integer", p.curToken.Literal)
		return nil
	}
	lit.Value = value
	p.nextToken()
	return lit
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	lit := &ast.FloatLiteral{Token: p.curToken}
	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.errorf(errors.Syntax, "could not parse %q as float", p.curToken.Literal)
		return nil
	}
	lit.Value = value
	p.nextToken()
	return lit
}

func (p *Parser) parseStringLiteral() ast.Expression {
	expr := &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
	p.nextToken()
	return expr
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	expr := &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
	p.nextToken()
	return expr
}

func (p *Parser) parseNilLiteral() ast.Expression {
	expr := &ast.NilLiteral{Token: p.curToken}
	p.nextToken()
	return expr
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: p.curToken, Operator: operatorName(p.curToken)}
	p.nextToken()
	expr.Right = p.parseExpression(PREFIX)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: operatorName(p.curToken),
	}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken() // consume '('
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expectCurIs(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	ident, ok := callee.(*ast.Identifier)
	if !ok {
		p.errorf(errors.Syntax, "cannot call %s", callee.String())
		return nil
	}
	expr := &ast.CallExpression{Token: p.curToken, Function: ident}
	p.nextToken() // consume '('

	expr.Arguments = p.parseCallArguments()
	if expr.Arguments == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseCallArguments() []ast.Expression {
	args := []ast.Expression{}

	if p.curTokenIs(token.RPAREN) {
		p.nextToken()
		return args
	}

	for {
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		args = append(args, arg)

		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}

	if !p.expectCurIs(token.RPAREN) {
		return nil
	}
	return args
}

func (p *Parser) parseAskExpression() ast.Expression {
	expr := &ast.AskExpression{Token: p.curToken}

	if !p.expectCur(token.ASK, token.LPAREN) {
		return nil
	}
	p.nextToken() // consume '('

	expr.Prompt = p.parseExpression(LOWEST)
	if expr.Prompt == nil {
		return nil
	}
	if !p.expectCurIs(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseIllegal() ast.Expression {
	p.illegalf(p.curToken)
	return nil
}

// illegalf records the lexical fault an ILLEGAL token carries. Single-rune
// literals are unrecognized characters; longer literals are the lexer's own
// message (such as a bad escape sequence) and pass through verbatim.
func (p *Parser) illegalf(tok token.Token) {
	lit := tok.Literal
	if len([]rune(lit)) == 1 {
		p.errs = append(p.errs, errors.NewAt(errors.Lexical,
			tok.Line, tok.Column, "unrecognized character '%s'", lit))
		return
	}
	p.errs = append(p.errs, errors.NewAt(errors.Lexical,
		tok.Line, tok.Column, "%s", lit))
}

// operatorName maps an operator token to its canonical name. Keyword
// operators always report their canonical spelling, whatever the surface
// word or symbol was.
func operatorName(tok token.Token) string {
	switch tok.Type {
	case token.AND:
		return "and"
	case token.OR:
		return "or"
	case token.NOT:
		return "not"
	default:
		return string(tok.Type)
	}
}

func (p *Parser) registerPrefix(tokenType token.Type, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType token.Type, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// expectCur checks that curToken is the given kind and that the following
// token is next; on success curToken advances to next.
func (p *Parser) expectCur(cur, next token.Type) bool {
	if !p.curTokenIs(cur) {
		if p.curTokenIs(token.ILLEGAL) {
			p.illegalf(p.curToken)
			return false
		}
		p.errorf(errors.Syntax, "expected %s, got %s ('%s')",
			cur, p.curToken.Type, p.curToken.Literal)
		return false
	}
	if p.peekToken.Type != next {
		if p.peekToken.Type == token.ILLEGAL {
			p.illegalf(p.peekToken)
			return false
		}
		p.errs = append(p.errs, errors.NewAt(errors.Syntax,
			p.peekToken.Line, p.peekToken.Column,
			"expected %s, got %s ('%s')", next, p.peekToken.Type, p.peekToken.Literal))
		return false
	}
	p.nextToken()
	return true
}

// expectCurIs consumes curToken when it is of kind t, recording a syntax
// error otherwise.
func (p *Parser) expectCurIs(t token.Type) bool {
	if !p.curTokenIs(t) {
		if p.curTokenIs(token.ILLEGAL) {
			p.illegalf(p.curToken)
			return false
		}
		p.errorf(errors.Syntax, "expected %s, got %s ('%s')",
			t, p.curToken.Type, p.curToken.Literal)
		return false
	}
	p.nextToken()
	return true
}

func (p *Parser) expectSemicolon() bool {
	if !p.curTokenIs(token.SEMICOLON) {
		if p.curTokenIs(token.ILLEGAL) {
			p.illegalf(p.curToken)
			return false
		}
		p.errorf(errors.Syntax, "missing ';', got %s ('%s')",
			p.curToken.Type, p.curToken.Literal)
		return false
	}
	p.nextToken()
	return true
}

func (p *Parser) errorf(kind errors.Kind, format string, args ...any) {
	p.errs = append(p.errs, errors.NewAt(kind,
		p.curToken.Line, p.curToken.Column, format, args...))
}
