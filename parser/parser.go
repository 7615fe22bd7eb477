// ==============================================================================================
// FILE: parser/parser.go
// ==============================================================================================
// PACKAGE: parser
// PURPOSE: Recursive-descent parser over a two-token lookahead, building
//          the typed AST from the lexer's token stream. Syntax errors
//          are accumulated into a non-fatal list rather than aborting
//          parsing — a non-empty list means the caller must not run the
//          evaluator.
// ==============================================================================================

package parser

import (
	"fmt"
	"strconv"

	"github.com/xslendix/rolang/ast"
	"github.com/xslendix/rolang/lexer"
	"github.com/xslendix/rolang/token"
)

// Parser holds current/peek lookahead tokens and the accumulated
// syntax-error list, in the teacher's curToken/peekToken/errors idiom.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []string
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l, errors: []string{}}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) Errors() []string { return p.errors }

// nextToken advances the lookahead window by one token. A lex error on
// the new token is folded into the parser's error list rather than
// returned separately — scanning continues past the offending ILLEGAL
// token so the parser can still make progress.
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	tok, err := p.l.NextToken()
	if err != nil {
		p.errors = append(p.errors, err.Error())
	}
	p.peekToken = tok
}

// advance consumes the current token (one nextToken) and, when skip is
// true, also swallows every StatementSeparator that immediately
// follows — the mechanism that lets line breaks inside keyword-led
// constructs (dacă/atunci/altfel/execută/…) be transparent.
func (p *Parser) advance(skip bool) {
	p.nextToken()
	if skip {
		p.skipSeparators()
	}
}

func (p *Parser) skipSeparators() {
	for p.curToken.Type == token.STATEMENT_SEPARATOR {
		p.nextToken()
	}
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

// expect records a syntax error unless curToken has type t; it never
// advances, matching §4.2's "Failing expect records ..." wording.
func (p *Parser) expect(t token.TokenType) bool {
	if p.curTokenIs(t) {
		return true
	}
	p.errorf("Expected %s, got %s", t, p.curToken.Type)
	return false
}

// canBeginExpression is the lookahead test for the bare function-call
// statement form: the token after the callee name must be one that can
// start an expression, or the construct is read as a plain expression
// statement instead.
func canBeginExpression(t token.TokenType) bool {
	switch t {
	case token.IDENT, token.INT, token.FLOAT, token.STRING,
		token.TRUE, token.FALSE, token.NULL,
		token.FLOOR_START, token.LPAREN:
		return true
	}
	return false
}

// ParseProgram is the entry point; it returns an AST rooted at Program
// regardless of whether errors were recorded — callers must consult
// Errors() before evaluating.
func (p *Parser) ParseProgram() *ast.Node {
	return p.parseBlockUntil(func(t token.TokenType) bool { return t == token.EOF })
}

// parseBlockUntil parses statements, skipping StatementSeparators
// between them, stopping as soon as stop(curToken.Type) holds (without
// consuming that token) or EOF is reached.
func (p *Parser) parseBlockUntil(stop func(token.TokenType) bool) *ast.Node {
	block := &ast.Node{Kind: ast.Program}
	for !p.curTokenIs(token.EOF) && !stop(p.curToken.Type) {
		if p.curTokenIs(token.STATEMENT_SEPARATOR) {
			p.nextToken()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Children = append(block.Children, stmt)
		}
	}
	return block
}

func isThenElseEndTail(t token.TokenType) bool {
	return t == token.ELSE || t == token.BLOCK_END
}

func isBlockEnd(t token.TokenType) bool { return t == token.BLOCK_END }

func isExecuteTail(t token.TokenType) bool {
	return t == token.WHILE || t == token.UNTIL || t == token.FOR || t == token.BLOCK_END
}

// parseStatement dispatches on the current token to one of the
// keyword-led constructs, an assignment, a bare function call, or a
// plain expression statement.
func (p *Parser) parseStatement() *ast.Node {
	switch p.curToken.Type {
	case token.IF:
		return p.parseIf()
	case token.FOR:
		return p.parseFor()
	case token.WHILE:
		return p.parseWhile()
	case token.UNTIL:
		return p.parseUntil()
	case token.EXECUTE:
		return p.parseExecute()
	case token.IDENT:
		if p.peekTokenIs(token.SET) {
			return p.parseSet()
		}
		if canBeginExpression(p.peekToken.Type) {
			return p.parseBareCall()
		}
		return p.parseExpr()
	default:
		return p.parseExpr()
	}
}

// parseSet parses "Identifier ← expr". Used both as a standalone
// statement and as the set-clause of a pentru header.
func (p *Parser) parseSet() *ast.Node {
	name := p.curToken.Literal
	p.nextToken() // consume Identifier
	if !p.expect(token.SET) {
		return ast.NewSet(name, &ast.Node{Kind: ast.Null})
	}
	p.nextToken() // consume ←
	value := p.parseExpr()
	return ast.NewSet(name, value)
}

// parseBareCall parses "Ident arg (, arg)*" terminated by a statement
// separator or EOF — the parenthesis-free call form used idiomatically
// for scrie/citește.
func (p *Parser) parseBareCall() *ast.Node {
	name := p.curToken.Literal
	p.nextToken() // consume Ident

	args := []*ast.Node{p.parseExpr()}
	for p.curTokenIs(token.COMMA) {
		p.nextToken()
		args = append(args, p.parseExpr())
	}
	return ast.NewFunctionCall(name, args...)
}

func (p *Parser) parseIf() *ast.Node {
	p.advance(true) // consume 'dacă'
	cond := p.parseExpr()
	if !p.expect(token.THEN) {
		return ast.NewIf(cond, &ast.Node{Kind: ast.Program}, nil)
	}
	p.advance(true) // consume 'atunci'

	then := p.parseBlockUntil(isThenElseEndTail)

	var els *ast.Node
	if p.curTokenIs(token.ELSE) {
		p.advance(true) // consume 'altfel'
		els = p.parseBlockUntil(isBlockEnd)
	}
	if p.curTokenIs(token.BLOCK_END) {
		p.advance(true)
	}
	return ast.NewIf(cond, then, els)
}

func (p *Parser) parseWhile() *ast.Node {
	p.advance(true) // consume 'cât timp'
	cond := p.parseExpr()
	if !p.expect(token.EXECUTE) {
		return ast.NewWhile(cond, &ast.Node{Kind: ast.Program})
	}
	p.advance(true) // consume 'execută'
	body := p.parseBlockUntil(isBlockEnd)
	if p.curTokenIs(token.BLOCK_END) {
		p.advance(true)
	}
	return ast.NewWhile(cond, body)
}

func (p *Parser) parseUntil() *ast.Node {
	p.advance(true) // consume 'până când'
	cond := p.parseExpr()
	if !p.expect(token.EXECUTE) {
		return ast.NewUntil(cond, &ast.Node{Kind: ast.Program})
	}
	p.advance(true) // consume 'execută'
	body := p.parseBlockUntil(isBlockEnd)
	if p.curTokenIs(token.BLOCK_END) {
		p.advance(true)
	}
	return ast.NewUntil(cond, body)
}

func (p *Parser) parseFor() *ast.Node {
	p.advance(true) // consume 'pentru'
	set := p.parseSet()
	if !p.expect(token.COMMA) {
		return ast.NewFor(set, &ast.Node{Kind: ast.Null}, nil, &ast.Node{Kind: ast.Program})
	}
	p.advance(true) // consume ','
	end := p.parseExpr()

	var step *ast.Node
	if p.curTokenIs(token.COMMA) {
		p.advance(true)
		step = p.parseExpr()
	}
	if !p.expect(token.EXECUTE) {
		return ast.NewFor(set, end, step, &ast.Node{Kind: ast.Program})
	}
	p.advance(true) // consume 'execută'
	body := p.parseBlockUntil(isBlockEnd)
	if p.curTokenIs(token.BLOCK_END) {
		p.advance(true)
	}
	return ast.NewFor(set, end, step, body)
}

// parseExecute parses a statement-position "execută" whose body runs
// once before feeding a following loop header (cât timp / până când /
// pentru). The header is built WITHOUT a body — the evaluator re-runs
// the already-parsed body for each iteration of the header's loop.
func (p *Parser) parseExecute() *ast.Node {
	p.advance(true) // consume 'execută'
	body := p.parseBlockUntil(isExecuteTail)

	var tail *ast.Node
	switch p.curToken.Type {
	case token.WHILE:
		p.advance(true)
		cond := p.parseExpr()
		tail = ast.NewWhileHeader(cond)
	case token.UNTIL:
		p.advance(true)
		cond := p.parseExpr()
		tail = ast.NewUntilHeader(cond)
	case token.FOR:
		p.advance(true)
		set := p.parseSet()
		if p.expect(token.COMMA) {
			p.advance(true)
		}
		end := p.parseExpr()
		var step *ast.Node
		if p.curTokenIs(token.COMMA) {
			p.advance(true)
			step = p.parseExpr()
		}
		tail = ast.NewForHeader(set, end, step)
	default:
		p.errorf("Expected %s, %s or %s after execută, got %s",
			token.WHILE, token.UNTIL, token.FOR, p.curToken.Type)
		tail = ast.NewWhileHeader(&ast.Node{Kind: ast.Bool, BoolVal: false})
	}
	if p.curTokenIs(token.BLOCK_END) {
		p.advance(true)
	}
	return ast.NewExecute(body, tail)
}

// ---------------------------------------------------------------------------
// Expression grammar — precedence low to high:
//   expr    = logical
//   logical = math ((AND|OR|EQ|NE|LT|LE|GT|GE) logical)*   (right-assoc)
//   math    = term ((ADD|SUB) math)*                        (right-assoc)
//   term    = (SUB|NOT) term | factor ((MUL|DIV|MOD) factor)*
//   factor  = call | Ident | Int | Float | String | Null | True | False
//           | "(" math ")" | "[" math "]" | cast-ref
// Right-associative +/- and logical chains are a deliberate fidelity to
// the source language's quirk, not a bug to fix.
// ---------------------------------------------------------------------------

func (p *Parser) parseExpr() *ast.Node { return p.parseLogical() }

var logicalOps = map[token.TokenType]ast.Kind{
	token.AND:                ast.And,
	token.OR:                 ast.Or,
	token.EQUAL:              ast.Equal,
	token.NOT_EQUAL:          ast.NotEqual,
	token.LESS_THAN:          ast.LessThan,
	token.LESS_THAN_EQUAL:    ast.LessThanEqual,
	token.GREATER_THAN:       ast.GreaterThan,
	token.GREATER_THAN_EQUAL: ast.GreaterThanEqual,
}

func (p *Parser) parseLogical() *ast.Node {
	left := p.parseMath()
	if kind, ok := logicalOps[p.curToken.Type]; ok {
		p.nextToken()
		right := p.parseLogical()
		return ast.NewBinary(kind, left, right)
	}
	return left
}

func (p *Parser) parseMath() *ast.Node {
	left := p.parseTerm()
	switch p.curToken.Type {
	case token.ADD:
		p.nextToken()
		return ast.NewBinary(ast.Add, left, p.parseMath())
	case token.SUBTRACT:
		p.nextToken()
		return ast.NewBinary(ast.Subtract, left, p.parseMath())
	}
	return left
}

var termOps = map[token.TokenType]ast.Kind{
	token.MULTIPLY: ast.Multiply,
	token.DIVIDE:   ast.Divide,
	token.MOD:      ast.Mod,
}

func (p *Parser) parseTerm() *ast.Node {
	switch p.curToken.Type {
	case token.SUBTRACT:
		p.nextToken()
		return ast.NewUnary(ast.Subtract, p.parseTerm())
	case token.NOT:
		p.nextToken()
		return ast.NewUnary(ast.Not, p.parseTerm())
	}

	left := p.parseFactor()
	for {
		kind, ok := termOps[p.curToken.Type]
		if !ok {
			break
		}
		p.nextToken()
		right := p.parseFactor()
		left = ast.NewBinary(kind, left, right)
	}
	return left
}

func (p *Parser) parseFactor() *ast.Node {
	switch p.curToken.Type {
	case token.IDENT:
		name := p.curToken.Literal
		if p.peekTokenIs(token.LPAREN) {
			return p.parseCallParen(name)
		}
		p.nextToken()
		return ast.NewIdentifier(name)

	case token.INT:
		lit := p.curToken.Literal
		p.nextToken()
		v, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			p.errorf("Număr întreg invalid: %s", lit)
			return ast.NewInt(0)
		}
		return ast.NewInt(v)

	case token.FLOAT:
		lit := p.curToken.Literal
		p.nextToken()
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			p.errorf("Număr real invalid: %s", lit)
			return ast.NewFloat(0)
		}
		return ast.NewFloat(v)

	case token.STRING:
		lit := p.curToken.Literal
		p.nextToken()
		return ast.NewString(lit)

	case token.TRUE:
		p.nextToken()
		return ast.NewBool(true)

	case token.FALSE:
		p.nextToken()
		return ast.NewBool(false)

	case token.NULL:
		p.nextToken()
		return ast.NewNull()

	case token.LPAREN:
		p.nextToken()
		expr := p.parseMath()
		p.expect(token.RPAREN)
		p.nextToken()
		return expr

	case token.FLOOR_START:
		p.nextToken()
		expr := p.parseMath()
		p.expect(token.FLOOR_END)
		p.nextToken()
		return ast.NewFloor(expr)

	case token.CAST_REF:
		return p.parseCastRef(ast.CastRef)
	case token.CAST_FLOAT_REF:
		return p.parseCastRef(ast.CastFloatRef)
	case token.CAST_UNSIGNED_REF:
		return p.parseCastRef(ast.CastUnsignedRef)

	default:
		tok := p.curToken
		p.errorf("Illegal token: %s", tok.Type)
		p.nextToken()
		return ast.NewNull()
	}
}

func (p *Parser) parseCastRef(kind ast.Kind) *ast.Node {
	p.nextToken() // consume the cast-phrase token
	if !p.expect(token.IDENT) {
		return ast.NewCastRef(kind, "")
	}
	name := p.curToken.Literal
	p.nextToken()
	return ast.NewCastRef(kind, name)
}

func (p *Parser) parseCallParen(name string) *ast.Node {
	p.nextToken() // consume Ident
	p.nextToken() // consume '('

	var args []*ast.Node
	if !p.curTokenIs(token.RPAREN) {
		args = append(args, p.parseExpr())
		for p.curTokenIs(token.COMMA) {
			p.nextToken()
			args = append(args, p.parseExpr())
		}
	}
	p.expect(token.RPAREN)
	p.nextToken()
	return ast.NewFunctionCall(name, args...)
}
