// Package parser implements a recursive-descent parser over the token
// stream produced by the lexer, encoding operator precedence and
// associativity for the expression grammar in a ladder of mutually
// recursive productions.
package parser

import (
	"fmt"

	"github.com/aledsdavies/loxwalk/internal/ast"
	"github.com/aledsdavies/loxwalk/internal/lexer"
	"github.com/aledsdavies/loxwalk/internal/token"
)

// Error is a parse failure carrying a message and the position of the
// offending token (zero value if EOF was reached unexpectedly).
type Error struct {
	Message string
	Pos     token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Pos.Line, e.Message)
}

// Parser holds a fixed token vector and a cursor into it. The first error
// encountered aborts the parse; there is no panic/synchronize recovery.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a parser over a token vector that must end in EOF.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse scans src and parses the resulting tokens as a single expression,
// the composition most callers want.
func Parse(src string) (ast.Expr, error) {
	tokens := lexer.Tokenize(src)
	return New(tokens).ParseExpression()
}

// ParseExpression parses the full token vector as a single expression and
// reports an error if input remains after it (other than EOF).
func (p *Parser) ParseExpression() (ast.Expr, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.check(token.EOF) {
		return nil, &Error{
			Message: fmt.Sprintf("unexpected token %q after expression", p.current().Lexeme),
			Pos:     p.current().Pos,
		}
	}
	return expr, nil
}

// expression → equality
func (p *Parser) expression() (ast.Expr, error) {
	return p.equality()
}

// equality → comparison ( ( "==" | "!=" ) comparison )*
func (p *Parser) equality() (ast.Expr, error) {
	return p.leftAssoc(p.comparison, token.EqualEqual, token.BangEqual)
}

// comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *Parser) comparison() (ast.Expr, error) {
	return p.leftAssoc(p.term, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

// term → factor ( ( "+" | "-" ) factor )*
func (p *Parser) term() (ast.Expr, error) {
	return p.leftAssoc(p.factor, token.Plus, token.Minus)
}

// factor → unary ( ( "*" | "/" ) unary )*
func (p *Parser) factor() (ast.Expr, error) {
	return p.leftAssoc(p.unary, token.Star, token.Slash)
}

// leftAssoc folds a left-associative binary precedence level: parse one
// operand at the next-higher level, then keep folding `left op right`
// while the current token matches one of kinds.
func (p *Parser) leftAssoc(next func() (ast.Expr, error), kinds ...token.Kind) (ast.Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(kinds...) {
		op := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// unary → ( "!" | "-" ) unary | primary
func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Right: right}, nil
	}
	return p.primary()
}

// primary → NUMBER | STRING | IDENTIFIER | "true" | "false" | "nil" | "(" expression ")"
func (p *Parser) primary() (ast.Expr, error) {
	tok := p.current()

	switch tok.Kind {
	case token.UnterminatedString:
		p.advance()
		return nil, &Error{Message: "Unterminated string.", Pos: tok.Pos}
	case token.Unknown:
		p.advance()
		return nil, &Error{Message: fmt.Sprintf("Unexpected character: %s", tok.Lexeme), Pos: tok.Pos}
	case token.Number, token.String, token.Identifier, token.True, token.False, token.Nil:
		p.advance()
		return &ast.Literal{Token: tok}, nil
	case token.LeftParen:
		p.advance()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if !p.match(token.RightParen) {
			return nil, &Error{Message: "Expect ')' after expression.", Pos: p.current().Pos}
		}
		return &ast.Grouping{Expr: inner}, nil
	case token.EOF:
		return nil, &Error{Message: "Unexpected end of input, expected an expression."}
	default:
		return nil, &Error{
			Message: fmt.Sprintf("Unexpected token %q, expected an expression.", tok.Lexeme),
			Pos:     tok.Pos,
		}
	}
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(k token.Kind) bool {
	return p.current().Kind == k
}

func (p *Parser) advance() token.Token {
	tok := p.current()
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) current() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.pos-1]
}
