// Package printer renders an expression tree as a parenthesized prefix
// dump, the format used by the "parse" CLI command.
package printer

import (
	"strconv"
	"strings"

	"github.com/aledsdavies/loxwalk/internal/ast"
	"github.com/aledsdavies/loxwalk/internal/token"
)

// Print renders expr as a parenthesized prefix string.
func Print(expr ast.Expr) string {
	var b strings.Builder
	write(&b, expr)
	return b.String()
}

func write(b *strings.Builder, expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		writeLiteral(b, e.Token)
	case *ast.Unary:
		parenthesize(b, e.Op.Lexeme, e.Right)
	case *ast.Binary:
		parenthesize(b, e.Op.Lexeme, e.Left, e.Right)
	case *ast.Grouping:
		parenthesize(b, "group", e.Expr)
	default:
		panic("printer: unknown expression node")
	}
}

func writeLiteral(b *strings.Builder, tok token.Token) {
	switch tok.Kind {
	case token.Number:
		b.WriteString(formatNumber(tok.Literal))
	case token.String:
		b.WriteString(tok.Text)
	case token.Identifier:
		b.WriteString(tok.Text)
	case token.True:
		b.WriteString("true")
	case token.False:
		b.WriteString("false")
	case token.Nil:
		b.WriteString("nil")
	default:
		panic("printer: token kind is not literal-valid")
	}
}

func parenthesize(b *strings.Builder, name string, exprs ...ast.Expr) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		write(b, e)
	}
	b.WriteByte(')')
}

// formatNumber renders a float with trailing zeros trimmed; integer-valued
// floats render without a decimal point.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
