// Package ast defines the expression syntax tree produced by the parser:
// four node shapes (literal, unary, binary, grouping), each owning its
// child subtree(s) exclusively. Trees are built bottom-up and never
// mutated afterward.
package ast

import "github.com/aledsdavies/loxwalk/internal/token"

// Expr is implemented by every expression node. The marker method keeps
// the variant closed to this package.
type Expr interface {
	exprNode()
}

// Literal wraps a literal-valid token: String, Number, Identifier, True,
// False, or Nil.
type Literal struct {
	Token token.Token
}

// Unary is a prefix operator (Minus or Bang) applied to a single operand.
type Unary struct {
	Op    token.Token
	Right Expr
}

// Binary is an infix operator applied left-to-right to two operands.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Grouping is a parenthesized sub-expression. It is semantically
// transparent but preserved so the printer can render it faithfully.
type Grouping struct {
	Expr Expr
}

func (Literal) exprNode()  {}
func (Unary) exprNode()    {}
func (Binary) exprNode()   {}
func (Grouping) exprNode() {}
