// Package interpreter tree-walks an expression and evaluates it under the
// language's dynamic typing rules: + adds two numbers or concatenates two
// strings, * additionally repeats a string a number of times, and every
// other type mismatch is rejected.
package interpreter

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/loxwalk/internal/ast"
	"github.com/aledsdavies/loxwalk/internal/token"
)

// Error is a runtime type error: an operator applied to operands its
// dynamic typing rules do not allow.
type Error struct {
	Message string
	Pos     token.Position
}

func (e *Error) Error() string {
	return e.Message
}

// Eval evaluates expr, returning its runtime value or the first runtime
// error encountered. Evaluation is pure with respect to expr: no mutation,
// no external state, no partial results survive a failing subexpression.
func Eval(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return evalLiteral(e.Token)
	case *ast.Grouping:
		return Eval(e.Expr)
	case *ast.Unary:
		return evalUnary(e)
	case *ast.Binary:
		return evalBinary(e)
	default:
		panic(fmt.Sprintf("interpreter: unknown expression node %T", expr))
	}
}

func evalLiteral(tok token.Token) (Value, error) {
	switch tok.Kind {
	case token.Number:
		return Number(tok.Literal), nil
	case token.String:
		return String(tok.Text), nil
	case token.True:
		return Boolean(true), nil
	case token.False:
		return Boolean(false), nil
	case token.Nil:
		return Nil, nil
	case token.Identifier:
		return Value{}, &Error{
			Message: fmt.Sprintf("[line %d] undefined variable %q; variables are not supported", tok.Pos.Line, tok.Text),
			Pos:     tok.Pos,
		}
	default:
		panic(fmt.Sprintf("interpreter: token kind %s is not literal-valid", tok.Kind))
	}
}

func evalUnary(e *ast.Unary) (Value, error) {
	right, err := Eval(e.Right)
	if err != nil {
		return Value{}, err
	}
	switch e.Op.Kind {
	case token.Minus:
		if right.Kind != NumberValue {
			return Value{}, typeError(e.Op.Pos, "Operand must be a number.")
		}
		return Number(-right.Number), nil
	case token.Bang:
		if right.Kind != BooleanValue {
			return Value{}, typeError(e.Op.Pos, "Operand must be a boolean.")
		}
		return Boolean(!right.Bool), nil
	default:
		panic(fmt.Sprintf("interpreter: token kind %s is not a unary operator", e.Op.Kind))
	}
}

func evalBinary(e *ast.Binary) (Value, error) {
	left, err := Eval(e.Left)
	if err != nil {
		return Value{}, err
	}
	right, err := Eval(e.Right)
	if err != nil {
		return Value{}, err
	}

	switch e.Op.Kind {
	case token.EqualEqual:
		return Boolean(left.equal(right)), nil
	case token.BangEqual:
		return Boolean(!left.equal(right)), nil

	case token.Plus:
		if left.Kind == NumberValue && right.Kind == NumberValue {
			return Number(left.Number + right.Number), nil
		}
		if left.Kind == StringValue && right.Kind == StringValue {
			return String(left.Text + right.Text), nil
		}
		return Value{}, typeError(e.Op.Pos, "Operands must be two numbers or two strings.")

	case token.Minus:
		if left.Kind == NumberValue && right.Kind == NumberValue {
			return Number(left.Number - right.Number), nil
		}
		return Value{}, typeError(e.Op.Pos, "Operands must be numbers.")

	case token.Star:
		if left.Kind == NumberValue && right.Kind == NumberValue {
			return Number(left.Number * right.Number), nil
		}
		if left.Kind == StringValue && right.Kind == NumberValue {
			return repeatString(left.Text, right.Number, e.Op.Pos)
		}
		return Value{}, typeError(e.Op.Pos, "Operands must be two numbers, or a string and a number.")

	case token.Slash:
		if left.Kind == NumberValue && right.Kind == NumberValue {
			return Number(left.Number / right.Number), nil
		}
		return Value{}, typeError(e.Op.Pos, "Operands must be numbers.")

	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		return compare(e.Op.Kind, left, right, e.Op.Pos)

	default:
		panic(fmt.Sprintf("interpreter: token kind %s is not a binary operator", e.Op.Kind))
	}
}

func compare(op token.Kind, left, right Value, pos token.Position) (Value, error) {
	var less, equal bool
	switch {
	case left.Kind == NumberValue && right.Kind == NumberValue:
		less = left.Number < right.Number
		equal = left.Number == right.Number
	case left.Kind == StringValue && right.Kind == StringValue:
		less = left.Text < right.Text
		equal = left.Text == right.Text
	default:
		return Value{}, typeError(pos, "Operands must be two numbers or two strings.")
	}

	switch op {
	case token.Greater:
		return Boolean(!less && !equal), nil
	case token.GreaterEqual:
		return Boolean(!less), nil
	case token.Less:
		return Boolean(less), nil
	case token.LessEqual:
		return Boolean(less || equal), nil
	default:
		panic(fmt.Sprintf("interpreter: token kind %s is not a relational operator", op))
	}
}

func repeatString(s string, n float64, pos token.Position) (Value, error) {
	if n < 0 {
		return Value{}, typeError(pos, "String repeat count must not be negative.")
	}
	return String(strings.Repeat(s, int(n))), nil
}

func typeError(pos token.Position, message string) *Error {
	return &Error{Message: fmt.Sprintf("[line %d] %s", pos.Line, message), Pos: pos}
}
