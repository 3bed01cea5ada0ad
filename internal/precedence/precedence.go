// Package precedence assigns a numeric binding strength to expression nodes,
// grounded directly on precedence.py's PRECEDENCE table and the
// parenthesization rules code_generator.py applies around it. Higher binds
// tighter. The code generator consults Of to decide when an operand
// needs parentheses; it owns the actual parenthesization rules (precedence.py
// has no such logic itself — that lived inline in code_generator.py's
// maybe_parens), so only the table is reproduced here.
package precedence

import "github.com/jscompiler/jsmin/internal/ast"

const (
	Comma          = 1
	Assign         = 2
	Cond           = 3
	LogicalOr      = 4
	LogicalAnd     = 5
	BitwiseOr      = 6
	BitwiseXor     = 7
	BitwiseAnd     = 8
	Equality       = 9
	Relational     = 10
	Shift          = 11
	Additive       = 12
	Multiplicative = 13
	Unary          = 14
	Postfix        = 15
	Call           = 16
	Member         = 17
	Default        = 20
)

var binaryOp = map[string]int{
	"||": LogicalOr,
	"&&": LogicalAnd,
	"|":  BitwiseOr,
	"^":  BitwiseXor,
	"&":  BitwiseAnd,
	"<<": Shift,
	">>": Shift,
	">>>": Shift,
	"+": Additive,
	"-": Additive,
	"*": Multiplicative,
	"/": Multiplicative,
	"%": Multiplicative,
}

var compareOp = map[string]int{
	"==":         Equality,
	"!=":         Equality,
	"===":        Equality,
	"!==":        Equality,
	"<":          Relational,
	">":          Relational,
	"<=":         Relational,
	">=":         Relational,
	"instanceof": Relational,
	"in":         Relational,
}

// Of returns the binding precedence of node: how tightly it binds relative
// to its neighbors. Calls return Call; member access and `new` return
// Member. Leaf nodes and anything not named in the table (names, literals,
// function expressions, and so on) return Default, the highest value, so
// they are never parenthesized as a parent's operand.
func Of(node ast.Node) int {
	switch n := node.(type) {
	case *ast.Assignment:
		return Assign
	case *ast.Conditional:
		return Cond
	case *ast.BinaryOperation:
		if p, ok := binaryOp[n.Op]; ok {
			return p
		}
		return Default
	case *ast.CompareOperation:
		if p, ok := compareOp[n.Op]; ok {
			return p
		}
		return Default
	case *ast.UnaryOperation, *ast.TypeofOperation, *ast.DeleteOperation, *ast.VoidOperation:
		return Unary
	case *ast.PrefixCountOperation, *ast.PostfixCountOperation:
		return Postfix
	case *ast.CallExpression:
		return Call
	case *ast.NewExpression:
		return Member
	case *ast.DotProperty, *ast.BracketProperty:
		return Member
	default:
		return Default
	}
}
