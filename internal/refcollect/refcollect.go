// Package refcollect implements the minifier's second tree pass: walking the
// already-scoped tree (see scopebuild) and recording, for every Name
// reference, which scope resolves it and how many times each declared local
// is referenced. This mirrors the Python ancestor's
// ReferenceCollectingVisitor / ReferenceAddingVisitorMixin, but as a single
// pass rather than a mixin composed onto a generic visitor.
package refcollect

import (
	"fmt"

	"github.com/jscompiler/jsmin/internal/ast"
)

type collector struct {
	scope *ast.Scope
}

// Collect walks prog, which must already have Scope fields populated by
// scopebuild.Build, and records every Name reference against the scope
// current at the point of reference.
func Collect(prog *ast.Program) {
	c := &collector{scope: prog.Scope}
	for _, stmt := range prog.Statements {
		c.statement(stmt)
	}
}

func (c *collector) statement(s ast.Statement) {
	if s == nil {
		return
	}
	switch n := s.(type) {
	case *ast.Block:
		for _, st := range n.Statements {
			c.statement(st)
		}
	case *ast.VariableStatement:
		for _, decl := range n.Declarations {
			if decl.Value != nil {
				c.expression(decl.Value)
			}
		}
	case *ast.EmptyStatement:
	case *ast.ExpressionStatement:
		c.expression(n.Expression)
	case *ast.IfStatement:
		c.expression(n.Condition)
		c.statement(n.Then)
		if n.Else != nil {
			c.statement(n.Else)
		}
	case *ast.DoWhileStatement:
		c.statement(n.Body)
		c.expression(n.Cond)
	case *ast.WhileStatement:
		c.expression(n.Cond)
		c.statement(n.Body)
	case *ast.ForStatement:
		if n.Init != nil {
			c.expression(n.Init)
		}
		if n.Cond != nil {
			c.expression(n.Cond)
		}
		if n.Next != nil {
			c.expression(n.Next)
		}
		c.statement(n.Body)
	case *ast.ForInStatement:
		c.expression(n.Each)
		c.expression(n.Enumerable)
		c.statement(n.Body)
	case *ast.ContinueStatement, *ast.BreakStatement:
	case *ast.ReturnStatement:
		if n.Expression != nil {
			c.expression(n.Expression)
		}
	case *ast.WithStatement:
		c.expression(n.Expr)
		c.statement(n.Stmt)
	case *ast.SwitchStatement:
		c.expression(n.Expr)
		for _, cc := range n.Cases {
			if cc.Label != nil {
				c.expression(cc.Label)
			}
			for _, st := range cc.Statements {
				c.statement(st)
			}
		}
	case *ast.LabelledStatement:
		c.statement(n.Stmt)
	case *ast.Throw:
		c.expression(n.Expression)
	case *ast.TryStatement:
		c.statement(n.Try)
		if n.HasCatch {
			c.statement(n.CatchBlock)
		}
		if n.FinallyBlock != nil {
			c.statement(n.FinallyBlock)
		}
	case *ast.FunctionDeclaration:
		outer := c.scope
		c.scope = n.Scope
		for _, st := range n.Body {
			c.statement(st)
		}
		c.scope = outer
	default:
		panic(fmt.Sprintf("refcollect: unhandled statement type %T", s))
	}
}

func (c *collector) expression(e ast.Expression) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *ast.Name:
		c.scope.DeclareReference(n.Value)
	case *ast.Assignment:
		c.expression(n.Target)
		c.expression(n.Value)
	case *ast.Conditional:
		c.expression(n.Condition)
		c.expression(n.Then)
		c.expression(n.Else)
	case *ast.BinaryOperation:
		c.expression(n.Left)
		c.expression(n.Right)
	case *ast.CompareOperation:
		c.expression(n.Left)
		c.expression(n.Right)
	case *ast.UnaryOperation:
		c.expression(n.Expr)
	case *ast.PrefixCountOperation:
		c.expression(n.Expr)
	case *ast.PostfixCountOperation:
		c.expression(n.Expr)
	case *ast.TypeofOperation:
		c.expression(n.Expr)
	case *ast.DeleteOperation:
		c.expression(n.Expr)
	case *ast.VoidOperation:
		c.expression(n.Expr)
	case *ast.CallExpression:
		c.expression(n.Expression)
		for _, a := range n.Arguments {
			c.expression(a)
		}
	case *ast.NewExpression:
		c.expression(n.Expression)
		for _, a := range n.Arguments {
			c.expression(a)
		}
	case *ast.DotProperty:
		c.expression(n.Object)
	case *ast.BracketProperty:
		c.expression(n.Object)
		c.expression(n.Key)
	case *ast.ArrayLiteral:
		for _, el := range n.Elements {
			c.expression(el)
		}
	case *ast.ObjectLiteral:
		for _, p := range n.Properties {
			c.expression(p.Value)
		}
	case *ast.FunctionExpression:
		outer := c.scope
		c.scope = n.Scope
		for _, st := range n.Body {
			c.statement(st)
		}
		c.scope = outer
	case *ast.VariableDeclaration:
		if n.Value != nil {
			c.expression(n.Value)
		}
	case *ast.Elision, *ast.PropertyName, *ast.StringLiteral, *ast.NumberLiteral,
		*ast.RegExpLiteral, *ast.ThisNode, *ast.NullNode, *ast.TrueNode, *ast.FalseNode:
	default:
		panic(fmt.Sprintf("refcollect: unhandled expression type %T", e))
	}
}
