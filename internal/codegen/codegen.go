// Package codegen is the minifier's final tree pass: an AST walker that
// reports the minimal sequence of tokens which reparses to the same tree,
// grounded directly on code_generator.py's CodeGenerator. It decides, at
// every node, whether an operand needs surrounding parentheses (via
// internal/precedence), whether a statement needs a trailing semicolon, and
// whether an ExpressionStatement's leftmost token must be parenthesized to
// avoid the `function`/`{` ambiguity at the start of a statement.
package codegen

import (
	"fmt"

	"github.com/jscompiler/jsmin/internal/ast"
	"github.com/jscompiler/jsmin/internal/precedence"
	"github.com/jscompiler/jsmin/internal/token"
)

// Sink is the token consumer the generator reports to. internal/sink.Sink
// satisfies this structurally; tests can supply a fake that records calls
// instead of writing bytes.
type Sink interface {
	ReportToken(kind token.Kind, text string) error
	ReportNumber(text string) error
	ReportKeyword(kind token.Kind, text string) error
	ReportLiteral(text string) error
	ReportIdentifier(text string) error
	ReportBinaryOp(kind token.Kind, text string) error
	ReportUnaryOp(kind token.Kind, text string) error
	ReportPrefixOp(kind token.Kind, text string) error
	ReportPostfixOp(kind token.Kind, text string) error
	ReportRegExp(pattern, flags string) error
	Close() error
}

// Generate walks prog and reports tokens to s, closing s once the walk
// completes. prog need not have been scope-built or renamed; code
// generation only consults node shape and precedence.
func Generate(prog *ast.Program, s Sink) error {
	g := &Generator{sink: s, markedForParens: make(map[ast.Node]bool)}
	g.statementList(prog.Statements)
	if g.err != nil {
		return g.err
	}
	return s.Close()
}

// Generator walks one tree. It keeps the first error encountered (from a
// failing sink write, or an unrecognized node kind) and stops doing
// further work once set, mirroring how a failing io.Writer is handled
// throughout the standard library's encoding packages.
type Generator struct {
	sink            Sink
	err             error
	markedForParens map[ast.Node]bool
}

func (g *Generator) ok() bool { return g.err == nil }

func (g *Generator) fail(err error) {
	if g.err == nil {
		g.err = err
	}
}

func (g *Generator) literal(text string) {
	if !g.ok() {
		return
	}
	g.fail(g.sink.ReportLiteral(text))
}

func (g *Generator) keyword(kind token.Kind, text string) {
	if !g.ok() {
		return
	}
	g.fail(g.sink.ReportKeyword(kind, text))
}

func (g *Generator) number(text string) {
	if !g.ok() {
		return
	}
	g.fail(g.sink.ReportNumber(text))
}

func (g *Generator) identifier(text string) {
	if !g.ok() {
		return
	}
	g.fail(g.sink.ReportIdentifier(text))
}

func (g *Generator) stringToken(text string) {
	if !g.ok() {
		return
	}
	g.fail(g.sink.ReportToken(token.STRING, text))
}

func (g *Generator) binaryOp(op string) {
	if !g.ok() {
		return
	}
	kind, ok := token.BinaryOpKind[op]
	if !ok {
		g.fail(fmt.Errorf("codegen: unknown binary operator %q", op))
		return
	}
	g.fail(g.sink.ReportBinaryOp(kind, op))
}

func (g *Generator) unaryOp(op string) {
	if !g.ok() {
		return
	}
	kind, ok := token.UnaryOpKind[op]
	if !ok {
		g.fail(fmt.Errorf("codegen: unknown unary operator %q", op))
		return
	}
	g.fail(g.sink.ReportUnaryOp(kind, op))
}

func (g *Generator) prefixOp(op string) {
	if !g.ok() {
		return
	}
	kind, ok := token.UnaryOpKind[op]
	if !ok {
		g.fail(fmt.Errorf("codegen: unknown prefix operator %q", op))
		return
	}
	g.fail(g.sink.ReportPrefixOp(kind, op))
}

func (g *Generator) postfixOp(op string) {
	if !g.ok() {
		return
	}
	kind, ok := token.UnaryOpKind[op]
	if !ok {
		g.fail(fmt.Errorf("codegen: unknown postfix operator %q", op))
		return
	}
	g.fail(g.sink.ReportPostfixOp(kind, op))
}

func (g *Generator) regexp(pattern, flags string) {
	if !g.ok() {
		return
	}
	g.fail(g.sink.ReportRegExp(pattern, flags))
}

// parenthesize unconditionally wraps node in `(` `)`, used where the
// grammar always requires parens regardless of precedence (if/while/
// do-while/with/switch heads, the for-in-disambiguation case).
func (g *Generator) parenthesize(node ast.Expression) {
	g.literal("(")
	g.expression(node)
	g.literal(")")
}

// maybeParens wraps child in parens iff its precedence is strictly lower
// than parent's (spec §4.1).
func (g *Generator) maybeParens(child ast.Expression, parent ast.Node) {
	if precedence.Of(child) < precedence.Of(parent) {
		g.parenthesize(child)
	} else {
		g.expression(child)
	}
}

func (g *Generator) commaList(items []ast.Expression) {
	last := len(items) - 1
	for i, item := range items {
		g.expression(item)
		if i < last {
			g.literal(",")
		}
	}
}

func (g *Generator) paramList(names []string) {
	last := len(names) - 1
	for i, name := range names {
		g.identifier(name)
		if i < last {
			g.literal(",")
		}
	}
}

func (g *Generator) declList(decls []*ast.VariableDeclaration) {
	last := len(decls) - 1
	for i, d := range decls {
		g.expression(d)
		if i < last {
			g.literal(",")
		}
	}
}

func (g *Generator) propList(props []*ast.ObjectProperty) {
	last := len(props) - 1
	for i, p := range props {
		g.expression(p)
		if i < last {
			g.literal(",")
		}
	}
}

// statementList emits stmts with semicolons inserted between consecutive
// statements that need one; the final statement in the list never gets a
// trailing semicolon here (its context — a following `}`, or end of
// program — is always a valid terminator), mirroring
// visit_statement_list's `maybe_semicolon` for every element but the last.
func (g *Generator) statementList(stmts []ast.Statement) {
	last := len(stmts) - 1
	for i, s := range stmts {
		g.statement(s)
		if i < last && needsSemicolon(s) {
			g.literal(";")
		}
	}
}

// needsSemicolon reports whether s requires a trailing semicolon when
// followed by another statement (spec §4.4).
func needsSemicolon(s ast.Statement) bool {
	switch n := s.(type) {
	case *ast.DoWhileStatement, *ast.ExpressionStatement, *ast.ContinueStatement,
		*ast.BreakStatement, *ast.ReturnStatement, *ast.VariableStatement:
		return true
	case *ast.WhileStatement:
		return needsSemicolon(n.Body)
	case *ast.WithStatement:
		return needsSemicolon(n.Stmt)
	case *ast.ForStatement:
		return needsSemicolon(n.Body)
	case *ast.ForInStatement:
		return needsSemicolon(n.Body)
	case *ast.IfStatement:
		if n.Else != nil {
			return needsSemicolon(n.Else)
		}
		return needsSemicolon(n.Then)
	default:
		return false
	}
}

func (g *Generator) statement(s ast.Statement) {
	if !g.ok() || s == nil {
		return
	}
	switch n := s.(type) {
	case *ast.Block:
		g.literal("{")
		g.statementList(n.Statements)
		g.literal("}")
	case *ast.SourceElements:
		g.statementList(n.Statements)
	case *ast.VariableStatement:
		g.keyword(token.VAR, "var")
		g.declList(n.Declarations)
	case *ast.EmptyStatement:
		g.literal(";")
	case *ast.ExpressionStatement:
		markLeftmostForParens(n.Expression, g.markedForParens)
		g.expression(n.Expression)
	case *ast.IfStatement:
		g.keyword(token.IF, "if")
		g.parenthesize(n.Condition)
		g.statement(n.Then)
		if n.Else != nil {
			if needsSemicolon(n.Then) {
				g.literal(";")
			}
			g.keyword(token.ELSE, "else")
			g.statement(n.Else)
		}
	case *ast.DoWhileStatement:
		g.keyword(token.DO, "do")
		g.statement(n.Body)
		if needsSemicolon(n.Body) {
			g.literal(";")
		}
		g.keyword(token.WHILE, "while")
		g.parenthesize(n.Cond)
	case *ast.WhileStatement:
		g.keyword(token.WHILE, "while")
		g.parenthesize(n.Cond)
		g.statement(n.Body)
	case *ast.ForStatement:
		g.keyword(token.FOR, "for")
		g.literal("(")
		if cmp, ok := n.Init.(*ast.CompareOperation); ok && cmp.Op == "in" {
			g.parenthesize(cmp)
		} else if n.Init != nil {
			g.expression(n.Init)
		}
		g.literal(";")
		if n.Cond != nil {
			g.expression(n.Cond)
		}
		g.literal(";")
		if n.Next != nil {
			g.expression(n.Next)
		}
		g.literal(")")
		g.statement(n.Body)
	case *ast.ForInStatement:
		g.keyword(token.FOR, "for")
		g.literal("(")
		g.expression(n.Each)
		g.keyword(token.IN, "in")
		g.expression(n.Enumerable)
		g.literal(")")
		g.statement(n.Body)
	case *ast.ContinueStatement:
		g.keyword(token.CONTINUE, "continue")
		if n.Target != "" {
			g.identifier(n.Target)
		}
	case *ast.BreakStatement:
		g.keyword(token.BREAK, "break")
		if n.Target != "" {
			g.identifier(n.Target)
		}
	case *ast.ReturnStatement:
		g.keyword(token.RETURN, "return")
		if n.Expression != nil {
			g.expression(n.Expression)
		}
	case *ast.WithStatement:
		g.keyword(token.WITH, "with")
		g.parenthesize(n.Expr)
		g.statement(n.Stmt)
	case *ast.SwitchStatement:
		g.keyword(token.SWITCH, "switch")
		g.parenthesize(n.Expr)
		g.literal("{")
		last := len(n.Cases) - 1
		for i, c := range n.Cases {
			g.caseClause(c)
			if i < last && len(c.Statements) > 0 && needsSemicolon(c.Statements[len(c.Statements)-1]) {
				g.literal(";")
			}
		}
		g.literal("}")
	case *ast.LabelledStatement:
		g.identifier(n.Label)
		g.literal(":")
		g.statement(n.Stmt)
	case *ast.Throw:
		g.keyword(token.THROW, "throw")
		g.expression(n.Expression)
	case *ast.TryStatement:
		g.keyword(token.TRY, "try")
		g.statement(n.Try)
		if n.HasCatch {
			g.keyword(token.CATCH, "catch")
			g.literal("(")
			g.identifier(n.CatchVar)
			g.literal(")")
			g.statement(n.CatchBlock)
		}
		if n.FinallyBlock != nil {
			g.keyword(token.FINALLY, "finally")
			g.statement(n.FinallyBlock)
		}
	case *ast.FunctionDeclaration:
		g.keyword(token.FUNCTION, "function")
		g.identifier(n.Name)
		g.literal("(")
		g.paramList(n.Parameters)
		g.literal(")")
		g.literal("{")
		g.statementList(n.Body)
		g.literal("}")
	default:
		g.fail(fmt.Errorf("codegen: unhandled statement type %T", s))
	}
}

// caseClause emits one CaseClause of a SwitchStatement: `case label:` (or
// `default:`) followed by its statement list.
func (g *Generator) caseClause(c *ast.CaseClause) {
	if c.Label != nil {
		g.keyword(token.CASE, "case")
		g.expression(c.Label)
	} else {
		g.keyword(token.DEFAULT, "default")
	}
	g.literal(":")
	g.statementList(c.Statements)
}

func (g *Generator) expression(e ast.Expression) {
	if !g.ok() || e == nil {
		return
	}
	switch n := e.(type) {
	case *ast.Assignment:
		g.maybeParens(n.Target, n)
		g.binaryOp(n.Op)
		g.maybeParens(n.Value, n)
	case *ast.Conditional:
		g.maybeParens(n.Condition, n)
		g.literal("?")
		g.maybeParens(n.Then, n)
		g.literal(":")
		g.maybeParens(n.Else, n)
	case *ast.BinaryOperation:
		g.maybeParens(n.Left, n)
		g.binaryOp(n.Op)
		if precedence.Of(n.Right) <= precedence.Of(n) {
			g.parenthesize(n.Right)
		} else {
			g.expression(n.Right)
		}
	case *ast.CompareOperation:
		g.maybeParens(n.Left, n)
		g.binaryOp(n.Op)
		g.maybeParens(n.Right, n)
	case *ast.UnaryOperation:
		g.unaryOp(n.Op)
		g.maybeParens(n.Expr, n)
	case *ast.PrefixCountOperation:
		g.prefixOp(n.Op)
		g.maybeParens(n.Expr, n)
	case *ast.PostfixCountOperation:
		g.maybeParens(n.Expr, n)
		g.postfixOp(n.Op)
	case *ast.TypeofOperation:
		g.keyword(token.TYPEOF, "typeof")
		g.maybeParens(n.Expr, n)
	case *ast.DeleteOperation:
		g.keyword(token.DELETE, "delete")
		g.maybeParens(n.Expr, n)
	case *ast.VoidOperation:
		g.keyword(token.VOID, "void")
		g.maybeParens(n.Expr, n)
	case *ast.CallExpression:
		g.maybeParens(n.Expression, n)
		g.literal("(")
		g.commaList(n.Arguments)
		g.literal(")")
	case *ast.NewExpression:
		g.keyword(token.NEW, "new")
		g.maybeParens(n.Expression, n)
		if n.Arguments != nil {
			g.literal("(")
			g.commaList(n.Arguments)
			g.literal(")")
		}
	case *ast.DotProperty:
		g.maybeParens(n.Object, n)
		g.literal(".")
		g.identifier(n.Key.Value)
	case *ast.BracketProperty:
		g.maybeParens(n.Object, n)
		g.literal("[")
		g.expression(n.Key)
		g.literal("]")
	case *ast.ArrayLiteral:
		g.literal("[")
		g.commaList(n.Elements)
		g.literal("]")
	case *ast.ObjectLiteral:
		parens := g.markedForParens[n]
		if parens {
			g.literal("(")
		}
		g.literal("{")
		g.propList(n.Properties)
		g.literal("}")
		if parens {
			g.literal(")")
			delete(g.markedForParens, n)
		}
	case *ast.ObjectProperty:
		g.identifier(n.Name.Value)
		g.literal(":")
		g.expression(n.Value)
	case *ast.FunctionExpression:
		parens := g.markedForParens[n]
		if parens {
			g.literal("(")
		}
		g.keyword(token.FUNCTION, "function")
		if n.Name != "" {
			g.identifier(n.Name)
		}
		g.literal("(")
		g.paramList(n.Parameters)
		g.literal(")")
		g.literal("{")
		g.statementList(n.Body)
		g.literal("}")
		if parens {
			g.literal(")")
			delete(g.markedForParens, n)
		}
	case *ast.Elision:
		// consecutive commas in an array literal are preserved by
		// commaList's separators; the element itself emits nothing
	case *ast.Name:
		g.identifier(n.Value)
	case *ast.PropertyName:
		g.identifier(n.Value)
	case *ast.StringLiteral:
		g.stringToken(n.Value)
	case *ast.NumberLiteral:
		g.number(n.Value)
	case *ast.RegExpLiteral:
		g.regexp(n.Pattern, n.Flags)
	case *ast.ThisNode:
		g.keyword(token.THIS, "this")
	case *ast.NullNode:
		g.keyword(token.NULL, "null")
	case *ast.TrueNode:
		g.keyword(token.TRUE, "true")
	case *ast.FalseNode:
		g.keyword(token.FALSE, "false")
	case *ast.VariableDeclaration:
		g.identifier(n.Name)
		if n.Value != nil {
			g.literal("=")
			g.expression(n.Value)
		}
	default:
		g.fail(fmt.Errorf("codegen: unhandled expression type %T", e))
	}
}

// markLeftmostForParens walks the leftmost lexical chain of an
// ExpressionStatement's expression and flags a terminal FunctionExpression
// or ObjectLiteral so its visitor wraps it in parens, avoiding the
// `function`/`{` ambiguity at the start of a statement (spec §4.4). It stops
// descending as soon as the child will already be parenthesized by the
// ordinary precedence rule.
func markLeftmostForParens(node ast.Expression, marked map[ast.Node]bool) {
	var left ast.Expression
	switch n := node.(type) {
	case ast.PropertyAccess:
		left = n.ObjectOf()
	case *ast.PostfixCountOperation:
		left = n.Expr
	case *ast.CallExpression:
		left = n.Expression
	case *ast.BinaryOperation:
		left = n.Left
	case *ast.CompareOperation:
		left = n.Left
	case *ast.Assignment:
		left = n.Target
	default:
		left = nil
	}
	if precedence.Of(node) > precedence.Of(left) {
		return
	}
	switch left.(type) {
	case *ast.FunctionExpression, *ast.ObjectLiteral:
		marked[left] = true
		return
	}
	if left != nil {
		markLeftmostForParens(left, marked)
	}
}
