// Package jsparse is the adapter at the external parser boundary: this
// repository does not implement a JavaScript lexer or parser itself, and
// instead parses with github.com/dop251/goja/parser and translates goja's
// AST into this repository's own tagged-variant node set (internal/ast).
// Keeping the translation in one place means every later pass
// (scopebuild, refcollect, rename, codegen) works against one small,
// stable node taxonomy regardless of which parser produced it.
package jsparse

import (
	"fmt"

	gojaast "github.com/dop251/goja/ast"
	"github.com/dop251/goja/file"
	gojaparser "github.com/dop251/goja/parser"
	gojatoken "github.com/dop251/goja/token"

	"github.com/jscompiler/jsmin/internal/ast"
)

// Parse reads a complete JavaScript program from src and converts it into
// this repository's AST. filename is used only for error messages.
func Parse(filename string, src []byte) (*ast.Program, error) {
	fset := file.NewFileSet()
	prog, err := gojaparser.ParseFile(fset, filename, src, 0)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	out := &ast.Program{Statements: convertStatements(prog.Body)}
	out.SetPos(ast.Pos(0))
	return out, nil
}

func pos(n gojaast.Node) ast.Pos {
	if n == nil {
		return ast.Pos(0)
	}
	return ast.Pos(int(n.Idx0()))
}

func opString(t gojatoken.Token) string {
	return t.String()
}

func convertStatements(in []gojaast.Statement) []ast.Statement {
	out := make([]ast.Statement, 0, len(in))
	for _, s := range in {
		if c := convertStatement(s); c != nil {
			out = append(out, c)
		}
	}
	return out
}

func convertStatement(s gojaast.Statement) ast.Statement {
	if s == nil {
		return nil
	}
	switch n := s.(type) {
	case *gojaast.BlockStatement:
		out := &ast.Block{Statements: convertStatements(n.List)}
		out.SetPos(pos(n))
		return out
	case *gojaast.VariableStatement:
		decls := make([]*ast.VariableDeclaration, 0, len(n.List))
		for _, item := range n.List {
			decls = append(decls, convertVariableExpression(item))
		}
		out := &ast.VariableStatement{Declarations: decls}
		out.SetPos(pos(n))
		return out
	case *gojaast.EmptyStatement:
		out := &ast.EmptyStatement{}
		out.SetPos(pos(n))
		return out
	case *gojaast.ExpressionStatement:
		out := &ast.ExpressionStatement{Expression: convertExpression(n.Expression)}
		out.SetPos(pos(n))
		return out
	case *gojaast.IfStatement:
		out := &ast.IfStatement{
			Condition: convertExpression(n.Test),
			Then:      convertStatement(n.Consequent),
			Else:      convertStatement(n.Alternate),
		}
		out.SetPos(pos(n))
		return out
	case *gojaast.DoWhileStatement:
		out := &ast.DoWhileStatement{Body: convertStatement(n.Body), Cond: convertExpression(n.Test)}
		out.SetPos(pos(n))
		return out
	case *gojaast.WhileStatement:
		out := &ast.WhileStatement{Cond: convertExpression(n.Test), Body: convertStatement(n.Body)}
		out.SetPos(pos(n))
		return out
	case *gojaast.ForStatement:
		out := &ast.ForStatement{
			Init: convertExpression(n.Initializer),
			Cond: convertExpression(n.Test),
			Next: convertExpression(n.Update),
			Body: convertStatement(n.Body),
		}
		out.SetPos(pos(n))
		return out
	case *gojaast.ForInStatement:
		out := &ast.ForInStatement{
			Each:       convertExpression(n.Into),
			Enumerable: convertExpression(n.Source),
			Body:       convertStatement(n.Body),
		}
		out.SetPos(pos(n))
		return out
	case *gojaast.ContinueStatement:
		out := &ast.ContinueStatement{Target: identifierName(n.Target)}
		out.SetPos(pos(n))
		return out
	case *gojaast.BreakStatement:
		out := &ast.BreakStatement{Target: identifierName(n.Target)}
		out.SetPos(pos(n))
		return out
	case *gojaast.ReturnStatement:
		out := &ast.ReturnStatement{Expression: convertExpression(n.Argument)}
		out.SetPos(pos(n))
		return out
	case *gojaast.WithStatement:
		out := &ast.WithStatement{Expr: convertExpression(n.Object), Stmt: convertStatement(n.Body)}
		out.SetPos(pos(n))
		return out
	case *gojaast.SwitchStatement:
		cases := make([]*ast.CaseClause, 0, len(n.Body))
		for _, c := range n.Body {
			cc := &ast.CaseClause{Label: convertExpression(c.Test), Statements: convertStatements(c.Consequent)}
			cases = append(cases, cc)
		}
		out := &ast.SwitchStatement{Expr: convertExpression(n.Discriminant), Cases: cases}
		out.SetPos(pos(n))
		return out
	case *gojaast.LabelledStatement:
		out := &ast.LabelledStatement{Label: identifierName(n.Label), Stmt: convertStatement(n.Statement)}
		out.SetPos(pos(n))
		return out
	case *gojaast.ThrowStatement:
		out := &ast.Throw{Expression: convertExpression(n.Argument)}
		out.SetPos(pos(n))
		return out
	case *gojaast.TryStatement:
		out := &ast.TryStatement{
			Try: convertBlock(n.Body),
		}
		if n.Catch != nil {
			out.HasCatch = true
			out.CatchVar = bindingName(n.Catch.Parameter)
			out.CatchBlock = convertBlock(n.Catch.Body)
		}
		if n.Finally != nil {
			out.FinallyBlock = convertBlock(n.Finally)
		}
		out.SetPos(pos(n))
		return out
	case *gojaast.FunctionDeclaration:
		fn := n.Function
		out := &ast.FunctionDeclaration{
			Name:       identifierName(fn.Name),
			Parameters: parameterNames(fn.ParameterList),
			Body:       convertStatements(fn.Body.List),
		}
		out.SetPos(pos(n))
		return out
	default:
		panic(fmt.Sprintf("jsparse: unhandled statement type %T", s))
	}
}

func convertBlock(b *gojaast.BlockStatement) *ast.Block {
	if b == nil {
		return &ast.Block{}
	}
	out := &ast.Block{Statements: convertStatements(b.List)}
	out.SetPos(pos(b))
	return out
}

func identifierName(id *gojaast.Identifier) string {
	if id == nil {
		return ""
	}
	return string(id.Name)
}

func bindingName(target gojaast.BindingTarget) string {
	if id, ok := target.(*gojaast.Identifier); ok {
		return identifierName(id)
	}
	return ""
}

func parameterNames(list *gojaast.ParameterList) []string {
	if list == nil {
		return nil
	}
	names := make([]string, 0, len(list.List))
	for _, p := range list.List {
		names = append(names, bindingName(p.Target))
	}
	return names
}

func convertVariableExpression(e gojaast.Expression) *ast.VariableDeclaration {
	v, ok := e.(*gojaast.VariableExpression)
	if !ok {
		panic(fmt.Sprintf("jsparse: expected VariableExpression, got %T", e))
	}
	out := &ast.VariableDeclaration{Name: string(v.Name)}
	if v.Initializer != nil {
		out.Value = convertExpression(v.Initializer)
	}
	out.SetPos(pos(v))
	return out
}

func convertExpression(e gojaast.Expression) ast.Expression {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *gojaast.Identifier:
		out := &ast.Name{Value: string(n.Name)}
		out.SetPos(pos(n))
		return out
	case *gojaast.NullLiteral:
		out := &ast.NullNode{}
		out.SetPos(pos(n))
		return out
	case *gojaast.BooleanLiteral:
		if n.Value {
			out := &ast.TrueNode{}
			out.SetPos(pos(n))
			return out
		}
		out := &ast.FalseNode{}
		out.SetPos(pos(n))
		return out
	case *gojaast.NumberLiteral:
		out := &ast.NumberLiteral{Value: n.Literal}
		out.SetPos(pos(n))
		return out
	case *gojaast.StringLiteral:
		out := &ast.StringLiteral{Value: n.Literal}
		out.SetPos(pos(n))
		return out
	case *gojaast.RegExpLiteral:
		out := &ast.RegExpLiteral{Pattern: fmt.Sprintf("/%s/", n.Pattern), Flags: n.Flags}
		out.SetPos(pos(n))
		return out
	case *gojaast.ArrayLiteral:
		elems := make([]ast.Expression, 0, len(n.Value))
		for _, el := range n.Value {
			if el == nil {
				elision := &ast.Elision{}
				elems = append(elems, elision)
				continue
			}
			elems = append(elems, convertExpression(el))
		}
		out := &ast.ArrayLiteral{Elements: elems}
		out.SetPos(pos(n))
		return out
	case *gojaast.ObjectLiteral:
		props := make([]*ast.ObjectProperty, 0, len(n.Value))
		for _, p := range n.Value {
			keyed, ok := p.(*gojaast.PropertyKeyed)
			if !ok {
				panic(fmt.Sprintf("jsparse: unhandled object property type %T", p))
			}
			name := &ast.PropertyName{Value: propertyKeyText(keyed.Key)}
			op := &ast.ObjectProperty{Name: name, Value: convertExpression(keyed.Value)}
			props = append(props, op)
		}
		out := &ast.ObjectLiteral{Properties: props}
		out.SetPos(pos(n))
		return out
	case *gojaast.FunctionLiteral:
		out := &ast.FunctionExpression{
			Name:       identifierName(n.Name),
			Parameters: parameterNames(n.ParameterList),
			Body:       convertStatements(n.Body.List),
		}
		out.SetPos(pos(n))
		return out
	case *gojaast.AssignExpression:
		out := &ast.Assignment{Target: convertExpression(n.Left), Op: opString(n.Operator), Value: convertExpression(n.Right)}
		out.SetPos(pos(n))
		return out
	case *gojaast.BinaryExpression:
		if n.Comparison {
			out := &ast.CompareOperation{Left: convertExpression(n.Left), Op: opString(n.Operator), Right: convertExpression(n.Right)}
			out.SetPos(pos(n))
			return out
		}
		out := &ast.BinaryOperation{Left: convertExpression(n.Left), Op: opString(n.Operator), Right: convertExpression(n.Right)}
		out.SetPos(pos(n))
		return out
	case *gojaast.UnaryExpression:
		switch n.Operator {
		case gojatoken.TYPEOF:
			out := &ast.TypeofOperation{Expr: convertExpression(n.Operand)}
			out.SetPos(pos(n))
			return out
		case gojatoken.DELETE:
			out := &ast.DeleteOperation{Expr: convertExpression(n.Operand)}
			out.SetPos(pos(n))
			return out
		case gojatoken.VOID:
			out := &ast.VoidOperation{Expr: convertExpression(n.Operand)}
			out.SetPos(pos(n))
			return out
		case gojatoken.INCREMENT, gojatoken.DECREMENT:
			if n.Postfix {
				out := &ast.PostfixCountOperation{Expr: convertExpression(n.Operand), Op: opString(n.Operator)}
				out.SetPos(pos(n))
				return out
			}
			out := &ast.PrefixCountOperation{Expr: convertExpression(n.Operand), Op: opString(n.Operator)}
			out.SetPos(pos(n))
			return out
		default:
			out := &ast.UnaryOperation{Expr: convertExpression(n.Operand), Op: opString(n.Operator)}
			out.SetPos(pos(n))
			return out
		}
	case *gojaast.ConditionalExpression:
		out := &ast.Conditional{Condition: convertExpression(n.Test), Then: convertExpression(n.Consequent), Else: convertExpression(n.Alternate)}
		out.SetPos(pos(n))
		return out
	case *gojaast.CallExpression:
		args := make([]ast.Expression, 0, len(n.ArgumentList))
		for _, a := range n.ArgumentList {
			args = append(args, convertExpression(a))
		}
		out := &ast.CallExpression{Expression: convertExpression(n.Callee), Arguments: args}
		out.SetPos(pos(n))
		return out
	case *gojaast.NewExpression:
		var args []ast.Expression
		if n.ArgumentList != nil {
			args = make([]ast.Expression, 0, len(n.ArgumentList))
			for _, a := range n.ArgumentList {
				args = append(args, convertExpression(a))
			}
		}
		out := &ast.NewExpression{Expression: convertExpression(n.Callee), Arguments: args}
		out.SetPos(pos(n))
		return out
	case *gojaast.DotExpression:
		key := &ast.PropertyName{Value: string(n.Identifier.Name)}
		out := &ast.DotProperty{Object: convertExpression(n.Left), Key: key}
		out.SetPos(pos(n))
		return out
	case *gojaast.BracketExpression:
		out := &ast.BracketProperty{Object: convertExpression(n.Left), Key: convertExpression(n.Member)}
		out.SetPos(pos(n))
		return out
	case *gojaast.ThisExpression:
		out := &ast.ThisNode{}
		out.SetPos(pos(n))
		return out
	case *gojaast.VariableExpression:
		return convertVariableExpression(n)
	default:
		panic(fmt.Sprintf("jsparse: unhandled expression type %T", e))
	}
}

func propertyKeyText(key gojaast.Expression) string {
	switch k := key.(type) {
	case *gojaast.Identifier:
		return string(k.Name)
	case *gojaast.StringLiteral:
		return string(k.Value)
	case *gojaast.NumberLiteral:
		return k.Literal
	default:
		panic(fmt.Sprintf("jsparse: unhandled property key type %T", key))
	}
}
