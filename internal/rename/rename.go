// Package rename assigns short replacement identifiers to local declarations
// and rewrites every reference to match, grounded on rename.py's Renamer.
// Renaming happens in two top-down passes over the already-scoped,
// already-reference-counted tree (see scopebuild and refcollect): first
// every scope's new names are decided (outer scopes before inner, so a
// scope's "what must I avoid" set can already consult its ancestors'
// finished decisions), then a second pass rewrites every Name, declaration,
// and parameter list to its assigned spelling.
package rename

import (
	"fmt"
	"sort"

	"github.com/jscompiler/jsmin/internal/ast"
	"github.com/jscompiler/jsmin/internal/namegen"
)

// Rename assigns and applies new local names throughout prog, which must
// already have had scopebuild.Build and refcollect.Collect run over it.
func Rename(prog *ast.Program) {
	assignScopes(prog)
	rewrite(prog)
}

func assignScopes(prog *ast.Program) {
	assignScope(prog.Scope)
	assignStatements(prog.Statements)
}

// assignScope decides OriginalToNew/NewToOriginal for s's own declarations.
// A protected scope (spec §4.6: the program scope, or any scope using
// `with`/`eval`) keeps every local's original spelling, but still needs an
// identity entry so GetName resolves locally instead of falling through to
// an unrelated same-named ancestor mapping.
func assignScope(s *ast.Scope) {
	if s.IsProtected() {
		for _, name := range s.Declarations.Keys() {
			s.OriginalToNew[name] = name
			s.NewToOriginal[name] = name
		}
		return
	}

	disallowed := make(map[string]bool)
	for name, resolving := range s.References {
		if resolving != s {
			// a free reference, either into an ancestor or to an undeclared
			// global (resolving == nil); the new local name must not collide
			// with its spelling (an ancestor binding's is already decided,
			// since assignment proceeds outer-to-inner)
			disallowed[s.GetName(name)] = true
		}
	}

	names := append([]string(nil), s.Declarations.Keys()...)
	sort.SliceStable(names, func(i, j int) bool {
		return s.ReferenceCounts[names[i]] > s.ReferenceCounts[names[j]]
	})

	gen := namegen.New()
	for _, name := range names {
		var next string
		for {
			next = gen.Next()
			if !disallowed[next] {
				break
			}
		}
		s.OriginalToNew[name] = next
		s.NewToOriginal[next] = name
		disallowed[next] = true
	}
}

func assignStatements(stmts []ast.Statement) {
	for _, s := range stmts {
		assignStatement(s)
	}
}

func assignStatement(s ast.Statement) {
	if s == nil {
		return
	}
	switch n := s.(type) {
	case *ast.Block:
		assignStatements(n.Statements)
	case *ast.VariableStatement:
		for _, d := range n.Declarations {
			assignExpression(d.Value)
		}
	case *ast.EmptyStatement:
	case *ast.ExpressionStatement:
		assignExpression(n.Expression)
	case *ast.IfStatement:
		assignExpression(n.Condition)
		assignStatement(n.Then)
		assignStatement(n.Else)
	case *ast.DoWhileStatement:
		assignStatement(n.Body)
		assignExpression(n.Cond)
	case *ast.WhileStatement:
		assignExpression(n.Cond)
		assignStatement(n.Body)
	case *ast.ForStatement:
		assignExpression(n.Init)
		assignExpression(n.Cond)
		assignExpression(n.Next)
		assignStatement(n.Body)
	case *ast.ForInStatement:
		assignExpression(n.Each)
		assignExpression(n.Enumerable)
		assignStatement(n.Body)
	case *ast.ContinueStatement, *ast.BreakStatement:
	case *ast.ReturnStatement:
		assignExpression(n.Expression)
	case *ast.WithStatement:
		assignExpression(n.Expr)
		assignStatement(n.Stmt)
	case *ast.SwitchStatement:
		assignExpression(n.Expr)
		for _, c := range n.Cases {
			assignExpression(c.Label)
			assignStatements(c.Statements)
		}
	case *ast.LabelledStatement:
		assignStatement(n.Stmt)
	case *ast.Throw:
		assignExpression(n.Expression)
	case *ast.TryStatement:
		assignStatement(n.Try)
		if n.HasCatch {
			assignStatement(n.CatchBlock)
		}
		assignStatement(n.FinallyBlock)
	case *ast.FunctionDeclaration:
		assignScope(n.Scope)
		assignStatements(n.Body)
	default:
		panic(fmt.Sprintf("rename: unhandled statement type %T", s))
	}
}

func assignExpression(e ast.Expression) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *ast.Name, *ast.Elision, *ast.PropertyName, *ast.StringLiteral,
		*ast.NumberLiteral, *ast.RegExpLiteral, *ast.ThisNode, *ast.NullNode,
		*ast.TrueNode, *ast.FalseNode:
	case *ast.Assignment:
		assignExpression(n.Target)
		assignExpression(n.Value)
	case *ast.Conditional:
		assignExpression(n.Condition)
		assignExpression(n.Then)
		assignExpression(n.Else)
	case *ast.BinaryOperation:
		assignExpression(n.Left)
		assignExpression(n.Right)
	case *ast.CompareOperation:
		assignExpression(n.Left)
		assignExpression(n.Right)
	case *ast.UnaryOperation:
		assignExpression(n.Expr)
	case *ast.PrefixCountOperation:
		assignExpression(n.Expr)
	case *ast.PostfixCountOperation:
		assignExpression(n.Expr)
	case *ast.TypeofOperation:
		assignExpression(n.Expr)
	case *ast.DeleteOperation:
		assignExpression(n.Expr)
	case *ast.VoidOperation:
		assignExpression(n.Expr)
	case *ast.CallExpression:
		assignExpression(n.Expression)
		for _, a := range n.Arguments {
			assignExpression(a)
		}
	case *ast.NewExpression:
		assignExpression(n.Expression)
		for _, a := range n.Arguments {
			assignExpression(a)
		}
	case *ast.DotProperty:
		assignExpression(n.Object)
	case *ast.BracketProperty:
		assignExpression(n.Object)
		assignExpression(n.Key)
	case *ast.ArrayLiteral:
		for _, el := range n.Elements {
			assignExpression(el)
		}
	case *ast.ObjectLiteral:
		for _, p := range n.Properties {
			assignExpression(p.Value)
		}
	case *ast.FunctionExpression:
		assignScope(n.Scope)
		assignStatements(n.Body)
	case *ast.VariableDeclaration:
		assignExpression(n.Value)
	default:
		panic(fmt.Sprintf("rename: unhandled expression type %T", e))
	}
}

// rewrite applies the decisions assignScopes made: every Name, declaration
// name, and parameter is rewritten in place to its scope's GetName result.
func rewrite(prog *ast.Program) {
	rewriteStatements(prog.Scope, prog.Statements)
}

func rewriteStatements(scope *ast.Scope, stmts []ast.Statement) {
	for _, s := range stmts {
		rewriteStatement(scope, s)
	}
}

func rewriteStatement(scope *ast.Scope, s ast.Statement) {
	if s == nil {
		return
	}
	switch n := s.(type) {
	case *ast.Block:
		rewriteStatements(scope, n.Statements)
	case *ast.VariableStatement:
		for _, d := range n.Declarations {
			d.Name = scope.GetName(d.Name)
			rewriteExpression(scope, d.Value)
		}
	case *ast.EmptyStatement:
	case *ast.ExpressionStatement:
		rewriteExpression(scope, n.Expression)
	case *ast.IfStatement:
		rewriteExpression(scope, n.Condition)
		rewriteStatement(scope, n.Then)
		rewriteStatement(scope, n.Else)
	case *ast.DoWhileStatement:
		rewriteStatement(scope, n.Body)
		rewriteExpression(scope, n.Cond)
	case *ast.WhileStatement:
		rewriteExpression(scope, n.Cond)
		rewriteStatement(scope, n.Body)
	case *ast.ForStatement:
		rewriteExpression(scope, n.Init)
		rewriteExpression(scope, n.Cond)
		rewriteExpression(scope, n.Next)
		rewriteStatement(scope, n.Body)
	case *ast.ForInStatement:
		rewriteExpression(scope, n.Each)
		rewriteExpression(scope, n.Enumerable)
		rewriteStatement(scope, n.Body)
	case *ast.ContinueStatement, *ast.BreakStatement:
		// labels live in a separate namespace and are never renamed
	case *ast.ReturnStatement:
		rewriteExpression(scope, n.Expression)
	case *ast.WithStatement:
		rewriteExpression(scope, n.Expr)
		rewriteStatement(scope, n.Stmt)
	case *ast.SwitchStatement:
		rewriteExpression(scope, n.Expr)
		for _, c := range n.Cases {
			rewriteExpression(scope, c.Label)
			rewriteStatements(scope, c.Statements)
		}
	case *ast.LabelledStatement:
		rewriteStatement(scope, n.Stmt)
	case *ast.Throw:
		rewriteExpression(scope, n.Expression)
	case *ast.TryStatement:
		rewriteStatement(scope, n.Try)
		// CatchVar is reported verbatim, never resolved against a scope
		// (spec's supplemented ReportIdentifier routing for catch bindings)
		if n.HasCatch {
			rewriteStatement(scope, n.CatchBlock)
		}
		rewriteStatement(scope, n.FinallyBlock)
	case *ast.FunctionDeclaration:
		n.Name = scope.GetName(n.Name)
		for i, p := range n.Parameters {
			n.Parameters[i] = n.Scope.GetName(p)
		}
		rewriteStatements(n.Scope, n.Body)
	default:
		panic(fmt.Sprintf("rename: unhandled statement type %T", s))
	}
}

func rewriteExpression(scope *ast.Scope, e ast.Expression) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *ast.Name:
		n.Value = scope.GetName(n.Value)
	case *ast.Elision, *ast.PropertyName, *ast.StringLiteral, *ast.NumberLiteral,
		*ast.RegExpLiteral, *ast.ThisNode, *ast.NullNode, *ast.TrueNode, *ast.FalseNode:
	case *ast.Assignment:
		rewriteExpression(scope, n.Target)
		rewriteExpression(scope, n.Value)
	case *ast.Conditional:
		rewriteExpression(scope, n.Condition)
		rewriteExpression(scope, n.Then)
		rewriteExpression(scope, n.Else)
	case *ast.BinaryOperation:
		rewriteExpression(scope, n.Left)
		rewriteExpression(scope, n.Right)
	case *ast.CompareOperation:
		rewriteExpression(scope, n.Left)
		rewriteExpression(scope, n.Right)
	case *ast.UnaryOperation:
		rewriteExpression(scope, n.Expr)
	case *ast.PrefixCountOperation:
		rewriteExpression(scope, n.Expr)
	case *ast.PostfixCountOperation:
		rewriteExpression(scope, n.Expr)
	case *ast.TypeofOperation:
		rewriteExpression(scope, n.Expr)
	case *ast.DeleteOperation:
		rewriteExpression(scope, n.Expr)
	case *ast.VoidOperation:
		rewriteExpression(scope, n.Expr)
	case *ast.CallExpression:
		rewriteExpression(scope, n.Expression)
		for _, a := range n.Arguments {
			rewriteExpression(scope, a)
		}
	case *ast.NewExpression:
		rewriteExpression(scope, n.Expression)
		for _, a := range n.Arguments {
			rewriteExpression(scope, a)
		}
	case *ast.DotProperty:
		rewriteExpression(scope, n.Object)
		// Key is a PropertyName: property names are never renamed
	case *ast.BracketProperty:
		rewriteExpression(scope, n.Object)
		rewriteExpression(scope, n.Key)
	case *ast.ArrayLiteral:
		for _, el := range n.Elements {
			rewriteExpression(scope, el)
		}
	case *ast.ObjectLiteral:
		for _, p := range n.Properties {
			rewriteExpression(scope, p.Value)
		}
	case *ast.FunctionExpression:
		if n.Name != "" {
			n.Name = n.Scope.GetName(n.Name)
		}
		for i, p := range n.Parameters {
			n.Parameters[i] = n.Scope.GetName(p)
		}
		rewriteStatements(n.Scope, n.Body)
	case *ast.VariableDeclaration:
		n.Name = scope.GetName(n.Name)
		rewriteExpression(scope, n.Value)
	default:
		panic(fmt.Sprintf("rename: unhandled expression type %T", e))
	}
}
