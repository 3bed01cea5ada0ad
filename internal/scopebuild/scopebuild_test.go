package scopebuild

import (
	"testing"

	"github.com/jscompiler/jsmin/internal/ast"
	"github.com/jscompiler/jsmin/internal/jsparse"
)

func build(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := jsparse.Parse("test.js", []byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	Build(prog)
	return prog
}

func TestBuildDeclaresVarInProgramScope(t *testing.T) {
	prog := build(t, "var x = 1;")
	if !prog.Scope.DeclaredInScope("x") {
		t.Fatalf("program scope does not declare x")
	}
}

func TestBuildFunctionDeclaredInOuterScopeParamsInOwn(t *testing.T) {
	prog := build(t, "function f(a) { var b; }")
	if !prog.Scope.DeclaredInScope("f") {
		t.Fatalf("program scope does not declare f")
	}
	fn := prog.Statements[0].(*ast.FunctionDeclaration)
	if fn.Scope == prog.Scope {
		t.Fatalf("function scope must be distinct from program scope")
	}
	if fn.Scope.Parent != prog.Scope {
		t.Fatalf("function scope's parent must be the program scope")
	}
	if !fn.Scope.DeclaredInScope("a") {
		t.Fatalf("function scope does not declare parameter a")
	}
	if !fn.Scope.DeclaredInScope("b") {
		t.Fatalf("function scope does not declare local b")
	}
	if fn.Scope.DeclaredInScope("f") {
		t.Fatalf("function's own scope should not redeclare its own name")
	}
}

func TestBuildNamedFunctionExpressionVisibleOnlyInOwnScope(t *testing.T) {
	prog := build(t, "var g = function named() { return named; };")
	vs := prog.Statements[0].(*ast.VariableStatement)
	fe := vs.Declarations[0].Value.(*ast.FunctionExpression)
	if prog.Scope.DeclaredInScope("named") {
		t.Fatalf("program scope should not see the function expression's own name")
	}
	if !fe.Scope.DeclaredInScope("named") {
		t.Fatalf("function expression's own scope should declare its name")
	}
}

func TestBuildMarksUsesWith(t *testing.T) {
	prog := build(t, "with (o) { x = 1; }")
	if !prog.Scope.UsesWith {
		t.Fatalf("UsesWith = false, want true")
	}
}

func TestBuildMarksUsesEvalExceptWhenLocallyDeclared(t *testing.T) {
	prog := build(t, "function f() { eval('1'); }")
	fn := prog.Statements[0].(*ast.FunctionDeclaration)
	if !fn.Scope.UsesEval() {
		t.Fatalf("inner scope UsesEval() = false, want true")
	}
	if !prog.Scope.UsesEval() {
		t.Fatalf("ancestor scope UsesEval() = false, want true (spec §4.6: the mark propagates to every ancestor)")
	}

	shadowed := build(t, "function f() { var eval; eval('1'); }")
	fn2 := shadowed.Statements[0].(*ast.FunctionDeclaration)
	if fn2.Scope.UsesEval() {
		t.Fatalf("UsesEval() = true when eval is locally declared, want false")
	}
}

func TestBuildDotPropertyNamedEvalDoesNotMarkUsesEval(t *testing.T) {
	prog := build(t, "function f() { return obj.eval(); }")
	fn := prog.Statements[0].(*ast.FunctionDeclaration)
	if fn.Scope.UsesEval() {
		t.Fatalf("UsesEval() = true for a property named eval, want false")
	}
}

func TestBuildUnhandledStatementPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Build() did not panic on an unhandled statement type")
		}
	}()
	Build(&ast.Program{Statements: []ast.Statement{&bogusStmt{}}})
}

// bogusStmt satisfies ast.Statement through its embedded EmptyStatement but
// is not a type the builder's switch lists.
type bogusStmt struct{ ast.EmptyStatement }
