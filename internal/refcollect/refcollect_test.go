package refcollect

import (
	"testing"

	"github.com/jscompiler/jsmin/internal/ast"
	"github.com/jscompiler/jsmin/internal/jsparse"
	"github.com/jscompiler/jsmin/internal/scopebuild"
)

func analyze(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := jsparse.Parse("test.js", []byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	scopebuild.Build(prog)
	Collect(prog)
	return prog
}

func TestCollectCountsReferencesInDeclaringScope(t *testing.T) {
	prog := analyze(t, "var x = 1; x = x + x;")
	if prog.Scope.ReferenceCounts["x"] != 3 {
		t.Fatalf("ReferenceCounts[x] = %d, want 3", prog.Scope.ReferenceCounts["x"])
	}
}

func TestCollectPropagatesFreeReferenceToAncestor(t *testing.T) {
	prog := analyze(t, "var outer = 1; function f() { return outer; }")
	fn := prog.Statements[1].(*ast.FunctionDeclaration)
	if fn.Scope.References["outer"] != prog.Scope {
		t.Fatalf("inner scope's References[outer] = %v, want the program scope", fn.Scope.References["outer"])
	}
	if prog.Scope.ReferenceCounts["outer"] != 1 {
		t.Fatalf("ReferenceCounts[outer] on the declaring scope = %d, want 1 (the free reference propagated outward)", prog.Scope.ReferenceCounts["outer"])
	}
}

func TestCollectLocalShadowsOuterReference(t *testing.T) {
	prog := analyze(t, "var x = 1; function f() { var x = 2; return x; }")
	fn := prog.Statements[1].(*ast.FunctionDeclaration)
	if fn.Scope.References["x"] != fn.Scope {
		t.Fatalf("References[x] = %v, want the function's own scope (shadowing)", fn.Scope.References["x"])
	}
	if prog.Scope.ReferenceCounts["x"] != 0 {
		t.Fatalf("ReferenceCounts[x] on the program scope = %d, want 0 (shadowed, never reaches outer)", prog.Scope.ReferenceCounts["x"])
	}
}

func TestCollectUnhandledExpressionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Collect() did not panic on an unhandled expression type")
		}
	}()
	prog := &ast.Program{
		Scope:      ast.NewScope(nil),
		Statements: []ast.Statement{&ast.ExpressionStatement{Expression: &bogusExpr{}}},
	}
	Collect(prog)
}

// bogusExpr satisfies ast.Expression through its embedded Elision but is
// not a type the collector's switch lists.
type bogusExpr struct{ ast.Elision }
