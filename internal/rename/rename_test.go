package rename

import (
	"testing"

	"github.com/jscompiler/jsmin/internal/ast"
	"github.com/jscompiler/jsmin/internal/jsparse"
	"github.com/jscompiler/jsmin/internal/refcollect"
	"github.com/jscompiler/jsmin/internal/scopebuild"
)

func analyze(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := jsparse.Parse("test.js", []byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	scopebuild.Build(prog)
	refcollect.Collect(prog)
	return prog
}

func TestRenameProgramScopeIsProtected(t *testing.T) {
	prog := analyze(t, "var longName = 1;")
	Rename(prog)
	vs := prog.Statements[0].(*ast.VariableStatement)
	if vs.Declarations[0].Name != "longName" {
		t.Fatalf("top-level var was renamed to %q, want it left alone (program scope is protected)", vs.Declarations[0].Name)
	}
}

func TestRenameShortensMostReferencedFirst(t *testing.T) {
	prog := analyze(t, "function f(rareName, commonName) { commonName(); commonName(); return rareName; }")
	Rename(prog)
	fn := prog.Statements[0].(*ast.FunctionDeclaration)
	if fn.Parameters[1] != "a" {
		t.Fatalf("commonName (2 references) renamed to %q, want the first generated name \"a\"", fn.Parameters[1])
	}
	if fn.Parameters[0] == fn.Parameters[1] {
		t.Fatalf("rareName and commonName collided on %q", fn.Parameters[0])
	}
}

func TestRenameAvoidsCollisionWithFreeOuterReference(t *testing.T) {
	prog := analyze(t, "var a = 1; function f() { var local; return a + local; }")
	Rename(prog)
	fn := prog.Statements[1].(*ast.FunctionDeclaration)
	vs := fn.Body[0].(*ast.VariableStatement)
	if vs.Declarations[0].Name == "a" {
		t.Fatalf("local was renamed to %q, which collides with the free reference to the outer a", vs.Declarations[0].Name)
	}
}

func TestRenameProtectedScopeUsingEvalKeepsNames(t *testing.T) {
	prog := analyze(t, "function f() { var keepMe; eval('1'); return keepMe; }")
	Rename(prog)
	fn := prog.Statements[0].(*ast.FunctionDeclaration)
	vs := fn.Body[0].(*ast.VariableStatement)
	if vs.Declarations[0].Name != "keepMe" {
		t.Fatalf("local in an eval-using scope was renamed to %q, want it left alone", vs.Declarations[0].Name)
	}
}

func TestRenameIsBijectiveWithinScope(t *testing.T) {
	prog := analyze(t, "function f(p1, p2, p3) { return p1 + p2 + p3; }")
	Rename(prog)
	fn := prog.Statements[0].(*ast.FunctionDeclaration)
	seen := make(map[string]bool)
	for _, p := range fn.Parameters {
		if seen[p] {
			t.Fatalf("two parameters renamed to the same name %q", p)
		}
		seen[p] = true
		orig, ok := fn.Scope.ResolveNewName(p)
		if !ok {
			t.Fatalf("ResolveNewName(%q) not found", p)
		}
		if back := fn.Scope.GetName(orig); back != p {
			t.Fatalf("GetName(%q) = %q, want %q (round trip through the rename maps)", orig, back, p)
		}
	}
}

func TestRenameUnhandledStatementPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Rename() did not panic on an unhandled statement type")
		}
	}()
	prog := &ast.Program{
		Scope:      ast.NewScope(nil),
		Statements: []ast.Statement{&bogusStmt{}},
	}
	Rename(prog)
}

// bogusStmt satisfies ast.Statement through its embedded EmptyStatement but
// is not a type the renamer's switch lists.
type bogusStmt struct{ ast.EmptyStatement }
