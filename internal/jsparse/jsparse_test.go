package jsparse

import (
	"testing"

	"github.com/jscompiler/jsmin/internal/ast"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := Parse("test.js", []byte(src))
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", src, err)
	}
	return prog
}

func TestParseVariableStatement(t *testing.T) {
	prog := mustParse(t, "var x = 1;")
	if len(prog.Statements) != 1 {
		t.Fatalf("len(Statements) = %d, want 1", len(prog.Statements))
	}
	vs, ok := prog.Statements[0].(*ast.VariableStatement)
	if !ok {
		t.Fatalf("Statements[0] = %T, want *ast.VariableStatement", prog.Statements[0])
	}
	if len(vs.Declarations) != 1 || vs.Declarations[0].Name != "x" {
		t.Fatalf("Declarations = %+v", vs.Declarations)
	}
	num, ok := vs.Declarations[0].Value.(*ast.NumberLiteral)
	if !ok || num.Value != "1" {
		t.Fatalf("Declarations[0].Value = %#v, want NumberLiteral(1)", vs.Declarations[0].Value)
	}
}

func TestParseStringLiteralPreservesSourceText(t *testing.T) {
	prog := mustParse(t, `var s = 'a\'b';`)
	vs := prog.Statements[0].(*ast.VariableStatement)
	str, ok := vs.Declarations[0].Value.(*ast.StringLiteral)
	if !ok {
		t.Fatalf("Value = %T, want *ast.StringLiteral", vs.Declarations[0].Value)
	}
	if str.Value != `'a\'b'` {
		t.Fatalf("StringLiteral.Value = %q, want the raw quoted source text", str.Value)
	}
}

func TestParseRegExpLiteralIncludesSlashes(t *testing.T) {
	prog := mustParse(t, "var r = /ab+c/gi;")
	vs := prog.Statements[0].(*ast.VariableStatement)
	re, ok := vs.Declarations[0].Value.(*ast.RegExpLiteral)
	if !ok {
		t.Fatalf("Value = %T, want *ast.RegExpLiteral", vs.Declarations[0].Value)
	}
	if re.Pattern != "/ab+c/" {
		t.Fatalf("Pattern = %q, want %q", re.Pattern, "/ab+c/")
	}
	if re.Flags != "gi" {
		t.Fatalf("Flags = %q, want %q", re.Flags, "gi")
	}
}

func TestParseFunctionDeclaration(t *testing.T) {
	prog := mustParse(t, "function add(a, b) { return a + b; }")
	fn, ok := prog.Statements[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("Statements[0] = %T, want *ast.FunctionDeclaration", prog.Statements[0])
	}
	if fn.Name != "add" {
		t.Fatalf("Name = %q, want add", fn.Name)
	}
	if len(fn.Parameters) != 2 || fn.Parameters[0] != "a" || fn.Parameters[1] != "b" {
		t.Fatalf("Parameters = %v", fn.Parameters)
	}
	if len(fn.Body) != 1 {
		t.Fatalf("len(Body) = %d, want 1", len(fn.Body))
	}
	ret, ok := fn.Body[0].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("Body[0] = %T, want *ast.ReturnStatement", fn.Body[0])
	}
	bin, ok := ret.Expression.(*ast.BinaryOperation)
	if !ok || bin.Op != "+" {
		t.Fatalf("Expression = %#v, want BinaryOperation(+)", ret.Expression)
	}
}

func TestParseForInStatement(t *testing.T) {
	prog := mustParse(t, "for (var k in obj) { }")
	fi, ok := prog.Statements[0].(*ast.ForInStatement)
	if !ok {
		t.Fatalf("Statements[0] = %T, want *ast.ForInStatement", prog.Statements[0])
	}
	if _, ok := fi.Each.(*ast.VariableDeclaration); !ok {
		t.Fatalf("Each = %T, want *ast.VariableDeclaration", fi.Each)
	}
	name, ok := fi.Enumerable.(*ast.Name)
	if !ok || name.Value != "obj" {
		t.Fatalf("Enumerable = %#v, want Name(obj)", fi.Enumerable)
	}
}

func TestParseTryCatchFinally(t *testing.T) {
	prog := mustParse(t, "try { a(); } catch (e) { b(); } finally { c(); }")
	try, ok := prog.Statements[0].(*ast.TryStatement)
	if !ok {
		t.Fatalf("Statements[0] = %T, want *ast.TryStatement", prog.Statements[0])
	}
	if !try.HasCatch || try.CatchVar != "e" {
		t.Fatalf("HasCatch=%v CatchVar=%q, want true, \"e\"", try.HasCatch, try.CatchVar)
	}
	if try.FinallyBlock == nil {
		t.Fatalf("FinallyBlock = nil, want non-nil")
	}
}

func TestParseObjectAndArrayLiterals(t *testing.T) {
	prog := mustParse(t, "var o = {a: 1, b: [2, 3]};")
	vs := prog.Statements[0].(*ast.VariableStatement)
	obj, ok := vs.Declarations[0].Value.(*ast.ObjectLiteral)
	if !ok || len(obj.Properties) != 2 {
		t.Fatalf("Value = %#v, want ObjectLiteral with 2 properties", vs.Declarations[0].Value)
	}
	if obj.Properties[0].Name.Value != "a" {
		t.Fatalf("Properties[0].Name = %q, want a", obj.Properties[0].Name.Value)
	}
	arr, ok := obj.Properties[1].Value.(*ast.ArrayLiteral)
	if !ok || len(arr.Elements) != 2 {
		t.Fatalf("Properties[1].Value = %#v, want 2-element ArrayLiteral", obj.Properties[1].Value)
	}
}

func TestParseInvalidSyntaxReturnsError(t *testing.T) {
	if _, err := Parse("bad.js", []byte("var = ;")); err == nil {
		t.Fatalf("Parse() error = nil, want non-nil for invalid syntax")
	}
}
