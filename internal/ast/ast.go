// Package ast defines the closed taxonomy of abstract syntax tree nodes the
// minifier's core operates on. The external parser (internal/jsparse) is the
// only producer of these nodes; every later pass (scope building, reference
// collection, renaming, code generation) consumes and, where noted, mutates
// them in place.
package ast

// Pos is an opaque source position. The core never inspects it; it exists
// only so that position metadata survives tree rebuilds. internal/jsparse
// sets it from the external parser's own position type.
type Pos int

// Node is the interface every AST node implements.
type Node interface {
	Pos() Pos
	SetPos(Pos)
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without producing a value.
type Statement interface {
	Node
	statementNode()
}

// Base is embedded by every concrete node to supply Pos/SetPos without
// repeating the boilerplate the teacher repeats per struct. Go's visitor
// dispatch is a type switch rather than the teacher's reflection-based
// NodeVisitor, so there is no cost to sharing this across node kinds.
type Base struct {
	NodePos Pos
}

func (b *Base) Pos() Pos     { return b.NodePos }
func (b *Base) SetPos(p Pos) { b.NodePos = p }

// CopyNodeAttrs copies the opaque position from src onto dst. It mirrors
// copy_node_attrs from the Python ancestor (original_source/jscompiler),
// used wherever a pass constructs a replacement node and must keep it
// pointing at the same source location as the node it replaces.
func CopyNodeAttrs(dst, src Node) {
	dst.SetPos(src.Pos())
}

// Program is the root node: the whole of a parsed source file.
type Program struct {
	Base
	Statements []Statement
	Scope      *Scope
}

func (p *Program) statementNode() {}

// SourceElements is a bare statement list appearing where the grammar
// names it distinctly from Program (function bodies). It carries no
// behavior beyond Program's; kept as a separate type because the spec's
// node taxonomy names it separately and the code generator dispatches on
// it directly.
type SourceElements struct {
	Base
	Statements []Statement
}

func (s *SourceElements) statementNode() {}
