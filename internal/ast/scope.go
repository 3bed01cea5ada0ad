package ast

import "github.com/jscompiler/jsmin/internal/container"

// Scope is one function scope or the single program scope. Parent is a
// plain pointer rather than an arena index or weak handle: Go's garbage
// collector already traces pointer cycles correctly, so the reference-
// counted-host concern that motivates an arena in the design notes doesn't
// apply here.
type Scope struct {
	Parent *Scope

	Declarations *container.OrderedMap[Node]
	Functions    *container.OrderedMap[Node]
	Parameters   *container.OrderedMap[Node]
	Variables    *container.OrderedMap[Node]

	UsesWith bool
	usesEval bool // unconditional mark; UsesEval() applies the local-declaration filter (spec §4.6)

	References      map[string]*Scope
	ReferenceCounts map[string]int

	OriginalToNew map[string]string
	NewToOriginal map[string]string
}

// NewScope creates an empty scope with parent (nil for the program scope).
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Parent:          parent,
		Declarations:    container.NewOrderedMap[Node](),
		Functions:       container.NewOrderedMap[Node](),
		Parameters:      container.NewOrderedMap[Node](),
		Variables:       container.NewOrderedMap[Node](),
		References:      make(map[string]*Scope),
		ReferenceCounts: make(map[string]int),
		OriginalToNew:   make(map[string]string),
		NewToOriginal:   make(map[string]string),
	}
}

func (s *Scope) DeclareSymbol(name string, node Node) {
	s.Declarations.Set(name, node)
}

func (s *Scope) DeclareFunction(name string, node Node) {
	s.Functions.Set(name, node)
	s.DeclareSymbol(name, node)
}

func (s *Scope) DeclareParameter(name string, node Node) {
	s.Parameters.Set(name, node)
	s.DeclareSymbol(name, node)
}

func (s *Scope) DeclareVariable(name string, node Node) {
	s.Variables.Set(name, node)
	s.DeclareSymbol(name, node)
}

// ResolveName returns the nearest scope (this one or an ancestor) whose
// Declarations contains name, or nil.
func (s *Scope) ResolveName(name string) *Scope {
	if s.Declarations.Has(name) {
		return s
	}
	if s.Parent != nil {
		return s.Parent.ResolveName(name)
	}
	return nil
}

func (s *Scope) HasDeclaration(name string) bool  { return s.ResolveName(name) != nil }
func (s *Scope) DeclaredInScope(name string) bool { return s.Declarations.Has(name) }

// MarkUsesWith marks this scope and every ancestor as containing a `with`.
func (s *Scope) MarkUsesWith() {
	s.UsesWith = true
	if s.Parent != nil {
		s.Parent.MarkUsesWith()
	}
}

// MarkUsesEval marks this scope and every ancestor as referencing the name
// `eval`. The mark is unconditional; UsesEval applies the read-time filter.
func (s *Scope) MarkUsesEval() {
	s.usesEval = true
	if s.Parent != nil {
		s.Parent.MarkUsesEval()
	}
}

// UsesEval reports whether `eval` is referenced in this scope or a
// descendant, except that it returns false when this scope (or an ancestor
// on the resolution chain) declares `eval` as a local: the name then refers
// to that local rather than to the global eval (spec §4.6).
func (s *Scope) UsesEval() bool {
	if s.HasDeclaration("eval") {
		return false
	}
	return s.usesEval
}

// IsProtected reports whether locals in this scope must not be renamed: the
// program scope, any scope where UsesEval is true, or any scope containing
// a `with`.
func (s *Scope) IsProtected() bool {
	return s.UsesEval() || s.UsesWith || s.Parent == nil
}

// DeclareReference records that name was referenced while this scope was
// current: sets References[name] to the resolving scope, and if name is
// declared here increments ReferenceCounts; otherwise propagates to the
// parent so outer declarations also see the reference.
func (s *Scope) DeclareReference(name string) {
	s.References[name] = s.ResolveName(name)
	if s.Declarations.Has(name) {
		s.ReferenceCounts[name]++
	} else if s.Parent != nil {
		s.Parent.DeclareReference(name)
	}
}

// GetName returns the renamed form of name if this scope (or an ancestor)
// assigned one, chaining outward until a mapping is found; otherwise it
// returns name unchanged.
func (s *Scope) GetName(name string) string {
	if newName, ok := s.OriginalToNew[name]; ok {
		return newName
	}
	if s.Parent != nil {
		return s.Parent.GetName(name)
	}
	return name
}

// ResolveNewName inverts GetName: given a post-rename form, finds the
// original name, chaining outward through ancestors.
func (s *Scope) ResolveNewName(name string) (string, bool) {
	if orig, ok := s.NewToOriginal[name]; ok {
		return orig, true
	}
	if s.Parent != nil {
		return s.Parent.ResolveNewName(name)
	}
	return "", false
}
