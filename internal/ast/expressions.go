package ast

// Assignment is `target op value` for `=` and its compound forms.
type Assignment struct {
	Base
	Target Expression
	Op     string
	Value  Expression
}

func (*Assignment) expressionNode() {}

// Conditional is the ternary `cond ? then : else`.
type Conditional struct {
	Base
	Condition Expression
	Then      Expression
	Else      Expression
}

func (*Conditional) expressionNode() {}

// BinaryOperation is a left-associative arithmetic/bitwise/logical binary
// operator. Equality and relational operators are modeled separately as
// CompareOperation because the code generator parenthesizes their operands
// differently (spec §4.4: CompareOperation passes both sides through
// maybeParens; BinaryOperation parenthesizes its right operand whenever
// precedence ties, to preserve left-associativity).
type BinaryOperation struct {
	Base
	Left  Expression
	Op    string
	Right Expression
}

func (*BinaryOperation) expressionNode() {}

// CompareOperation is an equality, relational, `instanceof`, or `in`
// operator.
type CompareOperation struct {
	Base
	Left  Expression
	Op    string
	Right Expression
}

func (*CompareOperation) expressionNode() {}

// UnaryOperation is a prefix `! ~ + -` applied to an expression.
type UnaryOperation struct {
	Base
	Op   string
	Expr Expression
}

func (*UnaryOperation) expressionNode() {}

// PrefixCountOperation is prefix `++x` / `--x`.
type PrefixCountOperation struct {
	Base
	Op   string
	Expr Expression
}

func (*PrefixCountOperation) expressionNode() {}

// PostfixCountOperation is postfix `x++` / `x--`.
type PostfixCountOperation struct {
	Base
	Expr Expression
	Op   string
}

func (*PostfixCountOperation) expressionNode() {}

// TypeofOperation is `typeof expr`.
type TypeofOperation struct {
	Base
	Expr Expression
}

func (*TypeofOperation) expressionNode() {}

// DeleteOperation is `delete expr`.
type DeleteOperation struct {
	Base
	Expr Expression
}

func (*DeleteOperation) expressionNode() {}

// VoidOperation is `void expr`.
type VoidOperation struct {
	Base
	Expr Expression
}

func (*VoidOperation) expressionNode() {}

// CallExpression is `expr(args)`.
type CallExpression struct {
	Base
	Expression Expression
	Arguments  []Expression
}

func (*CallExpression) expressionNode() {}

// NewExpression is `new expr` or `new expr(args)`. Arguments is nil when
// the call parentheses were omitted from the source (`new Foo`).
type NewExpression struct {
	Base
	Expression Expression
	Arguments  []Expression // nil means no parenthesized argument list
}

func (*NewExpression) expressionNode() {}

// PropertyAccess is the union of DotProperty and BracketProperty: any
// member-access expression with an Object operand.
type PropertyAccess interface {
	Expression
	ObjectOf() Expression
}

// DotProperty is `object.key`.
type DotProperty struct {
	Base
	Object Expression
	Key    *PropertyName
}

func (*DotProperty) expressionNode()        {}
func (d *DotProperty) ObjectOf() Expression { return d.Object }

// BracketProperty is `object[key]`.
type BracketProperty struct {
	Base
	Object Expression
	Key    Expression
}

func (*BracketProperty) expressionNode()        {}
func (b *BracketProperty) ObjectOf() Expression { return b.Object }

// ArrayLiteral is `[elements]`. Elision entries represent omitted elements
// between commas (`[1,,3]`).
type ArrayLiteral struct {
	Base
	Elements []Expression
}

func (*ArrayLiteral) expressionNode() {}

// ObjectProperty is one `name: value` entry of an ObjectLiteral.
type ObjectProperty struct {
	Base
	Name  *PropertyName
	Value Expression
}

func (*ObjectProperty) expressionNode() {}

// ObjectLiteral is `{properties}`.
type ObjectLiteral struct {
	Base
	Properties []*ObjectProperty
}

func (*ObjectLiteral) expressionNode() {}

// FunctionExpression is `function [name](params) { body }` in expression
// position. A named FunctionExpression's name is visible only inside its
// own scope (spec §4.5), unlike FunctionDeclaration's hoisted name.
type FunctionExpression struct {
	Base
	Name       string // empty for an anonymous function expression
	Parameters []string
	Body       []Statement
	Scope      *Scope
}

func (*FunctionExpression) expressionNode() {}

// Elision is an omitted element in an array literal (a bare comma).
type Elision struct {
	Base
}

func (*Elision) expressionNode() {}

// Name is an identifier reference.
type Name struct {
	Base
	Value string
}

func (*Name) expressionNode() {}

// PropertyName is an identifier used as an object/member property key. It
// is never subject to scope resolution or renaming.
type PropertyName struct {
	Base
	Value string
}

func (*PropertyName) expressionNode() {}

// StringLiteral is a quoted string literal, carried as its original source
// text (delimiting quotes and escapes included) since minification does not
// renormalize quote style (spec Non-goals: no optimization beyond identifier
// renaming).
type StringLiteral struct {
	Base
	Value string
}

func (*StringLiteral) expressionNode() {}

// NumberLiteral is a numeric literal, carried as its original source text
// since minification does not renormalize numeric formatting (spec
// Non-goals: no optimization beyond identifier renaming).
type NumberLiteral struct {
	Base
	Value string
}

func (*NumberLiteral) expressionNode() {}

// RegExpLiteral is `/pattern/flags`. Pattern includes the delimiting
// slashes; Flags is empty when no flags follow.
type RegExpLiteral struct {
	Base
	Pattern string
	Flags   string
}

func (*RegExpLiteral) expressionNode() {}

// ThisNode is the `this` keyword.
type ThisNode struct{ Base }

func (*ThisNode) expressionNode() {}

// NullNode is the `null` literal.
type NullNode struct{ Base }

func (*NullNode) expressionNode() {}

// TrueNode is the `true` literal.
type TrueNode struct{ Base }

func (*TrueNode) expressionNode() {}

// FalseNode is the `false` literal.
type FalseNode struct{ Base }

func (*FalseNode) expressionNode() {}
