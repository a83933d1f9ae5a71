// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

// Package ast defines the data model for parsed object-language values: type paths, operators, and the
// recursive expression grammar of literals, constructors, prefabs, and postfix follow chains.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Expression is a parsed literal or constructor expression.  It is one of *BaseExpression,
// *BinaryOpExpression, or *AssignOpExpression.
type Expression interface {
	fmt.Stringer
	isExpression()
}

// BaseExpression is an expression containing a term directly.  The term is evaluated first, then its
// follows left to right, then its unary operators in reverse of the order they were recorded: the operator
// closest to the term at parse time applies last, so `!-x` records `[Not, Neg]` but negates before
// logically inverting.
type BaseExpression struct {
	// Unary holds the unary operations applied to this value, in reverse order of application.
	Unary []UnaryOp
	// Term is the term of the expression.
	Term Term
	// Follow holds the follow operations applied to this value.
	Follow []Follow
}

// BinaryOpExpression is a binary operation.
type BinaryOpExpression struct {
	Op  BinaryOp
	LHS Expression
	RHS Expression
}

// AssignOpExpression is an assignment operation.
type AssignOpExpression struct {
	Op  AssignOp
	LHS Expression
	RHS Expression
}

func (*BaseExpression) isExpression()     {}
func (*BinaryOpExpression) isExpression() {}
func (*AssignOpExpression) isExpression() {}

func (e *BaseExpression) String() string {
	var b strings.Builder
	for _, op := range e.Unary {
		if !op.IsPostfix() {
			b.WriteString(op.String())
		}
	}
	b.WriteString(e.Term.String())
	for _, f := range e.Follow {
		b.WriteString(f.String())
	}
	for i := len(e.Unary) - 1; i >= 0; i-- {
		if e.Unary[i].IsPostfix() {
			b.WriteString(e.Unary[i].String())
		}
	}
	return b.String()
}

func (e *BinaryOpExpression) String() string {
	return fmt.Sprintf("%v %v %v", e.LHS, e.Op, e.RHS)
}

func (e *AssignOpExpression) String() string {
	return fmt.Sprintf("%v %v %v", e.LHS, e.Op, e.RHS)
}

// Term is the basic building block of an expression: one of the closed set of literal and constructor
// forms.
type Term interface {
	fmt.Stringer
	isTerm()
}

// NullTerm is the literal `null`.
type NullTerm struct{}

// NewTerm is a `new` invocation.
type NewTerm struct {
	Type NewType
	Args []Expression
}

// ListEntry is one element of a list literal: a key with an optional associated value.
type ListEntry struct {
	Key Expression
	// Value is nil for set-like entries.
	Value Expression
}

// ListTerm is a `list(...)` literal, covering both set- and map-like forms.
type ListTerm struct {
	Entries []ListEntry
}

// CallTerm is an unscoped function call.
type CallTerm struct {
	Name string
	Args []Expression
}

// PrefabTerm is a prefab literal (path plus vars).
type PrefabTerm struct {
	Prefab *Prefab
}

// IdentTerm is an identifier.
type IdentTerm struct {
	Name string
}

// StringTerm is a string literal.
type StringTerm struct {
	Value string
}

// ResourceTerm is a resource-path literal, e.g. `'icons/obj/library.dmi'`.
type ResourceTerm struct {
	Path string
}

// IntTerm is an integer literal.
type IntTerm struct {
	Value int
}

// FloatTerm is a floating-point literal.
type FloatTerm struct {
	Value float64
}

// ExprTerm is a parenthesized sub-expression boxed back into term position.
type ExprTerm struct {
	Expr Expression
}

func (*NullTerm) isTerm()     {}
func (*NewTerm) isTerm()      {}
func (*ListTerm) isTerm()     {}
func (*CallTerm) isTerm()     {}
func (*PrefabTerm) isTerm()   {}
func (*IdentTerm) isTerm()    {}
func (*StringTerm) isTerm()   {}
func (*ResourceTerm) isTerm() {}
func (*IntTerm) isTerm()      {}
func (*FloatTerm) isTerm()    {}
func (*ExprTerm) isTerm()     {}

func (*NullTerm) String() string { return "null" }

func (t *NewTerm) String() string {
	return fmt.Sprintf("new %v%v", t.Type, argList(t.Args))
}

func (t *ListTerm) String() string {
	var b strings.Builder
	b.WriteString("list(")
	for i, entry := range t.Entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(entry.Key.String())
		if entry.Value != nil {
			b.WriteString(" = ")
			b.WriteString(entry.Value.String())
		}
	}
	b.WriteString(")")
	return b.String()
}

func (t *CallTerm) String() string   { return t.Name + argList(t.Args) }
func (t *PrefabTerm) String() string { return t.Prefab.String() }
func (t *IdentTerm) String() string  { return t.Name }
func (t *StringTerm) String() string { return strconv.Quote(t.Value) }

func (t *ResourceTerm) String() string { return "'" + t.Path + "'" }
func (t *IntTerm) String() string      { return strconv.Itoa(t.Value) }

func (t *FloatTerm) String() string {
	return strconv.FormatFloat(t.Value, 'g', -1, 64)
}

func (t *ExprTerm) String() string { return "(" + t.Expr.String() + ")" }

func argList(args []Expression) string {
	var b strings.Builder
	b.WriteString("(")
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteString(")")
	return b.String()
}

// NewType is the type operand of a `new` invocation.  It is one of *ImplicitNew, *IdentNew, or *PrefabNew.
type NewType interface {
	fmt.Stringer
	isNewType()
}

// ImplicitNew is `new` with the type inferred from context.
type ImplicitNew struct{}

// IdentNew names the type by identifier.
type IdentNew struct {
	Name string
}

// PrefabNew gives the type as a prefab literal.
type PrefabNew struct {
	Prefab *Prefab
}

func (*ImplicitNew) isNewType() {}
func (*IdentNew) isNewType()    {}
func (*PrefabNew) isNewType()   {}

func (*ImplicitNew) String() string { return "()" }
func (t *IdentNew) String() string  { return t.Name }
func (t *PrefabNew) String() string { return t.Prefab.String() }

// Follow is a postfix operation applied to a term or to the result of a previous follow: field access,
// indexing, or a method call.  Follows apply strictly left to right.
type Follow interface {
	fmt.Stringer
	isFollow()
}

// FieldFollow accesses a field of the value.
type FieldFollow struct {
	Name string
}

// IndexFollow indexes the value by a sub-expression.
type IndexFollow struct {
	Index Expression
}

// CallFollow calls a method of the value.
type CallFollow struct {
	Name string
	Args []Expression
}

func (*FieldFollow) isFollow() {}
func (*IndexFollow) isFollow() {}
func (*CallFollow) isFollow()  {}

func (f *FieldFollow) String() string { return "." + f.Name }
func (f *IndexFollow) String() string { return "[" + f.Index.String() + "]" }
func (f *CallFollow) String() string  { return "." + f.Name + argList(f.Args) }

// TermExpression wraps a bare term into an expression with empty unary and follow lists.
func TermExpression(term Term) Expression {
	return &BaseExpression{Term: term}
}

// ExpressionTerm collapses a no-op wrapper expression back to its inner term, recursively unwrapping
// nested parenthesization.  Anything carrying unary operators or follows stays boxed as an ExprTerm.  The
// round trip with TermExpression is idempotent: converting a simplified expression back and forth neither
// introduces nor loses nesting.
func ExpressionTerm(expr Expression) Term {
	base, ok := expr.(*BaseExpression)
	if !ok {
		return &ExprTerm{Expr: expr}
	}
	if len(base.Unary) != 0 || len(base.Follow) != 0 {
		return &ExprTerm{Expr: base}
	}
	if inner, ok := base.Term.(*ExprTerm); ok {
		return ExpressionTerm(inner.Expr)
	}
	return base.Term
}
