// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package ast

// UnaryOp is a prefix or postfix operator applied to a single operand.
type UnaryOp int

const (
	// Neg is arithmetic negation, `-x`.
	Neg UnaryOp = iota
	// Not is logical negation, `!x`.
	Not
	// BitNot is bitwise complement, `~x`.
	BitNot
	// PreIncr is `++x`.
	PreIncr
	// PostIncr is `x++`.
	PostIncr
	// PreDecr is `--x`.
	PreDecr
	// PostDecr is `x--`.
	PostDecr
)

func (op UnaryOp) String() string {
	switch op {
	case Neg:
		return "-"
	case Not:
		return "!"
	case BitNot:
		return "~"
	case PreIncr, PostIncr:
		return "++"
	case PreDecr, PostDecr:
		return "--"
	}
	return "<bad-unary>"
}

// IsIncrDecr reports whether the operator is one of the four increment/decrement forms.
func (op UnaryOp) IsIncrDecr() bool {
	switch op {
	case PreIncr, PostIncr, PreDecr, PostDecr:
		return true
	}
	return false
}

// IsPostfix reports whether the operator is written after its operand.  Only the post-increment and
// post-decrement forms are.
func (op UnaryOp) IsPostfix() bool {
	return op == PostIncr || op == PostDecr
}

// BinaryOp is an infix operator combining two operands.
type BinaryOp int

const (
	Pow BinaryOp = iota
	Add
	Sub
	Mul
	Div
	Mod
	Less
	Greater
	LessEq
	GreaterEq
	LShift
	RShift
	Eq
	NotEq
	BitAnd
	BitXor
	BitOr
	And
	Or
)

func (op BinaryOp) String() string {
	switch op {
	case Pow:
		return "**"
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	case Less:
		return "<"
	case Greater:
		return ">"
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	case LShift:
		return "<<"
	case RShift:
		return ">>"
	case Eq:
		return "=="
	case NotEq:
		return "!="
	case BitAnd:
		return "&"
	case BitXor:
		return "^"
	case BitOr:
		return "|"
	case And:
		return "&&"
	case Or:
		return "||"
	}
	return "<bad-binary>"
}

// AssignOp is an assignment operator, either plain assignment or one of the compound forms.
type AssignOp int

const (
	Assign AssignOp = iota
	AddAssign
	SubAssign
	MulAssign
	DivAssign
	BitAndAssign
	BitOrAssign
	BitXorAssign
	LShiftAssign
	RShiftAssign
)

func (op AssignOp) String() string {
	switch op {
	case Assign:
		return "="
	case AddAssign:
		return "+="
	case SubAssign:
		return "-="
	case MulAssign:
		return "*="
	case DivAssign:
		return "/="
	case BitAndAssign:
		return "&="
	case BitOrAssign:
		return "|="
	case BitXorAssign:
		return "^="
	case LShiftAssign:
		return "<<="
	case RShiftAssign:
		return ">>="
	}
	return "<bad-assign>"
}

// BinaryOp returns the binary operation a compound assignment decomposes into: `a op= b` computes
// `a op b` before storing.  The mapping is total over the compound forms; plain Assign reports false.
func (op AssignOp) BinaryOp() (BinaryOp, bool) {
	switch op {
	case AddAssign:
		return Add, true
	case SubAssign:
		return Sub, true
	case MulAssign:
		return Mul, true
	case DivAssign:
		return Div, true
	case BitAndAssign:
		return BitAnd, true
	case BitOrAssign:
		return BitOr, true
	case BitXorAssign:
		return BitXor, true
	case LShiftAssign:
		return LShift, true
	case RShiftAssign:
		return RShift, true
	}
	return 0, false
}

// AssignOp returns the compound assignment form of a binary operation, if it has one.  This is the partial
// inverse of AssignOp.BinaryOp: comparison, equality, logical, and power operators have no compound form.
func (op BinaryOp) AssignOp() (AssignOp, bool) {
	switch op {
	case Add:
		return AddAssign, true
	case Sub:
		return SubAssign, true
	case Mul:
		return MulAssign, true
	case Div:
		return DivAssign, true
	case BitAnd:
		return BitAndAssign, true
	case BitOr:
		return BitOrAssign, true
	case BitXor:
		return BitXorAssign, true
	case LShift:
		return LShiftAssign, true
	case RShift:
		return RShiftAssign, true
	}
	return 0, false
}
