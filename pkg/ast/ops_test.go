// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var compoundOps = []AssignOp{
	AddAssign, SubAssign, MulAssign, DivAssign,
	BitAndAssign, BitOrAssign, BitXorAssign,
	LShiftAssign, RShiftAssign,
}

// TestAssignOpMappingTotal checks that every compound assignment decomposes into exactly one binary op and
// that the decomposition round-trips.
func TestAssignOpMappingTotal(t *testing.T) {
	seen := make(map[BinaryOp]AssignOp)
	for _, op := range compoundOps {
		binop, ok := op.BinaryOp()
		assert.True(t, ok, "%v must decompose", op)
		back, ok := binop.AssignOp()
		assert.True(t, ok)
		assert.Equal(t, op, back, "round trip through %v", binop)
		_, dup := seen[binop]
		assert.False(t, dup, "%v mapped twice", binop)
		seen[binop] = op
	}
}

// TestAssignOpMappingPartialInverse checks the operators with no compound form.
func TestAssignOpMappingPartialInverse(t *testing.T) {
	_, ok := Assign.BinaryOp()
	assert.False(t, ok, "plain assignment has no binary counterpart")

	for _, op := range []BinaryOp{Pow, Mod, Less, Greater, LessEq, GreaterEq, Eq, NotEq, And, Or} {
		_, ok := op.AssignOp()
		assert.False(t, ok, "%v has no compound form", op)
	}
}

func TestAssignOpPairs(t *testing.T) {
	pairs := map[AssignOp]BinaryOp{
		AddAssign:    Add,
		SubAssign:    Sub,
		MulAssign:    Mul,
		DivAssign:    Div,
		BitAndAssign: BitAnd,
		BitOrAssign:  BitOr,
		BitXorAssign: BitXor,
		LShiftAssign: LShift,
		RShiftAssign: RShift,
	}
	for assign, binary := range pairs {
		got, ok := assign.BinaryOp()
		assert.True(t, ok)
		assert.Equal(t, binary, got)
	}
}

func TestUnaryOpFlags(t *testing.T) {
	assert.True(t, PreIncr.IsIncrDecr())
	assert.True(t, PostDecr.IsIncrDecr())
	assert.False(t, Neg.IsIncrDecr())
	assert.True(t, PostIncr.IsPostfix())
	assert.True(t, PostDecr.IsPostfix())
	assert.False(t, PreIncr.IsPostfix())
	assert.False(t, Not.IsPostfix())
}

func TestOpStrings(t *testing.T) {
	assert.Equal(t, "**", Pow.String())
	assert.Equal(t, "<<=", LShiftAssign.String())
	assert.Equal(t, "~", BitNot.String())
	assert.Equal(t, "=", Assign.String())
}
