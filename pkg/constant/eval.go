// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package constant

import (
	"math"

	"github.com/pkg/errors"

	"github.com/out-of-phaze/SpacemanDMM/pkg/ast"
)

// Resolver supplies meanings for identifiers and unscoped calls during evaluation.  The object tree's
// global definitions are the usual implementation.
type Resolver interface {
	// ResolveIdent resolves a bare identifier to a constant.
	ResolveIdent(name string) (Constant, bool)
	// ResolveCall resolves an unscoped call over already-evaluated arguments.
	ResolveCall(name string, args []Constant) (Constant, bool)
}

// Evaluator folds expression trees into Constants.  There is no partial evaluation: any reference the
// Resolver cannot supply fails the whole expression with an UnresolvedReferenceError.
type Evaluator struct {
	Resolver Resolver
}

// Evaluate reduces an expression to a Constant against the given resolver.
func Evaluate(expr ast.Expression, resolver Resolver) (Constant, error) {
	e := &Evaluator{Resolver: resolver}
	return e.Expression(expr)
}

// Expression evaluates any expression form.  For a base expression the term is evaluated first, then each
// follow left to right, then the unary operators in reverse of recorded order.
func (e *Evaluator) Expression(expr ast.Expression) (Constant, error) {
	switch expr := expr.(type) {
	case *ast.BaseExpression:
		value, err := e.Term(expr.Term)
		if err != nil {
			return Null(), err
		}
		for _, follow := range expr.Follow {
			if value, err = e.follow(value, follow); err != nil {
				return Null(), err
			}
		}
		for i := len(expr.Unary) - 1; i >= 0; i-- {
			if value, err = e.unary(expr.Unary[i], value); err != nil {
				return Null(), err
			}
		}
		return value, nil
	case *ast.BinaryOpExpression:
		return e.binaryExpr(expr.Op, expr.LHS, expr.RHS)
	case *ast.AssignOpExpression:
		// The value of an assignment is the value assigned; a compound form decomposes into its
		// underlying binary operation.
		if binop, ok := expr.Op.BinaryOp(); ok {
			return e.binaryExpr(binop, expr.LHS, expr.RHS)
		}
		return e.Expression(expr.RHS)
	}
	return Null(), errors.Errorf("unrecognized expression %T", expr)
}

// Term evaluates a single term.
func (e *Evaluator) Term(term ast.Term) (Constant, error) {
	switch term := term.(type) {
	case *ast.NullTerm:
		return Null(), nil
	case *ast.IntTerm:
		return NewInt(term.Value), nil
	case *ast.FloatTerm:
		return NewFloat(term.Value), nil
	case *ast.StringTerm:
		return NewString(term.Value), nil
	case *ast.ResourceTerm:
		return NewResource(term.Path), nil
	case *ast.IdentTerm:
		if e.Resolver != nil {
			if value, ok := e.Resolver.ResolveIdent(term.Name); ok {
				return value, nil
			}
		}
		return Null(), unresolved("identifier", term.Name)
	case *ast.CallTerm:
		args, err := e.expressions(term.Args)
		if err != nil {
			return Null(), err
		}
		if e.Resolver != nil {
			if value, ok := e.Resolver.ResolveCall(term.Name, args); ok {
				return value, nil
			}
		}
		return Null(), unresolved("call", term.Name)
	case *ast.ListTerm:
		entries := make([]Entry, 0, len(term.Entries))
		for _, entry := range term.Entries {
			key, err := e.Expression(entry.Key)
			if err != nil {
				return Null(), err
			}
			out := Entry{Key: key}
			if entry.Value != nil {
				value, err := e.Expression(entry.Value)
				if err != nil {
					return Null(), err
				}
				out.Value = &value
			}
			entries = append(entries, out)
		}
		return NewList(entries), nil
	case *ast.PrefabTerm:
		return e.prefab(term.Prefab)
	case *ast.NewTerm:
		return Null(), unresolved("new", term.Type.String())
	case *ast.ExprTerm:
		return e.Expression(term.Expr)
	}
	return Null(), errors.Errorf("unrecognized term %T", term)
}

func (e *Evaluator) prefab(prefab *ast.Prefab) (Constant, error) {
	ref := &PrefabRef{
		Path: prefab.Path,
		Vars: make(map[string]Constant),
	}
	if prefab.Vars != nil {
		for _, name := range prefab.Vars.Keys() {
			expr, _ := prefab.Vars.Get(name)
			value, err := e.Expression(expr)
			if err != nil {
				return Null(), err
			}
			ref.Vars[name] = value
		}
	}
	return NewPrefab(ref), nil
}

func (e *Evaluator) expressions(exprs []ast.Expression) ([]Constant, error) {
	out := make([]Constant, len(exprs))
	for i, expr := range exprs {
		value, err := e.Expression(expr)
		if err != nil {
			return nil, err
		}
		out[i] = value
	}
	return out, nil
}

func (e *Evaluator) follow(value Constant, follow ast.Follow) (Constant, error) {
	switch follow := follow.(type) {
	case *ast.IndexFollow:
		index, err := e.Expression(follow.Index)
		if err != nil {
			return Null(), err
		}
		return e.index(value, index)
	case *ast.FieldFollow:
		if value.IsPrefab() {
			if v, has := value.PrefabValue().Vars[follow.Name]; has {
				return v, nil
			}
		}
		return Null(), unresolved("field", follow.Name)
	case *ast.CallFollow:
		if _, err := e.expressions(follow.Args); err != nil {
			return Null(), err
		}
		return Null(), unresolved("method", follow.Name)
	}
	return Null(), errors.Errorf("unrecognized follow %T", follow)
}

// index resolves `value[index]`.  Lists are 1-based: an integer index selects the nth entry's key, and a
// non-numeric index performs an associative lookup returning the entry's value (null for set-like
// entries).
func (e *Evaluator) index(value, index Constant) (Constant, error) {
	if !value.IsList() {
		return Null(), unresolved("index", value.String())
	}
	entries := value.ListValue()
	if n, ok := index.ToInt(); ok {
		if n < 1 || n > len(entries) {
			return Null(), errors.Errorf("list index %d out of bounds (1..%d)", n, len(entries))
		}
		return entries[n-1].Key, nil
	}
	for _, entry := range entries {
		if entry.Key.Equal(index) {
			if entry.Value != nil {
				return *entry.Value, nil
			}
			return Null(), nil
		}
	}
	return Null(), nil
}

func (e *Evaluator) unary(op ast.UnaryOp, value Constant) (Constant, error) {
	switch op {
	case ast.Neg:
		if value.IsInt() {
			return NewInt(-value.IntValue()), nil
		}
		if value.IsFloat() {
			return NewFloat(-value.FloatValue()), nil
		}
	case ast.Not:
		if value.IsTruthy() {
			return NewInt(0), nil
		}
		return NewInt(1), nil
	case ast.BitNot:
		if n, ok := value.ToInt(); ok {
			return NewInt(^n), nil
		}
	case ast.PreIncr, ast.PreDecr:
		delta := 1
		if op == ast.PreDecr {
			delta = -1
		}
		if value.IsInt() {
			return NewInt(value.IntValue() + delta), nil
		}
		if value.IsFloat() {
			return NewFloat(value.FloatValue() + float64(delta)), nil
		}
	case ast.PostIncr, ast.PostDecr:
		// The postfix forms yield the original value.
		if value.IsInt() || value.IsFloat() {
			return value, nil
		}
	}
	return Null(), errors.Errorf("invalid operand for unary %v: %v", op, value)
}

func (e *Evaluator) binaryExpr(op ast.BinaryOp, lhsExpr, rhsExpr ast.Expression) (Constant, error) {
	lhs, err := e.Expression(lhsExpr)
	if err != nil {
		return Null(), err
	}
	// Logical operators short-circuit on the left operand's value.
	if op == ast.And && !lhs.IsTruthy() {
		return lhs, nil
	}
	if op == ast.Or && lhs.IsTruthy() {
		return lhs, nil
	}
	rhs, err := e.Expression(rhsExpr)
	if err != nil {
		return Null(), err
	}
	return e.binary(op, lhs, rhs)
}

func (e *Evaluator) binary(op ast.BinaryOp, lhs, rhs Constant) (Constant, error) {
	switch op {
	case ast.And, ast.Or:
		// Short-circuiting already happened; the right operand is the result.
		return rhs, nil
	case ast.Eq:
		return boolInt(lhs.Equal(rhs)), nil
	case ast.NotEq:
		return boolInt(!lhs.Equal(rhs)), nil
	case ast.Add:
		if lhs.IsString() && rhs.IsString() {
			return NewString(lhs.StringValue() + rhs.StringValue()), nil
		}
	}

	if lf, lok := lhs.ToFloat(); lok {
		if rf, rok := rhs.ToFloat(); rok {
			return e.numeric(op, lhs, rhs, lf, rf)
		}
	}
	return Null(), errors.Errorf("invalid operands for %v: %v and %v", op, lhs, rhs)
}

func (e *Evaluator) numeric(op ast.BinaryOp, lhs, rhs Constant, lf, rf float64) (Constant, error) {
	bothInt := lhs.IsInt() && rhs.IsInt()
	switch op {
	case ast.Add, ast.Sub, ast.Mul:
		var f float64
		switch op {
		case ast.Add:
			f = lf + rf
		case ast.Sub:
			f = lf - rf
		case ast.Mul:
			f = lf * rf
		}
		if bothInt {
			return NewInt(int(f)), nil
		}
		return NewFloat(f), nil
	case ast.Div:
		if rf == 0 {
			return Null(), errors.New("division by zero")
		}
		if bothInt && lhs.IntValue()%rhs.IntValue() == 0 {
			return NewInt(lhs.IntValue() / rhs.IntValue()), nil
		}
		return NewFloat(lf / rf), nil
	case ast.Mod:
		ln, lok := lhs.ToInt()
		rn, rok := rhs.ToInt()
		if !lok || !rok || rn == 0 {
			return Null(), errors.Errorf("invalid operands for %%: %v and %v", lhs, rhs)
		}
		return NewInt(ln % rn), nil
	case ast.Pow:
		if bothInt && rhs.IntValue() >= 0 {
			n := 1
			for i := 0; i < rhs.IntValue(); i++ {
				n *= lhs.IntValue()
			}
			return NewInt(n), nil
		}
		return NewFloat(math.Pow(lf, rf)), nil
	case ast.Less:
		return boolInt(lf < rf), nil
	case ast.Greater:
		return boolInt(lf > rf), nil
	case ast.LessEq:
		return boolInt(lf <= rf), nil
	case ast.GreaterEq:
		return boolInt(lf >= rf), nil
	case ast.LShift, ast.RShift, ast.BitAnd, ast.BitXor, ast.BitOr:
		ln, lok := lhs.ToInt()
		rn, rok := rhs.ToInt()
		if !lok || !rok {
			break
		}
		switch op {
		case ast.LShift:
			return NewInt(ln << uint(rn)), nil
		case ast.RShift:
			return NewInt(ln >> uint(rn)), nil
		case ast.BitAnd:
			return NewInt(ln & rn), nil
		case ast.BitXor:
			return NewInt(ln ^ rn), nil
		case ast.BitOr:
			return NewInt(ln | rn), nil
		}
	}
	return Null(), errors.Errorf("invalid operands for %v: %v and %v", op, lhs, rhs)
}

func boolInt(b bool) Constant {
	if b {
		return NewInt(1)
	}
	return NewInt(0)
}
