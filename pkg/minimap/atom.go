// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

// Package minimap defines the transient instances that flow through the render pipeline: typed atoms with
// resolved variables and map locations, and the sprite descriptors the pipeline annotates them with.
package minimap

import (
	"github.com/pkg/errors"

	"github.com/out-of-phaze/SpacemanDMM/pkg/ast"
	"github.com/out-of-phaze/SpacemanDMM/pkg/constant"
	"github.com/out-of-phaze/SpacemanDMM/pkg/objtree"
)

// Location is a map cell coordinate.
type Location struct {
	X, Y, Z uint32
}

// Atom is a live, typed instance flowing through the render pipeline: an object-tree type, instance-level
// variable overrides, and a map location.  Atoms are created per render and discarded after output is
// produced; they never persist across renders.
type Atom struct {
	Type *objtree.Type
	Loc  Location

	// vars holds instance overrides; inherited values stay in the tree until queried.
	vars map[string]constant.Constant
}

// FromType creates an atom of the given type with no instance overrides.
func FromType(tree *objtree.Tree, path string, loc Location) (*Atom, error) {
	typ := tree.Find(path)
	if typ == nil {
		return nil, errors.Errorf("unknown type %s", path)
	}
	return &Atom{Type: typ, Loc: loc}, nil
}

// FromPrefab creates an atom by resolving a prefab against the tree: the prefab's type is looked up and
// each override expression is evaluated to a constant, in insertion order.
func FromPrefab(tree *objtree.Tree, prefab *ast.Prefab, loc Location) (*Atom, error) {
	atom, err := FromType(tree, prefab.Path.String(), loc)
	if err != nil {
		return nil, err
	}
	if prefab.Vars == nil {
		return atom, nil
	}
	eval := &constant.Evaluator{Resolver: tree}
	for _, name := range prefab.Vars.Keys() {
		expr, _ := prefab.Vars.Get(name)
		value, err := eval.Expression(expr)
		if err != nil {
			return nil, errors.Wrapf(err, "resolving %s on %s", name, prefab.Path)
		}
		atom.SetVar(name, value)
	}
	return atom, nil
}

// Clone returns a copy of the atom with its own override map.
func (a *Atom) Clone() *Atom {
	out := &Atom{Type: a.Type, Loc: a.Loc}
	if len(a.vars) > 0 {
		out.vars = make(map[string]constant.Constant, len(a.vars))
		for k, v := range a.vars {
			out.vars[k] = v
		}
	}
	return out
}

// Path returns the textual form of the atom's type path.
func (a *Atom) Path() string {
	return a.Type.PathString()
}

// Istype reports whether the atom's type is the given parent type or a subtype of it.  The parent carries
// a trailing slash, as in Istype("/obj/structure/cable/").
func (a *Atom) Istype(parent string) bool {
	return objtree.Subpath(a.Path(), parent)
}

// SetVar sets an instance-level variable override.
func (a *Atom) SetVar(name string, value constant.Constant) {
	if a.vars == nil {
		a.vars = make(map[string]constant.Constant)
	}
	a.vars[name] = value
}

// GetVar returns the atom's value for a variable: the instance override if present, otherwise the nearest
// value on the inheritance chain.  Fails with UndefinedVariableError if no ancestor defines the name.
func (a *Atom) GetVar(name string, tree *objtree.Tree) (constant.Constant, error) {
	if v, has := a.vars[name]; has {
		return v, nil
	}
	return tree.GetVar(a.Type, name)
}

// GetVarOr is GetVar with a local fallback for undefined variables.  Other errors do not occur.
func (a *Atom) GetVarOr(name string, tree *objtree.Tree, def constant.Constant) constant.Constant {
	v, err := a.GetVar(name, tree)
	if err != nil {
		return def
	}
	return v
}
