// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

// Package objtree holds the single-inheritance type tree the render pipeline queries: subtype tests over
// path segments and inherited-variable lookup walking from the most-derived type upward.
package objtree

import (
	"fmt"
	"strings"

	"github.com/out-of-phaze/SpacemanDMM/pkg/ast"
	"github.com/out-of-phaze/SpacemanDMM/pkg/constant"
	"github.com/out-of-phaze/SpacemanDMM/pkg/util/contract"
)

// Type is one node of the tree: a type path, its parent, and the variables it declares or overrides.
type Type struct {
	Path   ast.TypePath
	Parent *Type

	pathStr string
	vars    map[string]constant.Constant
}

// PathString returns the textual form of the type's path.
func (t *Type) PathString() string {
	return t.pathStr
}

// Var returns the variable declared or overridden directly on this type, without walking the inheritance
// chain.
func (t *Type) Var(name string) (constant.Constant, bool) {
	v, has := t.vars[name]
	return v, has
}

// SetVar declares or overrides a variable on this type.
func (t *Type) SetVar(name string, value constant.Constant) {
	if t.vars == nil {
		t.vars = make(map[string]constant.Constant)
	}
	t.vars[name] = value
}

// IsSubtypeOf reports whether this type's path begins with the given type's full path.
func (t *Type) IsSubtypeOf(parent *Type) bool {
	return t.Path.IsSubtypeOf(parent.Path)
}

// UndefinedVariableError is returned when no ancestor of a type defines a queried variable.  The tree
// never silently defaults a missing variable; callers wanting a local fallback must supply one
// themselves.
type UndefinedVariableError struct {
	Path string
	Name string
}

func (err *UndefinedVariableError) Error() string {
	return fmt.Sprintf("type %s has no variable %q", err.Path, err.Name)
}

// IsUndefinedVariable reports whether an error is an UndefinedVariableError.
func IsUndefinedVariable(err error) bool {
	_, is := err.(*UndefinedVariableError)
	return is
}

// Tree is the object tree.  It is mutable while being built from definitions and immutable after Freeze,
// at which point it may be shared by reference across parallel render workers without synchronization.
type Tree struct {
	root    *Type
	types   map[string]*Type
	globals map[string]constant.Constant
	frozen  bool
}

// New creates a tree containing only the root type.
func New() *Tree {
	root := &Type{pathStr: "/"}
	return &Tree{
		root:    root,
		types:   map[string]*Type{"/": root},
		globals: make(map[string]constant.Constant),
	}
}

// Root returns the zero-segment root type.
func (t *Tree) Root() *Type {
	return t.root
}

// Register adds a type at the given path, creating any missing ancestors, and returns its node.  Calling
// it again for an existing path returns the existing node.
func (t *Tree) Register(path string) (*Type, error) {
	contract.Requiref(!t.frozen, "tree", "Register after Freeze")
	parsed, err := ast.ParseTypePath(path)
	if err != nil {
		return nil, err
	}
	return t.register(parsed), nil
}

func (t *Tree) register(path ast.TypePath) *Type {
	if len(path) == 0 {
		return t.root
	}
	key := path.String()
	if typ, has := t.types[key]; has {
		return typ
	}
	parent := t.register(path.Parent())
	typ := &Type{
		Path:    path,
		Parent:  parent,
		pathStr: key,
	}
	t.types[key] = typ
	return typ
}

// Find looks up a type by its textual path, returning nil if it was never registered.
func (t *Tree) Find(path string) *Type {
	if path == "" || path == "/" {
		return t.root
	}
	return t.types[path]
}

// Define adds a global definition used to resolve identifiers during expression evaluation.
func (t *Tree) Define(name string, value constant.Constant) {
	contract.Requiref(!t.frozen, "tree", "Define after Freeze")
	t.globals[name] = value
}

// Freeze marks the tree read-only.  Rendering requires a frozen tree.
func (t *Tree) Freeze() {
	t.frozen = true
}

// Frozen reports whether the tree has been frozen.
func (t *Tree) Frozen() bool {
	return t.frozen
}

// Len returns the number of registered types, counting the root.
func (t *Tree) Len() int {
	return len(t.types)
}

// IsSubtype reports whether path begins with prefix, segment-wise.  Unknown paths still compare by their
// segments; the tree is not consulted for existence.
func (t *Tree) IsSubtype(path, prefix string) bool {
	p, err := ast.ParseTypePath(path)
	if err != nil {
		return false
	}
	pre, err := ast.ParseTypePath(prefix)
	if err != nil {
		return false
	}
	return p.IsSubtypeOf(pre)
}

// GetVar looks up a variable starting at the given type and walking the inheritance chain upward,
// returning the nearest override.  It fails with UndefinedVariableError if no ancestor defines the name.
func (t *Tree) GetVar(typ *Type, name string) (constant.Constant, error) {
	contract.Require(typ != nil, "typ")
	for cur := typ; cur != nil; cur = cur.Parent {
		if v, has := cur.vars[name]; has {
			return v, nil
		}
	}
	return constant.Null(), &UndefinedVariableError{Path: typ.pathStr, Name: name}
}

// ResolveIdent implements constant.Resolver over the tree's global definitions.
func (t *Tree) ResolveIdent(name string) (constant.Constant, bool) {
	v, has := t.globals[name]
	return v, has
}

// ResolveCall implements constant.Resolver.  No calls are resolvable at the tree level.
func (t *Tree) ResolveCall(name string, args []constant.Constant) (constant.Constant, bool) {
	return constant.Null(), false
}

// Subpath reports whether the flat string path names the parent type or any subtype of it.  The parent
// must carry a trailing slash: Subpath("/obj/item", "/obj/") and Subpath("/obj", "/obj/") both hold, but
// "/object" matches neither.  This is the string-level form of the segment-prefix subtype rule, used where
// paths circulate as plain strings.
func Subpath(path, parent string) bool {
	contract.Requiref(strings.HasSuffix(parent, "/"), "parent", "must end with /")
	return path == parent[:len(parent)-1] || strings.HasPrefix(path, parent)
}
