// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package ast

import (
	"strings"
)

// VarMap is an insertion-ordered mapping of variable names to expressions.  Order is preserved because it
// affects display and re-serialization; lookup is by key, and setting an existing key overwrites its value
// in place without moving it.
type VarMap struct {
	keys   []string
	values map[string]Expression
}

// NewVarMap returns an empty VarMap.
func NewVarMap() *VarMap {
	return &VarMap{values: make(map[string]Expression)}
}

// Set inserts or overwrites the expression for a variable name.
func (m *VarMap) Set(name string, value Expression) {
	if _, has := m.values[name]; !has {
		m.keys = append(m.keys, name)
	}
	m.values[name] = value
}

// Get looks up the expression for a variable name.
func (m *VarMap) Get(name string) (Expression, bool) {
	value, has := m.values[name]
	return value, has
}

// Len returns the number of variables.
func (m *VarMap) Len() int {
	return len(m.keys)
}

// Keys returns the variable names in insertion order.  The returned slice is shared; callers must not
// mutate it.
func (m *VarMap) Keys() []string {
	return m.keys
}

// Clone returns a copy sharing the expression values but not the map structure.
func (m *VarMap) Clone() *VarMap {
	out := &VarMap{
		keys:   append([]string(nil), m.keys...),
		values: make(map[string]Expression, len(m.values)),
	}
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// Prefab is a type path plus an ordered set of instance-level variable overrides.  Prefabs appear both as
// static definitions attached to object-tree nodes and as dynamically-placed map instances.  A Prefab owns
// its expressions; they do not outlive it.
type Prefab struct {
	Path TypePath
	Vars *VarMap
}

// NewPrefab returns a prefab for the given path with no variable overrides.
func NewPrefab(path TypePath) *Prefab {
	return &Prefab{Path: path, Vars: NewVarMap()}
}

func (p *Prefab) String() string {
	if p.Vars == nil || p.Vars.Len() == 0 {
		return p.Path.String()
	}
	var b strings.Builder
	b.WriteString(p.Path.String())
	b.WriteString(" {")
	for i, name := range p.Vars.Keys() {
		if i > 0 {
			b.WriteString("; ")
		}
		value, _ := p.Vars.Get(name)
		b.WriteString(name)
		b.WriteString(" = ")
		b.WriteString(value.String())
	}
	b.WriteString("}")
	return b.String()
}

// Clone returns a copy of the prefab with its own VarMap.
func (p *Prefab) Clone() *Prefab {
	out := &Prefab{Path: append(TypePath(nil), p.Path...)}
	if p.Vars != nil {
		out.Vars = p.Vars.Clone()
	} else {
		out.Vars = NewVarMap()
	}
	return out
}
