// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package render

import (
	"github.com/out-of-phaze/SpacemanDMM/pkg/minimap"
	"github.com/out-of-phaze/SpacemanDMM/pkg/objtree"
)

// Wires restricts the final output to power cables, for single-purpose powernet diagnostic renders.
type Wires struct {
	BasePass
}

func (Wires) LateFilter(atom *minimap.Atom, tree *objtree.Tree) bool {
	return atom.Istype("/obj/structure/cable/")
}

// Pipes restricts the final output to atmospheric pipe machinery, for pipenet diagnostic renders.
type Pipes struct {
	BasePass
}

func (Pipes) LateFilter(atom *minimap.Atom, tree *objtree.Tree) bool {
	return atom.Istype("/obj/machinery/atmospherics/pipe/")
}
