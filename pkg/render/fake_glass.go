// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package render

import (
	"github.com/out-of-phaze/SpacemanDMM/pkg/constant"
	"github.com/out-of-phaze/SpacemanDMM/pkg/minimap"
	"github.com/out-of-phaze/SpacemanDMM/pkg/objtree"
)

// FakeGlass draws the floor plating and grille a fake-glass wall pretends to stand on, as underlays
// beneath the wall's own untouched icon.
type FakeGlass struct {
	BasePass
}

func (FakeGlass) Overlays(atom *minimap.Atom, tree *objtree.Tree, underlays, overlays *[]*minimap.Atom) {
	if !atom.Istype("/turf/closed/indestructible/fakeglass/") {
		return
	}
	copy := atom.Clone()
	copy.SetVar("icon", constant.NewResource("icons/turf/floors.dmi"))
	copy.SetVar("icon_state", constant.NewString("plating"))
	*underlays = append(*underlays, copy)
	copy = atom.Clone()
	copy.SetVar("icon", constant.NewResource("icons/obj/structures.dmi"))
	copy.SetVar("icon_state", constant.NewString("grille"))
	*underlays = append(*underlays, copy)
}
