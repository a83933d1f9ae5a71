// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

// Package render implements the map rendering pipeline: a registry of named, independently-enabled passes,
// each exposing seven narrow hooks, and the driver that applies them to atoms in a fixed stage order.
package render

import (
	"github.com/out-of-phaze/SpacemanDMM/pkg/constant"
	"github.com/out-of-phaze/SpacemanDMM/pkg/minimap"
	"github.com/out-of-phaze/SpacemanDMM/pkg/objtree"
)

// Pass is a map rendering pass.
//
// The hooks are applied to any given atom in roughly the order they appear here.  Each hook has a neutral
// default on BasePass; a pass overrides only the hooks it needs, which lets independently-authored passes
// compose without knowing about each other.
type Pass interface {
	// PathFilter filters atoms based solely on their type path.
	PathFilter(path string) bool

	// EarlyFilter filters atoms at the beginning of the process.  Return false to discard the atom.
	EarlyFilter(atom *minimap.Atom, tree *objtree.Tree) bool

	// Expand expands atoms, such as spawners into the atoms they spawn.  Return true to consume the
	// original atom.
	Expand(atom *minimap.Atom, tree *objtree.Tree, output *[]*minimap.Atom) bool

	// AdjustVars adjusts the variables of an atom.
	AdjustVars(atom *minimap.Atom, tree *objtree.Tree)

	// Overlays applies overlays and underlays to an atom, in the form of pseudo-atoms.
	Overlays(atom *minimap.Atom, tree *objtree.Tree, underlays, overlays *[]*minimap.Atom)

	// AdjustSprite adjusts the sprite an atom will be drawn with.
	AdjustSprite(atom *minimap.Atom, sprite *minimap.Sprite, tree *objtree.Tree)

	// LateFilter filters atoms at the end of the process.  It acts on adjusted atoms and on
	// pseudo-atoms from Overlays.  Return true to keep and false to discard.
	LateFilter(atom *minimap.Atom, tree *objtree.Tree) bool
}

// BasePass supplies the neutral defaults for every hook: pass-through filters and no-op mutations.
// Passes embed it and override what they need.
type BasePass struct{}

func (BasePass) PathFilter(path string) bool { return true }

func (BasePass) EarlyFilter(atom *minimap.Atom, tree *objtree.Tree) bool { return true }

func (BasePass) Expand(atom *minimap.Atom, tree *objtree.Tree, output *[]*minimap.Atom) bool {
	return false
}

func (BasePass) AdjustVars(atom *minimap.Atom, tree *objtree.Tree) {}

func (BasePass) Overlays(atom *minimap.Atom, tree *objtree.Tree, underlays, overlays *[]*minimap.Atom) {
}

func (BasePass) AdjustSprite(atom *minimap.Atom, sprite *minimap.Sprite, tree *objtree.Tree) {}

func (BasePass) LateFilter(atom *minimap.Atom, tree *objtree.Tree) bool { return true }

// addTo pushes a clone of the atom with a replacement icon_state onto a pseudo-atom accumulator.
func addTo(target *[]*minimap.Atom, atom *minimap.Atom, iconState string) {
	copy := atom.Clone()
	copy.SetVar("icon_state", constant.NewString(iconState))
	*target = append(*target, copy)
}
