// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package render

import (
	"github.com/out-of-phaze/SpacemanDMM/pkg/constant"
	"github.com/out-of-phaze/SpacemanDMM/pkg/minimap"
	"github.com/out-of-phaze/SpacemanDMM/pkg/objtree"
)

// HideInvisible rejects atoms whose invisibility exceeds the player-visible ceiling, mapping helpers, and
// the disguised syndicate balloon unless it is the real toy.
type HideInvisible struct {
	BasePass
}

func (HideInvisible) EarlyFilter(atom *minimap.Atom, tree *objtree.Tree) bool {
	// Invisible objects and syndicate balloons are not to show.
	invisibility, _ := atom.GetVarOr("invisibility", tree, constant.NewInt(0)).ToFloat()
	if invisibility > 60 || atom.Istype("/obj/effect/mapping_helpers/") {
		return false
	}
	if atom.GetVarOr("icon", tree, constant.Null()).StringEquals("icons/obj/items_and_weapons.dmi") &&
		atom.GetVarOr("icon_state", tree, constant.Null()).StringEquals("syndballoon") &&
		!atom.Istype("/obj/item/toy/syndicateballoon/") {
		return false
	}
	return true
}
