// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package render

import (
	"fmt"

	"github.com/out-of-phaze/SpacemanDMM/pkg/constant"
	"github.com/out-of-phaze/SpacemanDMM/pkg/minimap"
	"github.com/out-of-phaze/SpacemanDMM/pkg/objtree"
)

// Pretty adds the minor cosmetic overlays various objects compute at runtime: bookcase frames, storage box
// illustrations, fire alarm lights, and tank dispenser fill states.
type Pretty struct {
	BasePass
}

func (Pretty) AdjustVars(atom *minimap.Atom, tree *objtree.Tree) {
	if atom.Istype("/obj/structure/bookcase/") {
		atom.SetVar("icon_state", constant.NewString("book-0"))
	}
}

func (Pretty) Overlays(atom *minimap.Atom, tree *objtree.Tree, underlays, overlays *[]*minimap.Atom) {
	switch {
	case atom.Istype("/obj/item/storage/box/") && !atom.Istype("/obj/item/storage/box/papersack/"):
		copy := atom.Clone()
		copy.SetVar("icon_state", atom.GetVarOr("illustration", tree, constant.Null()))
		*overlays = append(*overlays, copy)
	case atom.Istype("/obj/machinery/firealarm/"):
		addTo(overlays, atom, "fire_overlay")
		addTo(overlays, atom, "fire_0")
		addTo(overlays, atom, "fire_off")
	case atom.Istype("/obj/structure/tank_dispenser/"):
		if oxygen, ok := atom.GetVarOr("oxygentanks", tree, constant.Null()).ToInt(); ok {
			if oxygen >= 4 {
				addTo(overlays, atom, "oxygen-4")
			} else if oxygen > 0 {
				addTo(overlays, atom, fmt.Sprintf("oxygen-%d", oxygen))
			}
		}
		if plasma, ok := atom.GetVarOr("plasmatanks", tree, constant.Null()).ToInt(); ok {
			if plasma >= 5 {
				addTo(overlays, atom, "plasma-5")
			} else if plasma > 0 {
				addTo(overlays, atom, fmt.Sprintf("plasma-%d", plasma))
			}
		}
	}
}
