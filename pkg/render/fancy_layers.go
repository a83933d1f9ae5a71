// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package render

import (
	"strings"

	"github.com/out-of-phaze/SpacemanDMM/pkg/minimap"
	"github.com/out-of-phaze/SpacemanDMM/pkg/objtree"
)

// FancyLayers forces the canonical rendering plane and assigns discrete layer values according to in-game
// stacking rules, so hidden infrastructure sorts beneath the things that cover it.
type FancyLayers struct {
	BasePass
}

func (FancyLayers) AdjustSprite(atom *minimap.Atom, sprite *minimap.Sprite, tree *objtree.Tree) {
	sprite.Plane = 0
	if layer, ok := fancyLayerForPath(atom.Path()); ok {
		sprite.Layer = layer
	}
}

// fancyLayerForPath maps a type path to its layer value.  The rules are ordered; the first match wins, and
// an unmatched path leaves the sprite's existing layer untouched.
func fancyLayerForPath(p string) (int, bool) {
	subtype := objtree.Subpath
	switch {
	case subtype(p, "/turf/open/floor/plating/") || subtype(p, "/turf/open/space/"):
		return -10000, true // under everything
	case subtype(p, "/turf/closed/mineral/"):
		return -3000, true // above hidden stuff and plating but below walls
	case subtype(p, "/turf/open/floor/") || subtype(p, "/turf/closed/"):
		return -2000, true // above hidden pipes and wires
	case subtype(p, "/turf/"):
		return -10000, true // under everything
	case subtype(p, "/obj/effect/turf_decal/"):
		return -1000, true // above turfs
	case subtype(p, "/obj/structure/disposalpipe/"):
		return -6000, true
	case subtype(p, "/obj/machinery/atmospherics/pipe/") && !strings.Contains(p, "visible"):
		return -5000, true
	case subtype(p, "/obj/structure/cable/"):
		return -4000, true
	case subtype(p, "/obj/machinery/power/terminal/"):
		return -3500, true
	case subtype(p, "/obj/structure/lattice/"):
		return -8000, true
	case subtype(p, "/obj/machinery/navbeacon/"):
		return -3000, true
	}
	return 0, false
}
