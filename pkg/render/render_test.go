// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/out-of-phaze/SpacemanDMM/pkg/constant"
	"github.com/out-of-phaze/SpacemanDMM/pkg/minimap"
	"github.com/out-of-phaze/SpacemanDMM/pkg/objtree"
)

// testTree builds a small tree covering the branches the built-in passes act on.
func testTree(t *testing.T) *objtree.Tree {
	tree := objtree.New()
	register := func(path string, vars map[string]constant.Constant) {
		typ, err := tree.Register(path)
		require.NoError(t, err)
		for name, value := range vars {
			typ.SetVar(name, value)
		}
	}

	register("/turf/template_noop", nil)
	register("/turf/open/space", map[string]constant.Constant{
		"icon": constant.NewResource("icons/turf/space.dmi"),
	})
	register("/turf/open/space/basic", nil)
	register("/turf/open/floor", map[string]constant.Constant{
		"icon": constant.NewResource("icons/turf/floors.dmi"),
	})
	register("/turf/open/floor/plating", nil)
	register("/turf/closed/wall", nil)
	register("/turf/closed/mineral/iron", nil)
	register("/turf/closed/indestructible/fakeglass", map[string]constant.Constant{
		"icon":       constant.NewResource("icons/turf/walls.dmi"),
		"icon_state": constant.NewString("fakewindows"),
	})
	register("/area/engineering", nil)
	register("/obj/effect/turf_decal/stripes", nil)
	register("/obj/effect/mapping_helpers/airlock", map[string]constant.Constant{
		"invisibility": constant.NewInt(0),
	})
	register("/obj/item/toy/syndicateballoon", map[string]constant.Constant{
		"icon":       constant.NewResource("icons/obj/items_and_weapons.dmi"),
		"icon_state": constant.NewString("syndballoon"),
	})
	register("/obj/item/storage/box", map[string]constant.Constant{
		"icon_state":   constant.NewString("box"),
		"illustration": constant.NewString("writing_syringe"),
	})
	register("/obj/item/storage/box/papersack", nil)
	register("/obj/machinery/firealarm", map[string]constant.Constant{
		"icon_state": constant.NewString("fire0"),
	})
	register("/obj/structure/tank_dispenser", map[string]constant.Constant{
		"icon_state":  constant.NewString("dispenser"),
		"oxygentanks": constant.NewInt(10),
		"plasmatanks": constant.NewInt(10),
	})
	register("/obj/structure/bookcase", map[string]constant.Constant{
		"icon_state": constant.NewString("book-3"),
	})
	register("/obj/structure/cable/yellow", nil)
	register("/obj/structure/lattice", nil)
	register("/obj/structure/disposalpipe/segment", nil)
	register("/obj/machinery/atmospherics/pipe/simple", nil)
	register("/obj/machinery/atmospherics/pipe/simple/visible", nil)
	register("/obj/machinery/power/terminal", nil)
	register("/obj/machinery/navbeacon", nil)

	tree.Freeze()
	return tree
}

func atomOf(t *testing.T, tree *objtree.Tree, path string) *minimap.Atom {
	atom, err := minimap.FromType(tree, path, minimap.Location{X: 1, Y: 1, Z: 1})
	require.NoError(t, err)
	return atom
}

// paths flattens rendered output to type paths, in order.
func paths(rendered []minimap.Rendered) []string {
	out := make([]string, len(rendered))
	for i, r := range rendered {
		out[i] = r.Atom.Path()
	}
	return out
}
