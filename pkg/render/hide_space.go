// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package render

import (
	"strings"

	"github.com/golang/glog"

	"github.com/out-of-phaze/SpacemanDMM/pkg/minimap"
	"github.com/out-of-phaze/SpacemanDMM/pkg/objtree"
)

const (
	templateNoopType = "/turf/template_noop"
	openSpaceType    = "/turf/open/space"
)

// HideSpace replaces placeholder turfs with the canonical open-space turf and discards every other
// open-space variant, so placeholders and space noise both render as transparency while the single
// canonical copy survives.
type HideSpace struct {
	BasePass
}

func (HideSpace) Expand(atom *minimap.Atom, tree *objtree.Tree, output *[]*minimap.Atom) bool {
	if !atom.Istype(templateNoopType + "/") {
		return false
	}
	space, err := minimap.FromType(tree, openSpaceType, atom.Loc)
	if err != nil {
		// The tree has no open-space type; consume the placeholder so it renders as nothing.
		glog.V(1).Infof("hide-space: %v", err)
		return true
	}
	*output = append(*output, space)
	return true
}

func (HideSpace) LateFilter(atom *minimap.Atom, tree *objtree.Tree) bool {
	// Proper descendants only: the canonical open-space atom produced by Expand stays.
	return !strings.HasPrefix(atom.Path(), openSpaceType+"/")
}
