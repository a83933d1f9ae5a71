// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package minimap

import (
	"github.com/out-of-phaze/SpacemanDMM/pkg/constant"
	"github.com/out-of-phaze/SpacemanDMM/pkg/objtree"
)

// Sprite is the rendering intent attached to an atom: which icon and state to draw it with and where it
// sits in the plane/layer stack.  Compositing into pixels belongs to an external collaborator; the
// pipeline only fills these fields in.
type Sprite struct {
	Icon      string
	IconState string
	Plane     int
	Layer     int
}

// SpriteOf seeds a sprite from an atom's resolved icon, icon_state, plane, and layer variables, with empty
// and zero defaults for anything undefined.
func SpriteOf(atom *Atom, tree *objtree.Tree) Sprite {
	sprite := Sprite{}
	if icon := atom.GetVarOr("icon", tree, constant.Null()); icon.IsResource() {
		sprite.Icon = icon.ResourceValue()
	} else if icon.IsString() {
		sprite.Icon = icon.StringValue()
	}
	if state := atom.GetVarOr("icon_state", tree, constant.Null()); state.IsString() {
		sprite.IconState = state.StringValue()
	}
	if plane, ok := atom.GetVarOr("plane", tree, constant.Null()).ToInt(); ok {
		sprite.Plane = plane
	}
	if layer, ok := atom.GetVarOr("layer", tree, constant.Null()).ToInt(); ok {
		sprite.Layer = layer
	}
	return sprite
}

// Rendered is one element of the pipeline's output: an atom paired with its final sprite.
type Rendered struct {
	Atom   *Atom
	Sprite Sprite
}
