// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package minimap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/out-of-phaze/SpacemanDMM/pkg/ast"
	"github.com/out-of-phaze/SpacemanDMM/pkg/constant"
	"github.com/out-of-phaze/SpacemanDMM/pkg/objtree"
)

func buildTree(t *testing.T) *objtree.Tree {
	tree := objtree.New()
	bookcase, err := tree.Register("/obj/structure/bookcase")
	require.NoError(t, err)
	bookcase.SetVar("icon", constant.NewResource("icons/obj/library.dmi"))
	bookcase.SetVar("icon_state", constant.NewString("book-3"))
	bookcase.SetVar("layer", constant.NewInt(3))
	tree.Define("OBJ_LAYER", constant.NewInt(3))
	return tree
}

func TestFromType(t *testing.T) {
	tree := buildTree(t)
	atom, err := FromType(tree, "/obj/structure/bookcase", Location{X: 3, Y: 4, Z: 1})
	require.NoError(t, err)
	assert.Equal(t, "/obj/structure/bookcase", atom.Path())
	assert.Equal(t, Location{X: 3, Y: 4, Z: 1}, atom.Loc)

	_, err = FromType(tree, "/obj/missing", Location{})
	assert.Error(t, err)
}

func TestFromPrefab(t *testing.T) {
	tree := buildTree(t)
	path, err := ast.ParseTypePath("/obj/structure/bookcase")
	require.NoError(t, err)
	prefab := ast.NewPrefab(path)
	prefab.Vars.Set("icon_state", ast.TermExpression(&ast.StringTerm{Value: "book-1"}))
	prefab.Vars.Set("layer", ast.TermExpression(&ast.IdentTerm{Name: "OBJ_LAYER"}))

	atom, err := FromPrefab(tree, prefab, Location{X: 1, Y: 1, Z: 1})
	require.NoError(t, err)

	// The override is applied; inherited vars still come from the tree.
	state, err := atom.GetVar("icon_state", tree)
	require.NoError(t, err)
	assert.Equal(t, constant.NewString("book-1"), state)

	icon, err := atom.GetVar("icon", tree)
	require.NoError(t, err)
	assert.Equal(t, constant.NewResource("icons/obj/library.dmi"), icon)

	// Identifier overrides resolve through the tree's defines.
	layer, err := atom.GetVar("layer", tree)
	require.NoError(t, err)
	assert.Equal(t, constant.NewInt(3), layer)
}

func TestFromPrefabUnresolved(t *testing.T) {
	tree := buildTree(t)
	path, err := ast.ParseTypePath("/obj/structure/bookcase")
	require.NoError(t, err)
	prefab := ast.NewPrefab(path)
	prefab.Vars.Set("icon_state", ast.TermExpression(&ast.IdentTerm{Name: "NOT_DEFINED"}))

	_, err = FromPrefab(tree, prefab, Location{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT_DEFINED")
}

func TestGetVarUndefined(t *testing.T) {
	tree := buildTree(t)
	atom, err := FromType(tree, "/obj/structure/bookcase", Location{})
	require.NoError(t, err)

	_, err = atom.GetVar("illustration", tree)
	require.Error(t, err)
	assert.True(t, objtree.IsUndefinedVariable(err))

	// GetVarOr supplies the local fallback the tree refuses to.
	v := atom.GetVarOr("illustration", tree, constant.Null())
	assert.True(t, v.IsNull())
}

func TestCloneIndependence(t *testing.T) {
	tree := buildTree(t)
	atom, err := FromType(tree, "/obj/structure/bookcase", Location{})
	require.NoError(t, err)
	atom.SetVar("dir", constant.NewInt(4))

	clone := atom.Clone()
	clone.SetVar("dir", constant.NewInt(8))
	clone.SetVar("pixel_x", constant.NewInt(2))

	v, err := atom.GetVar("dir", tree)
	require.NoError(t, err)
	assert.Equal(t, constant.NewInt(4), v)
	_, err = atom.GetVar("pixel_x", tree)
	assert.Error(t, err)
}

func TestIstype(t *testing.T) {
	tree := buildTree(t)
	atom, err := FromType(tree, "/obj/structure/bookcase", Location{})
	require.NoError(t, err)
	assert.True(t, atom.Istype("/obj/structure/bookcase/"))
	assert.True(t, atom.Istype("/obj/structure/"))
	assert.True(t, atom.Istype("/obj/"))
	assert.False(t, atom.Istype("/turf/"))
}

func TestSpriteOf(t *testing.T) {
	tree := buildTree(t)
	atom, err := FromType(tree, "/obj/structure/bookcase", Location{})
	require.NoError(t, err)

	sprite := SpriteOf(atom, tree)
	assert.Equal(t, "icons/obj/library.dmi", sprite.Icon)
	assert.Equal(t, "book-3", sprite.IconState)
	assert.Equal(t, 3, sprite.Layer)
	assert.Equal(t, 0, sprite.Plane)

	// Overrides flow into the sprite.
	atom.SetVar("icon_state", constant.NewString("book-0"))
	atom.SetVar("plane", constant.NewInt(-7))
	sprite = SpriteOf(atom, tree)
	assert.Equal(t, "book-0", sprite.IconState)
	assert.Equal(t, -7, sprite.Plane)
}
