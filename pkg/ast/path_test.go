// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPath(t *testing.T, s string) TypePath {
	path, err := ParseTypePath(s)
	require.NoError(t, err)
	return path
}

func TestParseTypePath(t *testing.T) {
	path := mustPath(t, "/obj/structure/bookcase")
	require.Len(t, path, 3)
	assert.Equal(t, PathSeg{Op: Slash, Name: "obj"}, path[0])
	assert.Equal(t, PathSeg{Op: Slash, Name: "structure"}, path[1])
	assert.Equal(t, PathSeg{Op: Slash, Name: "bookcase"}, path[2])
	assert.Equal(t, "/obj/structure/bookcase", path.String())

	// Zero segments is the root type.
	assert.Empty(t, mustPath(t, ""))
	assert.Empty(t, mustPath(t, "/"))
	assert.True(t, mustPath(t, "/").IsRoot())
	assert.Equal(t, "/", TypePath(nil).String())

	// A leading bare name continues with `/`.
	rel := mustPath(t, "obj/item")
	require.Len(t, rel, 2)
	assert.Equal(t, PathSeg{Op: Slash, Name: "obj"}, rel[0])

	// The scoped-access operators parse distinctly.
	scoped := mustPath(t, "/datum.proc:name")
	require.Len(t, scoped, 3)
	assert.Equal(t, Dot, scoped[1].Op)
	assert.Equal(t, Colon, scoped[2].Op)
	assert.Equal(t, "/datum.proc:name", scoped.String())

	_, err := ParseTypePath("/obj//item")
	assert.Error(t, err)
}

func TestSubtypeReflexive(t *testing.T) {
	for _, s := range []string{"/", "/obj", "/obj/structure/cable", "/turf/open/space"} {
		path := mustPath(t, s)
		assert.True(t, path.IsSubtypeOf(path), "A.is_subtype(A) must hold for %s", s)
	}
}

func TestSubtypeTransitive(t *testing.T) {
	a := mustPath(t, "/obj/machinery/atmospherics/pipe")
	b := mustPath(t, "/obj/machinery/atmospherics")
	c := mustPath(t, "/obj/machinery")
	assert.True(t, a.IsSubtypeOf(b))
	assert.True(t, b.IsSubtypeOf(c))
	assert.True(t, a.IsSubtypeOf(c))
}

func TestSubtypeSegmentsNotSubstrings(t *testing.T) {
	assert.False(t, mustPath(t, "/obj/structures").IsSubtypeOf(mustPath(t, "/obj/structure")))
	assert.False(t, mustPath(t, "/turf").IsSubtypeOf(mustPath(t, "/turf/open")))
	assert.True(t, mustPath(t, "/obj/structure/cable").IsSubtypeOf(mustPath(t, "/obj/structure")))
}

func TestSubtypeOfRoot(t *testing.T) {
	root := TypePath(nil)
	assert.True(t, mustPath(t, "/area/engineering").IsSubtypeOf(root))
	assert.True(t, root.IsSubtypeOf(root))
}

func TestPathParentChild(t *testing.T) {
	p := mustPath(t, "/obj/item")
	assert.Equal(t, "/obj", p.Parent().String())
	assert.Equal(t, "/obj/item/toy", p.Child("toy").String())
	// Child must not alias the receiver's backing array.
	a := p.Child("weapon")
	b := p.Child("toy")
	assert.Equal(t, "/obj/item/weapon", a.String())
	assert.Equal(t, "/obj/item/toy", b.String())
}
