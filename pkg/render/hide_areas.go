// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package render

import (
	"github.com/out-of-phaze/SpacemanDMM/pkg/objtree"
)

// HideAreas rejects everything under the area branch of the tree.
type HideAreas struct {
	BasePass
}

func (HideAreas) PathFilter(path string) bool {
	return !objtree.Subpath(path, "/area/")
}
