// Copyright 2026, the SpacemanDMM Authors.  All rights reserved.

package render

import (
	"sync"

	"github.com/golang/glog"

	"github.com/out-of-phaze/SpacemanDMM/pkg/minimap"
	"github.com/out-of-phaze/SpacemanDMM/pkg/objtree"
	"github.com/out-of-phaze/SpacemanDMM/pkg/util/contract"
)

// Render runs every enabled pass over the given atoms and returns the final filtered, sprite-annotated
// output in deterministic order.  Stages execute in the fixed sequence path_filter, early_filter, expand,
// adjust_vars, overlays, adjust_sprite, late_filter; within each stage the passes apply in pipeline order.
// An atom discarded by a filter stage never reaches later stages.  Atoms introduced by expand flow through
// every later stage; pseudo-atoms introduced by overlays flow through late_filter only and sit immediately
// before (underlays) or after (overlays) their parent in the output.
//
// The tree must be frozen.  Pass hooks run synchronously and must not retain their arguments.
func Render(tree *objtree.Tree, atoms []*minimap.Atom, passes []Pass) []minimap.Rendered {
	contract.Requiref(tree.Frozen(), "tree", "rendering requires a frozen tree")
	var out []minimap.Rendered
	for _, atom := range atoms {
		out = renderAtom(out, tree, atom, passes)
	}
	return out
}

func renderAtom(out []minimap.Rendered, tree *objtree.Tree, atom *minimap.Atom, passes []Pass) []minimap.Rendered {
	path := atom.Path()
	for _, pass := range passes {
		if !pass.PathFilter(path) {
			glog.V(7).Infof("path_filter dropped %s", path)
			return out
		}
	}
	for _, pass := range passes {
		if !pass.EarlyFilter(atom, tree) {
			glog.V(7).Infof("early_filter dropped %s", path)
			return out
		}
	}

	var expanded []*minimap.Atom
	consumed := false
	for _, pass := range passes {
		if pass.Expand(atom, tree, &expanded) {
			consumed = true
		}
	}
	work := make([]*minimap.Atom, 0, 1+len(expanded))
	if !consumed {
		work = append(work, atom)
	}
	work = append(work, expanded...)

	for _, cur := range work {
		for _, pass := range passes {
			pass.AdjustVars(cur, tree)
		}

		var underlays, overlays []*minimap.Atom
		for _, pass := range passes {
			pass.Overlays(cur, tree, &underlays, &overlays)
		}

		sprite := minimap.SpriteOf(cur, tree)
		for _, pass := range passes {
			pass.AdjustSprite(cur, &sprite, tree)
		}

		for _, under := range underlays {
			if lateKeep(under, tree, passes) {
				out = append(out, minimap.Rendered{Atom: under, Sprite: minimap.SpriteOf(under, tree)})
			}
		}
		if lateKeep(cur, tree, passes) {
			out = append(out, minimap.Rendered{Atom: cur, Sprite: sprite})
		}
		for _, over := range overlays {
			if lateKeep(over, tree, passes) {
				out = append(out, minimap.Rendered{Atom: over, Sprite: minimap.SpriteOf(over, tree)})
			}
		}
	}
	return out
}

func lateKeep(atom *minimap.Atom, tree *objtree.Tree, passes []Pass) bool {
	for _, pass := range passes {
		if !pass.LateFilter(atom, tree) {
			glog.V(7).Infof("late_filter dropped %s", atom.Path())
			return false
		}
	}
	return true
}

// RenderCells renders many map cells in parallel over the shared immutable tree and re-sequences the
// results deterministically by cell index.  The built-in passes are stateless; custom passes supplied here
// must likewise be safe for concurrent use.
func RenderCells(tree *objtree.Tree, cells [][]*minimap.Atom, passes []Pass) [][]minimap.Rendered {
	contract.Requiref(tree.Frozen(), "tree", "rendering requires a frozen tree")
	results := make([][]minimap.Rendered, len(cells))
	var wg sync.WaitGroup
	for i := range cells {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Render(tree, cells[i], passes)
		}(i)
	}
	wg.Wait()
	glog.V(3).Infof("rendered %d cells with %d passes", len(cells), len(passes))
	return results
}
