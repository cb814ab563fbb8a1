// Package selection stamps tri-state selection flags onto a file tree.
//
// The two operations are pure tree transforms with no I/O. Apply performs
// the full reconciliation of a profile's path sets against a fresh scan;
// SetSubtree implements the single-gesture folder toggle.
package selection

import (
	"github.com/sourcepacker/sourcepacker/internal/model"
)

// Apply stamps every node's selection state from the two path sets,
// overwriting whatever state the nodes carried before. A path present in
// selected wins over deselected; a path in neither set becomes New, which
// is how files that appeared on disk since the last save get flagged.
func Apply(nodes []*model.FileNode, selected, deselected map[string]struct{}) {
	for _, node := range nodes {
		if _, ok := selected[node.Path]; ok {
			node.State = model.StateSelected
		} else if _, ok := deselected[node.Path]; ok {
			node.State = model.StateDeselected
		} else {
			node.State = model.StateNew
		}
		Apply(node.Children, selected, deselected)
	}
}

// SetSubtree assigns state to the node and, when the node is a directory,
// to every descendant unconditionally. On a file it sets just that node.
func SetSubtree(node *model.FileNode, state model.SelectionState) {
	node.State = state
	if !node.IsDir {
		return
	}
	for _, child := range node.Children {
		SetSubtree(child, state)
	}
}

// PathSet converts a slice of paths into the set form Apply consumes.
func PathSet(paths []string) map[string]struct{} {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return set
}
