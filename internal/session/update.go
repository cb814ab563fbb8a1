package session

import (
	"go.uber.org/zap"

	"github.com/sourcepacker/sourcepacker/internal/model"
	"github.com/sourcepacker/sourcepacker/internal/selection"
)

// NodeChange is one (path, state) pair affected by a selection update.
type NodeChange struct {
	Path  string
	State model.SelectionState
}

// UpdateNodeState finds the node at path, applies newState with folder
// cascade semantics, and returns the affected nodes in pre-order: the
// target itself plus, for a directory, every descendant. A missing path
// logs an error and returns nil without mutating the tree.
func (s *Session) UpdateNodeState(path string, newState model.SelectionState) []NodeChange {
	node := model.FindByPath(s.nodes, path)
	if node == nil {
		s.log.Error("node not found for state update", zap.String("path", path))
		return nil
	}

	selection.SetSubtree(node, newState)

	var changes []NodeChange
	collectChanges(node, &changes)
	return changes
}

func collectChanges(node *model.FileNode, out *[]NodeChange) {
	*out = append(*out, NodeChange{Path: node.Path, State: node.State})
	for _, child := range node.Children {
		collectChanges(child, out)
	}
}
