package model

// FindByPath returns the node with the given path, searching the tree
// depth-first, or nil if no node matches. Paths are compared exactly.
func FindByPath(nodes []*FileNode, path string) *FileNode {
	for _, node := range nodes {
		if node.Path == path {
			return node
		}
		if found := FindByPath(node.Children, path); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits every node in pre-order, depth-first.
func Walk(nodes []*FileNode, visit func(*FileNode)) {
	for _, node := range nodes {
		visit(node)
		Walk(node.Children, visit)
	}
}

// CountNodes returns the total number of nodes in the tree.
func CountNodes(nodes []*FileNode) int {
	count := 0
	Walk(nodes, func(*FileNode) {
		count++
	})
	return count
}
