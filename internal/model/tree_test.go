package model

import (
	"testing"
)

// sampleTree builds a small two-level tree:
//
//	/root/src         (dir)
//	/root/src/main.go (file)
//	/root/src/util.go (file)
//	/root/readme.md   (file)
func sampleTree() []*FileNode {
	return []*FileNode{
		{
			Path:  "/root/src",
			Name:  "src",
			IsDir: true,
			Children: []*FileNode{
				{Path: "/root/src/main.go", Name: "main.go", Checksum: "aaa"},
				{Path: "/root/src/util.go", Name: "util.go", Checksum: "bbb"},
			},
		},
		{Path: "/root/readme.md", Name: "readme.md", Checksum: "ccc"},
	}
}

func TestFindByPath(t *testing.T) {
	nodes := sampleTree()

	t.Run("finds root-level node", func(t *testing.T) {
		node := FindByPath(nodes, "/root/readme.md")
		if node == nil {
			t.Fatal("FindByPath returned nil for existing path")
		}
		if node.Name != "readme.md" {
			t.Errorf("found node name = %q, want %q", node.Name, "readme.md")
		}
	})

	t.Run("finds nested node", func(t *testing.T) {
		node := FindByPath(nodes, "/root/src/util.go")
		if node == nil {
			t.Fatal("FindByPath returned nil for nested path")
		}
		if node.Checksum != "bbb" {
			t.Errorf("found node checksum = %q, want %q", node.Checksum, "bbb")
		}
	})

	t.Run("finds directory node", func(t *testing.T) {
		node := FindByPath(nodes, "/root/src")
		if node == nil {
			t.Fatal("FindByPath returned nil for directory path")
		}
		if !node.IsDir {
			t.Error("found node should be a directory")
		}
	})

	t.Run("returns nil for unknown path", func(t *testing.T) {
		if node := FindByPath(nodes, "/root/missing.go"); node != nil {
			t.Errorf("FindByPath = %v, want nil", node)
		}
	})

	t.Run("returns nil for empty tree", func(t *testing.T) {
		if node := FindByPath(nil, "/root/src"); node != nil {
			t.Errorf("FindByPath on empty tree = %v, want nil", node)
		}
	})
}

func TestWalk_PreOrder(t *testing.T) {
	nodes := sampleTree()

	var visited []string
	Walk(nodes, func(n *FileNode) {
		visited = append(visited, n.Path)
	})

	want := []string{
		"/root/src",
		"/root/src/main.go",
		"/root/src/util.go",
		"/root/readme.md",
	}
	if len(visited) != len(want) {
		t.Fatalf("Walk visited %d nodes, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visit order[%d] = %q, want %q", i, visited[i], want[i])
		}
	}
}

func TestCountNodes(t *testing.T) {
	if got := CountNodes(sampleTree()); got != 4 {
		t.Errorf("CountNodes = %d, want 4", got)
	}
	if got := CountNodes(nil); got != 0 {
		t.Errorf("CountNodes(nil) = %d, want 0", got)
	}
}

func TestSelectionState_String(t *testing.T) {
	cases := []struct {
		state SelectionState
		want  string
	}{
		{StateNew, "new"},
		{StateSelected, "selected"},
		{StateDeselected, "deselected"},
		{SelectionState(42), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.state.String(); got != tc.want {
			t.Errorf("SelectionState(%d).String() = %q, want %q", int(tc.state), got, tc.want)
		}
	}
}

func TestSelectionState_ZeroValueIsNew(t *testing.T) {
	var node FileNode
	if node.State != StateNew {
		t.Errorf("zero-value node state = %v, want StateNew", node.State)
	}
}
