package session

import (
	"testing"

	"github.com/sourcepacker/sourcepacker/internal/model"
)

// newSnapshotSession builds a session with every tri-state represented:
//
//	/proj/src          dir, Selected
//	/proj/src/main.go  file, Selected, cached
//	/proj/src/new.go   file, New
//	/proj/docs         dir, Deselected
//	/proj/docs/old.md  file, Deselected
//	/proj/wip.go       file, Selected, NOT cached
func newSnapshotSession(t *testing.T) *Session {
	t.Helper()
	s, _ := newTestSession(&fakeScanner{}, newFakeFS())
	src := dirNode("/proj/src",
		fileNode("/proj/src/main.go", "c-main"),
		fileNode("/proj/src/new.go", "c-new"),
	)
	docs := dirNode("/proj/docs",
		fileNode("/proj/docs/old.md", "c-old"),
	)
	s.nodes = []*model.FileNode{src, docs, fileNode("/proj/wip.go", "c-wip")}

	src.State = model.StateSelected
	src.Children[0].State = model.StateSelected
	docs.State = model.StateDeselected
	docs.Children[0].State = model.StateDeselected
	s.nodes[2].State = model.StateSelected

	s.profileName = "demo"
	s.rootPath = "/proj"
	s.archivePath = "/tmp/demo.txt"
	s.excludePatterns = []string{"*.log"}
	s.tokenCache["/proj/src/main.go"] = cacheEntry("c-main", 12)
	s.tokenCache["/proj/docs/old.md"] = cacheEntry("c-old", 34)
	return s
}

func contains(paths []string, want string) bool {
	for _, p := range paths {
		if p == want {
			return true
		}
	}
	return false
}

func TestSnapshot_BucketsEveryNodeByState(t *testing.T) {
	s := newSnapshotSession(t)

	p := s.Snapshot()

	if p.Name != "demo" {
		t.Errorf("Name = %q, want %q", p.Name, "demo")
	}
	if p.RootFolder != "/proj" {
		t.Errorf("RootFolder = %q, want %q", p.RootFolder, "/proj")
	}
	if p.ArchivePath != "/tmp/demo.txt" {
		t.Errorf("ArchivePath = %q, want %q", p.ArchivePath, "/tmp/demo.txt")
	}
	if len(p.ExcludePatterns) != 1 || p.ExcludePatterns[0] != "*.log" {
		t.Errorf("ExcludePatterns = %v, want [*.log]", p.ExcludePatterns)
	}

	wantSelected := []string{"/proj/src", "/proj/src/main.go", "/proj/wip.go"}
	if len(p.SelectedPaths) != len(wantSelected) {
		t.Fatalf("SelectedPaths = %v, want %v", p.SelectedPaths, wantSelected)
	}
	for _, path := range wantSelected {
		if !contains(p.SelectedPaths, path) {
			t.Errorf("SelectedPaths missing %s", path)
		}
	}

	wantDeselected := []string{"/proj/docs", "/proj/docs/old.md"}
	if len(p.DeselectedPaths) != len(wantDeselected) {
		t.Fatalf("DeselectedPaths = %v, want %v", p.DeselectedPaths, wantDeselected)
	}

	// New nodes land in neither list.
	if contains(p.SelectedPaths, "/proj/src/new.go") || contains(p.DeselectedPaths, "/proj/src/new.go") {
		t.Error("New node must not appear in either path list")
	}
}

func TestSnapshot_FileDetailsOnlyForSelectedAndCached(t *testing.T) {
	s := newSnapshotSession(t)

	p := s.Snapshot()

	if len(p.FileDetails) != 1 {
		t.Fatalf("FileDetails has %d entries %v, want 1", len(p.FileDetails), p.FileDetails)
	}
	entry, ok := p.FileDetails["/proj/src/main.go"]
	if !ok {
		t.Fatal("FileDetails missing selected+cached file")
	}
	if entry.Checksum != "c-main" || entry.TokenCount != 12 {
		t.Errorf("entry = %+v, want {c-main 12}", entry)
	}

	// Selected but uncached: omitted.
	if _, ok := p.FileDetails["/proj/wip.go"]; ok {
		t.Error("uncached selected file must be omitted from FileDetails")
	}
	// Cached but deselected: omitted.
	if _, ok := p.FileDetails["/proj/docs/old.md"]; ok {
		t.Error("deselected file must be omitted from FileDetails")
	}
}

func TestSnapshot_DoesNotMutateSession(t *testing.T) {
	s := newSnapshotSession(t)

	first := s.Snapshot()
	second := s.Snapshot()

	if len(first.SelectedPaths) != len(second.SelectedPaths) {
		t.Error("repeated snapshots differ")
	}
	if s.ProfileName() != "demo" || s.RootPath() != "/proj" {
		t.Error("snapshot mutated session fields")
	}
	if len(s.tokenCache) != 2 {
		t.Errorf("snapshot mutated cache: %d entries, want 2", len(s.tokenCache))
	}
}

func TestSelectionPaths(t *testing.T) {
	s := newSnapshotSession(t)

	selected, deselected := s.SelectionPaths()

	if len(selected) != 3 {
		t.Errorf("selected = %v, want 3 paths", selected)
	}
	if len(deselected) != 2 {
		t.Errorf("deselected = %v, want 2 paths", deselected)
	}
}

func TestContainsNewFile(t *testing.T) {
	s, _ := newTestSession(&fakeScanner{}, newFakeFS())
	// One Selected file and one New file at depth 2.
	inner := dirNode("/proj/a/b",
		fileNode("/proj/a/b/selected.txt", "c1"),
		fileNode("/proj/a/b/fresh.txt", "c2"),
	)
	outer := dirNode("/proj/a", inner)
	emptyNewDir := dirNode("/proj/empty")
	s.nodes = []*model.FileNode{outer, emptyNewDir}
	inner.Children[0].State = model.StateSelected

	tests := []struct {
		name string
		path string
		want bool
	}{
		{
			name: "ancestor directory",
			path: "/proj/a",
			want: true,
		},
		{
			name: "parent directory",
			path: "/proj/a/b",
			want: true,
		},
		{
			name: "selected file itself",
			path: "/proj/a/b/selected.txt",
			want: false,
		},
		{
			name: "new file itself",
			path: "/proj/a/b/fresh.txt",
			want: true,
		},
		{
			name: "childless directory in New state",
			path: "/proj/empty",
			want: false,
		},
		{
			name: "missing path",
			path: "/proj/nope",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ContainsNewFile(tt.path); got != tt.want {
				t.Errorf("ContainsNewFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
