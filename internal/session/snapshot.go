package session

import (
	"go.uber.org/zap"

	"github.com/sourcepacker/sourcepacker/internal/model"
	"github.com/sourcepacker/sourcepacker/internal/profile"
)

// Snapshot builds a Profile from current session state without mutating
// the session. Every node, directory or file, lands in selected_paths or
// deselected_paths according to its flag; New nodes land in neither.
// FileDetails carries entries only for files that are both Selected and
// already in the token cache: a selected file with no cache entry is
// logged and omitted rather than counted on the spot, so callers wanting
// complete details must recount first.
func (s *Session) Snapshot() *profile.Profile {
	p := profile.New(s.profileName, s.rootPath)
	p.ArchivePath = s.archivePath
	p.ExcludePatterns = append(p.ExcludePatterns, s.excludePatterns...)

	model.Walk(s.nodes, func(node *model.FileNode) {
		switch node.State {
		case model.StateSelected:
			p.SelectedPaths = append(p.SelectedPaths, node.Path)
			if node.IsDir {
				return
			}
			if entry, ok := s.tokenCache[node.Path]; ok {
				p.FileDetails[node.Path] = entry
			} else {
				s.log.Warn("selected file missing from token cache, omitted from snapshot",
					zap.String("path", node.Path))
			}
		case model.StateDeselected:
			p.DeselectedPaths = append(p.DeselectedPaths, node.Path)
		}
	})

	return p
}

// SelectionPaths returns the current selected and deselected path lists,
// bucketing every node by its tri-state flag.
func (s *Session) SelectionPaths() (selected, deselected []string) {
	model.Walk(s.nodes, func(node *model.FileNode) {
		switch node.State {
		case model.StateSelected:
			selected = append(selected, node.Path)
		case model.StateDeselected:
			deselected = append(deselected, node.Path)
		}
	})
	return selected, deselected
}

// ContainsNewFile reports whether the node at path is a New file or, for a
// directory, has a New file anywhere beneath it. A directory with no files
// under it is never flagged, whatever its own state. A missing path is
// logged and reported as false.
func (s *Session) ContainsNewFile(path string) bool {
	node := model.FindByPath(s.nodes, path)
	if node == nil {
		s.log.Warn("path not found for new-file check", zap.String("path", path))
		return false
	}
	return hasNewFile(node)
}

func hasNewFile(node *model.FileNode) bool {
	if !node.IsDir {
		return node.State == model.StateNew
	}
	for _, child := range node.Children {
		if hasNewFile(child) {
			return true
		}
	}
	return false
}
