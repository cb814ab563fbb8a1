// Package archive materializes the selected files of an annotated tree
// into one concatenated text blob and classifies the freshness of a
// previously written archive.
package archive

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sourcepacker/sourcepacker/internal/fsops"
	"github.com/sourcepacker/sourcepacker/internal/model"
)

// Archiver builds, writes, and checks text archives.
type Archiver struct {
	fs fsops.FS
}

// New creates a new Archiver.
func New(fs fsops.FS) *Archiver {
	return &Archiver{fs: fs}
}

// Build concatenates the contents of every Selected file in the tree, in
// stored order, into one text blob. Each file is wrapped in START/END
// marker lines carrying its display path: relative to rootForDisplay when
// the file lives under it, absolute otherwise. The first unreadable file
// aborts the whole build and no partial output is returned. An empty
// selection yields an empty string.
func (a *Archiver) Build(nodes []*model.FileNode, rootForDisplay string) (string, error) {
	var b strings.Builder
	if err := a.writeNodes(&b, nodes, rootForDisplay); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (a *Archiver) writeNodes(b *strings.Builder, nodes []*model.FileNode, root string) error {
	for _, node := range nodes {
		if node.IsDir {
			// Directories are recursed into whatever their own state,
			// never emitted themselves.
			if err := a.writeNodes(b, node.Children, root); err != nil {
				return err
			}
			continue
		}
		if node.State != model.StateSelected {
			continue
		}

		content, err := a.fs.ReadFile(node.Path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", node.Path, err)
		}

		display := displayPath(node.Path, root)
		fmt.Fprintf(b, "--- START FILE: %s ---\n", display)
		b.Write(content)
		if len(content) == 0 || content[len(content)-1] != '\n' {
			b.WriteByte('\n')
		}
		fmt.Fprintf(b, "--- END FILE: %s ---\n\n", display)
	}
	return nil
}

// displayPath renders path relative to root when root is a real prefix,
// falling back to the absolute path.
func displayPath(path, root string) string {
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

// Write persists archive text to path atomically.
func (a *Archiver) Write(path, content string) error {
	if err := a.fs.AtomicWrite(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}
	return nil
}
