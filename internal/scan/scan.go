// Package scan walks a profile's root folder and produces the ordered file
// tree the session works on.
//
// The walk respects the root .gitignore, always skips VCS and internal
// config directories, and applies the profile's own exclude patterns. Every
// file node carries a content checksum so the token cache can be validated
// against actual content rather than timestamps.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/sourcepacker/sourcepacker/internal/config"
	"github.com/sourcepacker/sourcepacker/internal/hash"
	"github.com/sourcepacker/sourcepacker/internal/model"
)

// Scanner walks a root folder and returns its ordered file tree.
type Scanner interface {
	// Scan returns the immediate children of root as an ordered tree of
	// nodes with absolute paths. Exclude patterns are gitignore-style
	// globs applied on top of the root's .gitignore.
	Scan(root string, excludePatterns []string) ([]*model.FileNode, error)
}

// Walker implements Scanner against the real filesystem.
type Walker struct {
	hasher hash.Hasher
}

// NewWalker creates a Walker that checksums files with the given hasher.
func NewWalker(hasher hash.Hasher) *Walker {
	return &Walker{hasher: hasher}
}

// Scan walks root and returns its children, directories first then
// alphabetical within each level. Any unreadable directory or file fails
// the whole scan.
func (w *Walker) Scan(root string, excludePatterns []string) ([]*model.FileNode, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to stat root %s: %w", absRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", absRoot)
	}

	filter, err := newTreeFilter(absRoot, excludePatterns)
	if err != nil {
		return nil, err
	}

	return w.walkDir(absRoot, filter)
}

func (w *Walker) walkDir(dir string, filter *treeFilter) ([]*model.FileNode, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	nodes := make([]*model.FileNode, 0, len(entries))
	for _, entry := range entries {
		isDir := entry.IsDir()
		if !isDir && !entry.Type().IsRegular() {
			// Symlinks, sockets, devices.
			continue
		}

		childPath := filepath.Join(dir, entry.Name())
		if !filter.include(childPath, isDir) {
			continue
		}

		node := &model.FileNode{
			Path:  childPath,
			Name:  entry.Name(),
			IsDir: isDir,
		}

		if isDir {
			children, err := w.walkDir(childPath, filter)
			if err != nil {
				return nil, err
			}
			node.Children = children
		} else {
			sum, err := w.hasher.HashFile(childPath)
			if err != nil {
				return nil, fmt.Errorf("failed to checksum %s: %w", childPath, err)
			}
			node.Checksum = sum
		}

		nodes = append(nodes, node)
	}

	sortNodes(nodes)
	return nodes, nil
}

// sortNodes orders directories before files, each group alphabetically.
func sortNodes(nodes []*model.FileNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].IsDir != nodes[j].IsDir {
			return nodes[i].IsDir
		}
		return strings.ToLower(nodes[i].Name) < strings.ToLower(nodes[j].Name)
	})
}

// treeFilter decides which entries a scan keeps. It combines the root
// .gitignore, the unconditional skips (.git and the app's own config
// directory), and the profile's exclude patterns. A pattern ending in "/"
// prunes that root-relative directory subtree; a bare pattern is matched
// against both the root-relative path and the entry name.
type treeFilter struct {
	root        string
	gitIgnore   *ignore.GitIgnore
	excludeDirs []string
	excludes    []string
}

func newTreeFilter(root string, excludePatterns []string) (*treeFilter, error) {
	f := &treeFilter{root: root}

	for _, pattern := range excludePatterns {
		if strings.HasSuffix(pattern, "/") {
			f.excludeDirs = append(f.excludeDirs, strings.TrimSuffix(pattern, "/"))
		} else {
			f.excludes = append(f.excludes, pattern)
		}
	}

	gitIgnorePath := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(gitIgnorePath); err == nil {
		gi, err := ignore.CompileIgnoreFile(gitIgnorePath)
		if err != nil {
			return nil, fmt.Errorf("failed to compile %s: %w", gitIgnorePath, err)
		}
		f.gitIgnore = gi
	}

	return f, nil
}

func (f *treeFilter) include(path string, isDir bool) bool {
	name := filepath.Base(path)
	if name == ".git" || name == config.AppDirName {
		return false
	}

	rel, err := filepath.Rel(f.root, path)
	if err != nil {
		return true
	}
	rel = filepath.ToSlash(rel)

	if f.gitIgnore != nil {
		matchPath := rel
		if isDir {
			matchPath += "/"
		}
		if f.gitIgnore.MatchesPath(matchPath) {
			return false
		}
	}

	if isDir {
		for _, dir := range f.excludeDirs {
			if rel == dir || strings.HasPrefix(rel, dir+"/") {
				return false
			}
		}
	}

	return !matchesAnyPattern(f.excludes, rel, name)
}

func matchesAnyPattern(patterns []string, rel, name string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
		// A pattern without a slash matches entries at any depth.
		if !strings.Contains(pattern, "/") {
			if ok, err := doublestar.Match(pattern, name); err == nil && ok {
				return true
			}
		}
	}
	return false
}
