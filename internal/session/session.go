// Package session holds the live state of one open profile.
//
// The Session is the single owner of the annotated file tree: it bridges
// persisted profiles and the scanned directory, applies the stored
// selection onto fresh scans, maintains the checksum-keyed token-count
// cache, and produces profile snapshots for saving. All operations are
// synchronous and run to completion; callers serialize access themselves.
package session

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sourcepacker/sourcepacker/internal/fsops"
	"github.com/sourcepacker/sourcepacker/internal/logging"
	"github.com/sourcepacker/sourcepacker/internal/model"
	"github.com/sourcepacker/sourcepacker/internal/profile"
	"github.com/sourcepacker/sourcepacker/internal/scan"
	"github.com/sourcepacker/sourcepacker/internal/tokencount"
)

// Session owns the live annotated tree and its token-count cache.
type Session struct {
	scanner scan.Scanner
	counter tokencount.Counter
	fs      fsops.FS
	log     *zap.Logger

	profileName     string
	archivePath     string
	rootPath        string
	excludePatterns []string
	nodes           []*model.FileNode
	totalTokens     int
	tokenCache      map[string]profile.FileTokenDetails
}

// New creates an empty session. No profile is loaded and the scan root is
// the current directory until LoadProfile succeeds.
func New(scanner scan.Scanner, counter tokencount.Counter, fs fsops.FS) *Session {
	return &Session{
		scanner:    scanner,
		counter:    counter,
		fs:         fs,
		log:        logging.L().With(zap.String("session_id", uuid.New().String())),
		rootPath:   ".",
		tokenCache: make(map[string]profile.FileTokenDetails),
	}
}

// Clear resets the session to its initial empty state: no profile, no
// tree, scan root back to the current directory, empty caches.
func (s *Session) Clear() {
	s.profileName = ""
	s.archivePath = ""
	s.rootPath = "."
	s.excludePatterns = nil
	s.nodes = nil
	s.totalTokens = 0
	s.tokenCache = make(map[string]profile.FileTokenDetails)
}

// ProfileName returns the active profile's name, or "" if none is loaded.
func (s *Session) ProfileName() string {
	return s.profileName
}

// RootPath returns the directory the current tree was scanned from.
func (s *Session) RootPath() string {
	return s.rootPath
}

// ArchivePath returns the archive output path for the active profile.
func (s *Session) ArchivePath() string {
	return s.archivePath
}

// SetArchivePath changes the archive output path for this session. The
// change reaches the stored profile on the next snapshot save.
func (s *Session) SetArchivePath(path string) {
	s.archivePath = path
}

// Nodes returns the live annotated tree. Callers must treat it as
// read-only; all mutation goes through session operations.
func (s *Session) Nodes() []*model.FileNode {
	return s.nodes
}

// TotalTokens returns the last computed token total across Selected files.
func (s *Session) TotalTokens() int {
	return s.totalTokens
}
