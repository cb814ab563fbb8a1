package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sourcepacker/sourcepacker/internal/archive"
	"github.com/sourcepacker/sourcepacker/internal/clock"
	"github.com/sourcepacker/sourcepacker/internal/fsops"
	"github.com/sourcepacker/sourcepacker/internal/hash"
	"github.com/sourcepacker/sourcepacker/internal/profile"
	"github.com/sourcepacker/sourcepacker/internal/scan"
	"github.com/sourcepacker/sourcepacker/internal/session"
	"github.com/sourcepacker/sourcepacker/internal/tokencount"
)

// stack wires the real scanner, hasher, profile store, and archiver against
// temp directories. Only the token counter is substituted: the tiktoken
// tokenizer fetches model data on first use.
type stack struct {
	fs       fsops.FS
	store    profile.Store
	archiver *archive.Archiver
	root     string
}

func newStack(t *testing.T) *stack {
	t.Helper()
	fs := fsops.NewRealFS()
	return &stack{
		fs:       fs,
		store:    profile.NewFileStore(fs, filepath.Join(t.TempDir(), "profiles"), &clock.RealClock{}),
		archiver: archive.New(fs),
		root:     t.TempDir(),
	}
}

// newSession builds a fresh session with its own fake counter, the way the
// CLI builds one per invocation.
func (s *stack) newSession() (*session.Session, *tokencount.FakeCounter) {
	counter := &tokencount.FakeCounter{}
	sess := session.New(scan.NewWalker(hash.NewSHA256Hasher()), counter, s.fs)
	return sess, counter
}

func (s *stack) writeFile(t *testing.T, rel, content string) string {
	t.Helper()
	path := filepath.Join(s.root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func (s *stack) path(rel string) string {
	return filepath.Join(s.root, rel)
}
