package archive

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sourcepacker/sourcepacker/internal/fsops"
	"github.com/sourcepacker/sourcepacker/internal/model"
)

// --- status-specific mocks ---

type statusFileInfo struct {
	modTime time.Time
}

func (i statusFileInfo) Name() string       { return "fake" }
func (i statusFileInfo) Size() int64        { return 0 }
func (i statusFileInfo) Mode() fs.FileMode  { return 0644 }
func (i statusFileInfo) ModTime() time.Time { return i.modTime }
func (i statusFileInfo) IsDir() bool        { return false }
func (i statusFileInfo) Sys() any           { return nil }

type statusFakeFS struct {
	times map[string]time.Time
	errs  map[string]error
}

func newStatusFakeFS() *statusFakeFS {
	return &statusFakeFS{times: map[string]time.Time{}, errs: map[string]error{}}
}

func (f *statusFakeFS) ReadFile(path string) ([]byte, error) { return nil, os.ErrNotExist }
func (f *statusFakeFS) Exists(path string) (bool, error)     { return false, nil }
func (f *statusFakeFS) Remove(path string) error             { return nil }
func (f *statusFakeFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	return nil
}

func (f *statusFakeFS) Stat(path string) (os.FileInfo, error) {
	if err, ok := f.errs[path]; ok {
		return nil, err
	}
	if mt, ok := f.times[path]; ok {
		return statusFileInfo{modTime: mt}, nil
	}
	return nil, os.ErrNotExist
}

func TestArchiver_Check_Lifecycle(t *testing.T) {
	root := t.TempDir()
	srcPath := filepath.Join(root, "main.go")
	archivePath := filepath.Join(root, "out.txt")
	writeArchiveTestFile(t, srcPath, "package main\n")

	src := selectedFile(srcPath)
	a := New(fsops.NewRealFS())

	status, err := a.Check("", []*model.FileNode{src})
	if err != nil || status != StatusNotYetGenerated {
		t.Errorf("no archive path: status = %v, err = %v, want %v", status, err, StatusNotYetGenerated)
	}

	status, err = a.Check(archivePath, []*model.FileNode{src})
	if err != nil || status != StatusArchiveMissing {
		t.Errorf("missing archive: status = %v, err = %v, want %v", status, err, StatusArchiveMissing)
	}

	writeArchiveTestFile(t, archivePath, "archive\n")

	status, err = a.Check(archivePath, []*model.FileNode{nodeWithState(srcPath, model.StateNew)})
	if err != nil || status != StatusNoFilesSelected {
		t.Errorf("nothing selected: status = %v, err = %v, want %v", status, err, StatusNoFilesSelected)
	}

	base := time.Now().Add(-time.Hour)
	if err := os.Chtimes(srcPath, base, base); err != nil {
		t.Fatalf("failed to set source mtime: %v", err)
	}
	if err := os.Chtimes(archivePath, base.Add(time.Minute), base.Add(time.Minute)); err != nil {
		t.Fatalf("failed to set archive mtime: %v", err)
	}

	status, err = a.Check(archivePath, []*model.FileNode{src})
	if err != nil || status != StatusUpToDate {
		t.Errorf("archive newer: status = %v, err = %v, want %v", status, err, StatusUpToDate)
	}

	if err := os.Chtimes(srcPath, base.Add(2*time.Minute), base.Add(2*time.Minute)); err != nil {
		t.Fatalf("failed to touch source: %v", err)
	}

	status, err = a.Check(archivePath, []*model.FileNode{src})
	if err != nil || status != StatusOutdated {
		t.Errorf("source touched: status = %v, err = %v, want %v", status, err, StatusOutdated)
	}
}

func TestArchiver_Check_EqualTimesUpToDate(t *testing.T) {
	fakeFS := newStatusFakeFS()
	now := time.Now()
	fakeFS.times["/out.txt"] = now
	fakeFS.times["/proj/main.go"] = now

	a := New(fakeFS)
	status, err := a.Check("/out.txt", []*model.FileNode{selectedFile("/proj/main.go")})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if status != StatusUpToDate {
		t.Errorf("status = %v, want %v", status, StatusUpToDate)
	}
}

func TestArchiver_Check_NewestSelectedWins(t *testing.T) {
	fakeFS := newStatusFakeFS()
	base := time.Now()
	fakeFS.times["/out.txt"] = base
	fakeFS.times["/proj/old.go"] = base.Add(-time.Hour)
	fakeFS.times["/proj/sub/new.go"] = base.Add(time.Hour)

	sub := &model.FileNode{
		Path:     "/proj/sub",
		Name:     "sub",
		IsDir:    true,
		State:    model.StateDeselected,
		Children: []*model.FileNode{selectedFile("/proj/sub/new.go")},
	}
	nodes := []*model.FileNode{selectedFile("/proj/old.go"), sub}

	a := New(fakeFS)
	status, err := a.Check("/out.txt", nodes)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if status != StatusOutdated {
		t.Errorf("status = %v, want %v", status, StatusOutdated)
	}
}

func TestArchiver_Check_ArchiveStatError(t *testing.T) {
	fakeFS := newStatusFakeFS()
	statErr := errors.New("permission denied")
	fakeFS.errs["/out.txt"] = statErr

	a := New(fakeFS)
	status, err := a.Check("/out.txt", []*model.FileNode{selectedFile("/proj/main.go")})
	if status != StatusErrorChecking {
		t.Errorf("status = %v, want %v", status, StatusErrorChecking)
	}
	if !errors.Is(err, statErr) {
		t.Errorf("expected wrapped stat error, got %v", err)
	}
}

func TestArchiver_Check_SelectedStatErrorBeforeSelectionCheck(t *testing.T) {
	fakeFS := newStatusFakeFS()
	fakeFS.times["/out.txt"] = time.Now()
	statErr := errors.New("device offline")
	fakeFS.errs["/proj/main.go"] = statErr

	// The only selected file fails to stat. That is an I/O problem, not an
	// empty selection.
	a := New(fakeFS)
	status, err := a.Check("/out.txt", []*model.FileNode{selectedFile("/proj/main.go")})
	if status != StatusErrorChecking {
		t.Errorf("status = %v, want %v", status, StatusErrorChecking)
	}
	if !errors.Is(err, statErr) {
		t.Errorf("expected wrapped stat error, got %v", err)
	}
}

func TestStatus_String(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusUpToDate, "up to date"},
		{StatusOutdated, "outdated"},
		{StatusNotYetGenerated, "not yet generated"},
		{StatusArchiveMissing, "archive file missing"},
		{StatusNoFilesSelected, "no files selected"},
		{StatusErrorChecking, "error checking"},
		{Status(99), "unknown"},
	}

	for _, tc := range cases {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
	}
}
