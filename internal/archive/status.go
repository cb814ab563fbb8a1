package archive

import (
	"fmt"
	"os"
	"time"

	"github.com/sourcepacker/sourcepacker/internal/model"
)

// Status classifies the freshness of a generated archive.
type Status int

const (
	// StatusUpToDate means the archive is at least as new as every
	// selected file.
	StatusUpToDate Status = iota

	// StatusOutdated means at least one selected file changed after the
	// archive was written.
	StatusOutdated

	// StatusNotYetGenerated means no archive path is configured yet.
	StatusNotYetGenerated

	// StatusArchiveMissing means the configured archive file is absent.
	StatusArchiveMissing

	// StatusNoFilesSelected means there is nothing to compare against.
	StatusNoFilesSelected

	// StatusErrorChecking means an I/O problem prevented the comparison.
	StatusErrorChecking
)

// String returns the human-readable status text.
func (s Status) String() string {
	switch s {
	case StatusUpToDate:
		return "up to date"
	case StatusOutdated:
		return "outdated"
	case StatusNotYetGenerated:
		return "not yet generated"
	case StatusArchiveMissing:
		return "archive file missing"
	case StatusNoFilesSelected:
		return "no files selected"
	case StatusErrorChecking:
		return "error checking"
	default:
		return "unknown"
	}
}

// Check classifies the freshness of the archive at archivePath against the
// Selected files in nodes. The returned error is non-nil only when the
// status is StatusErrorChecking and carries the underlying I/O error. The
// status is advisory; it never blocks generation.
func (a *Archiver) Check(archivePath string, nodes []*model.FileNode) (Status, error) {
	if archivePath == "" {
		return StatusNotYetGenerated, nil
	}

	info, err := a.fs.Stat(archivePath)
	if err != nil {
		if os.IsNotExist(err) {
			return StatusArchiveMissing, nil
		}
		return StatusErrorChecking, fmt.Errorf("failed to stat archive %s: %w", archivePath, err)
	}
	archiveTime := info.ModTime()

	newest, found, err := a.newestSelected(nodes)
	if err != nil {
		return StatusErrorChecking, err
	}
	if !found {
		return StatusNoFilesSelected, nil
	}

	if newest.After(archiveTime) {
		return StatusOutdated, nil
	}
	return StatusUpToDate, nil
}

// newestSelected returns the maximum modification time among Selected
// files and whether any selected file exists at all. The first stat error
// short-circuits the walk.
func (a *Archiver) newestSelected(nodes []*model.FileNode) (time.Time, bool, error) {
	var newest time.Time
	found := false

	for _, node := range nodes {
		if node.IsDir {
			t, ok, err := a.newestSelected(node.Children)
			if err != nil {
				return time.Time{}, false, err
			}
			if ok {
				found = true
				if t.After(newest) {
					newest = t
				}
			}
			continue
		}
		if node.State != model.StateSelected {
			continue
		}

		info, err := a.fs.Stat(node.Path)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("failed to stat %s: %w", node.Path, err)
		}
		found = true
		if info.ModTime().After(newest) {
			newest = info.ModTime()
		}
	}

	return newest, found, nil
}
