// Package profile defines the persisted selection profile and its store.
//
// A profile is the durable record of one packing configuration: the root
// folder, which of its files the user selected or deselected, the archive
// output path, cached per-file token details, and any extra exclude
// patterns for the scan. Paths absent from both selection lists carry no
// recorded choice and come back as New on the next load.
package profile

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidName reports a profile name that fails validation.
var ErrInvalidName = errors.New("invalid profile name")

// FileTokenDetails is one durable token-cache entry: the content checksum
// the count was computed against, and the count itself.
type FileTokenDetails struct {
	Checksum   string `json:"checksum"`
	TokenCount int    `json:"token_count"`
}

// Profile is the serializable record of a named selection configuration.
type Profile struct {
	// Name is the user-visible profile name.
	Name string `json:"name"`

	// RootFolder is the directory the profile's scans start from.
	RootFolder string `json:"root_folder"`

	// SelectedPaths and DeselectedPaths record explicit choices; a path in
	// neither list has no recorded choice.
	SelectedPaths   []string `json:"selected_paths"`
	DeselectedPaths []string `json:"deselected_paths"`

	// ArchivePath is the archive output file, empty until the first pack.
	ArchivePath string `json:"archive_path,omitempty"`

	// FileDetails caches token counts for selected files, keyed by path.
	FileDetails map[string]FileTokenDetails `json:"file_details"`

	// ExcludePatterns are extra gitignore-style globs applied during scans.
	ExcludePatterns []string `json:"exclude_patterns"`

	// SavedAt is stamped by the store on each save.
	SavedAt *time.Time `json:"saved_at,omitempty"`
}

// New creates an empty profile for the given name and root folder.
func New(name, rootFolder string) *Profile {
	return &Profile{
		Name:            name,
		RootFolder:      rootFolder,
		SelectedPaths:   []string{},
		DeselectedPaths: []string{},
		FileDetails:     make(map[string]FileTokenDetails),
		ExcludePatterns: []string{},
	}
}

// normalize replaces nil collections with empty ones so older profile files
// lacking these fields load cleanly.
func (p *Profile) normalize() {
	if p.SelectedPaths == nil {
		p.SelectedPaths = []string{}
	}
	if p.DeselectedPaths == nil {
		p.DeselectedPaths = []string{}
	}
	if p.FileDetails == nil {
		p.FileDetails = make(map[string]FileTokenDetails)
	}
	if p.ExcludePatterns == nil {
		p.ExcludePatterns = []string{}
	}
}

// ValidateName checks that a profile name is non-empty and contains only
// alphanumerics, underscores, hyphens, and spaces.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_', r == '-', r == ' ':
		default:
			return fmt.Errorf("%w: character %q not allowed", ErrInvalidName, r)
		}
	}
	return nil
}

// SanitizeName reduces a profile name to its filename stem: alphanumerics,
// underscores, and hyphens are kept, everything else is stripped.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
