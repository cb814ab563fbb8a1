// Package config manages sourcepacker configuration and filesystem paths.
//
// All persistent data lives under a single root directory (default
// ~/.sourcepacker), holding the profiles/ directory and the settings file.
// A directory with the same name inside a scanned project is reserved and
// always excluded from scans.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppDirName is the application directory name, both for the per-user data
// root under the home directory and for the reserved project-internal
// directory the scanner always skips.
const AppDirName = ".sourcepacker"

// Paths contains all the filesystem paths used by sourcepacker.
type Paths struct {
	// Root is the base directory for all sourcepacker data
	// (default: ~/.sourcepacker)
	Root string

	// Profiles is the directory containing one JSON file per profile
	Profiles string

	// Settings is the path to the settings file
	Settings string
}

// DefaultPaths returns the default paths for sourcepacker.
// Paths can be overridden with environment variables:
// - SOURCEPACKER_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("SOURCEPACKER_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, AppDirName)
	}

	return &Paths{
		Root:     root,
		Profiles: filepath.Join(root, "profiles"),
		Settings: filepath.Join(root, "settings.yaml"),
	}, nil
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.Profiles,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
