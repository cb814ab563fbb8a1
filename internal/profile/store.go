package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sourcepacker/sourcepacker/internal/clock"
	"github.com/sourcepacker/sourcepacker/internal/fsops"
)

// Store provides an interface for persisting profiles.
type Store interface {
	// Load reads the profile with the given name.
	// Returns os.ErrNotExist if it has never been saved.
	Load(name string) (*Profile, error)

	// Save writes the profile atomically, stamping SavedAt.
	Save(p *Profile) error

	// List returns the filename stems of all saved profiles, sorted.
	List() ([]string, error)

	// Delete removes the profile with the given name. Deleting a profile
	// that does not exist is not an error.
	Delete(name string) error
}

// FileStore implements Store using one JSON file per profile.
type FileStore struct {
	fs    fsops.FS
	dir   string
	clock clock.Clock
}

// NewFileStore creates a new FileStore rooted at dir.
func NewFileStore(fs fsops.FS, dir string, clk clock.Clock) *FileStore {
	return &FileStore{
		fs:    fs,
		dir:   dir,
		clock: clk,
	}
}

// filePath validates the profile name and returns its on-disk path.
func (s *FileStore) filePath(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	stem := SanitizeName(name)
	if stem == "" {
		return "", fmt.Errorf("%w: %q has no usable characters", ErrInvalidName, name)
	}
	return filepath.Join(s.dir, stem+".json"), nil
}

// Load reads the profile with the given name.
func (s *FileStore) Load(name string) (*Profile, error) {
	path, err := s.filePath(name)
	if err != nil {
		return nil, err
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	p.normalize()

	return &p, nil
}

// Save writes the profile atomically, stamping SavedAt.
func (s *FileStore) Save(p *Profile) error {
	path, err := s.filePath(p.Name)
	if err != nil {
		return err
	}

	p.normalize()
	now := s.clock.Now()
	p.SavedAt = &now

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := s.fs.AtomicWrite(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	return nil
}

// List returns the filename stems of all saved profiles, sorted.
func (s *FileStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read profiles directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)

	return names, nil
}

// Delete removes the profile with the given name.
func (s *FileStore) Delete(name string) error {
	path, err := s.filePath(name)
	if err != nil {
		return err
	}

	if err := s.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	return nil
}
