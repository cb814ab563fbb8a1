package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sourcepacker/sourcepacker/internal/fsops"
)

// Settings keys.
const (
	keyLastProfile = "last_profile"
	keyTokenModel  = "token_model"
)

// Settings reads and writes the YAML settings file. Reads tolerate a
// missing file; writes go through an atomic replace and preserve keys this
// version does not know about.
type Settings struct {
	fs   fsops.FS
	path string
}

// NewSettings creates a Settings bound to the given file path.
func NewSettings(fs fsops.FS, path string) *Settings {
	return &Settings{fs: fs, path: path}
}

// LastProfile returns the name of the most recently used profile, or ""
// when none was recorded.
func (s *Settings) LastProfile() (string, error) {
	return s.get(keyLastProfile)
}

// SetLastProfile records the most recently used profile name.
func (s *Settings) SetLastProfile(name string) error {
	return s.set(keyLastProfile, name)
}

// TokenModel returns the configured tokenizer model name, or "" when none
// was recorded.
func (s *Settings) TokenModel() (string, error) {
	return s.get(keyTokenModel)
}

// SetTokenModel records the tokenizer model name.
func (s *Settings) SetTokenModel(model string) error {
	return s.set(keyTokenModel, model)
}

func (s *Settings) get(key string) (string, error) {
	cfg, err := s.read()
	if err != nil {
		return "", err
	}
	raw, ok := cfg[key]
	if !ok {
		return "", nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("invalid %s value in %s: expected string", key, s.path)
	}
	return value, nil
}

func (s *Settings) set(key, value string) error {
	cfg, err := s.read()
	if err != nil {
		return err
	}
	cfg[key] = value

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.fs.AtomicWrite(s.path, out, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// read parses the settings file into a generic map so unknown keys survive
// a rewrite. A missing or blank file yields an empty map.
func (s *Settings) read() (map[string]any, error) {
	cfg := make(map[string]any)

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	if cfg == nil {
		cfg = make(map[string]any)
	}
	return cfg, nil
}
