package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sourcepacker/sourcepacker/internal/archive"
	"github.com/sourcepacker/sourcepacker/internal/clock"
	"github.com/sourcepacker/sourcepacker/internal/config"
	"github.com/sourcepacker/sourcepacker/internal/fsops"
	"github.com/sourcepacker/sourcepacker/internal/hash"
	"github.com/sourcepacker/sourcepacker/internal/profile"
	"github.com/sourcepacker/sourcepacker/internal/scan"
	"github.com/sourcepacker/sourcepacker/internal/session"
	"github.com/sourcepacker/sourcepacker/internal/tokencount"
)

// app bundles the real implementations every command works against.
type app struct {
	paths    *config.Paths
	fs       fsops.FS
	settings *config.Settings
	store    profile.Store
	archiver *archive.Archiver
}

// newApp creates the command dependencies with real implementations.
func newApp() (*app, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	fs := fsops.NewRealFS()
	return &app{
		paths:    paths,
		fs:       fs,
		settings: config.NewSettings(fs, paths.Settings),
		store:    profile.NewFileStore(fs, paths.Profiles, &clock.RealClock{}),
		archiver: archive.New(fs),
	}, nil
}

// newSession creates an empty session wired to a real scanner and the
// configured tokenizer model.
func (a *app) newSession() (*session.Session, error) {
	model, err := a.settings.TokenModel()
	if err != nil {
		return nil, err
	}
	counter, err := tokencount.NewTiktokenCounter(model)
	if err != nil {
		return nil, err
	}

	walker := scan.NewWalker(hash.NewSHA256Hasher())
	return session.New(walker, counter, a.fs), nil
}

// activeProfileName resolves the profile a command should operate on: the
// --profile flag when given, otherwise the last used profile from settings.
func (a *app) activeProfileName() (string, error) {
	if profileFlag != "" {
		return profileFlag, nil
	}
	name, err := a.settings.LastProfile()
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", errors.New("no active profile; run 'sourcepacker use <name>' or pass --profile")
	}
	return name, nil
}

// loadSession loads the active profile and scans its root into a session.
func (a *app) loadSession(ctx context.Context) (*session.Session, error) {
	name, err := a.activeProfileName()
	if err != nil {
		return nil, err
	}

	p, err := a.store.Load(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("profile %q does not exist", name)
		}
		return nil, err
	}

	sess, err := a.newSession()
	if err != nil {
		return nil, err
	}
	if err := sess.LoadProfile(ctx, p); err != nil {
		return nil, err
	}
	return sess, nil
}

// formatError formats an error for display.
func formatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
