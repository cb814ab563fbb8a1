package session

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/sourcepacker/sourcepacker/internal/model"
	"github.com/sourcepacker/sourcepacker/internal/profile"
	"github.com/sourcepacker/sourcepacker/internal/selection"
)

// LoadProfile makes p the active profile. It seeds the token cache from the
// profile's stored file details, rescans the root folder, reapplies the
// stored selection onto the fresh tree (files that appeared since the last
// save come back as New), and recounts tokens.
//
// A scan failure clears the whole session and returns an error naming the
// root, the profile, and the cause; the caller must re-drive profile
// selection.
func (s *Session) LoadProfile(ctx context.Context, p *profile.Profile) error {
	s.profileName = p.Name
	s.archivePath = p.ArchivePath
	s.excludePatterns = append([]string(nil), p.ExcludePatterns...)

	rootPath, err := filepath.Abs(p.RootFolder)
	if err != nil {
		s.Clear()
		return fmt.Errorf("failed to resolve root %s for profile %q: %w", p.RootFolder, p.Name, err)
	}
	s.rootPath = rootPath

	s.tokenCache = make(map[string]profile.FileTokenDetails, len(p.FileDetails))
	for path, details := range p.FileDetails {
		s.tokenCache[path] = details
	}

	nodes, err := s.scanner.Scan(rootPath, p.ExcludePatterns)
	if err != nil {
		s.Clear()
		return fmt.Errorf("failed to scan %s for profile %q: %w", rootPath, p.Name, err)
	}
	s.nodes = nodes

	selection.Apply(s.nodes, selection.PathSet(p.SelectedPaths), selection.PathSet(p.DeselectedPaths))
	s.RecountTokens(ctx)

	s.log.Debug("profile loaded",
		zap.String("profile", p.Name),
		zap.String("root", rootPath),
		zap.Int("nodes", model.CountNodes(s.nodes)),
		zap.Int("tokens", s.totalTokens))

	return nil
}
