package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/sourcepacker/sourcepacker/internal/model"
	"github.com/sourcepacker/sourcepacker/internal/profile"
)

// RecountTokens recomputes the token total across all Selected files and
// returns it. Files whose cache entry matches their current checksum are
// reused without touching disk or the tokenizer; everything else is read
// and counted fresh. An unreadable file is skipped and its stale cache
// entry dropped; the rest of the recount proceeds.
func (s *Session) RecountTokens(ctx context.Context) int {
	total := 0

	model.Walk(s.nodes, func(node *model.FileNode) {
		if node.IsDir || node.State != model.StateSelected {
			return
		}
		if node.Checksum == "" {
			// Scanned files always carry a checksum; this is a bug.
			s.log.Error("selected file has no checksum, skipping", zap.String("path", node.Path))
			return
		}

		if entry, ok := s.tokenCache[node.Path]; ok && entry.Checksum == node.Checksum {
			total += entry.TokenCount
			return
		}

		content, err := s.fs.ReadFile(node.Path)
		if err != nil {
			s.log.Warn("failed to read file during recount, skipping",
				zap.String("path", node.Path),
				zap.Error(err))
			delete(s.tokenCache, node.Path)
			return
		}

		count := s.counter.CountTokens(string(content))
		s.tokenCache[node.Path] = profile.FileTokenDetails{
			Checksum:   node.Checksum,
			TokenCount: count,
		}
		total += count
	})

	s.totalTokens = total
	return total
}
