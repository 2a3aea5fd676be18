package service

import (
	"fmt"

	"github.com/mtlprog/embedkit/internal/domain"
)

// ValidateTargets checks requested artifact kinds. An empty list means all kinds.
func ValidateTargets(targets []domain.ArtifactKind) ([]domain.ArtifactKind, error) {
	if len(targets) == 0 {
		return append([]domain.ArtifactKind(nil), domain.ArtifactKinds...), nil
	}

	seen := make(map[domain.ArtifactKind]bool, len(targets))
	out := make([]domain.ArtifactKind, 0, len(targets))
	for _, kind := range targets {
		if !kind.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownArtifactKind, kind)
		}
		if seen[kind] {
			continue
		}
		seen[kind] = true
		out = append(out, kind)
	}
	return out, nil
}
