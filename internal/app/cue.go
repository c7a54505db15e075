package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fluffhead-tim/awesome-yoga-app/internal/domain"
	"github.com/fluffhead-tim/awesome-yoga-app/internal/ports"
)

// CueService resolves instructive cues and hands out random words.
type CueService struct {
	completer ports.Completer
	fallback  *domain.FallbackEngine
	words     *domain.WordProvider
	logger    *slog.Logger
}

// NewCueService loads the catalog once. A nil completer means no credential
// is configured and every cue comes from the fallback engine.
func NewCueService(ctx context.Context, store ports.CatalogStore, completer ports.Completer, rng domain.RNG, logger *slog.Logger) (*CueService, error) {
	c, err := store.GetCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("get catalog: %w", err)
	}
	return &CueService{
		completer: completer,
		fallback:  domain.NewFallbackEngine(c.Poses, c.Generic, rng),
		words:     domain.NewWordProvider(c.Words, rng),
		logger:    logger,
	}, nil
}

func (s *CueService) RandomWord() string {
	return s.words.Next()
}

// GenerateCue returns domain.ErrInvalidRequest for a blank phrase. Upstream
// failures are never returned; they degrade to the fallback engine.
func (s *CueService) GenerateCue(ctx context.Context, phrase string) (domain.CueResult, error) {
	if strings.TrimSpace(phrase) == "" {
		return domain.CueResult{}, domain.ErrInvalidRequest
	}

	if s.completer == nil {
		return domain.CueResult{Cue: s.fallback.Resolve(phrase), Note: domain.NoteNoCredential}, nil
	}

	cue, err := s.completer.Complete(ctx, phrase)
	if err != nil {
		s.logger.WarnContext(ctx, "completion unavailable, using fallback", "error", err)
		return domain.CueResult{Cue: s.fallback.Resolve(phrase), Note: domain.NoteUpstreamUnavailable}, nil
	}

	// Safety filter rejections carry no note.
	if domain.ContainsForbidden(cue) {
		s.logger.WarnContext(ctx, "completion used a forbidden word, using fallback")
		return domain.CueResult{Cue: s.fallback.Resolve(phrase)}, nil
	}

	return domain.CueResult{Cue: cue}, nil
}
