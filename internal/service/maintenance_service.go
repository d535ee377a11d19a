package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/local-directory-api/internal/config"
	"github.com/local-directory-api/internal/models"
	"github.com/local-directory-api/internal/repository"
	"github.com/local-directory-api/internal/slug"
	"github.com/rs/zerolog"
)

// maintenanceService is the concrete implementation of MaintenanceService
type maintenanceService struct {
	repos *repository.Repositories
	cfg   *config.Config
	log   zerolog.Logger
}

// newMaintenanceService creates a new MaintenanceService
func newMaintenanceService(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *maintenanceService {
	return &maintenanceService{
		repos: repos,
		cfg:   cfg,
		log:   log.With().Str("service", "maintenance").Logger(),
	}
}

// ListLegacyURLs returns the full canonical URL of every article in the
// legacy slug class, for operator review before a bulk removal.
func (s *maintenanceService) ListLegacyURLs(ctx context.Context) ([]string, error) {
	articles, err := s.repos.Article.GetBySlugPrefix(ctx, slug.LegacyPrefix, 0)
	if err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(s.cfg.Site.BaseURL, "/")
	urls := make([]string, 0, len(articles))
	for _, a := range articles {
		urls = append(urls, fmt.Sprintf("%s/%s", base, a.Slug))
	}
	return urls, nil
}

// RemoveLegacyArticles deletes every article whose slug carries the legacy
// prefix and reports how many were removed. The store's predicate delete
// does not return an affected count, so the operation counts first, then
// deletes, and reports the pre-delete count. Articles created in the window
// between count and delete fall outside both figures; acceptable for an
// infrequent, single-operator tool. Re-running after success reports zero.
func (s *maintenanceService) RemoveLegacyArticles(ctx context.Context) (int, error) {
	count, err := s.repos.Article.CountBySlugPrefix(ctx, slug.LegacyPrefix)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}

	if err := s.repos.Article.DeleteBySlugPrefix(ctx, slug.LegacyPrefix); err != nil {
		return 0, err
	}

	s.log.Info().Int("deleted", count).Str("prefix", slug.LegacyPrefix).Msg("Legacy articles removed")
	return count, nil
}

// BulkInsertStates trims the candidate names, drops empties, dedupes after
// trimming (first occurrence wins), and inserts the survivors in a single
// batch. Partial failure is surfaced as a whole-operation failure carrying
// the store's error; no per-row retry, no partial commit assumed.
func (s *maintenanceService) BulkInsertStates(ctx context.Context, names []string) ([]*models.State, error) {
	seen := make(map[string]bool, len(names))
	now := time.Now()

	var states []*models.State
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		states = append(states, &models.State{
			ID:        uuid.New().String(),
			Name:      trimmed,
			CreatedAt: now,
		})
	}

	if len(states) == 0 {
		return nil, nil
	}

	inserted, err := s.repos.State.BatchInsert(ctx, states)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("inserted", inserted).Msg("States bulk inserted")
	return states, nil
}
