package service

import (
	"context"
	"time"

	"github.com/local-directory-api/internal/models"
	"github.com/local-directory-api/internal/repository"
	"github.com/rs/zerolog"
)

// sampleLimit caps how many rows a preview report carries
const sampleLimit = 10

// integrityService is the concrete implementation of IntegrityService.
// Every operation is a read-only scan; repairs go through the maintenance
// service so an operator always previews before mutating.
type integrityService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newIntegrityService creates a new IntegrityService
func newIntegrityService(repos *repository.Repositories, log zerolog.Logger) *integrityService {
	return &integrityService{
		repos: repos,
		log:   log.With().Str("service", "integrity").Logger(),
	}
}

// CountBySlugPrefix sizes a slug-class maintenance operation without side
// effects: the affected-row count plus a bounded sample.
func (s *integrityService) CountBySlugPrefix(ctx context.Context, prefix string) (*models.SlugPrefixReport, error) {
	count, err := s.repos.Article.CountBySlugPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}

	sample, err := s.repos.Article.GetBySlugPrefix(ctx, prefix, sampleLimit)
	if err != nil {
		return nil, err
	}

	return &models.SlugPrefixReport{
		Prefix: prefix,
		Count:  count,
		Sample: sample,
	}, nil
}

// FindOrphanCities returns cities whose state_id resolves to no state
func (s *integrityService) FindOrphanCities(ctx context.Context) ([]*models.City, error) {
	return s.repos.City.FindOrphans(ctx)
}

// FindOrphanListings returns listings whose city_id resolves to no city
func (s *integrityService) FindOrphanListings(ctx context.Context) ([]*models.Listing, error) {
	return s.repos.Listing.FindOrphans(ctx)
}

// Report scans the whole hierarchy for referential violations. The article
// section depends on the city_id column existing; when the schema lags
// behind the code the section is marked skipped instead of failing the
// report. The result is a best-effort snapshot, not a transactionally
// consistent one.
func (s *integrityService) Report(ctx context.Context) (*models.IntegrityReport, error) {
	orphanCities, err := s.repos.City.FindOrphans(ctx)
	if err != nil {
		return nil, err
	}

	orphanListings, err := s.repos.Listing.FindOrphans(ctx)
	if err != nil {
		return nil, err
	}

	report := &models.IntegrityReport{
		OrphanCities:   orphanCities,
		OrphanListings: orphanListings,
		GeneratedAt:    time.Now(),
	}

	hasCityColumn, err := s.repos.Article.HasCityColumn(ctx)
	if err != nil {
		return nil, err
	}
	if !hasCityColumn {
		report.OrphanArticles = models.OrphanArticleSection{
			Checked: false,
			Reason:  "articles.city_id column not present on this store",
		}
		s.log.Warn().Msg("Skipping article orphan scan, city_id column absent")
		return report, nil
	}

	orphanArticles, err := s.repos.Article.FindOrphans(ctx)
	if err != nil {
		return nil, err
	}
	report.OrphanArticles = models.OrphanArticleSection{
		Checked:  true,
		Articles: orphanArticles,
	}

	s.log.Info().
		Int("orphan_cities", len(orphanCities)).
		Int("orphan_listings", len(orphanListings)).
		Int("orphan_articles", len(orphanArticles)).
		Msg("Integrity report generated")

	return report, nil
}
