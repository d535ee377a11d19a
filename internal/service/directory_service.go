package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/local-directory-api/internal/models"
	"github.com/local-directory-api/internal/repository"
	"github.com/local-directory-api/internal/slug"
	"github.com/rs/zerolog"
)

// directoryService is the concrete implementation of DirectoryService
type directoryService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newDirectoryService creates a new DirectoryService
func newDirectoryService(repos *repository.Repositories, log zerolog.Logger) *directoryService {
	return &directoryService{
		repos: repos,
		log:   log.With().Str("service", "directory").Logger(),
	}
}

// CreateState inserts a single state
func (s *directoryService) CreateState(ctx context.Context, name string) (*models.State, error) {
	state := &models.State{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := s.repos.State.Create(ctx, state); err != nil {
		return nil, err
	}

	s.log.Info().Str("state_id", state.ID).Str("name", name).Msg("State created")
	return state, nil
}

// ListStates returns all states
func (s *directoryService) ListStates(ctx context.Context) ([]*models.State, error) {
	return s.repos.State.GetAll(ctx)
}

// ListCities returns all cities for a state
func (s *directoryService) ListCities(ctx context.Context, stateID string) ([]*models.City, error) {
	exists, err := s.repos.State.Exists(ctx, stateID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	return s.repos.City.ListByState(ctx, stateID)
}

// CreateCity inserts a city under an existing state
func (s *directoryService) CreateCity(ctx context.Context, name, stateID string) (*models.City, error) {
	exists, err := s.repos.State.Exists(ctx, stateID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	city := &models.City{
		ID:        uuid.New().String(),
		Name:      name,
		StateID:   stateID,
		CreatedAt: time.Now(),
	}
	if err := s.repos.City.Create(ctx, city); err != nil {
		return nil, err
	}

	s.log.Info().Str("city_id", city.ID).Str("name", name).Msg("City created")
	return city, nil
}

// GetCityPage resolves a city by its canonical slug and loads its listings.
// Cities do not persist a slug; the slug is derived from the name, so the
// lookup normalizes each candidate name the same way.
func (s *directoryService) GetCityPage(ctx context.Context, citySlug string) (*models.CityPage, error) {
	cities, err := s.repos.City.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var city *models.City
	for _, c := range cities {
		if slug.Make(c.Name) == citySlug {
			city = c
			break
		}
	}
	if city == nil {
		return nil, ErrNotFound
	}

	listings, err := s.repos.Listing.ListByCity(ctx, city.ID)
	if err != nil {
		return nil, err
	}

	page := &models.CityPage{City: city, Listings: listings}

	// The state reference is advisory; a missing parent leaves State nil
	// rather than failing the page.
	if state, err := s.repos.State.GetByID(ctx, city.StateID); err == nil && state != nil {
		page.State = state
	}

	return page, nil
}

// CreateListing inserts a listing under an existing city
func (s *directoryService) CreateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error) {
	exists, err := s.repos.City.Exists(ctx, listing.CityID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	listing.ID = uuid.New().String()
	listing.CreatedAt = time.Now()
	if err := s.repos.Listing.Create(ctx, listing); err != nil {
		return nil, err
	}

	s.log.Info().Str("listing_id", listing.ID).Str("business", listing.Business).Msg("Listing created")
	return listing, nil
}

// UpdateListing replaces an existing listing's fields
func (s *directoryService) UpdateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error) {
	existing, err := s.repos.Listing.GetByID(ctx, listing.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	listing.CreatedAt = existing.CreatedAt
	if err := s.repos.Listing.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// DeleteListing removes a listing. Deletion is physical and irreversible.
func (s *directoryService) DeleteListing(ctx context.Context, id string) error {
	existing, err := s.repos.Listing.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.repos.Listing.Delete(ctx, id)
}

// CreateArticle inserts an article, deriving its slug from the title.
// A collision with an existing slug fails with slug.ErrDuplicateSlug;
// resolution is the operator's decision, never a silent suffix.
func (s *directoryService) CreateArticle(ctx context.Context, article *models.Article) (*models.Article, error) {
	var storeErr error
	articleSlug, err := slug.Unique(article.Title, func(candidate string) bool {
		exists, checkErr := s.repos.Article.SlugExists(ctx, candidate)
		if checkErr != nil {
			storeErr = checkErr
		}
		return exists
	})
	if storeErr != nil {
		return nil, storeErr
	}
	if err != nil {
		return nil, err
	}

	if article.CityID != nil {
		exists, err := s.repos.City.Exists(ctx, *article.CityID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrNotFound
		}
	}

	article.ID = uuid.New().String()
	article.Slug = articleSlug
	article.CreatedAt = time.Now()
	if err := s.repos.Article.Create(ctx, article); err != nil {
		return nil, err
	}

	s.log.Info().Str("article_id", article.ID).Str("slug", articleSlug).Msg("Article created")
	return article, nil
}

// UpdateArticle replaces an existing article's fields. A title change
// re-derives the slug under the same uniqueness rule, ignoring the
// article's own current slug.
func (s *directoryService) UpdateArticle(ctx context.Context, article *models.Article) (*models.Article, error) {
	existing, err := s.repos.Article.GetByID(ctx, article.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	var storeErr error
	newSlug, err := slug.Unique(article.Title, func(candidate string) bool {
		if candidate == existing.Slug {
			return false
		}
		exists, checkErr := s.repos.Article.SlugExists(ctx, candidate)
		if checkErr != nil {
			storeErr = checkErr
		}
		return exists
	})
	if storeErr != nil {
		return nil, storeErr
	}
	if err != nil {
		return nil, err
	}

	article.Slug = newSlug
	article.CreatedAt = existing.CreatedAt
	if err := s.repos.Article.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// DeleteArticle removes an article by ID
func (s *directoryService) DeleteArticle(ctx context.Context, id string) error {
	existing, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.repos.Article.Delete(ctx, id)
}

// GetArticleBySlug resolves an article by its canonical slug
func (s *directoryService) GetArticleBySlug(ctx context.Context, articleSlug string) (*models.Article, error) {
	article, err := s.repos.Article.GetBySlug(ctx, articleSlug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

// ListArticles returns articles, optionally only published ones
func (s *directoryService) ListArticles(ctx context.Context, publishedOnly bool) ([]*models.Article, error) {
	return s.repos.Article.List(ctx, publishedOnly)
}

// EntityCounts returns per-collection row counts for the metrics endpoint
func (s *directoryService) EntityCounts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, 4)

	for name, count := range map[string]func(context.Context) (int, error){
		"states":   s.repos.State.Count,
		"cities":   s.repos.City.Count,
		"listings": s.repos.Listing.Count,
		"articles": s.repos.Article.Count,
	} {
		n, err := count(ctx)
		if err != nil {
			return nil, err
		}
		counts[name] = n
	}
	return counts, nil
}
