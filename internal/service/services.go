package service

import (
	"context"
	"errors"

	"github.com/local-directory-api/internal/config"
	"github.com/local-directory-api/internal/models"
	"github.com/local-directory-api/internal/repository"
	"github.com/rs/zerolog"
)

// ErrNotFound signals that a referenced entity does not exist
var ErrNotFound = errors.New("not found")

// DirectoryService defines entity CRUD over the directory hierarchy
type DirectoryService interface {
	CreateState(ctx context.Context, name string) (*models.State, error)
	ListStates(ctx context.Context) ([]*models.State, error)
	ListCities(ctx context.Context, stateID string) ([]*models.City, error)
	CreateCity(ctx context.Context, name, stateID string) (*models.City, error)
	GetCityPage(ctx context.Context, citySlug string) (*models.CityPage, error)
	CreateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error)
	UpdateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error)
	DeleteListing(ctx context.Context, id string) error
	CreateArticle(ctx context.Context, article *models.Article) (*models.Article, error)
	UpdateArticle(ctx context.Context, article *models.Article) (*models.Article, error)
	DeleteArticle(ctx context.Context, id string) error
	GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error)
	ListArticles(ctx context.Context, publishedOnly bool) ([]*models.Article, error)
	EntityCounts(ctx context.Context) (map[string]int, error)
}

// IntegrityService defines the read-only hierarchy integrity scan
type IntegrityService interface {
	CountBySlugPrefix(ctx context.Context, prefix string) (*models.SlugPrefixReport, error)
	FindOrphanCities(ctx context.Context) ([]*models.City, error)
	FindOrphanListings(ctx context.Context) ([]*models.Listing, error)
	Report(ctx context.Context) (*models.IntegrityReport, error)
}

// MaintenanceService defines administrative bulk mutations
type MaintenanceService interface {
	ListLegacyURLs(ctx context.Context) ([]string, error)
	RemoveLegacyArticles(ctx context.Context) (int, error)
	BulkInsertStates(ctx context.Context, names []string) ([]*models.State, error)
}

// Services holds all service interfaces
type Services struct {
	Directory   DirectoryService
	Integrity   IntegrityService
	Maintenance MaintenanceService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Directory:   newDirectoryService(repos, log),
		Integrity:   newIntegrityService(repos, log),
		Maintenance: newMaintenanceService(repos, cfg, log),
	}
}
