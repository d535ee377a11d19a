package repository

import (
	"context"

	"github.com/local-directory-api/internal/database"
	"github.com/local-directory-api/internal/models"
)

// StateRepository defines the interface for state data operations
type StateRepository interface {
	Create(ctx context.Context, state *models.State) error
	BatchInsert(ctx context.Context, states []*models.State) (int, error)
	GetByID(ctx context.Context, id string) (*models.State, error)
	GetAll(ctx context.Context) ([]*models.State, error)
	NameExists(ctx context.Context, name string) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// CityRepository defines the interface for city data operations
type CityRepository interface {
	Create(ctx context.Context, city *models.City) error
	GetByID(ctx context.Context, id string) (*models.City, error)
	GetAll(ctx context.Context) ([]*models.City, error)
	ListByState(ctx context.Context, stateID string) ([]*models.City, error)
	FindOrphans(ctx context.Context) ([]*models.City, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// ListingRepository defines the interface for listing data operations
type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	Update(ctx context.Context, listing *models.Listing) error
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	ListByCity(ctx context.Context, cityID string) ([]*models.Listing, error)
	FindOrphans(ctx context.Context) ([]*models.Listing, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, publishedOnly bool) ([]*models.Article, error)
	CountBySlugPrefix(ctx context.Context, prefix string) (int, error)
	GetBySlugPrefix(ctx context.Context, prefix string, limit int) ([]*models.Article, error)
	DeleteBySlugPrefix(ctx context.Context, prefix string) error
	HasCityColumn(ctx context.Context) (bool, error)
	FindOrphans(ctx context.Context) ([]*models.Article, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	State   StateRepository
	City    CityRepository
	Listing ListingRepository
	Article ArticleRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		State:   NewStateRepo(db),
		City:    NewCityRepo(db),
		Listing: NewListingRepo(db),
		Article: NewArticleRepo(db),
	}
}
