package mocks

import (
	"context"

	"github.com/local-directory-api/internal/models"
	"github.com/local-directory-api/internal/service"
)

// MockDirectoryService is a mock implementation of service.DirectoryService
type MockDirectoryService struct {
	States     []*models.State
	CityPages  map[string]*models.CityPage
	Articles   map[string]*models.Article
	Counts     map[string]int
	CreateErr  error
	CreateFunc func(ctx context.Context, article *models.Article) (*models.Article, error)
}

func NewMockDirectoryService() *MockDirectoryService {
	return &MockDirectoryService{
		CityPages: make(map[string]*models.CityPage),
		Articles:  make(map[string]*models.Article),
		Counts:    make(map[string]int),
	}
}

func (m *MockDirectoryService) CreateState(ctx context.Context, name string) (*models.State, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	state := &models.State{ID: "state-" + name, Name: name}
	m.States = append(m.States, state)
	return state, nil
}

func (m *MockDirectoryService) ListStates(ctx context.Context) ([]*models.State, error) {
	return m.States, nil
}

func (m *MockDirectoryService) ListCities(ctx context.Context, stateID string) ([]*models.City, error) {
	return nil, nil
}

func (m *MockDirectoryService) CreateCity(ctx context.Context, name, stateID string) (*models.City, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	return &models.City{ID: "city-" + name, Name: name, StateID: stateID}, nil
}

func (m *MockDirectoryService) GetCityPage(ctx context.Context, citySlug string) (*models.CityPage, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	page, ok := m.CityPages[citySlug]
	if !ok {
		return nil, service.ErrNotFound
	}
	return page, nil
}

func (m *MockDirectoryService) CreateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	listing.ID = "listing-1"
	return listing, nil
}

func (m *MockDirectoryService) UpdateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	return listing, nil
}

func (m *MockDirectoryService) DeleteListing(ctx context.Context, id string) error {
	return m.CreateErr
}

func (m *MockDirectoryService) CreateArticle(ctx context.Context, article *models.Article) (*models.Article, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, article)
	}
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	article.ID = "article-1"
	m.Articles[article.Slug] = article
	return article, nil
}

func (m *MockDirectoryService) UpdateArticle(ctx context.Context, article *models.Article) (*models.Article, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	return article, nil
}

func (m *MockDirectoryService) DeleteArticle(ctx context.Context, id string) error {
	return m.CreateErr
}

func (m *MockDirectoryService) GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	article, ok := m.Articles[slug]
	if !ok {
		return nil, service.ErrNotFound
	}
	return article, nil
}

func (m *MockDirectoryService) ListArticles(ctx context.Context, publishedOnly bool) ([]*models.Article, error) {
	var articles []*models.Article
	for _, a := range m.Articles {
		if publishedOnly && !a.Published {
			continue
		}
		articles = append(articles, a)
	}
	return articles, nil
}

func (m *MockDirectoryService) EntityCounts(ctx context.Context) (map[string]int, error) {
	return m.Counts, nil
}

// MockIntegrityService is a mock implementation of service.IntegrityService
type MockIntegrityService struct {
	PrefixReport *models.SlugPrefixReport
	OrphanCities []*models.City
	Reports      *models.IntegrityReport
	Err          error
}

func NewMockIntegrityService() *MockIntegrityService {
	return &MockIntegrityService{}
}

func (m *MockIntegrityService) CountBySlugPrefix(ctx context.Context, prefix string) (*models.SlugPrefixReport, error) {
	return m.PrefixReport, m.Err
}

func (m *MockIntegrityService) FindOrphanCities(ctx context.Context) ([]*models.City, error) {
	return m.OrphanCities, m.Err
}

func (m *MockIntegrityService) FindOrphanListings(ctx context.Context) ([]*models.Listing, error) {
	return nil, m.Err
}

func (m *MockIntegrityService) Report(ctx context.Context) (*models.IntegrityReport, error) {
	return m.Reports, m.Err
}

// MockMaintenanceService is a mock implementation of service.MaintenanceService
type MockMaintenanceService struct {
	URLs         []string
	RemovedCount int
	RemoveCalls  int
	Created      []*models.State
	Err          error
}

func NewMockMaintenanceService() *MockMaintenanceService {
	return &MockMaintenanceService{}
}

func (m *MockMaintenanceService) ListLegacyURLs(ctx context.Context) ([]string, error) {
	return m.URLs, m.Err
}

func (m *MockMaintenanceService) RemoveLegacyArticles(ctx context.Context) (int, error) {
	m.RemoveCalls++
	if m.Err != nil {
		return 0, m.Err
	}
	// First call reports the configured count, later calls report zero.
	if m.RemoveCalls > 1 {
		return 0, nil
	}
	return m.RemovedCount, nil
}

func (m *MockMaintenanceService) BulkInsertStates(ctx context.Context, names []string) ([]*models.State, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Created, nil
}
