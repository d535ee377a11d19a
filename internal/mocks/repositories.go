package mocks

import (
	"context"
	"sort"
	"strings"

	"github.com/local-directory-api/internal/models"
)

// MockStateRepository is a mock implementation of StateRepository
type MockStateRepository struct {
	States           map[string]*models.State
	InsertError      error
	BatchInsertCalls int
}

func NewMockStateRepository() *MockStateRepository {
	return &MockStateRepository{States: make(map[string]*models.State)}
}

func (m *MockStateRepository) Create(ctx context.Context, state *models.State) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.States[state.ID] = state
	return nil
}

func (m *MockStateRepository) BatchInsert(ctx context.Context, states []*models.State) (int, error) {
	m.BatchInsertCalls++
	if m.InsertError != nil {
		return 0, m.InsertError
	}
	for _, s := range states {
		m.States[s.ID] = s
	}
	return len(states), nil
}

func (m *MockStateRepository) GetByID(ctx context.Context, id string) (*models.State, error) {
	return m.States[id], nil
}

func (m *MockStateRepository) GetAll(ctx context.Context) ([]*models.State, error) {
	states := make([]*models.State, 0, len(m.States))
	for _, s := range m.States {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i].Name < states[j].Name })
	return states, nil
}

func (m *MockStateRepository) NameExists(ctx context.Context, name string) (bool, error) {
	for _, s := range m.States {
		if s.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockStateRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, exists := m.States[id]
	return exists, nil
}

func (m *MockStateRepository) Count(ctx context.Context) (int, error) {
	return len(m.States), nil
}

// MockCityRepository is a mock implementation of CityRepository
type MockCityRepository struct {
	Cities map[string]*models.City
	States *MockStateRepository
}

func NewMockCityRepository(states *MockStateRepository) *MockCityRepository {
	return &MockCityRepository{
		Cities: make(map[string]*models.City),
		States: states,
	}
}

func (m *MockCityRepository) Create(ctx context.Context, city *models.City) error {
	m.Cities[city.ID] = city
	return nil
}

func (m *MockCityRepository) GetByID(ctx context.Context, id string) (*models.City, error) {
	return m.Cities[id], nil
}

func (m *MockCityRepository) GetAll(ctx context.Context) ([]*models.City, error) {
	cities := make([]*models.City, 0, len(m.Cities))
	for _, c := range m.Cities {
		cities = append(cities, c)
	}
	sort.Slice(cities, func(i, j int) bool { return cities[i].Name < cities[j].Name })
	return cities, nil
}

func (m *MockCityRepository) ListByState(ctx context.Context, stateID string) ([]*models.City, error) {
	var cities []*models.City
	for _, c := range m.Cities {
		if c.StateID == stateID {
			cities = append(cities, c)
		}
	}
	sort.Slice(cities, func(i, j int) bool { return cities[i].Name < cities[j].Name })
	return cities, nil
}

func (m *MockCityRepository) FindOrphans(ctx context.Context) ([]*models.City, error) {
	var orphans []*models.City
	for _, c := range m.Cities {
		if _, ok := m.States.States[c.StateID]; !ok {
			orphans = append(orphans, c)
		}
	}
	sort.Slice(orphans, func(i, j int) bool { return orphans[i].Name < orphans[j].Name })
	return orphans, nil
}

func (m *MockCityRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, exists := m.Cities[id]
	return exists, nil
}

func (m *MockCityRepository) Delete(ctx context.Context, id string) error {
	delete(m.Cities, id)
	return nil
}

func (m *MockCityRepository) Count(ctx context.Context) (int, error) {
	return len(m.Cities), nil
}

// MockListingRepository is a mock implementation of ListingRepository
type MockListingRepository struct {
	Listings map[string]*models.Listing
	Cities   *MockCityRepository
}

func NewMockListingRepository(cities *MockCityRepository) *MockListingRepository {
	return &MockListingRepository{
		Listings: make(map[string]*models.Listing),
		Cities:   cities,
	}
}

func (m *MockListingRepository) Create(ctx context.Context, listing *models.Listing) error {
	m.Listings[listing.ID] = listing
	return nil
}

func (m *MockListingRepository) Update(ctx context.Context, listing *models.Listing) error {
	m.Listings[listing.ID] = listing
	return nil
}

func (m *MockListingRepository) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	return m.Listings[id], nil
}

func (m *MockListingRepository) ListByCity(ctx context.Context, cityID string) ([]*models.Listing, error) {
	var listings []*models.Listing
	for _, l := range m.Listings {
		if l.CityID == cityID {
			listings = append(listings, l)
		}
	}
	sort.Slice(listings, func(i, j int) bool {
		if listings[i].IsFeatured() != listings[j].IsFeatured() {
			return listings[i].IsFeatured()
		}
		return listings[i].ReviewRating > listings[j].ReviewRating
	})
	return listings, nil
}

func (m *MockListingRepository) FindOrphans(ctx context.Context) ([]*models.Listing, error) {
	var orphans []*models.Listing
	for _, l := range m.Listings {
		if _, ok := m.Cities.Cities[l.CityID]; !ok {
			orphans = append(orphans, l)
		}
	}
	sort.Slice(orphans, func(i, j int) bool { return orphans[i].Business < orphans[j].Business })
	return orphans, nil
}

func (m *MockListingRepository) Delete(ctx context.Context, id string) error {
	delete(m.Listings, id)
	return nil
}

func (m *MockListingRepository) Count(ctx context.Context) (int, error) {
	return len(m.Listings), nil
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Articles   map[string]*models.Article
	Cities     *MockCityRepository
	CityColumn bool
	QueryError error
}

func NewMockArticleRepository(cities *MockCityRepository) *MockArticleRepository {
	return &MockArticleRepository{
		Articles:   make(map[string]*models.Article),
		Cities:     cities,
		CityColumn: true,
	}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if m.QueryError != nil {
		return m.QueryError
	}
	m.Articles[article.ID] = article
	return nil
}

func (m *MockArticleRepository) Update(ctx context.Context, article *models.Article) error {
	m.Articles[article.ID] = article
	return nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	return m.Articles[id], nil
}

func (m *MockArticleRepository) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	for _, a := range m.Articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, nil
}

func (m *MockArticleRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	a, _ := m.GetBySlug(ctx, slug)
	return a != nil, nil
}

func (m *MockArticleRepository) List(ctx context.Context, publishedOnly bool) ([]*models.Article, error) {
	var articles []*models.Article
	for _, a := range m.Articles {
		if publishedOnly && !a.Published {
			continue
		}
		articles = append(articles, a)
	}
	sort.Slice(articles, func(i, j int) bool { return articles[i].Slug < articles[j].Slug })
	return articles, nil
}

func (m *MockArticleRepository) CountBySlugPrefix(ctx context.Context, prefix string) (int, error) {
	if m.QueryError != nil {
		return 0, m.QueryError
	}
	count := 0
	for _, a := range m.Articles {
		if strings.HasPrefix(a.Slug, prefix) {
			count++
		}
	}
	return count, nil
}

func (m *MockArticleRepository) GetBySlugPrefix(ctx context.Context, prefix string, limit int) ([]*models.Article, error) {
	if m.QueryError != nil {
		return nil, m.QueryError
	}
	var articles []*models.Article
	for _, a := range m.Articles {
		if strings.HasPrefix(a.Slug, prefix) {
			articles = append(articles, a)
		}
	}
	sort.Slice(articles, func(i, j int) bool { return articles[i].Slug < articles[j].Slug })
	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}
	return articles, nil
}

func (m *MockArticleRepository) DeleteBySlugPrefix(ctx context.Context, prefix string) error {
	if m.QueryError != nil {
		return m.QueryError
	}
	for id, a := range m.Articles {
		if strings.HasPrefix(a.Slug, prefix) {
			delete(m.Articles, id)
		}
	}
	return nil
}

func (m *MockArticleRepository) HasCityColumn(ctx context.Context) (bool, error) {
	return m.CityColumn, nil
}

func (m *MockArticleRepository) FindOrphans(ctx context.Context) ([]*models.Article, error) {
	var orphans []*models.Article
	for _, a := range m.Articles {
		if a.CityID == nil {
			continue
		}
		if _, ok := m.Cities.Cities[*a.CityID]; !ok {
			orphans = append(orphans, a)
		}
	}
	sort.Slice(orphans, func(i, j int) bool { return orphans[i].Slug < orphans[j].Slug })
	return orphans, nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id string) error {
	delete(m.Articles, id)
	return nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	return len(m.Articles), nil
}
