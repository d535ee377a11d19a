package service_test

import (
	"context"
	"testing"

	"github.com/local-directory-api/internal/config"
	"github.com/local-directory-api/internal/mocks"
	"github.com/local-directory-api/internal/models"
	"github.com/local-directory-api/internal/repository"
	"github.com/local-directory-api/internal/service"
	"github.com/local-directory-api/internal/slug"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	services *service.Services
	states   *mocks.MockStateRepository
	cities   *mocks.MockCityRepository
	listings *mocks.MockListingRepository
	articles *mocks.MockArticleRepository
}

func setup() *fixture {
	states := mocks.NewMockStateRepository()
	cities := mocks.NewMockCityRepository(states)
	listings := mocks.NewMockListingRepository(cities)
	articles := mocks.NewMockArticleRepository(cities)

	repos := &repository.Repositories{
		State:   states,
		City:    cities,
		Listing: listings,
		Article: articles,
	}

	cfg := &config.Config{
		Site: config.SiteConfig{
			BaseURL:     "https://example.com",
			NichePrefix: "boarding-kennels",
		},
	}

	return &fixture{
		services: service.NewServices(repos, cfg, zerolog.Nop()),
		states:   states,
		cities:   cities,
		listings: listings,
		articles: articles,
	}
}

func TestBulkInsertStatesTrimsAndDedupes(t *testing.T) {
	f := setup()
	ctx := context.Background()

	states, err := f.services.Maintenance.BulkInsertStates(ctx,
		[]string{"Texas", " Texas ", "", "California"})
	require.NoError(t, err)

	require.Len(t, states, 2)
	assert.Equal(t, "Texas", states[0].Name)
	assert.Equal(t, "California", states[1].Name)
	assert.Equal(t, 1, f.states.BatchInsertCalls, "survivors must go in a single batch")
}

func TestBulkInsertStatesEmptySet(t *testing.T) {
	f := setup()

	states, err := f.services.Maintenance.BulkInsertStates(context.Background(),
		[]string{"", "   ", "\t"})
	require.NoError(t, err)
	assert.Empty(t, states)
	assert.Equal(t, 0, f.states.BatchInsertCalls, "an empty set must not reach the store")
}

func TestBulkInsertStatesWholeOperationFailure(t *testing.T) {
	f := setup()
	f.states.InsertError = assert.AnError

	states, err := f.services.Maintenance.BulkInsertStates(context.Background(),
		[]string{"Texas", "California"})
	assert.Error(t, err)
	assert.Nil(t, states)
}

func TestRemoveLegacyArticlesAffectsExactlyLegacySet(t *testing.T) {
	f := setup()
	ctx := context.Background()

	f.articles.Articles["a1"] = &models.Article{ID: "a1", Slug: "about-history"}
	f.articles.Articles["a2"] = &models.Article{ID: "a2", Slug: "about-team"}
	f.articles.Articles["a3"] = &models.Article{ID: "a3", Slug: "regular-article"}
	f.articles.Articles["a4"] = &models.Article{ID: "a4", Slug: "not-about-this"}

	deleted, err := f.services.Maintenance.RemoveLegacyArticles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	// Exactly the legacy class is gone.
	assert.NotContains(t, f.articles.Articles, "a1")
	assert.NotContains(t, f.articles.Articles, "a2")
	assert.Contains(t, f.articles.Articles, "a3")
	assert.Contains(t, f.articles.Articles, "a4")

	// Immediate rerun reports zero.
	deleted, err = f.services.Maintenance.RemoveLegacyArticles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)
}

func TestListLegacyURLsBuildsCanonicalURLs(t *testing.T) {
	f := setup()

	f.articles.Articles["a1"] = &models.Article{ID: "a1", Slug: "about-history"}
	f.articles.Articles["a2"] = &models.Article{ID: "a2", Slug: "regular-article"}

	urls, err := f.services.Maintenance.ListLegacyURLs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/about-history"}, urls)
}

func TestCountBySlugPrefix(t *testing.T) {
	f := setup()

	for i := 0; i < 15; i++ {
		id := string(rune('a'+i)) + "-id"
		f.articles.Articles[id] = &models.Article{ID: id, Slug: "about-" + string(rune('a'+i))}
	}
	f.articles.Articles["other"] = &models.Article{ID: "other", Slug: "plain-article"}

	report, err := f.services.Integrity.CountBySlugPrefix(context.Background(), slug.LegacyPrefix)
	require.NoError(t, err)
	assert.Equal(t, 15, report.Count)
	assert.Len(t, report.Sample, 10, "sample is bounded while count is exact")
}

func TestFindOrphanCities(t *testing.T) {
	f := setup()
	ctx := context.Background()

	f.states.States["s1"] = &models.State{ID: "s1", Name: "Texas"}
	f.cities.Cities["c1"] = &models.City{ID: "c1", Name: "Austin", StateID: "s1"}
	f.cities.Cities["c2"] = &models.City{ID: "c2", Name: "Ghost Town", StateID: "deleted-state"}

	orphans, err := f.services.Integrity.FindOrphanCities(ctx)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, "c2", orphans[0].ID)
}

func TestIntegrityReportSkipsArticlesWithoutCityColumn(t *testing.T) {
	f := setup()
	f.articles.CityColumn = false

	report, err := f.services.Integrity.Report(context.Background())
	require.NoError(t, err)
	assert.False(t, report.OrphanArticles.Checked)
	assert.NotEmpty(t, report.OrphanArticles.Reason)
}

func TestIntegrityReportFindsOrphanArticles(t *testing.T) {
	f := setup()
	ctx := context.Background()

	f.cities.Cities["c1"] = &models.City{ID: "c1", Name: "Austin", StateID: "s1"}
	missing := "gone-city"
	scoped := "c1"
	f.articles.Articles["a1"] = &models.Article{ID: "a1", Slug: "a-one", CityID: &missing}
	f.articles.Articles["a2"] = &models.Article{ID: "a2", Slug: "a-two", CityID: &scoped}
	f.articles.Articles["a3"] = &models.Article{ID: "a3", Slug: "a-three"} // not city-scoped

	report, err := f.services.Integrity.Report(ctx)
	require.NoError(t, err)
	require.True(t, report.OrphanArticles.Checked)
	require.Len(t, report.OrphanArticles.Articles, 1)
	assert.Equal(t, "a1", report.OrphanArticles.Articles[0].ID)
}

func TestCreateArticleDerivesSlug(t *testing.T) {
	f := setup()

	article, err := f.services.Directory.CreateArticle(context.Background(), &models.Article{
		Title:   "Choosing A Boarding Kennel",
		Content: "...",
	})
	require.NoError(t, err)
	assert.Equal(t, "choosing-a-boarding-kennel", article.Slug)
}

func TestCreateArticleDuplicateSlug(t *testing.T) {
	f := setup()
	ctx := context.Background()

	f.articles.Articles["a1"] = &models.Article{ID: "a1", Slug: "choosing-a-boarding-kennel"}

	_, err := f.services.Directory.CreateArticle(ctx, &models.Article{
		Title: "Choosing a Boarding Kennel!",
	})
	assert.ErrorIs(t, err, slug.ErrDuplicateSlug)
}

func TestUpdateArticleKeepsOwnSlug(t *testing.T) {
	f := setup()
	ctx := context.Background()

	f.articles.Articles["a1"] = &models.Article{ID: "a1", Title: "My Guide", Slug: "my-guide"}

	updated, err := f.services.Directory.UpdateArticle(ctx, &models.Article{
		ID:    "a1",
		Title: "My Guide",
	})
	require.NoError(t, err)
	assert.Equal(t, "my-guide", updated.Slug)
}

func TestCreateCityRequiresExistingState(t *testing.T) {
	f := setup()

	_, err := f.services.Directory.CreateCity(context.Background(), "Austin", "no-such-state")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestGetCityPageResolvesBySlug(t *testing.T) {
	f := setup()
	ctx := context.Background()

	f.states.States["s1"] = &models.State{ID: "s1", Name: "New South Wales"}
	f.cities.Cities["c1"] = &models.City{ID: "c1", Name: "Newcastle Upon Tyne", StateID: "s1"}
	featured := true
	f.listings.Listings["l1"] = &models.Listing{ID: "l1", Business: "Happy Paws", CityID: "c1", Featured: &featured}
	f.listings.Listings["l2"] = &models.Listing{ID: "l2", Business: "Budget Kennels", CityID: "c1"}

	page, err := f.services.Directory.GetCityPage(ctx, "newcastle-upon-tyne")
	require.NoError(t, err)
	assert.Equal(t, "c1", page.City.ID)
	require.NotNil(t, page.State)
	assert.Equal(t, "New South Wales", page.State.Name)
	require.Len(t, page.Listings, 2)
	assert.Equal(t, "Happy Paws", page.Listings[0].Business, "featured listing sorts first")
}

func TestGetCityPageNotFound(t *testing.T) {
	f := setup()

	_, err := f.services.Directory.GetCityPage(context.Background(), "atlantis")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestFeaturedTriState(t *testing.T) {
	truthy := true
	falsy := false

	tests := []struct {
		name    string
		listing models.Listing
		want    bool
	}{
		{"explicit true", models.Listing{Featured: &truthy}, true},
		{"explicit false", models.Listing{Featured: &falsy}, false},
		{"absent", models.Listing{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.listing.IsFeatured())
		})
	}
}
