package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/local-directory-api/internal/database"
	"github.com/local-directory-api/internal/models"
)

const articleColumns = `id, title, content, slug, featured_image, published,
	city_id, created_at, updated_at`

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// Create inserts a new article
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	query := `
		INSERT INTO articles (id, title, content, slug, featured_image, published, city_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Content, article.Slug,
		article.FeaturedImage, article.Published, article.CityID,
		article.CreatedAt, time.Now(),
	)
	return err
}

// Update replaces the mutable fields of an article
func (r *articleRepo) Update(ctx context.Context, article *models.Article) error {
	query := `
		UPDATE articles
		SET title = $2, content = $3, slug = $4, featured_image = $5,
			published = $6, city_id = $7, updated_at = $8
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Content, article.Slug,
		article.FeaturedImage, article.Published, article.CityID, time.Now(),
	)
	return err
}

// GetByID retrieves an article by ID
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	return r.scanOne(row)
}

// GetBySlug retrieves an article by its canonical slug
func (r *articleRepo) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM articles WHERE slug = $1`, slug)
	return r.scanOne(row)
}

// SlugExists checks if an article with the given slug exists
func (r *articleRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1)", slug).Scan(&exists)
	return exists, err
}

// List retrieves articles, optionally restricted to published ones
func (r *articleRepo) List(ctx context.Context, publishedOnly bool) ([]*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles ORDER BY created_at DESC`
	if publishedOnly {
		query = `SELECT ` + articleColumns + ` FROM articles WHERE published ORDER BY created_at DESC`
	}
	return r.query(ctx, query)
}

// CountBySlugPrefix counts articles whose slug starts with prefix. Read-only,
// so an operator can size a bulk removal before committing to it.
func (r *articleRepo) CountBySlugPrefix(ctx context.Context, prefix string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM articles WHERE slug LIKE $1 || '%'", prefix,
	).Scan(&count)
	return count, err
}

// GetBySlugPrefix retrieves articles whose slug starts with prefix,
// capped at limit when limit is positive
func (r *articleRepo) GetBySlugPrefix(ctx context.Context, prefix string, limit int) ([]*models.Article, error) {
	if limit > 0 {
		return r.query(ctx, `
			SELECT `+articleColumns+`
			FROM articles WHERE slug LIKE $1 || '%'
			ORDER BY slug LIMIT $2
		`, prefix, limit)
	}
	return r.query(ctx, `
		SELECT `+articleColumns+`
		FROM articles WHERE slug LIKE $1 || '%'
		ORDER BY slug
	`, prefix)
}

// DeleteBySlugPrefix removes every article whose slug starts with prefix.
// The store acks without an affected count, so callers that need a figure
// must count first.
func (r *articleRepo) DeleteBySlugPrefix(ctx context.Context, prefix string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE slug LIKE $1 || '%'", prefix)
	return err
}

// HasCityColumn probes whether the articles table carries city_id yet
func (r *articleRepo) HasCityColumn(ctx context.Context) (bool, error) {
	return r.db.HasColumn(ctx, "articles", "city_id")
}

// FindOrphans returns every city-scoped article whose city_id does not
// resolve to an existing city. Callers must probe HasCityColumn first;
// stores without the column make this query fail.
func (r *articleRepo) FindOrphans(ctx context.Context) ([]*models.Article, error) {
	return r.query(ctx, `
		SELECT a.id, a.title, a.content, a.slug, a.featured_image, a.published,
			a.city_id, a.created_at, a.updated_at
		FROM articles a
		LEFT JOIN cities c ON c.id = a.city_id
		WHERE a.city_id IS NOT NULL AND c.id IS NULL
		ORDER BY a.slug
	`)
}

// Delete removes an article by ID
func (r *articleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id)
	return err
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

func (r *articleRepo) scanOne(row *sql.Row) (*models.Article, error) {
	article, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

func (r *articleRepo) query(ctx context.Context, query string, args ...interface{}) ([]*models.Article, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func scanArticle(row rowScanner) (*models.Article, error) {
	var article models.Article
	var featuredImage sql.NullString
	var cityID sql.NullString

	err := row.Scan(
		&article.ID, &article.Title, &article.Content, &article.Slug,
		&featuredImage, &article.Published, &cityID,
		&article.CreatedAt, &article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if featuredImage.Valid {
		article.FeaturedImage = &featuredImage.String
	}
	if cityID.Valid {
		article.CityID = &cityID.String
	}
	return &article, nil
}
