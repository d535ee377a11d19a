package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/local-directory-api/internal/database"
	"github.com/local-directory-api/internal/models"
)

const listingColumns = `id, business, category, review_rating, number_of_reviews,
	address, website, phone, email, city_id, featured, created_at, updated_at`

// listingRepo is the concrete implementation of ListingRepository
type listingRepo struct {
	db *database.DB
}

// NewListingRepo creates a new listing repository
func NewListingRepo(db *database.DB) ListingRepository {
	return &listingRepo{db: db}
}

// Create inserts a new listing
func (r *listingRepo) Create(ctx context.Context, listing *models.Listing) error {
	query := `
		INSERT INTO listings (id, business, category, review_rating, number_of_reviews,
			address, website, phone, email, city_id, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.ExecContext(ctx, query,
		listing.ID, listing.Business, listing.Category, listing.ReviewRating,
		listing.NumberOfReviews, listing.Address, listing.Website, listing.Phone,
		listing.Email, listing.CityID, listing.Featured,
		listing.CreatedAt, time.Now(),
	)
	return err
}

// Update replaces the mutable fields of a listing
func (r *listingRepo) Update(ctx context.Context, listing *models.Listing) error {
	query := `
		UPDATE listings
		SET business = $2, category = $3, review_rating = $4, number_of_reviews = $5,
			address = $6, website = $7, phone = $8, email = $9, city_id = $10,
			featured = $11, updated_at = $12
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		listing.ID, listing.Business, listing.Category, listing.ReviewRating,
		listing.NumberOfReviews, listing.Address, listing.Website, listing.Phone,
		listing.Email, listing.CityID, listing.Featured, time.Now(),
	)
	return err
}

// GetByID retrieves a listing by ID
func (r *listingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = $1`, id)

	listing, err := scanListing(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return listing, nil
}

// ListByCity retrieves all listings for a city, featured first then by rating
func (r *listingRepo) ListByCity(ctx context.Context, cityID string) ([]*models.Listing, error) {
	return r.query(ctx, `
		SELECT `+listingColumns+`
		FROM listings WHERE city_id = $1
		ORDER BY featured DESC NULLS LAST, review_rating DESC
	`, cityID)
}

// FindOrphans returns every listing whose city_id does not resolve to an
// existing city.
func (r *listingRepo) FindOrphans(ctx context.Context) ([]*models.Listing, error) {
	return r.query(ctx, `
		SELECT l.id, l.business, l.category, l.review_rating, l.number_of_reviews,
			l.address, l.website, l.phone, l.email, l.city_id, l.featured,
			l.created_at, l.updated_at
		FROM listings l
		LEFT JOIN cities c ON c.id = l.city_id
		WHERE c.id IS NULL
		ORDER BY l.business
	`)
}

// Delete removes a listing by ID
func (r *listingRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM listings WHERE id = $1", id)
	return err
}

// Count returns the total number of listings
func (r *listingRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM listings").Scan(&count)
	return count, err
}

func (r *listingRepo) query(ctx context.Context, query string, args ...interface{}) ([]*models.Listing, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*models.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanListing(row rowScanner) (*models.Listing, error) {
	var listing models.Listing
	var email sql.NullString
	var featured sql.NullBool

	err := row.Scan(
		&listing.ID, &listing.Business, &listing.Category, &listing.ReviewRating,
		&listing.NumberOfReviews, &listing.Address, &listing.Website, &listing.Phone,
		&email, &listing.CityID, &featured, &listing.CreatedAt, &listing.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if email.Valid {
		listing.Email = &email.String
	}
	if featured.Valid {
		listing.Featured = &featured.Bool
	}
	return &listing, nil
}
