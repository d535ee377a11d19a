package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/local-directory-api/internal/database"
	"github.com/local-directory-api/internal/models"
)

// cityRepo is the concrete implementation of CityRepository
type cityRepo struct {
	db *database.DB
}

// NewCityRepo creates a new city repository
func NewCityRepo(db *database.DB) CityRepository {
	return &cityRepo{db: db}
}

// Create inserts a new city
func (r *cityRepo) Create(ctx context.Context, city *models.City) error {
	query := `
		INSERT INTO cities (id, name, state_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		city.ID, city.Name, city.StateID, city.CreatedAt, time.Now(),
	)
	return err
}

// GetByID retrieves a city by ID
func (r *cityRepo) GetByID(ctx context.Context, id string) (*models.City, error) {
	query := `SELECT id, name, state_id, created_at, updated_at FROM cities WHERE id = $1`

	var city models.City
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&city.ID, &city.Name, &city.StateID, &city.CreatedAt, &city.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &city, nil
}

// GetAll retrieves all cities ordered by name
func (r *cityRepo) GetAll(ctx context.Context) ([]*models.City, error) {
	return r.query(ctx, `SELECT id, name, state_id, created_at, updated_at FROM cities ORDER BY name`)
}

// ListByState retrieves all cities belonging to a state
func (r *cityRepo) ListByState(ctx context.Context, stateID string) ([]*models.City, error) {
	return r.query(ctx, `
		SELECT id, name, state_id, created_at, updated_at
		FROM cities WHERE state_id = $1 ORDER BY name
	`, stateID)
}

// FindOrphans returns every city whose state_id does not resolve to an
// existing state. The store does not enforce the reference, so this is a
// best-effort snapshot under concurrent writes.
func (r *cityRepo) FindOrphans(ctx context.Context) ([]*models.City, error) {
	return r.query(ctx, `
		SELECT c.id, c.name, c.state_id, c.created_at, c.updated_at
		FROM cities c
		LEFT JOIN states s ON s.id = c.state_id
		WHERE s.id IS NULL
		ORDER BY c.name
	`)
}

// Exists checks if a city with the given ID exists
func (r *cityRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM cities WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

// Delete removes a city by ID. Deletion is physical and irreversible.
func (r *cityRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM cities WHERE id = $1", id)
	return err
}

// Count returns the total number of cities
func (r *cityRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cities").Scan(&count)
	return count, err
}

func (r *cityRepo) query(ctx context.Context, query string, args ...interface{}) ([]*models.City, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []*models.City
	for rows.Next() {
		var city models.City
		if err := rows.Scan(&city.ID, &city.Name, &city.StateID, &city.CreatedAt, &city.UpdatedAt); err != nil {
			return nil, err
		}
		cities = append(cities, &city)
	}
	return cities, rows.Err()
}
