package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/local-directory-api/internal/database"
	"github.com/local-directory-api/internal/models"
)

// stateRepo is the concrete implementation of StateRepository
type stateRepo struct {
	db *database.DB
}

// NewStateRepo creates a new state repository
func NewStateRepo(db *database.DB) StateRepository {
	return &stateRepo{db: db}
}

// Create inserts a new state
func (r *stateRepo) Create(ctx context.Context, state *models.State) error {
	query := `
		INSERT INTO states (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query,
		state.ID, state.Name, state.CreatedAt, time.Now(),
	)
	return err
}

// BatchInsert inserts multiple states in one PostgreSQL COPY. Any row
// failure aborts the whole batch; the store's error is returned as-is so
// callers can surface its detail.
func (r *stateRepo) BatchInsert(ctx context.Context, states []*models.State) (int, error) {
	if len(states) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("states",
		"id", "name", "created_at", "updated_at",
	))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	now := time.Now()
	for _, state := range states {
		if _, err := stmt.ExecContext(ctx, state.ID, state.Name, state.CreatedAt, now); err != nil {
			return 0, err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return len(states), nil
}

// GetByID retrieves a state by ID
func (r *stateRepo) GetByID(ctx context.Context, id string) (*models.State, error) {
	query := `SELECT id, name, created_at, updated_at FROM states WHERE id = $1`

	var state models.State
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&state.ID, &state.Name, &state.CreatedAt, &state.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// GetAll retrieves all states ordered by name
func (r *stateRepo) GetAll(ctx context.Context) ([]*models.State, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at, updated_at FROM states ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var states []*models.State
	for rows.Next() {
		var state models.State
		if err := rows.Scan(&state.ID, &state.Name, &state.CreatedAt, &state.UpdatedAt); err != nil {
			return nil, err
		}
		states = append(states, &state)
	}
	return states, rows.Err()
}

// NameExists checks if a state with the given name exists
func (r *stateRepo) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM states WHERE name = $1)", name).Scan(&exists)
	return exists, err
}

// Exists checks if a state with the given ID exists
func (r *stateRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM states WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

// Count returns the total number of states
func (r *stateRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM states").Scan(&count)
	return count, err
}
