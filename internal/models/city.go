package models

import (
	"time"
)

// City belongs to exactly one State. The store does not enforce the
// reference; the integrity checker detects violations after the fact.
type City struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	StateID   string    `json:"state_id" db:"state_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
