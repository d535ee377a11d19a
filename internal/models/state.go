package models

import (
	"time"
)

// State represents a top-level region in the directory hierarchy.
// Name is not guaranteed unique by the store but is treated as the
// canonical key for human lookup.
type State struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
