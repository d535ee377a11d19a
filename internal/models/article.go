package models

import (
	"time"
)

// Article is an editorial page. Slug is unique across all articles and is
// the article's canonical URL key. CityID is nullable: articles may or may
// not be scoped to a city, and the column itself may be missing on stores
// whose schema lags behind the code.
type Article struct {
	ID            string    `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Content       string    `json:"content" db:"content"`
	Slug          string    `json:"slug" db:"slug"`
	FeaturedImage *string   `json:"featured_image,omitempty" db:"featured_image"`
	Published     bool      `json:"published" db:"published"`
	CityID        *string   `json:"city_id,omitempty" db:"city_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
