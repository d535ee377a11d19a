package models

import (
	"time"
)

// Listing represents a business listed under a City.
type Listing struct {
	ID              string    `json:"id" db:"id"`
	Business        string    `json:"business" db:"business"`
	Category        string    `json:"category" db:"category"`
	ReviewRating    float64   `json:"review_rating" db:"review_rating"`
	NumberOfReviews int       `json:"number_of_reviews" db:"number_of_reviews"`
	Address         string    `json:"address" db:"address"`
	Website         string    `json:"website" db:"website"`
	Phone           string    `json:"phone" db:"phone"`
	Email           *string   `json:"email,omitempty" db:"email"`
	CityID          string    `json:"city_id" db:"city_id"`
	Featured        *bool     `json:"featured" db:"featured"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// IsFeatured treats the nullable featured flag explicitly: only a stored
// true counts. Absent (null) and false are both not featured.
func (l *Listing) IsFeatured() bool {
	return l.Featured != nil && *l.Featured
}
