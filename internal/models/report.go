package models

import (
	"time"
)

// CityPage bundles a city with its listings for the public city route
type CityPage struct {
	City     *City      `json:"city"`
	State    *State     `json:"state,omitempty"`
	Listings []*Listing `json:"listings"`
}

// SlugPrefixReport sizes a slug-class maintenance operation before it runs
type SlugPrefixReport struct {
	Prefix string     `json:"prefix"`
	Count  int        `json:"count"`
	Sample []*Article `json:"sample"`
}

// OrphanArticleSection is the article part of an integrity report. Checked
// is false when the articles.city_id column is absent on the store, in
// which case Reason says so and Articles is empty.
type OrphanArticleSection struct {
	Checked  bool       `json:"checked"`
	Reason   string     `json:"reason,omitempty"`
	Articles []*Article `json:"articles"`
}

// IntegrityReport is a best-effort snapshot of referential violations.
// Concurrent writes during the scan are tolerated; the report is advisory.
type IntegrityReport struct {
	OrphanCities   []*City              `json:"orphan_cities"`
	OrphanListings []*Listing           `json:"orphan_listings"`
	OrphanArticles OrphanArticleSection `json:"orphan_articles"`
	GeneratedAt    time.Time            `json:"generated_at"`
}
