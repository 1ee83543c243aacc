package entity

import (
	"time"

	"github.com/google/uuid"
)

// Featured set bounds. A toggle that would push the number of featured
// products outside this closed range is rejected.
const (
	MinFeaturedProducts = 4
	MaxFeaturedProducts = 6
)

// Product is a catalog entry. Images holds the public URLs returned by the
// external image host, in display order; raw bytes are never stored.
// SortOrder drives the catalog and admin-table display sequence, ties broken
// by array position on the client.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Images      []string  `json:"images"`
	Featured    bool      `json:"featured"`
	SortOrder   int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
