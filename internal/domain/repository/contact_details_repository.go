package repository

import (
	"context"

	"infinitybasket/internal/domain/entity"
)

// ContactDetailsRepository manages the contact-details singleton. The
// "at most one row" rule is a convention held at this boundary, not a
// database constraint; concurrent first reads could each create a row.
type ContactDetailsRepository interface {
	// FindOrCreate returns the singleton, creating it with empty values on
	// first access.
	FindOrCreate(ctx context.Context) (*entity.ContactDetails, error)

	// Update saves the full record.
	Update(ctx context.Context, details *entity.ContactDetails) error
}
