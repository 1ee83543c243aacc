package usecase

import (
	"context"

	"infinitybasket/internal/domain/entity"
)

// --- Input DTOs ---

// UpdateDetailsInput replaces the public contact details wholesale.
type UpdateDetailsInput struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	MapURL    string `json:"mapUrl"`
	Hours     string `json:"hours"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
}

// ContactFormInput defines the data arriving on the legacy contact relay,
// which emails the admin without persisting anything.
type ContactFormInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// ContactUsecase defines the contact-details operations.
type ContactUsecase interface {
	// GetDetails returns the singleton, creating an empty one on first read.
	GetDetails(ctx context.Context) (*entity.ContactDetails, error)

	// UpdateDetails saves the new values and alerts the admin mailbox when
	// anything actually changed.
	UpdateDetails(ctx context.Context, input UpdateDetailsInput) (*entity.ContactDetails, error)

	// RelayForm forwards a contact form straight to the admin mailbox. It is
	// the older email-only path; the inbox keeps no record of it.
	RelayForm(ctx context.Context, input ContactFormInput) error
}
