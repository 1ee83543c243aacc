// Package repository defines the persistence contracts the use cases depend
// on, keeping the domain free of storage concerns.
package repository

import (
	"context"
	"time"

	"infinitybasket/internal/domain/entity"
	"infinitybasket/internal/errors"

	"github.com/google/uuid"
)

// ErrAdminNotFound is returned when no admin record matches a lookup.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository manages the single privileged identity.
type AdminRepository interface {
	// Find returns the admin record, of which at most one is expected.
	Find(ctx context.Context) (*entity.Admin, error)

	// FindByEmail returns the admin record matching the given email.
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)

	// Create persists a new admin record (startup seeding only).
	Create(ctx context.Context, admin *entity.Admin) error

	// UpdatePassword replaces the stored password hash and clears any
	// pending reset token.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// SetResetToken stores the one-way hash of a freshly issued reset token
	// together with its expiry.
	SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiry time.Time) error
}
