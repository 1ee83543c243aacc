// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin is the single privileged identity of the site. Exactly one row is
// expected to exist in normal operation; it is seeded at startup from
// configuration when absent. There is no convention-level enforcement beyond
// that, so a concurrent first boot of two instances could in theory create
// two rows.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"`

	// ResetTokenHash holds the SHA-256 hex digest of the raw password reset
	// token last issued; the raw token is only ever sent by email. Both
	// fields are empty when no reset is pending or the window has lapsed.
	ResetTokenHash   string     `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ResetTokenValid reports whether a reset token is pending and unexpired at t.
func (a *Admin) ResetTokenValid(t time.Time) bool {
	return a.ResetTokenHash != "" && a.ResetTokenExpiry != nil && t.Before(*a.ResetTokenExpiry)
}
