package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by an admin token.
type Claims struct {
	AdminID uuid.UUID `json:"id"`
	Admin   bool      `json:"isAdmin"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying admin tokens.
// A token stays valid for its full lifetime once issued; there is no
// revocation list, which bounds the blast radius of a leak to the token TTL.
type TokenService interface {
	// GenerateToken issues a signed token for the given admin identity.
	GenerateToken(adminID uuid.UUID) (string, error)

	// ValidateToken verifies signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)
}
