// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// LoginInput defines the credentials required for the admin to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordInput carries the current and replacement passwords for the
// authenticated self-service change.
type ResetPasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// ConfirmPasswordResetInput carries a raw mailed reset token and the
// replacement password.
type ConfirmPasswordResetInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// --- Output DTOs ---

// LoginOutput returns the bearer token issued on successful login.
type LoginOutput struct {
	Token string `json:"token"`
}

// AuthUsecase defines the admin authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// RequestPasswordReset locates the single admin record, issues a reset
	// link valid for one hour and mails it to the admin address. It takes no
	// input; the client posts an empty body.
	RequestPasswordReset(ctx context.Context) error

	// ResetPassword verifies the current password before storing the new one.
	ResetPassword(ctx context.Context, input ResetPasswordInput) error

	// ConfirmPasswordReset consumes a mailed reset token and stores the new
	// password.
	ConfirmPasswordReset(ctx context.Context, input ConfirmPasswordResetInput) error

	// EnsureAdmin seeds the admin record at startup when it is absent.
	EnsureAdmin(ctx context.Context, email, password string) error
}
