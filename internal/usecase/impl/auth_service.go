// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"infinitybasket/config"
	deliverycontext "infinitybasket/internal/delivery/context"
	"infinitybasket/internal/domain/entity"
	domainerrors "infinitybasket/internal/domain/errors"
	"infinitybasket/internal/domain/repository"
	"infinitybasket/internal/domain/service"
	"infinitybasket/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const resetTokenBytes = 32

// authService implements the AuthUsecase interface.
type authService struct {
	adminRepo     repository.AdminRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	mailer        service.Mailer
	clientBaseURL string
	resetTokenTTL time.Duration
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AdminRepo    repository.AdminRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		adminRepo:     params.AdminRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		mailer:        params.Mailer,
		clientBaseURL: strings.TrimRight(params.Config.Client.BaseURL, "/"),
		resetTokenTTL: params.Config.Auth.ResetTokenTTL,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the admin credentials and issues a bearer token.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	admin, err := srv.adminRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load admin for login")
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.GenerateToken(admin.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate admin token")
	}

	srv.log(ctx).Debug("Admin logged in", slog.Any("adminID", admin.ID))

	return &usecase.LoginOutput{Token: token}, nil
}

// RequestPasswordReset issues a fresh reset token for the single admin
// record and mails its link.
func (srv *authService) RequestPasswordReset(ctx context.Context) error {
	admin, err := srv.adminRepo.Find(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return errors.Wrap(domainerrors.ErrAdminNotFound, "password reset requested with no admin account")
		}

		return errors.Wrap(err, "failed to load admin for password reset")
	}

	rawToken, tokenHash, err := newResetToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	expiry := time.Now().Add(srv.resetTokenTTL)
	if err := srv.adminRepo.SetResetToken(ctx, admin.ID, tokenHash, expiry); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	resetURL := fmt.Sprintf("%s/admin/reset-password/%s", srv.clientBaseURL, rawToken)
	if err := srv.mailer.SendPasswordResetLink(ctx, admin.Email, resetURL); err != nil {
		srv.log(ctx).Error("Failed to send reset link", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrMailDeliveryFailed.WithDetails(err.Error()), "could not send reset email")
	}

	srv.log(ctx).Info("Password reset link issued", slog.Any("adminID", admin.ID))

	return nil
}

// ConfirmPasswordReset consumes a mailed reset token and stores the new
// password.
func (srv *authService) ConfirmPasswordReset(ctx context.Context, input usecase.ConfirmPasswordResetInput) error {
	admin, err := srv.adminRepo.Find(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return errors.Wrap(domainerrors.ErrAdminNotFound, "no admin account exists")
		}

		return errors.Wrap(err, "failed to load admin for password reset")
	}

	tokenHash := hashResetToken(input.Token)
	if admin.ResetTokenHash == "" || admin.ResetTokenHash != tokenHash {
		srv.log(ctx).Warn("Password reset with invalid token")

		return errors.Wrap(domainerrors.ErrUnauthorized.WrapMessage("Invalid or expired reset token"), "reset token mismatch")
	}
	if !admin.ResetTokenValid(time.Now()) {
		srv.log(ctx).Warn("Password reset with expired token")

		return errors.Wrap(domainerrors.ErrUnauthorized.WrapMessage("Invalid or expired reset token"), "reset token expired")
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	// UpdatePassword also clears the consumed token.
	if err := srv.adminRepo.UpdatePassword(ctx, admin.ID, newHash); err != nil {
		return errors.Wrap(err, "failed to store new password")
	}

	if err := srv.mailer.SendPasswordChanged(ctx, admin.Email); err != nil {
		// The password did change; a lost confirmation is not worth failing over.
		srv.log(ctx).Warn("Failed to send password change confirmation", slog.Any("error", err))
	}

	srv.log(ctx).Info("Admin password reset", slog.Any("adminID", admin.ID))

	return nil
}

// ResetPassword verifies the current password before storing the new one.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	admin, err := srv.adminRepo.Find(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return errors.Wrap(domainerrors.ErrAdminNotFound, "no admin account exists")
		}

		return errors.Wrap(err, "failed to load admin for password change")
	}

	if !srv.hasher.Check(input.CurrentPassword, admin.PasswordHash) {
		srv.log(ctx).Warn("Password change with wrong current password", slog.Any("adminID", admin.ID))

		return errors.Wrap(domainerrors.ErrPasswordMismatch, "current password check failed")
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	if err := srv.adminRepo.UpdatePassword(ctx, admin.ID, newHash); err != nil {
		return errors.Wrap(err, "failed to store new password")
	}

	if err := srv.mailer.SendPasswordChanged(ctx, admin.Email); err != nil {
		srv.log(ctx).Warn("Failed to send password change confirmation", slog.Any("error", err))
	}

	srv.log(ctx).Info("Admin password changed", slog.Any("adminID", admin.ID))

	return nil
}

// EnsureAdmin seeds the admin record at startup when it is absent.
func (srv *authService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		srv.logger.Warn("Admin bootstrap credentials not configured, skipping seed")

		return nil
	}

	_, err := srv.adminRepo.Find(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrAdminNotFound) {
		return errors.Wrap(err, "failed to check for existing admin")
	}

	passwordHash, err := srv.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash bootstrap password")
	}

	admin := &entity.Admin{
		Email:        email,
		PasswordHash: passwordHash,
		IsAdmin:      true,
	}

	if err := srv.adminRepo.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "failed to seed admin account")
	}

	srv.logger.Info("Seeded admin account", slog.String("email", email), slog.Any("adminID", admin.ID))

	return nil
}

// newResetToken returns the raw token for the email link and the hash that
// gets stored. Only the hash ever touches the database.
func newResetToken() (rawToken, tokenHash string, err error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "failed to read random bytes")
	}

	rawToken = hex.EncodeToString(buf)

	return rawToken, hashResetToken(rawToken), nil
}

func hashResetToken(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))

	return hex.EncodeToString(sum[:])
}
