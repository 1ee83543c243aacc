package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"infinitybasket/internal/domain/entity"
	domainerrors "infinitybasket/internal/domain/errors"
	"infinitybasket/internal/domain/repository"
	mockRepo "infinitybasket/internal/mocks/repository"
	mockSvc "infinitybasket/internal/mocks/service"
	"infinitybasket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthService(
	adminRepo *mockRepo.MockAdminRepository,
	hasher *mockSvc.MockPasswordHasher,
	tokenService *mockSvc.MockTokenService,
	mailer *mockSvc.MockMailer,
) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		AdminRepo:    adminRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Mailer:       mailer,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
}

func TestAuthService_Login_Success(t *testing.T) {
	adminRepo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthService(adminRepo, hasher, tokenService, mailer)

	ctx := context.Background()
	adminID := uuid.New()
	admin := &entity.Admin{ID: adminID, Email: "owner@example.com", PasswordHash: "hashed"}

	adminRepo.On("FindByEmail", ctx, "owner@example.com").Return(admin, nil)
	hasher.On("Check", "secretpw", "hashed").Return(true)
	tokenService.On("GenerateToken", adminID).Return("signed-token", nil)

	out, err := service.Login(ctx, usecase.LoginInput{Email: "owner@example.com", Password: "secretpw"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	adminRepo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthService(adminRepo, hasher, tokenService, mailer)

	ctx := context.Background()

	adminRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrAdminNotFound)

	out, err := service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	adminRepo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthService(adminRepo, hasher, tokenService, mailer)

	ctx := context.Background()
	admin := &entity.Admin{ID: uuid.New(), Email: "owner@example.com", PasswordHash: "hashed"}

	adminRepo.On("FindByEmail", ctx, "owner@example.com").Return(admin, nil)
	hasher.On("Check", "wrong", "hashed").Return(false)

	out, err := service.Login(ctx, usecase.LoginInput{Email: "owner@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_RequestPasswordReset_StoresHashAndMailsRawToken(t *testing.T) {
	adminRepo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthService(adminRepo, hasher, tokenService, mailer)

	ctx := context.Background()
	adminID := uuid.New()
	admin := &entity.Admin{ID: adminID, Email: "owner@example.com"}

	var storedHash string
	var mailedURL string

	adminRepo.On("Find", ctx).Return(admin, nil)
	adminRepo.On("SetResetToken", ctx, adminID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			storedHash = args.String(2)
		}).
		Return(nil)
	mailer.On("SendPasswordResetLink", ctx, "owner@example.com", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			mailedURL = args.String(2)
		}).
		Return(nil)

	err := service.RequestPasswordReset(ctx)
	require.NoError(t, err)

	// The link carries the raw token; only its hash was stored.
	prefix := "https://shop.example.com/admin/reset-password/"
	require.True(t, strings.HasPrefix(mailedURL, prefix))
	rawToken := strings.TrimPrefix(mailedURL, prefix)
	assert.Len(t, rawToken, 64)

	sum := sha256.Sum256([]byte(rawToken))
	assert.Equal(t, hex.EncodeToString(sum[:]), storedHash)
	assert.NotEqual(t, rawToken, storedHash)
}

func TestAuthService_RequestPasswordReset_NoAdmin(t *testing.T) {
	adminRepo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthService(adminRepo, hasher, tokenService, mailer)

	ctx := context.Background()

	adminRepo.On("Find", ctx).Return(nil, repository.ErrAdminNotFound)

	err := service.RequestPasswordReset(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAdminNotFound))
}

func TestAuthService_ConfirmPasswordReset_Success(t *testing.T) {
	adminRepo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthService(adminRepo, hasher, tokenService, mailer)

	ctx := context.Background()
	adminID := uuid.New()
	rawToken := "deadbeef"
	sum := sha256.Sum256([]byte(rawToken))
	expiry := time.Now().Add(30 * time.Minute)
	admin := &entity.Admin{
		ID:               adminID,
		Email:            "owner@example.com",
		ResetTokenHash:   hex.EncodeToString(sum[:]),
		ResetTokenExpiry: &expiry,
	}

	adminRepo.On("Find", ctx).Return(admin, nil)
	hasher.On("Hash", "brand-new-pw").Return("new-hash", nil)
	adminRepo.On("UpdatePassword", ctx, adminID, "new-hash").Return(nil)
	mailer.On("SendPasswordChanged", ctx, "owner@example.com").Return(nil)

	err := service.ConfirmPasswordReset(ctx, usecase.ConfirmPasswordResetInput{Token: rawToken, NewPassword: "brand-new-pw"})
	require.NoError(t, err)
}

func TestAuthService_ConfirmPasswordReset_InvalidToken(t *testing.T) {
	adminRepo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthService(adminRepo, hasher, tokenService, mailer)

	ctx := context.Background()
	sum := sha256.Sum256([]byte("the-real-token"))
	expiry := time.Now().Add(30 * time.Minute)
	admin := &entity.Admin{
		ID:               uuid.New(),
		ResetTokenHash:   hex.EncodeToString(sum[:]),
		ResetTokenExpiry: &expiry,
	}

	adminRepo.On("Find", ctx).Return(admin, nil)

	err := service.ConfirmPasswordReset(ctx, usecase.ConfirmPasswordResetInput{Token: "a-forged-token", NewPassword: "whatever123"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_ConfirmPasswordReset_ExpiredToken(t *testing.T) {
	adminRepo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthService(adminRepo, hasher, tokenService, mailer)

	ctx := context.Background()
	rawToken := "deadbeef"
	sum := sha256.Sum256([]byte(rawToken))
	expiry := time.Now().Add(-time.Minute)
	admin := &entity.Admin{
		ID:               uuid.New(),
		ResetTokenHash:   hex.EncodeToString(sum[:]),
		ResetTokenExpiry: &expiry,
	}

	adminRepo.On("Find", ctx).Return(admin, nil)

	err := service.ConfirmPasswordReset(ctx, usecase.ConfirmPasswordResetInput{Token: rawToken, NewPassword: "whatever123"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_ResetPassword_WrongCurrent(t *testing.T) {
	adminRepo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthService(adminRepo, hasher, tokenService, mailer)

	ctx := context.Background()
	admin := &entity.Admin{ID: uuid.New(), Email: "owner@example.com", PasswordHash: "hashed"}

	adminRepo.On("Find", ctx).Return(admin, nil)
	hasher.On("Check", "not-current", "hashed").Return(false)

	err := service.ResetPassword(ctx, usecase.ResetPasswordInput{CurrentPassword: "not-current", NewPassword: "replacement"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	adminRepo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthService(adminRepo, hasher, tokenService, mailer)

	ctx := context.Background()
	adminID := uuid.New()
	admin := &entity.Admin{ID: adminID, Email: "owner@example.com", PasswordHash: "hashed"}

	adminRepo.On("Find", ctx).Return(admin, nil)
	hasher.On("Check", "current-pw", "hashed").Return(true)
	hasher.On("Hash", "replacement").Return("new-hash", nil)
	adminRepo.On("UpdatePassword", ctx, adminID, "new-hash").Return(nil)
	mailer.On("SendPasswordChanged", ctx, "owner@example.com").Return(nil)

	err := service.ResetPassword(ctx, usecase.ResetPasswordInput{CurrentPassword: "current-pw", NewPassword: "replacement"})
	require.NoError(t, err)
}

func TestAuthService_EnsureAdmin_SeedsWhenAbsent(t *testing.T) {
	adminRepo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthService(adminRepo, hasher, tokenService, mailer)

	ctx := context.Background()

	adminRepo.On("Find", ctx).Return(nil, repository.ErrAdminNotFound)
	hasher.On("Hash", "bootstrap-pw").Return("boot-hash", nil)
	adminRepo.On("Create", ctx, mock.MatchedBy(func(admin *entity.Admin) bool {
		return admin.Email == "owner@example.com" && admin.PasswordHash == "boot-hash" && admin.IsAdmin
	})).Return(nil)

	err := service.EnsureAdmin(ctx, "owner@example.com", "bootstrap-pw")
	require.NoError(t, err)
}

func TestAuthService_EnsureAdmin_SkipsWhenPresent(t *testing.T) {
	adminRepo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthService(adminRepo, hasher, tokenService, mailer)

	ctx := context.Background()

	adminRepo.On("Find", ctx).Return(&entity.Admin{ID: uuid.New()}, nil)

	err := service.EnsureAdmin(ctx, "owner@example.com", "bootstrap-pw")
	require.NoError(t, err)
	adminRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
