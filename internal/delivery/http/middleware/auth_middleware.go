package middleware

import (
	"strings"

	deliverycontext "infinitybasket/internal/delivery/context"
	domainerrors "infinitybasket/internal/domain/errors"
	"infinitybasket/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards the back-office routes with JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// RequireAdmin validates the bearer token and requires the admin claim.
// Rejections all surface as 401 through the shared error handler.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthorized.WithDetails("Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("Invalid or expired token")
		}

		if !claims.Admin {
			return domainerrors.ErrUnauthorized.WithDetails("Admin privileges required")
		}

		// Expose the admin identity to handlers
		deliverycontext.SetAdminID(c, claims.AdminID)

		return next(c)
	}
}
