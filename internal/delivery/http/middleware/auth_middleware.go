// Package middleware contains HTTP-specific middleware.
package middleware

import (
	"strings"

	"lifeline/internal/delivery/http/response"
	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const keyAccount = "account"

// AuthMiddleware authenticates requests with a Firebase ID token.
type AuthMiddleware struct {
	identitySvc service.IdentityService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identitySvc service.IdentityService) *AuthMiddleware {
	return &AuthMiddleware{identitySvc: identitySvc}
}

// Authenticate validates the Bearer ID token and stores the resolved
// account on the echo context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		account, err := m.identitySvc.VerifyIDToken(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(keyAccount, account)

		return next(c)
	}
}

// GetAccount extracts the authenticated account set by Authenticate.
func GetAccount(c echo.Context) (*entity.Account, bool) {
	account, ok := c.Get(keyAccount).(*entity.Account)

	return account, ok
}
