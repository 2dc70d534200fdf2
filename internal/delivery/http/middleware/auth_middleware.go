// Package middleware contains the HTTP middleware chain: request ids,
// authentication, authorization and error handling.
package middleware

import (
	"strings"

	"belleza/internal/delivery/http/response"
	"belleza/internal/domain/repository"
	"belleza/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream middleware and handlers.
const (
	ContextKeyUserEmail = "userEmail"
	ContextKeyUserName  = "userName"
)

const (
	unauthorizedCode    = "UNAUTHORIZED_ACCESS"
	unauthorizedMessage = "unauthorized access"
	forbiddenCode       = "FORBIDDEN_ACCESS"
	forbiddenMessage    = "forbidden access"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and stores the verified identity
// on the context. Every failure mode (missing header, malformed token, bad
// signature, expiry) yields the same 401 body; the caller learns nothing
// about which check failed.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, unauthorizedCode, unauthorizedMessage)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, unauthorizedCode, unauthorizedMessage)
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, unauthorizedCode, unauthorizedMessage)
		}

		c.Set(ContextKeyUserEmail, claims.Email)
		c.Set(ContextKeyUserName, claims.Name)

		return next(c)
	}
}

// RequireAdmin checks the admin role against the user store, keyed by the
// VERIFIED token email, never by anything the caller supplied. An unknown
// or non-admin identity gets a 403. Must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		email := VerifiedEmail(c)
		if email == "" {
			return response.Forbidden(c, forbiddenCode, forbiddenMessage)
		}

		user, err := m.userRepo.FindByEmail(c.Request().Context(), email)
		if err != nil || !user.IsAdmin() {
			return response.Forbidden(c, forbiddenCode, forbiddenMessage)
		}

		return next(c)
	}
}

// VerifiedEmail returns the token email set by Authenticate, or "".
func VerifiedEmail(c echo.Context) string {
	email, _ := c.Get(ContextKeyUserEmail).(string)

	return email
}

// IsSelf reports whether email matches the verified token email. Routes
// exposing per-owner records use it to reject cross-identity reads.
func IsSelf(c echo.Context, email string) bool {
	return email != "" && email == VerifiedEmail(c)
}

// ForbiddenResponse writes the uniform 403 body.
func ForbiddenResponse(c echo.Context) error {
	return response.Forbidden(c, forbiddenCode, forbiddenMessage)
}
