package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"belleza/internal/domain/entity"
	"belleza/internal/domain/repository"
	"belleza/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTokenService verifies a single known token string.
type stubTokenService struct {
	validToken string
	claims     *service.Claims
}

func (s *stubTokenService) Issue(email, name string) (string, error) {
	return s.validToken, nil
}

func (s *stubTokenService) Verify(token string) (*service.Claims, error) {
	if token == s.validToken {
		return s.claims, nil
	}

	return nil, errors.New("token is invalid")
}

// stubUserRepo serves a fixed set of users keyed by email.
type stubUserRepo struct {
	users map[string]*entity.User
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if user, ok := s.users[email]; ok {
		return user, nil
	}

	return nil, repository.ErrUserNotFound
}

func (s *stubUserRepo) FindByID(context.Context, uuid.UUID) (*entity.User, error) {
	return nil, repository.ErrUserNotFound
}

func (s *stubUserRepo) FindAll(context.Context) ([]*entity.User, error) { return nil, nil }

func (s *stubUserRepo) Create(context.Context, *entity.User) error { return nil }

func (s *stubUserRepo) UpdateRole(context.Context, uuid.UUID, entity.Role) error { return nil }

func (s *stubUserRepo) Delete(context.Context, uuid.UUID) error { return nil }

func (s *stubUserRepo) Count(context.Context) (int64, error) { return 0, nil }

func newTestAuthMiddleware(adminEmail string) *AuthMiddleware {
	users := map[string]*entity.User{
		"lina@example.com": {Email: "lina@example.com", Role: entity.RoleMember},
	}
	if adminEmail != "" {
		users[adminEmail] = &entity.User{Email: adminEmail, Role: entity.RoleAdmin}
	}

	tokenSvc := &stubTokenService{
		validToken: "good-token",
		claims:     &service.Claims{Email: "lina@example.com", Name: "Lina"},
	}

	return NewAuthMiddleware(tokenSvc, &stubUserRepo{users: users})
}

func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "passed")
	}
	require.NoError(t, mw(next)(c))

	return rec
}

func TestAuthenticate_RejectsWithUniform401(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		authHeader string
	}{
		{name: "missing header", authHeader: ""},
		{name: "missing bearer prefix", authHeader: "good-token"},
		{name: "empty bearer token", authHeader: "Bearer "},
		{name: "unknown token", authHeader: "Bearer forged-token"},
	}

	m := newTestAuthMiddleware("")
	var bodies []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runMiddleware(t, m.Authenticate, tt.authHeader)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "unauthorized access")
			bodies = append(bodies, rec.Body.String())
		})
	}

	// Every rejection reads identically; the body never reveals which
	// check failed.
	for i := 1; i < len(bodies); i++ {
		assert.Equal(t, bodies[0], bodies[i])
	}
}

func TestAuthenticate_AcceptsValidToken(t *testing.T) {
	t.Parallel()

	m := newTestAuthMiddleware("")
	rec := runMiddleware(t, m.Authenticate, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "passed", rec.Body.String())
}

func TestAuthenticate_StoresVerifiedIdentity(t *testing.T) {
	t.Parallel()

	m := newTestAuthMiddleware("")
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenEmail string
	next := func(c echo.Context) error {
		seenEmail = VerifiedEmail(c)

		return c.NoContent(http.StatusOK)
	}
	require.NoError(t, m.Authenticate(next)(c))

	assert.Equal(t, "lina@example.com", seenEmail)
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		adminEmail string
		wantStatus int
	}{
		{name: "member is forbidden", adminEmail: "", wantStatus: http.StatusForbidden},
		{name: "admin passes", adminEmail: "lina@example.com", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newTestAuthMiddleware(tt.adminEmail)
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer good-token")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			chained := m.Authenticate(m.RequireAdmin(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}))
			require.NoError(t, chained(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusForbidden {
				assert.Contains(t, rec.Body.String(), "forbidden access")
			}
		})
	}
}

func TestRequireAdmin_WithoutAuthenticateIsForbidden(t *testing.T) {
	t.Parallel()

	m := newTestAuthMiddleware("boss@example.com")
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// No verified email on the context; the role check cannot pass.
	handler := m.RequireAdmin(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestIsSelf(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set(ContextKeyUserEmail, "lina@example.com")

	assert.True(t, IsSelf(c, "lina@example.com"))
	assert.False(t, IsSelf(c, "other@example.com"))
	assert.False(t, IsSelf(c, ""))
}
