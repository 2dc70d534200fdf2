package handler

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"belleza/internal/delivery/http/middleware"
	"belleza/internal/domain/entity"
	"belleza/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserUsecase answers the admin check from a fixed set.
type stubUserUsecase struct {
	admins map[string]bool
}

func (s *stubUserUsecase) RegisterUser(context.Context, *usecase.RegisterUserInput) (*usecase.RegisterUserOutput, error) {
	return &usecase.RegisterUserOutput{}, nil
}

func (s *stubUserUsecase) ListUsers(context.Context) ([]*entity.User, error) { return nil, nil }

func (s *stubUserUsecase) DeleteUser(context.Context, uuid.UUID) error { return nil }

func (s *stubUserUsecase) PromoteToAdmin(context.Context, uuid.UUID) error { return nil }

func (s *stubUserUsecase) IsAdmin(_ context.Context, email string) (bool, error) {
	return s.admins[email], nil
}

func TestUserHandler_CheckAdmin_RejectsForeignEmail(t *testing.T) {
	t.Parallel()

	// Even an admin may only ask about themselves; the path email must
	// match the verified token email.
	uc := &stubUserUsecase{admins: map[string]bool{"other@example.com": true}}
	h := NewUserHandler(uc, slog.Default())

	c, rec := newHandlerTestContext(t, http.MethodGet, "/users/admin/other@example.com", "")
	c.SetParamNames("email")
	c.SetParamValues("other@example.com")
	c.Set(middleware.ContextKeyUserEmail, "lina@example.com")

	require.NoError(t, h.CheckAdmin(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "forbidden access")
}

func TestUserHandler_CheckAdmin_Self(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email string
		want  string
	}{
		{name: "admin identity", email: "boss@example.com", want: `"admin":true`},
		{name: "member identity", email: "lina@example.com", want: `"admin":false`},
	}

	uc := &stubUserUsecase{admins: map[string]bool{"boss@example.com": true}}
	h := NewUserHandler(uc, slog.Default())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, rec := newHandlerTestContext(t, http.MethodGet, "/users/admin/"+tt.email, "")
			c.SetParamNames("email")
			c.SetParamValues(tt.email)
			c.Set(middleware.ContextKeyUserEmail, tt.email)

			require.NoError(t, h.CheckAdmin(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}
