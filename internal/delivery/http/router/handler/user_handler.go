package handler

import (
	"log/slog"
	"net/http"

	"belleza/internal/delivery/http/middleware"
	"belleza/internal/delivery/http/response"
	"belleza/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for identity-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

// RegisterUser handles POST /users. Registration is idempotent: a repeat
// registration reports the existing record without touching it.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if output.AlreadyExists {
		return response.Success(c, http.StatusOK, map[string]any{
			"message":    "User already exists",
			"insertedId": nil,
		}, "User already exists")
	}

	return response.Success(c, http.StatusCreated, output.User, "User registered successfully")
}

// ListUsers handles GET /users. Admin-gated at the route.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// DeleteUser handles DELETE /users/:id. Admin-gated at the route.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"deletedCount": 1}, "User deleted successfully")
}

// CheckAdmin handles GET /users/admin/:email. The path email must match the
// verified token email; a caller can only ask about themselves.
func (h *UserHandler) CheckAdmin(c echo.Context) error {
	email := c.Param("email")
	if !middleware.IsSelf(c, email) {
		return middleware.ForbiddenResponse(c)
	}

	isAdmin, err := h.uc.IsAdmin(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"admin": isAdmin}, "Admin status retrieved")
}

// PromoteToAdmin handles PATCH /users/admin/:id. Admin-gated at the route.
func (h *UserHandler) PromoteToAdmin(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	if err := h.uc.PromoteToAdmin(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"modifiedCount": 1}, "User promoted to admin")
}
