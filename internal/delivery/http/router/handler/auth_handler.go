// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"belleza/internal/delivery/http/response"
	"belleza/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler issues identity tokens.
type AuthHandler struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(tokenSvc service.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// issueTokenRequest is the POST /jwt payload. The identity arrives
// pre-verified from the upstream sign-in flow; this endpoint only mints
// the token.
type issueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

// issueTokenResponse carries the signed token back to the client.
type issueTokenResponse struct {
	Token string `json:"token"`
}

// IssueToken handles POST /jwt.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req issueTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.tokenSvc.Issue(req.Email, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, issueTokenResponse{Token: token}, "Token issued")
}
