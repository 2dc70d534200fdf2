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

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

type addToCartRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	ServiceID   string  `json:"serviceId" validate:"required,uuid"`
	ServiceName string  `json:"serviceName" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Duration    string  `json:"duration"`
	Image       string  `json:"image"`
}

// AddToCart handles POST /carts. A live entry for the same (owner, item)
// pair is a business-level duplicate, reported with success:false, not an
// error status.
func (h *CartHandler) AddToCart(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid service id")
	}

	output, err := h.uc.AddToCart(c.Request().Context(), &usecase.AddToCartInput{
		Email:       req.Email,
		ServiceID:   serviceID,
		ServiceName: req.ServiceName,
		Price:       req.Price,
		Duration:    req.Duration,
		Image:       req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if output.AlreadyInCart {
		return c.JSON(http.StatusOK, map[string]any{
			"message": "Item already in cart",
			"success": false,
		})
	}

	return response.Success(c, http.StatusCreated, output.Entry, "Item added to cart")
}

// ListCart handles GET /carts?email=. The query email must match the
// verified token email; entries are never listed across identities.
func (h *CartHandler) ListCart(c echo.Context) error {
	email := c.QueryParam("email")
	if !middleware.IsSelf(c, email) {
		return middleware.ForbiddenResponse(c)
	}

	entries, err := h.uc.ListCart(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Cart retrieved successfully")
}

// RemoveFromCart handles DELETE /carts/:id.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart entry id")
	}

	if err := h.uc.RemoveFromCart(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"deletedCount": 1}, "Item removed from cart")
}
