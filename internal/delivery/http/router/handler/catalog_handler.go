package handler

import (
	"log/slog"
	"net/http"

	"belleza/internal/delivery/http/response"
	"belleza/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for service catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCatalog handles GET /data: the public catalog, grouped by category.
func (h *CatalogHandler) ListCatalog(c echo.Context) error {
	categories, err := h.uc.ListCatalog(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Catalog retrieved successfully")
}

type addItemRequest struct {
	Category    string  `json:"category" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description"`
	Duration    string  `json:"duration"`
	Popular     bool    `json:"popular"`
	Image       string  `json:"image"`
}

// AddItem handles POST /addData. Admin-gated at the route; responds with
// the updated item list of the touched category.
func (h *CatalogHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid catalog item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	items, err := h.uc.AddItem(c.Request().Context(), &usecase.AddServiceItemInput{
		Category:    req.Category,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Duration:    req.Duration,
		Popular:     req.Popular,
		Image:       req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, items, "Service item added")
}

// RemoveItem handles DELETE /deleteData/:id. Admin-gated at the route.
func (h *CatalogHandler) RemoveItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid service item id")
	}

	if err := h.uc.RemoveItem(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Service item deleted")
}
