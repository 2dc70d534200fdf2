package usecase

import (
	"context"

	"belleza/internal/domain/entity"

	"github.com/google/uuid"
)

// AddServiceItemInput defines the data required to add one catalog item
// under a category.
type AddServiceItemInput struct {
	Category    string
	Name        string
	Price       float64
	Description string
	Duration    string
	Popular     bool
	Image       string
}

// CatalogUsecase defines the service catalog operations.
type CatalogUsecase interface {
	// ListCatalog returns every catalog item grouped by category.
	ListCatalog(ctx context.Context) ([]*entity.ServiceCategory, error)

	// AddItem inserts a new item and returns the updated item list of its
	// category. Admin-gated at the route.
	AddItem(ctx context.Context, input *AddServiceItemInput) ([]*entity.ServiceItem, error)

	// RemoveItem deletes an item by id. Admin-gated at the route.
	RemoveItem(ctx context.Context, id uuid.UUID) error
}
