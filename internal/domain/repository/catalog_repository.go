package repository

import (
	"context"
	"errors"

	"belleza/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrServiceItemNotFound is returned when a catalog item id does not resolve.
var ErrServiceItemNotFound = errors.New("service item not found")

// CatalogRepository defines the persistence operations for the service catalog.
type CatalogRepository interface {
	// FindAll retrieves every catalog item.
	FindAll(ctx context.Context) ([]*entity.ServiceItem, error)

	// FindByCategory retrieves the items of one category.
	FindByCategory(ctx context.Context, category string) ([]*entity.ServiceItem, error)

	// Create persists a new catalog item.
	Create(ctx context.Context, item *entity.ServiceItem) error

	// Delete removes an item by id. Returns ErrServiceItemNotFound when the
	// id does not resolve.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of catalog items.
	Count(ctx context.Context) (int64, error)
}
