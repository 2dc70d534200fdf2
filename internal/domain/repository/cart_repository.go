package repository

import (
	"context"
	"errors"

	"belleza/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartEntryNotFound is returned when a cart entry id does not resolve.
var ErrCartEntryNotFound = errors.New("cart entry not found")

// ErrCartEntryDuplicate is returned when a live entry already exists for the
// same (owner, item) pair.
var ErrCartEntryDuplicate = errors.New("item already in cart")

// CartRepository defines the persistence operations for pending cart entries.
type CartRepository interface {
	// FindByOwnerAndService looks up the live entry for one (owner, item)
	// pair. Returns ErrCartEntryNotFound when no entry exists; the duplicate
	// check in the adapter relies on this.
	FindByOwnerAndService(ctx context.Context, email string, serviceID uuid.UUID) (*entity.CartEntry, error)

	// FindByEmail retrieves all live entries owned by one identity.
	FindByEmail(ctx context.Context, email string) ([]*entity.CartEntry, error)

	// Create persists a new cart entry.
	Create(ctx context.Context, entry *entity.CartEntry) error

	// Delete removes a single entry by id.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByIDs removes every entry whose id is in ids and returns the
	// number of rows removed. Ids that do not resolve are skipped silently;
	// a settle retry may reference entries already cleared.
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}
