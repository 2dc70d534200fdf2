package usecase

import (
	"context"

	"belleza/internal/domain/entity"

	"github.com/google/uuid"
)

// AddToCartInput defines the data required to add one catalog item to a cart.
type AddToCartInput struct {
	Email       string
	ServiceID   uuid.UUID
	ServiceName string
	Price       float64
	Duration    string
	Image       string
}

// AddToCartOutput returns the created entry, or AlreadyInCart when a live
// entry for the same (owner, item) pair exists. The duplicate is a
// business-level result, not an error.
type AddToCartOutput struct {
	Entry         *entity.CartEntry
	AlreadyInCart bool
}

// CartUsecase defines the interface for pre-payment cart operations.
type CartUsecase interface {
	// AddToCart inserts a new entry unless one already exists for the same
	// (owner, item) pair.
	AddToCart(ctx context.Context, input *AddToCartInput) (*AddToCartOutput, error)

	// ListCart returns the caller's own live entries.
	ListCart(ctx context.Context, email string) ([]*entity.CartEntry, error)

	// RemoveFromCart removes a single entry by id.
	RemoveFromCart(ctx context.Context, id uuid.UUID) error
}
