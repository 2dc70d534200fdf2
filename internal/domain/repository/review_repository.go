package repository

import (
	"context"

	"belleza/internal/domain/entity"
)

// ReviewRepository defines the persistence operations for customer reviews.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// FindAll retrieves every review, newest first.
	FindAll(ctx context.Context) ([]*entity.Review, error)
}
