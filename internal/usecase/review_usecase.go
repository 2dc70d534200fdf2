package usecase

import (
	"context"

	"belleza/internal/domain/entity"
)

// SubmitReviewInput defines the data required to leave a review.
type SubmitReviewInput struct {
	Email   string
	Name    string
	Rating  int
	Comment string
}

// ReviewUsecase defines the customer review operations.
type ReviewUsecase interface {
	SubmitReview(ctx context.Context, input *SubmitReviewInput) (*entity.Review, error)
	ListReviews(ctx context.Context) ([]*entity.Review, error)
}
