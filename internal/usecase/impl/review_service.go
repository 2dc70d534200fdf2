package impl

import (
	"context"
	"log/slog"

	"belleza/internal/domain/entity"
	"belleza/internal/domain/repository"
	"belleza/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

// SubmitReview persists a new customer review.
func (srv *reviewService) SubmitReview(ctx context.Context, input *usecase.SubmitReviewInput) (*entity.Review, error) {
	review := &entity.Review{
		Email:   input.Email,
		Name:    input.Name,
		Rating:  input.Rating,
		Comment: input.Comment,
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to submit review")
	}

	return review, nil
}

// ListReviews returns every review, newest first.
func (srv *reviewService) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}
