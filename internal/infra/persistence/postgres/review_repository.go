package postgres

import (
	"context"

	"belleza/internal/domain/entity"
	domainerrors "belleza/internal/domain/errors"
	"belleza/internal/domain/repository"
	"belleza/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the domain.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// FindAll retrieves every review, newest first.
func (repo *reviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	var reviewMs []*model.ReviewModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&reviewMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewMs))
	for _, reviewM := range reviewMs {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:      data.ID,
		Email:   data.Email,
		Name:    data.Name,
		Rating:  data.Rating,
		Comment: data.Comment,
	}
}
