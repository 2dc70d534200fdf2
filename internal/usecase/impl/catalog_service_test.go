package impl

import (
	"context"
	"testing"

	"belleza/internal/domain/entity"
	"belleza/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListCatalog_GroupsByCategory(t *testing.T) {
	t.Parallel()

	items := []*entity.ServiceItem{
		{ID: uuid.New(), Category: "Hair", Name: "Cut & Style"},
		{ID: uuid.New(), Category: "Skin", Name: "Classic Facial"},
		{ID: uuid.New(), Category: "Hair", Name: "Color"},
	}

	repo := new(mockCatalogRepo)
	repo.On("FindAll", mock.Anything).Return(items, nil).Once()

	srv := NewCatalogService(CatalogServiceParams{
		CatalogRepo: repo,
		Logger:      newDiscardLogger(),
	})
	categories, err := srv.ListCatalog(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Hair", categories[0].Category)
	assert.Len(t, categories[0].Items, 2)
	assert.Equal(t, "Skin", categories[1].Category)
	assert.Len(t, categories[1].Items, 1)
}

func TestCatalogService_AddItem_ReturnsUpdatedCategory(t *testing.T) {
	t.Parallel()

	repo := new(mockCatalogRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(i *entity.ServiceItem) bool {
		return i.Category == "Skin" && i.Name == "Hydra Facial"
	})).Return(nil).Once()
	repo.On("FindByCategory", mock.Anything, "Skin").Return([]*entity.ServiceItem{
		{Name: "Classic Facial"},
		{Name: "Hydra Facial"},
	}, nil).Once()

	srv := NewCatalogService(CatalogServiceParams{
		CatalogRepo: repo,
		Logger:      newDiscardLogger(),
	})
	items, err := srv.AddItem(context.Background(), &usecase.AddServiceItemInput{
		Category: "Skin",
		Name:     "Hydra Facial",
		Price:    65,
	})

	require.NoError(t, err)
	assert.Len(t, items, 2)
	repo.AssertExpectations(t)
}

func TestReviewService_SubmitReview(t *testing.T) {
	t.Parallel()

	repo := new(mockReviewRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.Review) bool {
		return r.Email == "lina@example.com" && r.Rating == 5
	})).Return(nil).Once()

	srv := NewReviewService(ReviewServiceParams{
		ReviewRepo: repo,
		Logger:     newDiscardLogger(),
	})
	review, err := srv.SubmitReview(context.Background(), &usecase.SubmitReviewInput{
		Email:   "lina@example.com",
		Name:    "Lina",
		Rating:  5,
		Comment: "Loved the facial.",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	repo.AssertExpectations(t)
}
