package impl

import (
	"context"
	"testing"

	"belleza/internal/domain/entity"
	"belleza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStatsServiceForTest(
	userRepo *mockUserRepo,
	catalogRepo *mockCatalogRepo,
	paymentRepo *mockPaymentRepo,
) usecase.StatsUsecase {
	return NewStatsService(StatsServiceParams{
		UserRepo:    userRepo,
		CatalogRepo: catalogRepo,
		PaymentRepo: paymentRepo,
		Logger:      newDiscardLogger(),
	})
}

func TestStatsService_AdminStats(t *testing.T) {
	t.Parallel()

	history := []*entity.Payment{
		{ID: uuid.New(), Price: 10},
		{ID: uuid.New(), Price: 25},
		{ID: uuid.New(), Price: 5},
	}

	userRepo := new(mockUserRepo)
	catalogRepo := new(mockCatalogRepo)
	paymentRepo := new(mockPaymentRepo)
	userRepo.On("Count", mock.Anything).Return(int64(7), nil).Once()
	catalogRepo.On("Count", mock.Anything).Return(int64(12), nil).Once()
	paymentRepo.On("Count", mock.Anything).Return(int64(3), nil).Once()
	paymentRepo.On("SumPrice", mock.Anything).Return(float64(40), nil).Once()
	paymentRepo.On("FindAll", mock.Anything).Return(history, nil).Once()

	srv := newStatsServiceForTest(userRepo, catalogRepo, paymentRepo)
	out, err := srv.AdminStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), out.Users)
	assert.Equal(t, int64(12), out.ServiceData)
	assert.Equal(t, int64(3), out.Orders)
	assert.InDelta(t, 40, out.Revenue, 1e-9)
	assert.Len(t, out.PaymentHistory, 3)
}

func TestStatsService_AdminStats_NoPayments(t *testing.T) {
	t.Parallel()

	userRepo := new(mockUserRepo)
	catalogRepo := new(mockCatalogRepo)
	paymentRepo := new(mockPaymentRepo)
	userRepo.On("Count", mock.Anything).Return(int64(0), nil).Once()
	catalogRepo.On("Count", mock.Anything).Return(int64(0), nil).Once()
	paymentRepo.On("Count", mock.Anything).Return(int64(0), nil).Once()
	paymentRepo.On("SumPrice", mock.Anything).Return(float64(0), nil).Once()
	paymentRepo.On("FindAll", mock.Anything).Return([]*entity.Payment{}, nil).Once()

	srv := newStatsServiceForTest(userRepo, catalogRepo, paymentRepo)
	out, err := srv.AdminStats(context.Background())

	require.NoError(t, err)
	assert.Zero(t, out.Revenue)
	assert.Empty(t, out.PaymentHistory)
}

func TestStatsService_AdminStats_CountFailure(t *testing.T) {
	t.Parallel()

	userRepo := new(mockUserRepo)
	userRepo.On("Count", mock.Anything).
		Return(int64(0), errors.New("connection reset")).Once()

	srv := newStatsServiceForTest(userRepo, new(mockCatalogRepo), new(mockPaymentRepo))
	out, err := srv.AdminStats(context.Background())

	require.Error(t, err)
	assert.Nil(t, out)
}
