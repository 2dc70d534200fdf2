package impl

import (
	"context"
	"log/slog"

	deliverycontext "belleza/internal/delivery/context"
	"belleza/internal/domain/repository"
	"belleza/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// statsService implements the StatsUsecase interface. Read-only.
type statsService struct {
	userRepo    repository.UserRepository
	catalogRepo repository.CatalogRepository
	paymentRepo repository.PaymentRepository
	logger      *slog.Logger
}

// StatsServiceParams holds dependencies for statsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	CatalogRepo repository.CatalogRepository
	PaymentRepo repository.PaymentRepository
	Logger      *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		userRepo:    params.UserRepo,
		catalogRepo: params.CatalogRepo,
		paymentRepo: params.PaymentRepo,
		logger:      params.Logger,
	}
}

func (srv *statsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AdminStats computes counts over the stored record sets plus the revenue
// sum and full payment history. An empty payment set yields revenue 0.
func (srv *statsService) AdminStats(ctx context.Context) (*usecase.AdminStatsOutput, error) {
	users, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	serviceData, err := srv.catalogRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count service items")
	}

	orders, err := srv.paymentRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count payments")
	}

	revenue, err := srv.paymentRepo.SumPrice(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}

	history, err := srv.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load payment history")
	}

	srv.log(ctx).Debug("Admin stats computed",
		slog.Int64("users", users), slog.Int64("orders", orders))

	return &usecase.AdminStatsOutput{
		Users:          users,
		ServiceData:    serviceData,
		Orders:         orders,
		Revenue:        revenue,
		PaymentHistory: history,
	}, nil
}
