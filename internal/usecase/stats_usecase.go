package usecase

import (
	"context"

	"belleza/internal/domain/entity"
)

// AdminStatsOutput is the read-only rollup over the stored record sets.
// Revenue over zero payment records is 0, never an error.
type AdminStatsOutput struct {
	Users          int64
	ServiceData    int64
	Orders         int64
	Revenue        float64
	PaymentHistory []*entity.Payment
}

// StatsUsecase defines the read-only aggregate statistics operations.
type StatsUsecase interface {
	AdminStats(ctx context.Context) (*AdminStatsOutput, error)
}
