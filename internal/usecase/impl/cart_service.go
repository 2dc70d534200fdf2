package impl

import (
	"context"
	"log/slog"

	deliverycontext "belleza/internal/delivery/context"
	"belleza/internal/domain/entity"
	domainerrors "belleza/internal/domain/errors"
	"belleza/internal/domain/repository"
	"belleza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo repository.CartRepository
	logger   *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo repository.CartRepository
	Logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo: params.CartRepo,
		logger:   params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddToCart inserts a new entry unless a live one exists for the same
// (owner, item) pair. The lookup-then-insert is not race-free under truly
// concurrent identical requests; the storage-level unique index catches
// that case and it is reported the same way.
func (srv *cartService) AddToCart(ctx context.Context, input *usecase.AddToCartInput) (*usecase.AddToCartOutput, error) {
	existing, err := srv.cartRepo.FindByOwnerAndService(ctx, input.Email, input.ServiceID)
	if err == nil {
		srv.log(ctx).Debug("Duplicate cart add",
			slog.String("email", input.Email), slog.Any("serviceID", input.ServiceID))

		return &usecase.AddToCartOutput{Entry: existing, AlreadyInCart: true}, nil
	}
	if !errors.Is(err, repository.ErrCartEntryNotFound) {
		return nil, errors.Wrap(err, "failed to check cart for duplicate entry")
	}

	entry := &entity.CartEntry{
		Email:       input.Email,
		ServiceID:   input.ServiceID,
		ServiceName: input.ServiceName,
		Price:       input.Price,
		Duration:    input.Duration,
		Image:       input.Image,
	}

	if err := srv.cartRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrCartEntryDuplicate) {
			return &usecase.AddToCartOutput{AlreadyInCart: true}, nil
		}

		return nil, errors.Wrap(err, "failed to create cart entry")
	}

	return &usecase.AddToCartOutput{Entry: entry}, nil
}

// ListCart returns the live entries owned by email.
func (srv *cartService) ListCart(ctx context.Context, email string) ([]*entity.CartEntry, error) {
	entries, err := srv.cartRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart entries")
	}

	return entries, nil
}

// RemoveFromCart removes a single entry by id.
func (srv *cartService) RemoveFromCart(ctx context.Context, id uuid.UUID) error {
	if err := srv.cartRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCartEntryNotFound) {
			return domainerrors.ErrCartEntryNotFound.WrapMessage("cannot remove unknown cart entry")
		}

		return errors.Wrap(err, "failed to remove cart entry")
	}

	return nil
}
