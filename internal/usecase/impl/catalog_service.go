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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCatalog returns every item grouped by category, preserving the
// category order the repository returns.
func (srv *catalogService) ListCatalog(ctx context.Context) ([]*entity.ServiceCategory, error) {
	items, err := srv.catalogRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	byCategory := make(map[string]*entity.ServiceCategory)
	categories := make([]*entity.ServiceCategory, 0)
	for _, item := range items {
		group, ok := byCategory[item.Category]
		if !ok {
			group = &entity.ServiceCategory{Category: item.Category}
			byCategory[item.Category] = group
			categories = append(categories, group)
		}
		group.Items = append(group.Items, item)
	}

	return categories, nil
}

// AddItem inserts a new item and returns the updated item list of its category.
func (srv *catalogService) AddItem(ctx context.Context, input *usecase.AddServiceItemInput) ([]*entity.ServiceItem, error) {
	item := &entity.ServiceItem{
		Category:    input.Category,
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Duration:    input.Duration,
		Popular:     input.Popular,
		Image:       input.Image,
	}

	if err := srv.catalogRepo.Create(ctx, item); err != nil {
		srv.log(ctx).Error("Failed to add service item",
			slog.String("category", input.Category), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to add service item")
	}

	items, err := srv.catalogRepo.FindByCategory(ctx, input.Category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload category after add")
	}

	return items, nil
}

// RemoveItem deletes an item by id.
func (srv *catalogService) RemoveItem(ctx context.Context, id uuid.UUID) error {
	if err := srv.catalogRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrServiceItemNotFound) {
			return domainerrors.ErrServiceItemNotFound.WrapMessage("cannot delete unknown service item")
		}

		return errors.Wrap(err, "failed to delete service item")
	}

	srv.log(ctx).Info("Service item deleted", slog.Any("itemID", id))

	return nil
}
