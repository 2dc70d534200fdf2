package postgres

import (
	"context"

	"belleza/internal/domain/entity"
	domainerrors "belleza/internal/domain/errors"
	"belleza/internal/domain/repository"
	"belleza/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the domain.CatalogRepository interface using GORM.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// FindAll retrieves every catalog item.
func (repo *catalogRepository) FindAll(ctx context.Context) ([]*entity.ServiceItem, error) {
	var itemMs []*model.ServiceItemModel
	err := repo.db.WithContext(ctx).
		Order("category, created_at").
		Find(&itemMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list service items")
	}

	return toServiceItemDomainList(itemMs), nil
}

// FindByCategory retrieves the items of one category.
func (repo *catalogRepository) FindByCategory(ctx context.Context, category string) ([]*entity.ServiceItem, error) {
	var itemMs []*model.ServiceItemModel
	err := repo.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at").
		Find(&itemMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list service items by category")
	}

	return toServiceItemDomainList(itemMs), nil
}

// Create persists a new catalog item.
func (repo *catalogRepository) Create(ctx context.Context, item *entity.ServiceItem) error {
	itemM := fromServiceItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required service item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Delete removes an item by id.
func (repo *catalogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ServiceItemModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete service item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceItemNotFound
	}

	return nil
}

// Count returns the total number of catalog items.
func (repo *catalogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ServiceItemModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count service items")
	}

	return count, nil
}

// --- Mapper Functions ---

func toServiceItemDomain(data *model.ServiceItemModel) *entity.ServiceItem {
	if data == nil {
		return nil
	}

	return &entity.ServiceItem{
		ID:          data.ID,
		Category:    data.Category,
		Name:        data.Name,
		Price:       data.Price,
		Description: data.Description,
		Duration:    data.Duration,
		Popular:     data.Popular,
		Image:       data.Image,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toServiceItemDomainList(data []*model.ServiceItemModel) []*entity.ServiceItem {
	items := make([]*entity.ServiceItem, 0, len(data))
	for _, itemM := range data {
		items = append(items, toServiceItemDomain(itemM))
	}

	return items
}

func fromServiceItemDomain(data *entity.ServiceItem) *model.ServiceItemModel {
	if data == nil {
		return nil
	}

	return &model.ServiceItemModel{
		ID:          data.ID,
		Category:    data.Category,
		Name:        data.Name,
		Price:       data.Price,
		Description: data.Description,
		Duration:    data.Duration,
		Popular:     data.Popular,
		Image:       data.Image,
	}
}
