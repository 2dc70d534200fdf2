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

// cartRepository implements the domain.CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindByOwnerAndService looks up the live entry for one (owner, item) pair.
func (repo *cartRepository) FindByOwnerAndService(ctx context.Context, email string, serviceID uuid.UUID) (*entity.CartEntry, error) {
	var entryM model.CartEntryModel
	err := repo.db.WithContext(ctx).
		Where("email = ? AND service_id = ?", email, serviceID).
		First(&entryM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart entry by owner and service")
	}

	return toCartEntryDomain(&entryM), nil
}

// FindByEmail retrieves all live entries owned by one identity.
func (repo *cartRepository) FindByEmail(ctx context.Context, email string) ([]*entity.CartEntry, error) {
	var entryMs []*model.CartEntryModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at").
		Find(&entryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart entries")
	}

	entries := make([]*entity.CartEntry, 0, len(entryMs))
	for _, entryM := range entryMs {
		entries = append(entries, toCartEntryDomain(entryM))
	}

	return entries, nil
}

// Create persists a new cart entry.
func (repo *cartRepository) Create(ctx context.Context, entry *entity.CartEntry) error {
	entryM := fromCartEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		// The (email, service_id) unique index can still fire under truly
		// concurrent identical adds; surface it as the same business result
		// the read-then-write check produces.
		if isUniqueConstraintViolation(err) {
			return repository.ErrCartEntryDuplicate
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required cart entry information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// Delete removes a single entry by id.
func (repo *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CartEntryModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartEntryNotFound
	}

	return nil
}

// DeleteByIDs removes every entry whose id is in ids. Unresolved ids are
// skipped; the settle phase may legitimately reference entries already
// cleared by a prior partial failure.
func (repo *cartRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.CartEntryModel{})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart entries")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toCartEntryDomain(data *model.CartEntryModel) *entity.CartEntry {
	if data == nil {
		return nil
	}

	return &entity.CartEntry{
		ID:          data.ID,
		Email:       data.Email,
		ServiceID:   data.ServiceID,
		ServiceName: data.ServiceName,
		Price:       data.Price,
		Duration:    data.Duration,
		Image:       data.Image,
		CreatedAt:   data.CreatedAt,
	}
}

func fromCartEntryDomain(data *entity.CartEntry) *model.CartEntryModel {
	if data == nil {
		return nil
	}

	return &model.CartEntryModel{
		ID:          data.ID,
		Email:       data.Email,
		ServiceID:   data.ServiceID,
		ServiceName: data.ServiceName,
		Price:       data.Price,
		Duration:    data.Duration,
		Image:       data.Image,
	}
}
