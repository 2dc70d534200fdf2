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

// paymentRepository implements the domain.PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// Create persists a new payment record.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required payment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment record")
	}

	payment.ID = paymentM.ID
	payment.Status = entity.PaymentStatus(paymentM.Status)
	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

// FindByEmail retrieves the payment history of one identity.
func (repo *paymentRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Payment, error) {
	var paymentMs []*model.PaymentModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&paymentMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments by email")
	}

	return toPaymentDomainList(paymentMs), nil
}

// FindAll retrieves every payment record, newest first.
func (repo *paymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	var paymentMs []*model.PaymentModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&paymentMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return toPaymentDomainList(paymentMs), nil
}

// UpdateStatus sets the confirmation status of a payment.
func (repo *paymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// Count returns the total number of payment records.
func (repo *paymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.PaymentModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count payments")
	}

	return count, nil
}

// SumPrice returns the sum of the price field across all payment records.
// COALESCE keeps an empty record set at 0 rather than NULL.
func (repo *paymentRepository) SumPrice(ctx context.Context) (float64, error) {
	var total float64
	err := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Select("COALESCE(SUM(price), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum payment prices")
	}

	return total, nil
}

// --- Mapper Functions ---

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:            data.ID,
		Email:         data.Email,
		Price:         data.Price,
		Currency:      data.Currency,
		TransactionID: data.TransactionID,
		CartIDs:       data.CartIDs,
		Status:        entity.PaymentStatus(data.Status),
		CreatedAt:     data.CreatedAt,
	}
}

func toPaymentDomainList(data []*model.PaymentModel) []*entity.Payment {
	payments := make([]*entity.Payment, 0, len(data))
	for _, paymentM := range data {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments
}

func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.PaymentStatusPending
	}

	return &model.PaymentModel{
		ID:            data.ID,
		Email:         data.Email,
		Price:         data.Price,
		Currency:      data.Currency,
		TransactionID: data.TransactionID,
		CartIDs:       data.CartIDs,
		Status:        status.String(),
	}
}
