package repository

import (
	"context"
	"errors"

	"belleza/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPaymentNotFound is returned when a payment id does not resolve.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository defines the persistence operations for payment records.
type PaymentRepository interface {
	// Create persists a new payment record.
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByEmail retrieves the payment history of one identity.
	FindByEmail(ctx context.Context, email string) ([]*entity.Payment, error)

	// FindAll retrieves every payment record, newest first.
	FindAll(ctx context.Context) ([]*entity.Payment, error)

	// UpdateStatus sets the confirmation status of a payment. Returns
	// ErrPaymentNotFound when the id does not resolve. Setting an already
	// confirmed record to confirmed is a harmless no-op write.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error

	// Count returns the total number of payment records.
	Count(ctx context.Context) (int64, error)

	// SumPrice returns the sum of the price field across all payment
	// records. An empty record set yields 0.
	SumPrice(ctx context.Context) (float64, error)
}
