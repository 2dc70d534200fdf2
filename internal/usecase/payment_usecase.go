package usecase

import (
	"context"

	"belleza/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateIntentInput carries the price, in major currency units, to authorize.
type CreateIntentInput struct {
	Price float64
}

// CreateIntentOutput returns the client-confirmable secret from the processor.
type CreateIntentOutput struct {
	ClientSecret string
}

// RecordPaymentInput defines the settle-phase payload: the payment details
// plus the ids of the cart entries it settles. CartIDs may be empty; a
// payment may reference entries already cleared by a prior partial failure.
type RecordPaymentInput struct {
	Email         string
	Price         float64
	TransactionID string
	CartIDs       []uuid.UUID
}

// RecordPaymentOutput returns the recorded payment and how many cart entries
// were removed alongside it.
type RecordPaymentOutput struct {
	Payment          *entity.Payment
	RemovedCartCount int64
}

// PaymentUsecase defines the two-phase cart-to-payment reconciliation
// protocol plus the admin status promotion and per-owner history reads.
type PaymentUsecase interface {
	// CreateIntent is the authorize phase: convert the price to minor units
	// and request an authorization handle from the external processor.
	// Nothing is persisted.
	CreateIntent(ctx context.Context, input *CreateIntentInput) (*CreateIntentOutput, error)

	// RecordPayment is the settle phase: insert the payment record with
	// status pending, then remove the referenced cart entries. The insert
	// always runs before the delete.
	RecordPayment(ctx context.Context, input *RecordPaymentInput) (*RecordPaymentOutput, error)

	// ConfirmPayment promotes a payment from pending to confirmed.
	// Admin-gated at the route; re-confirming is a harmless no-op write.
	ConfirmPayment(ctx context.Context, id uuid.UUID) error

	// ListPayments returns the payment history of one identity.
	ListPayments(ctx context.Context, email string) ([]*entity.Payment, error)
}
