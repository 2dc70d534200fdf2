package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the confirmation state of a payment record.
type PaymentStatus string

const (
	// PaymentStatusPending is the initial state of every recorded payment.
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusConfirmed is set by an explicit admin action; never reversed.
	PaymentStatusConfirmed PaymentStatus = "confirmed"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// Payment is the durable record of money collected for a set of cart entries.
// It is created atomically with the removal of the cart entries it settles.
type Payment struct {
	ID            uuid.UUID     // The unique identifier for this payment record.
	Email         string        // The owning identity's email.
	Price         float64       // The settled amount, in major currency units.
	Currency      string        // Settlement currency, e.g. "usd".
	TransactionID string        // The processor-side transaction reference.
	CartIDs       []uuid.UUID   // The cart entries this payment settles. May be empty.
	Status        PaymentStatus // pending until an admin confirms.
	CreatedAt     time.Time     // Timestamp of when the payment was recorded.
}
