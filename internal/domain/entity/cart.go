package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartEntry is a pending, not-yet-paid selection of one catalog item by one
// identity. For a given (Email, ServiceID) pair at most one live entry exists;
// the adapter rejects duplicates as a business-level result, not an error.
type CartEntry struct {
	ID          uuid.UUID // The unique identifier for this cart entry.
	Email       string    // The owning identity's email.
	ServiceID   uuid.UUID // The referenced catalog service item.
	ServiceName string    // Denormalized item name, kept for display after catalog edits.
	Price       float64   // Item price at the time the entry was created.
	Duration    string    // Appointment duration, free-form (e.g. "45 min").
	Image       string    // Item image URL.
	CreatedAt   time.Time // Timestamp of when the entry was added.
}
