package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceItem is one purchasable service in the catalog, grouped by category.
type ServiceItem struct {
	ID          uuid.UUID // The unique identifier for the item.
	Category    string    // The catalog category this item belongs to.
	Name        string    // Item display name.
	Price       float64   // Item price in major currency units.
	Description string    // Item description.
	Duration    string    // Appointment duration, free-form.
	Popular     bool      // Whether the item is highlighted as popular.
	Image       string    // Item image URL.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ServiceCategory groups catalog items under one named category for listing.
type ServiceCategory struct {
	Category string
	Items    []*ServiceItem
}
