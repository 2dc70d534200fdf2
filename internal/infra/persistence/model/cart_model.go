package model

import (
	"time"

	"github.com/google/uuid"
)

// CartEntryModel mirrors the 'cart_entries' table. The unique index over
// (email, service_id) backs the one-live-entry-per-pair invariant at the
// storage level; the adapter still checks first to report duplicates as a
// business result rather than a constraint error.
type CartEntryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email       string    `gorm:"type:varchar(255);not null;index;uniqueIndex:idx_cart_owner_service"`
	ServiceID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_owner_service"`
	ServiceName string    `gorm:"type:varchar(100)"`
	Price       float64   `gorm:"not null"`
	Duration    string    `gorm:"type:varchar(50)"`
	Image       string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartEntryModel) TableName() string {
	return "cart_entries"
}
