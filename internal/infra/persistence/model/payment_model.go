package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table. CartIDs records which cart
// entries the payment settled; it is kept as jsonb since the entries
// themselves are deleted in the same transaction.
type PaymentModel struct {
	ID            uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email         string      `gorm:"type:varchar(255);not null;index"`
	Price         float64     `gorm:"not null"`
	Currency      string      `gorm:"type:varchar(10);not null;default:'usd'"`
	TransactionID string      `gorm:"type:varchar(255)"`
	CartIDs       []uuid.UUID `gorm:"type:jsonb;serializer:json"`
	Status        string      `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
