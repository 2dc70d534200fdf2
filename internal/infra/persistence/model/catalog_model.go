package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceItemModel mirrors the 'service_items' table.
type ServiceItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Category    string    `gorm:"type:varchar(100);not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Price       float64   `gorm:"not null"`
	Description string    `gorm:"type:text"`
	Duration    string    `gorm:"type:varchar(50)"`
	Popular     bool      `gorm:"not null;default:false"`
	Image       string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceItemModel) TableName() string {
	return "service_items"
}
