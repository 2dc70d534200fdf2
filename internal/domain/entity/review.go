package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer review left against the service as a whole.
type Review struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Rating    int
	Comment   string
	CreatedAt time.Time
}
