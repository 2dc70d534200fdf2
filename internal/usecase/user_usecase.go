// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"belleza/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new identity.
type RegisterUserInput struct {
	Email string
	Name  string
}

// --- Output DTOs ---

// RegisterUserOutput returns the registered user. AlreadyExists is set when
// the email was registered before; registration is idempotent and the
// existing record is returned untouched.
type RegisterUserOutput struct {
	User          *entity.User
	AlreadyExists bool
}

// UserUsecase defines the interface for identity-related business operations.
// This is the contract that the delivery layer (e.g. HTTP handlers) will depend on.
type UserUsecase interface {
	// RegisterUser creates the identity on first registration; a repeat
	// registration with the same email is a no-op returning the existing record.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error)

	// ListUsers returns every registered identity. Admin-gated at the route.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// DeleteUser removes an identity. Admin-gated at the route.
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// PromoteToAdmin sets the identity's role to admin. Admin-gated at the route.
	PromoteToAdmin(ctx context.Context, id uuid.UUID) error

	// IsAdmin reports whether the identity registered under email holds the
	// admin role. An unknown email is not an error; it is simply not an admin.
	IsAdmin(ctx context.Context, email string) (bool, error)
}
