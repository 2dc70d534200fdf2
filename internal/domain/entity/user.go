// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system, representing one registered account.
// Registration is idempotent on Email: a second registration with the same
// email returns the existing record, never a duplicate.
type User struct {
	ID        uuid.UUID // The unique identifier for the user.
	Email     string    // The user's email; the login identifier carried inside tokens.
	Name      string    // The user's display name.
	Role      Role      // The user's role; mutable only by an existing admin.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
