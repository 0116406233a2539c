// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is an identity record used for authentication. The login identifier
// is unique and immutable after creation; the authentication pipeline only
// ever reads accounts, it never mutates them.
type Account struct {
	ID           uuid.UUID // The unique ID for this account record.
	Login        string    // The unique login identifier, typically an email address.
	PasswordHash string    // Stores the bcrypt-hashed password.
	Roles        Roles     // Authorization claims granted to this account.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
