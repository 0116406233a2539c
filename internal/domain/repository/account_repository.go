// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"vollmed/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository is the credential store of the authentication pipeline.
// The interceptor only ever calls FindByLogin; Create belongs to the
// registration path and is never used once a token has been issued.
type AccountRepository interface {
	// FindByLogin retrieves a single account by its unique login identifier.
	FindByLogin(ctx context.Context, login string) (*entity.Account, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error
}
