// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vollmed/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Login    string
	Password string
}

// RegisterAccountInput defines the data required to register a new account.
type RegisterAccountInput struct {
	Login    string
	Password string
	Roles    []string
}

// --- Output DTOs ---

// TokenOutput is the single wire-facing representation of an issued token.
// Every credential exchange, regardless of caller, produces this shape.
type TokenOutput struct {
	Token string
}

// RegisterAccountOutput returns the newly created account's basic information.
type RegisterAccountOutput struct {
	Account *entity.Account
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login validates the supplied credentials and issues a signed token on success.
	Login(ctx context.Context, input LoginInput) (*TokenOutput, error)

	// Register creates a new account with a hashed password.
	Register(ctx context.Context, input RegisterAccountInput) (*RegisterAccountOutput, error)
}
