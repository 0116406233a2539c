package service

import (
	"errors"

	"vollmed/internal/domain/entity"
)

// Token-related sentinel errors.
var (
	// ErrTokenCreation indicates the signing step failed, typically a
	// misconfigured secret. Fatal at issuance time, never retried.
	ErrTokenCreation = errors.New("failed to create token")

	// ErrTokenInvalid covers every verification failure: bad signature,
	// wrong issuer, expired or malformed token. Callers treat the request
	// as unauthenticated rather than aborting it.
	ErrTokenInvalid = errors.New("token invalid or expired")
)

// TokenService defines the interface for issuing and verifying bearer tokens.
// Tokens are self-contained; validity is determined purely by signature and
// timestamp, so no server-side session state exists.
type TokenService interface {
	// Generate creates a signed, time-bounded token asserting the account's
	// login identifier as subject.
	Generate(account *entity.Account) (string, error)

	// Verify validates a token's signature, issuer and expiry, and returns
	// the subject claim. Fails with ErrTokenInvalid on any defect.
	Verify(tokenString string) (string, error)
}
