// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"vollmed/config"
	"vollmed/internal/domain/entity"
	"vollmed/internal/domain/service"
)

const (
	// tokenIssuer identifies this deployment in every token it signs.
	tokenIssuer = "vollmed-api"

	// tokenValidity is the fixed window after which a token expires.
	tokenValidity = 2 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// It is stateless: token validity is a pure function of the token, the secret
// and the current time, so concurrent issues and verifies need no coordination.
type jwtService struct {
	secret []byte          // Symmetric key used for HMAC-SHA256 signing and verification.
	ttl    time.Duration   // Validity window applied at issuance.
	now    func() time.Time // Time source, overridable in tests.
}

// NewJWTService is the constructor for jwtService.
// An empty secret is a fatal configuration error.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("token secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Token),
		ttl:    tokenValidity,
		now:    time.Now,
	}, nil
}

// Generate creates a signed token asserting the account's login as subject,
// expiring tokenValidity from now.
func (s *jwtService) Generate(account *entity.Account) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   account.Login,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrapf(service.ErrTokenCreation, "sign token: %v", err)
	}

	return signed, nil
}

// Verify recomputes the signature and checks issuer and expiry against a
// single reading of the clock. Any defect collapses into ErrTokenInvalid; the
// caller decides whether that leaves the request unauthenticated or rejected.
func (s *jwtService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			// Ensure the signing method is what we expect.
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil || !token.Valid {
		return "", service.ErrTokenInvalid
	}

	return claims.Subject, nil
}
