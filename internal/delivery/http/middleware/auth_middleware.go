// Package middleware provides the HTTP middleware for the delivery layer.
package middleware

import (
	"log/slog"
	"strings"

	"vollmed/internal/domain/entity"
	domainerrors "vollmed/internal/domain/errors"
	"vollmed/internal/domain/repository"
	"vollmed/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys under which the authentication middleware stores the resolved identity.
const (
	// ContextKeyAccount holds the *entity.Account of the authenticated caller.
	ContextKeyAccount = "account"
)

// AuthMiddleware resolves the caller's identity from the Authorization header.
//
// Authenticate itself never rejects a request: it either attaches a verified
// account to the context or leaves the request anonymous and moves on. Which
// routes demand an identity (or a role) is decided separately, by
// RequireAuthenticated and RequireRole. Keeping resolution and policy apart
// means adding a public route never needs a change here.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, accountRepo repository.AccountRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, accountRepo: accountRepo, logger: logger}
}

// Authenticate inspects the Authorization header and, when it carries a
// verifiable token for a known account, stores that account on the context.
// Every failure mode falls through to the next handler unauthenticated.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		// A header without the Bearer prefix is passed to the verifier
		// as-is; it will fail verification like any other bad token.
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		login, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			m.logger.Debug("Token verification failed", slog.Any("error", err))

			return next(c)
		}

		account, err := m.accountRepo.FindByLogin(c.Request().Context(), login)
		if err != nil {
			// The token was once valid but its subject no longer resolves
			// to an account. Treated the same as no token at all.
			m.logger.Debug("Token subject has no account", slog.String("login", login))

			return next(c)
		}

		c.Set(ContextKeyAccount, account)

		return next(c)
	}
}

// RequireAuthenticated rejects requests that reached the handler without a
// resolved account. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if AccountFromContext(c) == nil {
			return domainerrors.ErrUnauthenticated
		}

		return next(c)
	}
}

// RequireRole rejects authenticated requests whose account lacks the given
// role. It must be used AFTER RequireAuthenticated.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account := AccountFromContext(c)
			if account == nil {
				return domainerrors.ErrUnauthenticated
			}

			if !account.Roles.Contains(role) {
				return domainerrors.ErrForbidden.WrapMessage("require '" + role.String() + "' role")
			}

			return next(c)
		}
	}
}

// AccountFromContext returns the authenticated account stored on the echo
// context, or nil when the request is anonymous.
func AccountFromContext(c echo.Context) *entity.Account {
	account, _ := c.Get(ContextKeyAccount).(*entity.Account)

	return account
}
