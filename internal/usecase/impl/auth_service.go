// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "vollmed/internal/delivery/context"
	"vollmed/internal/domain/entity"
	domainerrors "vollmed/internal/domain/errors"
	"vollmed/internal/domain/repository"
	"vollmed/internal/domain/service"
	"vollmed/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login validates the supplied credentials and issues a signed token.
// The response carries nothing but the token; callers learn about the
// account from the token itself on subsequent requests.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.TokenOutput, error) {
	account, err := srv.accountRepo.FindByLogin(ctx, input.Login)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Same failure as a bad password so the response does not
			// reveal which logins exist.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed: password mismatch", slog.String("login", input.Login))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Generate(account)
	if err != nil {
		srv.log(ctx).Error("Token generation failed", slog.String("login", input.Login), slog.Any("error", err))

		return nil, domainerrors.ErrTokenCreationFailed
	}

	srv.log(ctx).Info("Login successful", slog.String("login", input.Login))

	return &usecase.TokenOutput{Token: token}, nil
}

// Register creates a new account with a bcrypt-hashed password. Accounts
// registered without explicit roles default to the regular user role.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterAccountInput) (*usecase.RegisterAccountOutput, error) {
	srv.log(ctx).Info("Starting account registration", slog.String("login", input.Login))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	roles := entity.RolesFromStrings(input.Roles)
	if len(roles) == 0 {
		roles = entity.Roles{entity.RoleUser}
	}

	account := &entity.Account{
		Login:        input.Login,
		PasswordHash: hash,
		Roles:        roles,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewAccountRepository().Create(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account registered", slog.String("login", account.Login))

	return &usecase.RegisterAccountOutput{Account: account}, nil
}
