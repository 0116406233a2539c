package impl

import (
	"context"
	"testing"

	"vollmed/internal/domain/entity"
	domainerrors "vollmed/internal/domain/errors"
	"vollmed/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest(factory *fakeRepoFactory, tokenSvc *fakeTokenService) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		TxManager:    &fakeTxManager{factory: factory},
		AccountRepo:  factory.accounts,
		Hasher:       &fakeHasher{},
		TokenService: tokenSvc,
		Logger:       newTestLogger(),
	})
}

func TestAuthService_Login_Success(t *testing.T) {
	factory := newFakeFactory()
	factory.accounts.byLogin["ana@voll.med"] = &entity.Account{
		Login:        "ana@voll.med",
		PasswordHash: "hashed:s3cret",
		Roles:        entity.Roles{entity.RoleUser},
	}
	service := newAuthServiceForTest(factory, &fakeTokenService{token: "signed-token"})

	output, err := service.Login(context.Background(), usecase.LoginInput{
		Login:    "ana@voll.med",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
}

func TestAuthService_Login_UnknownLogin(t *testing.T) {
	service := newAuthServiceForTest(newFakeFactory(), &fakeTokenService{token: "signed-token"})

	output, err := service.Login(context.Background(), usecase.LoginInput{
		Login:    "nobody@voll.med",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	factory := newFakeFactory()
	factory.accounts.byLogin["ana@voll.med"] = &entity.Account{
		Login:        "ana@voll.med",
		PasswordHash: "hashed:s3cret",
	}
	service := newAuthServiceForTest(factory, &fakeTokenService{token: "signed-token"})

	_, err := service.Login(context.Background(), usecase.LoginInput{
		Login:    "ana@voll.med",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_TokenGenerationFailure(t *testing.T) {
	factory := newFakeFactory()
	factory.accounts.byLogin["ana@voll.med"] = &entity.Account{
		Login:        "ana@voll.med",
		PasswordHash: "hashed:s3cret",
	}
	service := newAuthServiceForTest(factory, &fakeTokenService{genErr: errors.New("signing failed")})

	_, err := service.Login(context.Background(), usecase.LoginInput{
		Login:    "ana@voll.med",
		Password: "s3cret",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenCreationFailed)
}

func TestAuthService_Register_DefaultsToUserRole(t *testing.T) {
	factory := newFakeFactory()
	service := newAuthServiceForTest(factory, &fakeTokenService{})

	output, err := service.Register(context.Background(), usecase.RegisterAccountInput{
		Login:    "new@voll.med",
		Password: "s3cret",
	})
	require.NoError(t, err)
	require.NotNil(t, output.Account)
	assert.Equal(t, "hashed:s3cret", output.Account.PasswordHash)
	assert.Equal(t, entity.Roles{entity.RoleUser}, output.Account.Roles)
	assert.NotEmpty(t, output.Account.ID)
}

func TestAuthService_Register_DuplicateLogin(t *testing.T) {
	factory := newFakeFactory()
	factory.accounts.byLogin["taken@voll.med"] = &entity.Account{Login: "taken@voll.med"}
	service := newAuthServiceForTest(factory, &fakeTokenService{})

	_, err := service.Register(context.Background(), usecase.RegisterAccountInput{
		Login:    "taken@voll.med",
		Password: "s3cret",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}
