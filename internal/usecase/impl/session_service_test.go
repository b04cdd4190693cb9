package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"winespa/internal/domain/entity"
	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/domain/service"
	"winespa/internal/errors"
	mockRepo "winespa/internal/mocks/repository"
	mockService "winespa/internal/mocks/service"
	"winespa/internal/usecase"
)

type sessionFixture struct {
	service      usecase.SessionUsecase
	accountRepo  *mockRepo.MockAccountRepository
	tokenService *mockService.MockTokenService
	hasher       service.PasswordHasher
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	f := &sessionFixture{
		accountRepo:  mockRepo.NewMockAccountRepository(t),
		tokenService: mockService.NewMockTokenService(t),
		hasher:       newTestHasher(),
	}
	f.service = NewSessionService(SessionServiceParams{
		AccountRepo:  f.accountRepo,
		Hasher:       f.hasher,
		TokenService: f.tokenService,
		Logger:       newDiscardLogger(),
	})

	return f
}

func TestSessionService_Login(t *testing.T) {
	tests := []struct {
		name       string
		mustChange bool
	}{
		{name: "permanent password", mustChange: false},
		{name: "temporary password", mustChange: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture(t)
			ctx := context.Background()
			account := newStoredAccount(t, clientParams(), f.hasher, "samuel123", tt.mustChange)
			expiresAt := time.Now().Add(time.Hour)

			f.accountRepo.On("FindByEmail", ctx, entity.AccountKindClient, "samuel@gmail.com").Return(account, nil).Once()
			f.tokenService.On("GenerateAccessToken", mock.MatchedBy(func(subject service.TokenSubject) bool {
				return subject.AccountID == account.ID && subject.MustChange == tt.mustChange
			})).Return("signed-token", expiresAt, nil).Once()

			out, err := f.service.Login(ctx, &usecase.LoginInput{
				Kind:     entity.AccountKindClient,
				Email:    "samuel@gmail.com",
				Password: "samuel123",
			})

			require.NoError(t, err)
			assert.Equal(t, "signed-token", out.AccessToken)
			assert.Equal(t, expiresAt, out.ExpiresAt)
			assert.Equal(t, tt.mustChange, out.MustChangePassword)
		})
	}
}

func TestSessionService_Login_Rejections(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	account := newStoredAccount(t, clientParams(), f.hasher, "samuel123", false)

	f.accountRepo.On("FindByEmail", ctx, entity.AccountKindClient, "samuel@gmail.com").Return(account, nil).Once()
	f.accountRepo.On("FindByEmail", ctx, entity.AccountKindClient, "nadie@gmail.com").Return(nil, domainerrors.ErrAccountNotFound).Once()

	_, wrongPassword := f.service.Login(ctx, &usecase.LoginInput{Kind: entity.AccountKindClient, Email: "samuel@gmail.com", Password: "Samuel123"})
	_, unknownEmail := f.service.Login(ctx, &usecase.LoginInput{Kind: entity.AccountKindClient, Email: "nadie@gmail.com", Password: "samuel123"})

	assert.True(t, errors.Is(wrongPassword, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(unknownEmail, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestSessionService_Login_UnknownEmailStillHashes(t *testing.T) {
	ctx := context.Background()
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	srv := NewSessionService(SessionServiceParams{
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: mockService.NewMockTokenService(t),
		Logger:       newDiscardLogger(),
	})

	accountRepo.On("FindByEmail", ctx, entity.AccountKindClient, "nadie@gmail.com").Return(nil, domainerrors.ErrAccountNotFound).Once()
	hasher.On("Check", "samuel123", unknownAccountHash).Return(false).Once()

	_, err := srv.Login(ctx, &usecase.LoginInput{Kind: entity.AccountKindClient, Email: "nadie@gmail.com", Password: "samuel123"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	hasher.AssertNumberOfCalls(t, "Check", 1)
}

func TestUnknownAccountHash_IsComparable(t *testing.T) {
	cost, err := bcrypt.Cost([]byte(unknownAccountHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
	assert.False(t, newTestHasher().Check("samuel123", unknownAccountHash))
}

func TestSessionService_Login_InactiveAccount(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	account := newStoredAccount(t, clientParams(), f.hasher, "samuel123", false)
	account.Deactivate()

	f.accountRepo.On("FindByEmail", ctx, entity.AccountKindClient, "samuel@gmail.com").Return(account, nil).Once()

	_, err := f.service.Login(ctx, &usecase.LoginInput{Kind: entity.AccountKindClient, Email: "samuel@gmail.com", Password: "samuel123"})

	assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))
}

func TestSessionService_Login_UnknownKind(t *testing.T) {
	f := newSessionFixture(t)

	_, err := f.service.Login(context.Background(), &usecase.LoginInput{Kind: "robot", Email: "a@b.co", Password: "x"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}
