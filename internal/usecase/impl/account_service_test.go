package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"winespa/config"
	"winespa/internal/domain/entity"
	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/domain/repository"
	"winespa/internal/domain/service"
	"winespa/internal/errors"
	"winespa/internal/infra/auth"
	mockRepo "winespa/internal/mocks/repository"
	mockService "winespa/internal/mocks/service"
	"winespa/internal/usecase"
)

type accountFixture struct {
	service   usecase.AccountUsecase
	txManager *mockRepo.MockTransactionManager
	repos     *repoSet
	notifier  *mockService.MockCredentialNotifier
	publisher *mockService.MockEventPublisher
	hasher    service.PasswordHasher
}

func newAccountFixture(t *testing.T, uniqueScope string) *accountFixture {
	t.Helper()

	f := &accountFixture{
		txManager: mockRepo.NewMockTransactionManager(t),
		repos:     newRepoSet(t),
		notifier:  mockService.NewMockCredentialNotifier(t),
		publisher: mockService.NewMockEventPublisher(t),
		hasher:    newTestHasher(),
	}
	cfg := newTestConfig(uniqueScope)
	f.service = NewAccountService(AccountServiceParams{
		TxManager:   f.txManager,
		AccountRepo: f.repos.accounts,
		Hasher:      f.hasher,
		Policy:      auth.NewPasswordPolicy(cfg),
		Generator:   auth.NewSecretGenerator(cfg),
		Notifier:    f.notifier,
		Publisher:   f.publisher,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})

	return f
}

func (f *accountFixture) expectUnique(kind entity.AccountKind) {
	f.repos.accounts.On("ExistsByEmail", mock.Anything, mock.Anything, mock.MatchedBy(func(scope repository.UniqueScope) bool {
		return scope.Kind == kind
	})).Return(false, nil).Once()
	f.repos.accounts.On("ExistsByDocument", mock.Anything, mock.Anything, mock.Anything, mock.MatchedBy(func(scope repository.UniqueScope) bool {
		return scope.Kind == kind
	})).Return(false, nil).Once()
}

func (f *accountFixture) expectEvent(eventType service.AccountEventType) {
	f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(event *service.AccountEvent) bool {
		return event.Type == eventType
	})).Return(nil).Once()
}

func TestAccountService_Register_Success(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)
	ctx := context.Background()

	f.txManager.RunWith(f.repos.factory)
	f.expectUnique(entity.AccountKindClient)
	f.repos.accounts.On("Create", ctx, mock.AnythingOfType("*entity.Account")).Return(nil).Once()
	f.expectEvent(service.EventAccountCreated)

	out, err := f.service.Register(ctx, &usecase.RegisterAccountInput{AccountParams: clientParams(), Password: "samuel123"})

	require.NoError(t, err)
	assert.Equal(t, "samuel@gmail.com", out.Account.Email)
	assert.Equal(t, "Samuel", out.Account.FirstName())
	assert.False(t, out.Account.MustChangePassword())
	assert.True(t, out.Account.VerifyPermanentPassword(f.hasher, "samuel123"))
	assert.NotEqual(t, "samuel123", out.Account.Credential.SecretHash)
}

func TestAccountService_Register_GlobalScope(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeGlobal)
	ctx := context.Background()

	f.txManager.RunWith(f.repos.factory)
	f.expectUnique("")
	f.repos.accounts.On("Create", ctx, mock.AnythingOfType("*entity.Account")).Return(nil).Once()
	f.expectEvent(service.EventAccountCreated)

	_, err := f.service.Register(ctx, &usecase.RegisterAccountInput{AccountParams: clientParams(), Password: "samuel123"})

	require.NoError(t, err)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)
	ctx := context.Background()

	f.txManager.RunWith(f.repos.factory)
	f.repos.accounts.On("ExistsByEmail", ctx, "samuel@gmail.com", mock.Anything).Return(true, nil).Once()

	out, err := f.service.Register(ctx, &usecase.RegisterAccountInput{AccountParams: clientParams(), Password: "samuel123"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicate))
	f.repos.accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Register_DuplicateDocument(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)
	ctx := context.Background()

	f.txManager.RunWith(f.repos.factory)
	f.repos.accounts.On("ExistsByEmail", ctx, mock.Anything, mock.Anything).Return(false, nil).Once()
	f.repos.accounts.On("ExistsByDocument", ctx, entity.DocumentCC, "1020304050", mock.Anything).Return(true, nil).Once()

	_, err := f.service.Register(ctx, &usecase.RegisterAccountInput{AccountParams: clientParams(), Password: "samuel123"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
	assert.ErrorContains(t, err, "document already registered")
}

func TestAccountService_Register_WeakPassword(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)

	_, err := f.service.Register(context.Background(), &usecase.RegisterAccountInput{AccountParams: clientParams(), Password: "abc"})

	assert.True(t, errors.Is(err, domainerrors.ErrWeakSecret))
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAccountService_Register_InvalidIdentity(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)
	params := clientParams()
	params.Email = "not-an-email"

	_, err := f.service.Register(context.Background(), &usecase.RegisterAccountInput{AccountParams: params, Password: "samuel123"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestAccountService_Register_UnknownRole(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)
	ctx := context.Background()
	roleID := uuid.New()
	params := clientParams()
	params.RoleID = &roleID

	f.txManager.RunWith(f.repos.factory)
	f.expectUnique(entity.AccountKindClient)
	f.repos.roles.On("FindByIDForUpdate", ctx, roleID).Return(nil, domainerrors.ErrRoleNotFound).Once()

	_, err := f.service.Register(ctx, &usecase.RegisterAccountInput{AccountParams: params, Password: "samuel123"})

	assert.True(t, errors.Is(err, domainerrors.ErrRoleNotFound))
	f.repos.accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_CreateWithTemporaryPassword_Delivered(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)
	ctx := context.Background()

	var mailed string
	f.txManager.RunWith(f.repos.factory)
	f.expectUnique(entity.AccountKindClient)
	f.repos.accounts.On("Create", ctx, mock.AnythingOfType("*entity.Account")).Return(nil).Once()
	f.expectEvent(service.EventAccountCreated)
	f.notifier.On("SendTemporaryPassword", ctx, "samuel@gmail.com", "Samuel Pérez Gómez", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { mailed = args.String(3) }).
		Return(nil).Once()

	out, err := f.service.CreateWithTemporaryPassword(ctx, &usecase.CreateAccountInput{AccountParams: clientParams()})

	require.NoError(t, err)
	assert.True(t, out.Delivered)
	assert.True(t, out.Account.MustChangePassword())
	assert.Len(t, mailed, 12)
	assert.True(t, out.Account.VerifyTemporaryPassword(f.hasher, mailed))
}

func TestAccountService_CreateWithTemporaryPassword_DeliveryFailure(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)
	ctx := context.Background()

	f.txManager.RunWith(f.repos.factory)
	f.expectUnique(entity.AccountKindClient)
	f.repos.accounts.On("Create", ctx, mock.AnythingOfType("*entity.Account")).Return(nil).Once()
	f.expectEvent(service.EventAccountCreated)
	f.notifier.On("SendTemporaryPassword", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp: connection refused")).Once()

	out, err := f.service.CreateWithTemporaryPassword(ctx, &usecase.CreateAccountInput{AccountParams: clientParams()})

	require.NoError(t, err, "the account exists even when the mail fails")
	assert.False(t, out.Delivered)
	f.notifier.AssertNumberOfCalls(t, "SendTemporaryPassword", 1)
}

func TestAccountService_IssueTemporaryPassword_ReplacesPermanent(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)
	ctx := context.Background()
	stored := newStoredAccount(t, clientParams(), f.hasher, "nueva_clave456", false)

	var mailed string
	f.txManager.RunWith(f.repos.factory)
	f.repos.accounts.On("FindByIDForUpdate", ctx, stored.ID).Return(stored, nil).Once()
	f.repos.accounts.On("UpdateCredential", ctx, stored).Return(nil).Once()
	f.expectEvent(service.EventTemporaryPasswordIssued)
	f.notifier.On("SendTemporaryPassword", ctx, stored.Email, stored.FullName, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { mailed = args.String(3) }).
		Return(nil).Once()

	out, err := f.service.IssueTemporaryPassword(ctx, stored.ID)

	require.NoError(t, err)
	assert.True(t, out.Delivered)
	assert.True(t, out.Account.MustChangePassword())
	assert.False(t, out.Account.VerifyPermanentPassword(f.hasher, "nueva_clave456"))
	assert.True(t, out.Account.VerifyTemporaryPassword(f.hasher, mailed))
}

func TestAccountService_IssueTemporaryPassword_Reissue(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)
	ctx := context.Background()
	stored := newStoredAccount(t, clientParams(), f.hasher, "first-temporary", true)

	f.txManager.RunWith(f.repos.factory)
	f.repos.accounts.On("FindByIDForUpdate", ctx, stored.ID).Return(stored, nil).Once()
	f.repos.accounts.On("UpdateCredential", ctx, stored).Return(nil).Once()
	f.expectEvent(service.EventTemporaryPasswordIssued)
	f.notifier.On("SendTemporaryPassword", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	out, err := f.service.IssueTemporaryPassword(ctx, stored.ID)

	require.NoError(t, err)
	assert.True(t, out.Account.MustChangePassword())
	assert.False(t, out.Account.VerifyTemporaryPassword(f.hasher, "first-temporary"))
}

func TestAccountService_IssueTemporaryPassword_Inactive(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)
	ctx := context.Background()
	stored := newStoredAccount(t, clientParams(), f.hasher, "nueva_clave456", false)
	stored.Deactivate()

	f.txManager.RunWith(f.repos.factory)
	f.repos.accounts.On("FindByIDForUpdate", ctx, stored.ID).Return(stored, nil).Once()

	_, err := f.service.IssueTemporaryPassword(ctx, stored.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))
	f.repos.accounts.AssertNotCalled(t, "UpdateCredential", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "SendTemporaryPassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_IssueTemporaryPassword_NotFound(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)
	ctx := context.Background()
	id := uuid.New()

	f.txManager.RunWith(f.repos.factory)
	f.repos.accounts.On("FindByIDForUpdate", ctx, id).Return(nil, domainerrors.ErrAccountNotFound).Once()

	_, err := f.service.IssueTemporaryPassword(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAccountService_ChangePassword_FromTemporary(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)
	ctx := context.Background()
	stored := newStoredAccount(t, clientParams(), f.hasher, "Tmp!x9Qa", true)
	locked := cloneAccount(stored)

	f.repos.accounts.On("FindByID", ctx, stored.ID).Return(stored, nil).Once()
	f.txManager.RunWith(f.repos.factory)
	f.repos.accounts.On("FindByIDForUpdate", ctx, stored.ID).Return(locked, nil).Once()
	f.repos.accounts.On("UpdateCredential", ctx, locked).Return(nil).Once()
	f.expectEvent(service.EventPasswordChanged)

	err := f.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		AccountID:       stored.ID,
		CurrentPassword: "Tmp!x9Qa",
		NewPassword:     "nueva_clave456",
	})

	require.NoError(t, err)
	assert.False(t, locked.MustChangePassword())
	assert.True(t, locked.VerifyPermanentPassword(f.hasher, "nueva_clave456"))
	assert.False(t, locked.VerifyPermanentPassword(f.hasher, "Tmp!x9Qa"))
}

func TestAccountService_ChangePassword_WrongCurrent(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)
	ctx := context.Background()
	stored := newStoredAccount(t, clientParams(), f.hasher, "samuel123", false)

	f.repos.accounts.On("FindByID", ctx, stored.ID).Return(stored, nil).Once()

	err := f.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		AccountID:       stored.ID,
		CurrentPassword: "wrong-one",
		NewPassword:     "nueva_clave456",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAccountService_ChangePassword_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		newPassword string
	}{
		{name: "same as current", newPassword: "samuel123"},
		{name: "too short", newPassword: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAccountFixture(t, config.UniqueScopeKind)
			ctx := context.Background()
			stored := newStoredAccount(t, clientParams(), f.hasher, "samuel123", false)

			f.repos.accounts.On("FindByID", ctx, stored.ID).Return(stored, nil).Once()

			err := f.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
				AccountID:       stored.ID,
				CurrentPassword: "samuel123",
				NewPassword:     tt.newPassword,
			})

			assert.True(t, errors.Is(err, domainerrors.ErrWeakSecret))
			assert.True(t, stored.VerifyPermanentPassword(f.hasher, "samuel123"))
			f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestAccountService_ChangePassword_ConcurrentChange(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)
	ctx := context.Background()
	stored := newStoredAccount(t, clientParams(), f.hasher, "samuel123", false)
	locked := cloneAccount(stored)
	require.NoError(t, locked.SetPermanentPassword(f.hasher, "someone-else"))

	f.repos.accounts.On("FindByID", ctx, stored.ID).Return(stored, nil).Once()
	f.txManager.RunWith(f.repos.factory)
	f.repos.accounts.On("FindByIDForUpdate", ctx, stored.ID).Return(locked, nil).Once()

	err := f.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		AccountID:       stored.ID,
		CurrentPassword: "samuel123",
		NewPassword:     "nueva_clave456",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	f.repos.accounts.AssertNotCalled(t, "UpdateCredential", mock.Anything, mock.Anything)
}

func TestAccountService_ChangePassword_PublishFailureIsNotFatal(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)
	ctx := context.Background()
	stored := newStoredAccount(t, clientParams(), f.hasher, "samuel123", false)

	f.repos.accounts.On("FindByID", ctx, stored.ID).Return(stored, nil).Once()
	f.txManager.RunWith(f.repos.factory)
	f.repos.accounts.On("FindByIDForUpdate", ctx, stored.ID).Return(cloneAccount(stored), nil).Once()
	f.repos.accounts.On("UpdateCredential", ctx, mock.Anything).Return(nil).Once()
	f.publisher.On("Publish", ctx, mock.Anything).Return(errors.New("topic unavailable")).Once()

	err := f.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		AccountID:       stored.ID,
		CurrentPassword: "samuel123",
		NewPassword:     "nueva_clave456",
	})

	assert.NoError(t, err)
}

func TestAccountService_VerifyPassword(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)
	ctx := context.Background()
	stored := newStoredAccount(t, clientParams(), f.hasher, "samuel123", false)

	f.repos.accounts.On("FindByID", ctx, stored.ID).Return(stored, nil).Twice()

	ok, err := f.service.VerifyPassword(ctx, stored.ID, "samuel123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.service.VerifyPassword(ctx, stored.ID, "Samuel123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAccountService_List_InvalidFilter(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)

	_, err := f.service.List(context.Background(), repository.AccountFilter{Kind: "robot"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestAccountService_SetStatus_Deactivate(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)
	ctx := context.Background()
	stored := newStoredAccount(t, clientParams(), f.hasher, "samuel123", false)

	f.txManager.RunWith(f.repos.factory)
	f.repos.accounts.On("FindByIDForUpdate", ctx, stored.ID).Return(stored, nil).Once()
	f.repos.accounts.On("Update", ctx, stored).Return(nil).Once()
	f.expectEvent(service.EventAccountStatusChanged)

	out, err := f.service.SetStatus(ctx, stored.ID, entity.StatusInactive)

	require.NoError(t, err)
	assert.False(t, out.Account.IsActive())
	assert.True(t, out.Account.VerifyPermanentPassword(f.hasher, "samuel123"), "deactivation keeps the credential")
}

func TestAccountService_UpdateProfile_Manicurist(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)
	ctx := context.Background()
	params := clientParams()
	params.Kind = entity.AccountKindManicurist
	params.Email = "luisa@gmail.com"
	stored := newStoredAccount(t, params, f.hasher, "samuel123", false)

	specialty := "Uñas acrílicas"
	available := false

	f.txManager.RunWith(f.repos.factory)
	f.repos.accounts.On("FindByIDForUpdate", ctx, stored.ID).Return(stored, nil).Once()
	f.expectUnique(entity.AccountKindManicurist)
	f.repos.accounts.On("Update", ctx, stored).Return(nil).Once()

	out, err := f.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		AccountID:      stored.ID,
		ProfileChanges: entity.ProfileChanges{Specialty: &specialty, Available: &available},
	})

	require.NoError(t, err)
	assert.Equal(t, specialty, out.Account.Specialty)
	assert.False(t, out.Account.Available)
}

func TestAccountService_UpdateProfile_ClientFieldOnManicurist(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)
	ctx := context.Background()
	params := clientParams()
	params.Kind = entity.AccountKindManicurist
	stored := newStoredAccount(t, params, f.hasher, "samuel123", false)
	address := "Carrera 7"

	f.txManager.RunWith(f.repos.factory)
	f.repos.accounts.On("FindByIDForUpdate", ctx, stored.ID).Return(stored, nil).Once()

	_, err := f.service.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		AccountID:      stored.ID,
		ProfileChanges: entity.ProfileChanges{Address: &address},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	f.repos.accounts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAccountService_AssignRole(t *testing.T) {
	f := newAccountFixture(t, config.UniqueScopeKind)
	ctx := context.Background()
	stored := newStoredAccount(t, clientParams(), f.hasher, "samuel123", false)
	role, err := entity.NewRole("Editor")
	require.NoError(t, err)

	f.txManager.RunWith(f.repos.factory)
	f.repos.accounts.On("FindByIDForUpdate", ctx, stored.ID).Return(stored, nil).Once()
	f.repos.roles.On("FindByIDForUpdate", ctx, role.ID).Return(role, nil).Once()
	f.repos.accounts.On("Update", ctx, stored).Return(nil).Once()

	out, err := f.service.AssignRole(ctx, stored.ID, &role.ID)

	require.NoError(t, err)
	require.NotNil(t, out.Account.RoleID)
	assert.Equal(t, role.ID, *out.Account.RoleID)
}
