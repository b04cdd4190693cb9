package impl

import (
	"io"
	"log/slog"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"winespa/config"
	"winespa/internal/domain/entity"
	"winespa/internal/domain/service"
	"winespa/internal/infra/auth"
	mockRepo "winespa/internal/mocks/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(uniqueScope string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:              bcrypt.MinCost,
			TemporaryPasswordLength: 12,
		},
		Accounts: &config.AccountsConfig{UniqueScope: uniqueScope},
	}
}

func newTestHasher() service.PasswordHasher {
	return auth.NewBcryptHasherWithCost(bcrypt.MinCost)
}

// repoSet wires one mock per repository behind a mock factory.
type repoSet struct {
	factory     *mockRepo.MockRepositoryFactory
	accounts    *mockRepo.MockAccountRepository
	roles       *mockRepo.MockRoleRepository
	permissions *mockRepo.MockPermissionRepository
	absences    *mockRepo.MockAbsenceRepository
}

func newRepoSet(t *testing.T) *repoSet {
	t.Helper()

	set := &repoSet{
		factory:     mockRepo.NewMockRepositoryFactory(t),
		accounts:    mockRepo.NewMockAccountRepository(t),
		roles:       mockRepo.NewMockRoleRepository(t),
		permissions: mockRepo.NewMockPermissionRepository(t),
		absences:    mockRepo.NewMockAbsenceRepository(t),
	}
	set.factory.On("NewAccountRepository").Return(set.accounts).Maybe()
	set.factory.On("NewRoleRepository").Return(set.roles).Maybe()
	set.factory.On("NewPermissionRepository").Return(set.permissions).Maybe()
	set.factory.On("NewAbsenceRepository").Return(set.absences).Maybe()

	return set
}

func clientParams() entity.AccountParams {
	return entity.AccountParams{
		Kind:           entity.AccountKindClient,
		DocumentType:   entity.DocumentCC,
		DocumentNumber: "1020304050",
		FullName:       "Samuel Pérez Gómez",
		Phone:          "3001234567",
		Email:          "Samuel@Gmail.com",
		Address:        "Calle 10 # 20-30",
		Gender:         "M",
	}
}

// newStoredAccount returns an account as the repository would hand it back, holding password.
func newStoredAccount(t *testing.T, params entity.AccountParams, hasher service.PasswordHasher, password string, mustChange bool) *entity.Account {
	t.Helper()

	account, err := entity.NewAccount(params, mustChange)
	if err != nil {
		t.Fatalf("new account: %v", err)
	}
	if err := account.SetPermanentPassword(hasher, password); err != nil {
		t.Fatalf("set password: %v", err)
	}

	return account
}

func cloneAccount(account *entity.Account) *entity.Account {
	clone := *account

	return &clone
}
