// Package repository provides testify mocks of the domain repository interfaces.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"winespa/internal/domain/entity"
	"winespa/internal/domain/repository"
)

// MockAccountRepository is a mock of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

var _ repository.AccountRepository = (*MockAccountRepository)(nil)

// NewMockAccountRepository creates a mock and asserts its expectations on cleanup.
func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)

	return accountOrNil(args.Get(0)), args.Error(1)
}

func (m *MockAccountRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)

	return accountOrNil(args.Get(0)), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, kind entity.AccountKind, email string) (*entity.Account, error) {
	args := m.Called(ctx, kind, email)

	return accountOrNil(args.Get(0)), args.Error(1)
}

func (m *MockAccountRepository) ExistsByEmail(ctx context.Context, email string, scope repository.UniqueScope) (bool, error) {
	args := m.Called(ctx, email, scope)

	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) ExistsByDocument(ctx context.Context, documentType entity.DocumentType, number string, scope repository.UniqueScope) (bool, error) {
	args := m.Called(ctx, documentType, number, scope)

	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) UpdateCredential(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) List(ctx context.Context, filter repository.AccountFilter) ([]*entity.Account, error) {
	args := m.Called(ctx, filter)

	accounts, _ := args.Get(0).([]*entity.Account)

	return accounts, args.Error(1)
}

func accountOrNil(v any) *entity.Account {
	account, _ := v.(*entity.Account)

	return account
}
