// Package usecase provides testify mocks of the usecase interfaces.
package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"winespa/internal/domain/entity"
	"winespa/internal/domain/repository"
	"winespa/internal/usecase"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockAccountUsecase is a mock of usecase.AccountUsecase.
type MockAccountUsecase struct {
	mock.Mock
}

var _ usecase.AccountUsecase = (*MockAccountUsecase)(nil)

// NewMockAccountUsecase creates a mock and asserts its expectations on cleanup.
func NewMockAccountUsecase(t testingT) *MockAccountUsecase {
	m := &MockAccountUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountUsecase) Register(ctx context.Context, input *usecase.RegisterAccountInput) (*usecase.AccountOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*usecase.AccountOutput)

	return out, args.Error(1)
}

func (m *MockAccountUsecase) CreateWithTemporaryPassword(ctx context.Context, input *usecase.CreateAccountInput) (*usecase.TemporaryPasswordOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*usecase.TemporaryPasswordOutput)

	return out, args.Error(1)
}

func (m *MockAccountUsecase) IssueTemporaryPassword(ctx context.Context, accountID uuid.UUID) (*usecase.TemporaryPasswordOutput, error) {
	args := m.Called(ctx, accountID)
	out, _ := args.Get(0).(*usecase.TemporaryPasswordOutput)

	return out, args.Error(1)
}

func (m *MockAccountUsecase) VerifyPassword(ctx context.Context, accountID uuid.UUID, candidate string) (bool, error) {
	args := m.Called(ctx, accountID, candidate)

	return args.Bool(0), args.Error(1)
}

func (m *MockAccountUsecase) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	return m.Called(ctx, input).Error(0)
}

func (m *MockAccountUsecase) Get(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, accountID)
	account, _ := args.Get(0).(*entity.Account)

	return account, args.Error(1)
}

func (m *MockAccountUsecase) List(ctx context.Context, filter repository.AccountFilter) ([]*entity.Account, error) {
	args := m.Called(ctx, filter)
	accounts, _ := args.Get(0).([]*entity.Account)

	return accounts, args.Error(1)
}

func (m *MockAccountUsecase) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*usecase.AccountOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*usecase.AccountOutput)

	return out, args.Error(1)
}

func (m *MockAccountUsecase) SetStatus(ctx context.Context, accountID uuid.UUID, status entity.Status) (*usecase.AccountOutput, error) {
	args := m.Called(ctx, accountID, status)
	out, _ := args.Get(0).(*usecase.AccountOutput)

	return out, args.Error(1)
}

func (m *MockAccountUsecase) AssignRole(ctx context.Context, accountID uuid.UUID, roleID *uuid.UUID) (*usecase.AccountOutput, error) {
	args := m.Called(ctx, accountID, roleID)
	out, _ := args.Get(0).(*usecase.AccountOutput)

	return out, args.Error(1)
}
